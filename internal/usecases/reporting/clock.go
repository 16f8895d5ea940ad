package reporting

import "time"

// Clock fornece o horário usado no cabeçalho do relatório
type Clock interface {
	Now() time.Time
}

// SystemClock devolve o horário atual no fuso configurado
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
