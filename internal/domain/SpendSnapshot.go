package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendSnapshot contém o gasto de anúncios de cada time em um dia.
// Failed lista os times cuja consulta falhou; Cached, os que entre eles
// usaram o último valor salvo em vez de zero.
type SpendSnapshot struct {
	Date   time.Time                `json:"date"`
	Spend  map[Team]decimal.Decimal `json:"spend"`
	Failed []Team                   `json:"failed,omitempty"`
	Cached []Team                   `json:"cached,omitempty"`
}

// Degraded indica se algum time não teve o gasto consultado com sucesso
func (s SpendSnapshot) Degraded() bool {
	return len(s.Failed) > 0
}

// SpendFor retorna o gasto do time ou zero
func (s SpendSnapshot) SpendFor(team Team) decimal.Decimal {
	if s.Spend == nil || !team.HasSpend() {
		return decimal.Zero
	}
	if spend, ok := s.Spend[team]; ok {
		return spend
	}
	return decimal.Zero
}

// TeamSpendEntry é um gasto diário armazenado no banco
type TeamSpendEntry struct {
	ID        int64           `json:"id"`
	Team      Team            `json:"team"`
	Date      time.Time       `json:"date"`
	Spend     decimal.Decimal `json:"spend"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
