package ordering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pedidos
var (
	// Erros de validação
	ErrMissingTeam = errors.New("team is required")
	ErrUnknownTeam = errors.New("unknown team")
	ErrEmptyOrders = errors.New("orders text is required")

	// Erros de banco de dados
	ErrPersistRollup = errors.New("error saving team rollup")
	ErrClearRollups  = errors.New("error clearing team rollups")

	ErrGenerateID = errors.New("error generating batch ID")
)

// OrderingError é um erro com contexto adicional para o salvamento de pedidos
type OrderingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem para o cliente
}

func (e *OrderingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OrderingError) Unwrap() error {
	return e.Err
}

func NewOrderingError(err error, code string, details string) *OrderingError {
	return &OrderingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
