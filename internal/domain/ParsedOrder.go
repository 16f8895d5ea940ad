package domain

import "github.com/shopspring/decimal"

const UnknownCustomer = "Unknown Customer"

// ParsedOrder representa um pedido extraído de um bloco de texto
type ParsedOrder struct {
	CustomerName string          `json:"customer_name"`
	Agent        string          `json:"agent,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}

// RejectReason é o código do motivo pelo qual um bloco não virou pedido
type RejectReason string

const (
	RejectEmptyBlock        RejectReason = "empty_block"
	RejectTooShort          RejectReason = "too_short"
	RejectNoAmount          RejectReason = "no_amount"
	RejectMalformedAmount   RejectReason = "malformed_amount"
	RejectNonPositiveAmount RejectReason = "non_positive_amount"
)

type Rejection struct {
	Reason RejectReason `json:"reason"`
	Detail string       `json:"detail,omitempty"`
}

// BlockOutcome é o resultado do processamento de um bloco: ou Order ou Rejection
type BlockOutcome struct {
	Index     int          `json:"index"`
	Block     string       `json:"block"`
	Pattern   string       `json:"pattern,omitempty"`
	Order     *ParsedOrder `json:"order,omitempty"`
	Rejection *Rejection   `json:"rejection,omitempty"`
}

func (o BlockOutcome) Accepted() bool {
	return o.Order != nil
}

// AcceptedOrders filtra os pedidos válidos de uma lista de resultados
func AcceptedOrders(outcomes []BlockOutcome) []ParsedOrder {
	orders := make([]ParsedOrder, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Order != nil {
			orders = append(orders, *outcome.Order)
		}
	}
	return orders
}

// RejectionsByReason conta os blocos rejeitados por motivo
func RejectionsByReason(outcomes []BlockOutcome) map[RejectReason]int {
	counts := make(map[RejectReason]int)
	for _, outcome := range outcomes {
		if outcome.Rejection != nil {
			counts[outcome.Rejection.Reason]++
		}
	}
	return counts
}
