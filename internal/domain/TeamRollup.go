package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamRollup é o resumo de um lote de pedidos salvo para um time.
// Uma linha é inserida por lote e nunca é alterada.
type TeamRollup struct {
	ID         int64           `json:"id"`
	BatchID    string          `json:"batch_id"`
	Team       Team            `json:"team"`
	OrderCount int             `json:"order_count"`
	SalesTotal decimal.Decimal `json:"sales_total"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// TeamTotals é a soma de todos os lotes de um time
type TeamTotals struct {
	OrderCount int64           `json:"order_count"`
	SalesTotal decimal.Decimal `json:"sales_total"`
}
