package ordering

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

// Aggregate soma os pedidos de um lote para o time informado. Pedidos com
// valor menor ou igual a zero não entram na contagem.
func Aggregate(team domain.Team, orders []domain.ParsedOrder) domain.TeamRollup {
	rollup := domain.TeamRollup{
		Team:       team,
		SalesTotal: decimal.Zero,
	}

	for _, order := range orders {
		if !order.Amount.IsPositive() {
			continue
		}
		rollup.OrderCount++
		rollup.SalesTotal = rollup.SalesTotal.Add(order.Amount)
	}

	return rollup
}
