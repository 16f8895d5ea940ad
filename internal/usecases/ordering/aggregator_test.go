package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

func order(amount string) domain.ParsedOrder {
	return domain.ParsedOrder{CustomerName: domain.UnknownCustomer, Amount: decimal.RequireFromString(amount)}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		orders    []domain.ParsedOrder
		wantCount int
		wantSales string
	}{
		{
			name:      "Lote vazio",
			orders:    nil,
			wantCount: 0,
			wantSales: "0",
		},
		{
			name:      "Soma exata em decimal",
			orders:    []domain.ParsedOrder{order("1255"), order("1965"), order("0.1"), order("0.2")},
			wantCount: 4,
			wantSales: "3220.3",
		},
		{
			name:      "Valores não positivos ficam de fora",
			orders:    []domain.ParsedOrder{order("100"), order("0"), order("-5")},
			wantCount: 1,
			wantSales: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rollup := Aggregate(domain.TeamA, tt.orders)

			assert.Equal(t, domain.TeamA, rollup.Team)
			assert.Equal(t, tt.wantCount, rollup.OrderCount)
			assert.Equal(t, tt.wantSales, rollup.SalesTotal.String())
		})
	}
}

func TestAggregate_Aditivo(t *testing.T) {
	first := []domain.ParsedOrder{order("100"), order("250.5")}
	second := []domain.ParsedOrder{order("75"), order("1")}

	a := Aggregate(domain.TeamB, first)
	b := Aggregate(domain.TeamB, second)
	all := Aggregate(domain.TeamB, append(append([]domain.ParsedOrder{}, first...), second...))

	assert.Equal(t, a.OrderCount+b.OrderCount, all.OrderCount)
	assert.True(t, a.SalesTotal.Add(b.SalesTotal).Equal(all.SalesTotal))
}
