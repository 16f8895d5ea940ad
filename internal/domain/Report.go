package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportMetrics são as métricas derivadas de gasto, pedidos e vendas
type ReportMetrics struct {
	Spend        decimal.Decimal `json:"spend"`
	Orders       int64           `json:"orders"`
	Sales        decimal.Decimal `json:"sales"`
	CostPerOrder decimal.Decimal `json:"cost_per_order"`
	ROAS         decimal.Decimal `json:"roas"`
}

type TeamReportLine struct {
	Team Team `json:"team"`
	ReportMetrics
}

type GroupReportLine struct {
	Label string `json:"label"`
	Teams []Team `json:"teams"`
	ReportMetrics
}

// Report é o relatório completo calculado a partir de um snapshot de pedidos e gastos
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Teams       []TeamReportLine `json:"teams"`
	AB          GroupReportLine  `json:"ab"`
	CC1         GroupReportLine  `json:"cc1"`
	Total       GroupReportLine  `json:"total"`
}

// CalculateReportMetrics calcula custo por pedido e ROAS.
// Denominador zero resulta em métrica zero.
func CalculateReportMetrics(spend decimal.Decimal, orders int64, sales decimal.Decimal) ReportMetrics {
	metrics := ReportMetrics{
		Spend:        spend,
		Orders:       orders,
		Sales:        sales,
		CostPerOrder: decimal.Zero,
		ROAS:         decimal.Zero,
	}

	if orders > 0 {
		metrics.CostPerOrder = spend.Div(decimal.NewFromInt(orders))
	}

	if spend.IsPositive() {
		metrics.ROAS = sales.Div(spend)
	}

	return metrics
}

// GenerateReportResponse é a resposta do relatório em texto. APIError é nulo
// quando todos os gastos foram consultados com sucesso.
type GenerateReportResponse struct {
	Success  bool    `json:"success"`
	Report   string  `json:"report"`
	APIError *string `json:"api_error"`
}
