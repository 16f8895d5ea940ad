package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/internal/usecases/reporting"
	"github.com/vfg2006/orders-report-api/pkg/apiErrors"
	"github.com/vfg2006/orders-report-api/pkg/log"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

type summaryMetrics struct {
	Spend        float64 `json:"spend"`
	Orders       int64   `json:"orders"`
	Sales        float64 `json:"sales"`
	CostPerOrder float64 `json:"cost_per_order"`
	ROAS         float64 `json:"roas"`
}

type summaryTeam struct {
	Team domain.Team `json:"team"`
	summaryMetrics
}

type summaryGroup struct {
	Label string        `json:"label"`
	Teams []domain.Team `json:"teams"`
	summaryMetrics
}

type summaryResponse struct {
	Success     bool          `json:"success"`
	GeneratedAt string        `json:"generated_at"`
	Teams       []summaryTeam `json:"teams"`
	AB          summaryGroup  `json:"ab"`
	CC1         summaryGroup  `json:"cc1"`
	Total       summaryGroup  `json:"total"`
}

func GenerateReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		day, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		response, err := service.GenerateReport(r.Context(), *day)
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "حدث خطأ: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func ReportSummary(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		day, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		report, err := service.Summary(r.Context(), *day)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar resumo do relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar totais", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, toSummaryResponse(report))
	})
}

func toSummaryResponse(report *domain.Report) summaryResponse {
	response := summaryResponse{
		Success:     true,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Teams:       make([]summaryTeam, 0, len(report.Teams)),
		AB:          toSummaryGroup(report.AB),
		CC1:         toSummaryGroup(report.CC1),
		Total:       toSummaryGroup(report.Total),
	}

	for _, line := range report.Teams {
		response.Teams = append(response.Teams, summaryTeam{
			Team:           line.Team,
			summaryMetrics: toSummaryMetrics(line.ReportMetrics),
		})
	}

	return response
}

func toSummaryGroup(group domain.GroupReportLine) summaryGroup {
	return summaryGroup{
		Label:          group.Label,
		Teams:          group.Teams,
		summaryMetrics: toSummaryMetrics(group.ReportMetrics),
	}
}

func toSummaryMetrics(m domain.ReportMetrics) summaryMetrics {
	return summaryMetrics{
		Spend:        m.Spend.InexactFloat64(),
		Orders:       m.Orders,
		Sales:        m.Sales.InexactFloat64(),
		CostPerOrder: round2(m.CostPerOrder),
		ROAS:         round2(m.ROAS),
	}
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
