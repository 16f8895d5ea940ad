package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

const (
	labelAB    = "A+B"
	labelCC1   = "C+C1"
	labelTotal = "total"
)

// BuildReport calcula as linhas por time, os subtotais (A+B) e (C+C1) e o
// total geral. O gasto do Follow-up é sempre zero; o total geral soma pedidos
// e vendas de todos os times.
func BuildReport(now time.Time, totals map[domain.Team]domain.TeamTotals, spend domain.SpendSnapshot) domain.Report {
	report := domain.Report{
		GeneratedAt: now,
		Teams:       make([]domain.TeamReportLine, 0, len(domain.Teams)),
	}

	for _, team := range domain.Teams {
		t := totals[team]
		report.Teams = append(report.Teams, domain.TeamReportLine{
			Team:          team,
			ReportMetrics: domain.CalculateReportMetrics(spend.SpendFor(team), t.OrderCount, t.SalesTotal),
		})
	}

	report.AB = buildGroup(labelAB, domain.GroupAB, report.Teams)
	report.CC1 = buildGroup(labelCC1, domain.GroupCC1, report.Teams)
	report.Total = buildGroup(labelTotal, domain.Teams, report.Teams)

	return report
}

func buildGroup(label string, teams []domain.Team, lines []domain.TeamReportLine) domain.GroupReportLine {
	spend := decimal.Zero
	sales := decimal.Zero
	var orders int64

	for _, line := range lines {
		if !contains(teams, line.Team) {
			continue
		}
		spend = spend.Add(line.Spend)
		orders += line.Orders
		sales = sales.Add(line.Sales)
	}

	return domain.GroupReportLine{
		Label:         label,
		Teams:         teams,
		ReportMetrics: domain.CalculateReportMetrics(spend, orders, sales),
	}
}

func contains(teams []domain.Team, team domain.Team) bool {
	for _, t := range teams {
		if t == team {
			return true
		}
	}
	return false
}
