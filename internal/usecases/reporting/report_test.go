package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

var cairo = time.FixedZone("EEST", 3*60*60)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleTotals() map[domain.Team]domain.TeamTotals {
	return map[domain.Team]domain.TeamTotals{
		domain.TeamA:        {OrderCount: 5, SalesTotal: dec("500")},
		domain.TeamC:        {OrderCount: 10, SalesTotal: dec("1234.5")},
		domain.TeamC1:       {OrderCount: 2, SalesTotal: dec("300")},
		domain.TeamFollowUp: {OrderCount: 3, SalesTotal: dec("240")},
	}
}

func sampleSpend() domain.SpendSnapshot {
	return domain.SpendSnapshot{
		Spend: map[domain.Team]decimal.Decimal{
			domain.TeamA:  dec("250"),
			domain.TeamB:  dec("100"),
			domain.TeamC:  dec("617.25"),
			domain.TeamC1: decimal.Zero,
		},
	}
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2025, 7, 17, 2, 7, 0, 0, cairo)

	report := BuildReport(now, sampleTotals(), sampleSpend())

	require.Len(t, report.Teams, 5)
	for i, team := range domain.Teams {
		assert.Equal(t, team, report.Teams[i].Team)
	}

	a := report.Teams[0]
	assert.Equal(t, "50.00", a.CostPerOrder.StringFixed(2))
	assert.Equal(t, "2.00", a.ROAS.StringFixed(2))

	b := report.Teams[1]
	assert.True(t, b.CostPerOrder.IsZero(), "sem pedidos o custo por pedido é zero")
	assert.True(t, b.ROAS.IsZero(), "sem vendas o ROAS é zero")

	c1 := report.Teams[3]
	assert.True(t, c1.ROAS.IsZero(), "sem gasto o ROAS é zero")

	followUp := report.Teams[4]
	assert.True(t, followUp.Spend.IsZero())
	assert.Equal(t, int64(3), followUp.Orders)
	assert.Equal(t, "240", followUp.Sales.String())

	assert.Equal(t, "350", report.AB.Spend.String())
	assert.Equal(t, int64(5), report.AB.Orders)
	assert.Equal(t, "1.43", report.AB.ROAS.StringFixed(2))

	assert.Equal(t, "617.25", report.CC1.Spend.String())
	assert.Equal(t, int64(12), report.CC1.Orders)
	assert.Equal(t, "1534.5", report.CC1.Sales.String())

	// o gasto total ignora o Follow-up, pedidos e vendas o incluem
	assert.Equal(t, "967.25", report.Total.Spend.String())
	assert.Equal(t, int64(20), report.Total.Orders)
	assert.Equal(t, "1774.5", report.Total.Sales.String())
}

func TestBuildReport_FollowUpComGastoIgnorado(t *testing.T) {
	spend := domain.SpendSnapshot{Spend: map[domain.Team]decimal.Decimal{
		domain.TeamFollowUp: dec("999"),
	}}

	report := BuildReport(time.Now(), sampleTotals(), spend)

	assert.True(t, report.Teams[4].Spend.IsZero())
	assert.True(t, report.Total.Spend.IsZero())
	assert.True(t, report.Total.ROAS.IsZero())
}

func TestBuildReport_SemDados(t *testing.T) {
	report := BuildReport(time.Now(), nil, domain.SpendSnapshot{})

	groups := []domain.GroupReportLine{report.AB, report.CC1, report.Total}
	for _, group := range groups {
		assert.True(t, group.CostPerOrder.IsZero())
		assert.True(t, group.ROAS.IsZero())
	}
	for _, line := range report.Teams {
		assert.True(t, line.CostPerOrder.IsZero())
		assert.True(t, line.ROAS.IsZero())
	}
}

func TestFormatReport(t *testing.T) {
	now := time.Date(2025, 7, 17, 14, 7, 0, 0, cairo)
	report := BuildReport(now, sampleTotals(), sampleSpend())

	expected := strings.Join([]string{
		"تاريخ التقرير: 2025-07-17",
		"الوقت: 02:07 PM",
		"===================",
		"",
		"تيم (A)",
		"الصرف :/ 250 ج",
		"عدد الاوردرات / 5",
		"التكلفة : / 50.00 ج",
		"المبيعات :/ 500 ج",
		"ROAS :/ 2.00",
		separator,
		"تيم (B)",
		"الصرف :/ 100 ج",
		"عدد الاوردرات / 0",
		"التكلفة : / 0.00 ج",
		"المبيعات :/ 0 ج",
		"ROAS :/ 0.00",
		separator,
		"تيم (C)",
		"الصرف :/ 617 ج",
		"عدد الاوردرات / 10",
		"التكلفة : / 61.73 ج",
		"المبيعات :/ 1,235 ج",
		"ROAS :/ 2.00",
		separator,
		"تيم (C1)",
		"الصرف :/ 0 ج",
		"عدد الاوردرات / 2",
		"التكلفة : / 0.00 ج",
		"المبيعات :/ 300 ج",
		"ROAS :/ 0.00",
		separator,
		"تيم (فولو أب)",
		"عدد الاوردرات:/ 3",
		"المبيعات :/ 240 ج",
		"",
		separator,
		"اجماليات (A) + (B)",
		"توتال الصرف الاوردرات ( إجمالي ) :/ 350 ج",
		"إجمالي عام اوردات :/ 5",
		"التكلفة / 70.00 ج",
		"إجمالي المبيعات (A+B) :/ 500 ج",
		"ROAS (A+B) :/ 1.43",
		"",
		separator,
		"اجماليات (C) + (C1)",
		"توتال الصرف الاوردرات ( إجمالي ) :/ 617 ج",
		"إجمالي عام اوردات :/ 12",
		"التكلفة / 51.44 ج",
		"إجمالي المبيعات (C+C1) :/ 1,535 ج",
		"ROAS (C+C1) :/ 2.49",
		"",
		separator,
		"اجماليات عامة",
		"إجمالي الصرف الكلي :/ 967 ج",
		"إجمالي الأوردرات الكلي :/ 20",
		"متوسط التكلفة الكلي :/ 48.36 ج",
		"إجمالي المبيعات الكلي :/ 1,775 ج",
		"ROAS الكلي :/ 1.83",
		"",
	}, "\n")

	assert.Equal(t, expected, FormatReport(report))
}

func TestFormatReport_OrdemDasSecoes(t *testing.T) {
	text := FormatReport(BuildReport(time.Now(), sampleTotals(), sampleSpend()))

	sections := []string{
		"تاريخ التقرير:",
		"تيم (A)",
		"تيم (B)",
		"تيم (C)",
		"تيم (C1)",
		"تيم (فولو أب)",
		"اجماليات (A) + (B)",
		"اجماليات (C) + (C1)",
		"اجماليات عامة",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		require.NotEqual(t, -1, idx, "seção ausente: %s", section)
		assert.Greater(t, idx, last, "seção fora de ordem: %s", section)
		last = idx
	}

	followUp := text[strings.Index(text, "تيم (فولو أب)"):strings.Index(text, "اجماليات (A) + (B)")]
	assert.NotContains(t, followUp, "الصرف")
	assert.NotContains(t, followUp, "التكلفة")
	assert.NotContains(t, followUp, "ROAS")
}

func TestFormatReport_Idempotente(t *testing.T) {
	now := time.Date(2025, 7, 17, 2, 7, 0, 0, cairo)

	first := FormatReport(BuildReport(now, sampleTotals(), sampleSpend()))
	second := FormatReport(BuildReport(now, sampleTotals(), sampleSpend()))

	assert.Equal(t, first, second)
}
