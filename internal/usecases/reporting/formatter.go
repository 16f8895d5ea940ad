package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

const (
	headerRule = "==================="
	separator  = "ــــــــــــــــــــــــــــــــــــــــــــ"

	dateLayout = "2006-01-02"
	timeLayout = "03:04 PM"
)

// FormatReport gera o texto do relatório na ordem fixa: cabeçalho, times
// (A, B, C, C1, Follow-up), subtotal (A)+(B), subtotal (C)+(C1) e total geral.
func FormatReport(report domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "تاريخ التقرير: %s\n", report.GeneratedAt.Format(dateLayout))
	fmt.Fprintf(&b, "الوقت: %s\n", report.GeneratedAt.Format(timeLayout))
	b.WriteString(headerRule + "\n\n")

	for _, line := range report.Teams {
		writeTeam(&b, line)
	}

	b.WriteString("\n" + separator + "\n")
	writeGroup(&b, "(A) + (B)", report.AB)

	b.WriteString(separator + "\n")
	writeGroup(&b, "(C) + (C1)", report.CC1)

	b.WriteString(separator + "\n")
	b.WriteString("اجماليات عامة\n")
	fmt.Fprintf(&b, "إجمالي الصرف الكلي :/ %s ج\n", utils.FormatMoney(report.Total.Spend))
	fmt.Fprintf(&b, "إجمالي الأوردرات الكلي :/ %s\n", utils.FormatCount(report.Total.Orders))
	fmt.Fprintf(&b, "متوسط التكلفة الكلي :/ %s ج\n", utils.FormatRatio(report.Total.CostPerOrder))
	fmt.Fprintf(&b, "إجمالي المبيعات الكلي :/ %s ج\n", utils.FormatMoney(report.Total.Sales))
	fmt.Fprintf(&b, "ROAS الكلي :/ %s\n", utils.FormatRatio(report.Total.ROAS))

	return b.String()
}

func writeTeam(b *strings.Builder, line domain.TeamReportLine) {
	fmt.Fprintf(b, "تيم (%s)\n", line.Team.DisplayName())

	// Follow-up não tem gasto de anúncios
	if !line.Team.HasSpend() {
		fmt.Fprintf(b, "عدد الاوردرات:/ %s\n", utils.FormatCount(line.Orders))
		fmt.Fprintf(b, "المبيعات :/ %s ج\n", utils.FormatMoney(line.Sales))
		return
	}

	fmt.Fprintf(b, "الصرف :/ %s ج\n", utils.FormatMoney(line.Spend))
	fmt.Fprintf(b, "عدد الاوردرات / %s\n", utils.FormatCount(line.Orders))
	fmt.Fprintf(b, "التكلفة : / %s ج\n", utils.FormatRatio(line.CostPerOrder))
	fmt.Fprintf(b, "المبيعات :/ %s ج\n", utils.FormatMoney(line.Sales))
	fmt.Fprintf(b, "ROAS :/ %s\n", utils.FormatRatio(line.ROAS))
	b.WriteString(separator + "\n")
}

func writeGroup(b *strings.Builder, title string, group domain.GroupReportLine) {
	fmt.Fprintf(b, "اجماليات %s\n", title)
	fmt.Fprintf(b, "توتال الصرف الاوردرات ( إجمالي ) :/ %s ج\n", utils.FormatMoney(group.Spend))
	fmt.Fprintf(b, "إجمالي عام اوردات :/ %s\n", utils.FormatCount(group.Orders))
	fmt.Fprintf(b, "التكلفة / %s ج\n", utils.FormatRatio(group.CostPerOrder))
	fmt.Fprintf(b, "إجمالي المبيعات (%s) :/ %s ج\n", group.Label, utils.FormatMoney(group.Sales))
	fmt.Fprintf(b, "ROAS (%s) :/ %s\n\n", group.Label, utils.FormatRatio(group.ROAS))
}
