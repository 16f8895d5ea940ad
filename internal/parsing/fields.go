package parsing

import (
	"regexp"
	"strings"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

var (
	// marcador do campo de nome: "الاسم :", "الأسم:", "اسم :" no início da linha
	nameMarker = regexp.MustCompile(`(?m)(?:ال[اأإ]سم|^[ \t]*اسم)[ \t]*[:：]`)

	nameField  = regexp.MustCompile(`(?m)(?:ال[اأإ]سم|^[ \t]*اسم)[ \t]*[:：][ \t]*([^\n]*)`)
	agentField = regexp.MustCompile(`(?:ال)?[اإ]ي[چجغ]ي?نت[ \t]*[:：][ \t]*([^\n]*)`)
)

// ExtractCustomerName devolve o nome do cliente ou domain.UnknownCustomer
func ExtractCustomerName(block string) string {
	if name := fieldValue(nameField, block); name != "" {
		return name
	}
	return domain.UnknownCustomer
}

// ExtractAgent devolve o atendente informado no bloco, se houver
func ExtractAgent(block string) string {
	return fieldValue(agentField, block)
}

func fieldValue(re *regexp.Regexp, block string) string {
	match := re.FindStringSubmatch(block)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(bidiMarks.ReplaceAllString(match[1], ""))
}
