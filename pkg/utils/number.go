package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney arredonda para inteiro (meio para cima) e agrupa os milhares: 12,346
func FormatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// FormatRatio formata com duas casas decimais fixas: 50.00
func FormatRatio(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatCount agrupa os milhares de uma contagem
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}
