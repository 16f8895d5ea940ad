package parsing

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

// Tipos de regra de valor
type RuleKind string

const (
	RuleKindSum     RuleKind = "sum"
	RuleKindTwoPart RuleKind = "two_part"
	RuleKindSingle  RuleKind = "single"
)

const (
	amountField = `(?:ال)?مبلغ[ \t]*[:：]\s*`
	numberToken = `[0-9٠-٩۰-۹][0-9٠-٩۰-۹.,٫٬،]*`
	amountToken = numberToken + `(?:[ \t]*(?:جنيه|ج))?`
	plusSign    = `\s*[+＋]\s*`
)

var ErrMalformedToken = errors.New("malformed amount token")

// AmountRule associa um padrão à forma de extrair o valor do trecho casado
type AmountRule struct {
	Name    string
	Kind    RuleKind
	Pattern *regexp.Regexp
}

// AmountResult é o resultado da extração de valor de um bloco.
// Reason vazio indica valor válido.
type AmountResult struct {
	Rule   string
	Amount decimal.Decimal
	Reason domain.RejectReason
	Detail string
}

func (r AmountResult) OK() bool {
	return r.Reason == ""
}

var tokenPattern = regexp.MustCompile(numberToken)

func twoPartRule(name, marker string) AmountRule {
	return AmountRule{
		Name:    name,
		Kind:    RuleKindTwoPart,
		Pattern: regexp.MustCompile(amountField + `(` + amountToken + `)` + plusSign + `(` + amountToken + `)\s*` + marker),
	}
}

// A ordem é a precedência: a primeira regra que casar decide o valor
var amountRules = []AmountRule{
	{
		Name:    "multi_addend",
		Kind:    RuleKindSum,
		Pattern: regexp.MustCompile(amountField + `(` + amountToken + `(?:` + plusSign + amountToken + `){2,})`),
	},
	twoPartRule("shipping_expenses", `مصاريف\s*(?:ال)?شحن`),
	twoPartRule("shipping_m_alshahn", `م\s*الشحن`),
	twoPartRule("shipping_word", `شحن`),
	twoPartRule("shipping_abbrev", `م\s*\.?\s*ش`),
	twoPartRule("shipping_typo", `م\s*ض`),
	{
		Name:    "shipping_abbrev_optional_plus",
		Kind:    RuleKindTwoPart,
		Pattern: regexp.MustCompile(amountField + `(` + amountToken + `)\s*[+＋]?\s*(` + numberToken + `)?\s*م\s*\.?\s*ش`),
	},
	{
		Name:    "plus",
		Kind:    RuleKindTwoPart,
		Pattern: regexp.MustCompile(amountField + `(` + amountToken + `)` + plusSign + `(` + amountToken + `)?`),
	},
	{
		Name:    "single",
		Kind:    RuleKindSingle,
		Pattern: regexp.MustCompile(amountField + `(` + amountToken + `)`),
	},
}

// AmountRules devolve uma cópia das regras na ordem de avaliação
func AmountRules() []AmountRule {
	rules := make([]AmountRule, len(amountRules))
	copy(rules, amountRules)
	return rules
}

// ExtractAmount aplica as regras em ordem e devolve o valor da primeira que casar.
// Um token malformado encerra a avaliação e rejeita o bloco.
func ExtractAmount(block string) AmountResult {
	for _, rule := range amountRules {
		match := rule.Pattern.FindStringSubmatch(block)
		if match == nil {
			continue
		}

		amount, err := rule.extract(match)
		if err != nil {
			return AmountResult{
				Rule:   rule.Name,
				Amount: decimal.Zero,
				Reason: domain.RejectMalformedAmount,
				Detail: err.Error(),
			}
		}

		if !amount.IsPositive() {
			return AmountResult{
				Rule:   rule.Name,
				Amount: amount,
				Reason: domain.RejectNonPositiveAmount,
				Detail: "amount must be greater than zero",
			}
		}

		return AmountResult{Rule: rule.Name, Amount: amount}
	}

	return AmountResult{
		Amount: decimal.Zero,
		Reason: domain.RejectNoAmount,
		Detail: "no amount pattern matched",
	}
}

func (r AmountRule) extract(match []string) (decimal.Decimal, error) {
	switch r.Kind {
	case RuleKindSum:
		total := decimal.Zero
		for _, token := range tokenPattern.FindAllString(match[1], -1) {
			value, err := ParseAmountToken(token)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(value)
		}
		return total, nil

	case RuleKindTwoPart:
		base, err := ParseAmountToken(match[1])
		if err != nil {
			return decimal.Zero, err
		}
		if len(match) < 3 || strings.TrimSpace(match[2]) == "" {
			return base, nil
		}
		fee, err := ParseAmountToken(match[2])
		if err != nil {
			return decimal.Zero, err
		}
		return base.Add(fee), nil

	default:
		return ParseAmountToken(match[1])
	}
}

var digitFolder = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٫", ".", "٬", "", "،", "",
)

var currencySuffixes = []string{"م.ش", "جنيه", "ج"}

// ParseAmountToken converte um token numérico em decimal, aceitando dígitos
// arábicos, separador de milhar e o sufixo de moeda.
func ParseAmountToken(token string) (decimal.Decimal, error) {
	cleaned := digitFolder.Replace(token)
	cleaned = strings.Join(strings.Fields(cleaned), "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	for _, suffix := range currencySuffixes {
		cleaned = strings.TrimSuffix(cleaned, suffix)
	}

	if cleaned == "" {
		return decimal.Zero, errors.Wrapf(ErrMalformedToken, "token %q", token)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrMalformedToken, "token %q", token)
	}

	return value, nil
}
