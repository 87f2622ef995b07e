package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/money"
)

// ParseAmount reads a user typed amount such as "1,250.5" or "$20" in the
// given currency. Grouping commas and a leading '$' are ignored.
func ParseAmount(raw, code string) (money.Money, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return money.Money{}, fmt.Errorf("%w: amount is empty", money.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return money.Money{}, fmt.Errorf("%w: %q", money.ErrInvalidAmount, raw)
	}
	return money.Of(amount, code)
}

// FormatMoney renders m with thousands separators, e.g. "USD -1,234.50".
func FormatMoney(m money.Money) string {
	return fmt.Sprintf("%s %s", m.CurrencyCode(), groupThousands(m.StringFixed()))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}
