package cmd

import (
	"strings"

	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/utils"
)

type amountFlags struct {
	Currency string
}

// parseAmount reads raw in the flag currency, or the configured default
// when the flag is empty.
func parseAmount(raw string, flags *amountFlags, defaultCurrency string) (money.Money, error) {
	code := strings.TrimSpace(flags.Currency)
	if code == "" {
		code = defaultCurrency
	}
	return utils.ParseAmount(raw, code)
}
