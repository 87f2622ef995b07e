package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/utils"
)

// ValidateHolderName validates the account holder name typed by the user.
func ValidateHolderName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return model.ErrBlankHolderName
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("holder name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// PositiveAmount returns a validator for amounts in the given currency.
func PositiveAmount(code string) func(string) error {
	return func(raw string) error {
		amount, err := utils.ParseAmount(raw, code)
		if err != nil {
			return err
		}
		if !amount.IsPositive() {
			return fmt.Errorf("amount must be greater than zero")
		}
		return nil
	}
}

// ValidateCurrency validates a currency code format.
// Empty is allowed and means the configured default.
func ValidateCurrency(code string) error {
	if strings.TrimSpace(code) == "" {
		return nil
	}

	if _, err := money.ParseCurrency(code); err != nil {
		return fmt.Errorf("currency code must be an ISO 4217 code (e.g. USD)")
	}
	return nil
}

// ParseAccountID accepts ids in any letter case, e.g. "chk000001".
func ParseAccountID(raw string) (model.AccountID, error) {
	return model.ParseAccountID(strings.ToUpper(strings.TrimSpace(raw)))
}

func ValidateAccountID(raw string) error {
	_, err := ParseAccountID(raw)
	return err
}
