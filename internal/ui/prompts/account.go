package prompts

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/model"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (model.AccountType, error) {
	var options []string
	for _, t := range model.AccountTypes {
		options = append(options, fmt.Sprintf("%s - %s", t.Prefix(), t.Description()))
	}

	selected, err := PromptSelect("Account Type:", options, model.Savings.Prefix())
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return model.ParseAccountType(strings.Split(selected, " ")[0])
}

// PromptHolderName prompts for the account holder with validation
func PromptHolderName(validator func(string) error) (string, error) {
	return PromptInput("Account Holder Name:", "", validator)
}

// PromptAccountID prompts for an existing account number
func PromptAccountID(message string, validator func(string) error) (string, error) {
	return PromptInput(message, "", validator)
}

// PromptCurrency prompts for currency selection with common options
func PromptCurrency(defaultCurrency string, customValidator func(string) error) (string, error) {
	commonCurrencies := []string{
		"USD - US Dollar",
		"EUR - Euro",
		"GBP - British Pound",
		"JPY - Japanese Yen",
		"CNY - Chinese Yuan",
		"TWD - Taiwan Dollar",
		"HKD - Hong Kong Dollar",
		"SGD - Singapore Dollar",
		"Other (Custom)",
	}

	message := fmt.Sprintf("Currency (default: %s):", defaultCurrency)

	selected, err := PromptSelect(message, commonCurrencies, defaultCurrency)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if selected == "Other (Custom)" {
		customCurrency, err := PromptInput("Enter currency code:", "", customValidator)
		if err != nil {
			return "", fmt.Errorf("input cancelled: %w", err)
		}
		return strings.ToUpper(strings.TrimSpace(customCurrency)), nil
	}

	currencyCode := strings.Split(selected, " ")[0]
	return currencyCode, nil
}

// PromptInitialDeposit prompts for the opening deposit with validation
func PromptInitialDeposit(currency string, validator func(string) error) (string, error) {
	return PromptAmount(
		fmt.Sprintf("Initial Deposit (%s):", currency),
		"Must be greater than zero",
		validator,
	)
}
