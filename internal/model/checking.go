package model

import (
	"fmt"

	"github.com/hance08/teller/internal/money"
)

// CheckingAccount may go negative down to its overdraft limit.
type CheckingAccount struct {
	accountBase
	overdraftLimit money.Money
}

func NewCheckingAccount(id AccountID, holderName string, initial money.Money, overdraftLimit money.Money) (*CheckingAccount, error) {
	if id.Type() != Checking {
		return nil, fmt.Errorf("%w: %s is not a checking id", ErrInvalidAccountID, id)
	}
	if err := validateCheckingPolicy(initial, overdraftLimit); err != nil {
		return nil, err
	}

	b, err := newAccountBase(id, holderName, initial)
	if err != nil {
		return nil, err
	}

	acc := &CheckingAccount{accountBase: b, overdraftLimit: overdraftLimit}
	acc.opened(Checking)
	return acc, nil
}

func validateCheckingPolicy(balance, overdraftLimit money.Money) error {
	if overdraftLimit.Currency() != balance.Currency() {
		return fmt.Errorf("%w: overdraft limit in %s, account in %s", money.ErrCurrencyMismatch, overdraftLimit.CurrencyCode(), balance.CurrencyCode())
	}
	if overdraftLimit.IsNegative() {
		return fmt.Errorf("%w: overdraft limit %s is negative", ErrInvalidPolicy, overdraftLimit)
	}
	return nil
}

func (c *CheckingAccount) Type() AccountType           { return Checking }
func (c *CheckingAccount) OverdraftLimit() money.Money { return c.overdraftLimit }

func (c *CheckingAccount) AvailableBalance() money.Money {
	return money.New(c.balance.Amount().Add(c.overdraftLimit.Amount()), c.balance.Currency())
}

func (c *CheckingAccount) Withdraw(amount money.Money) (OperationResult, error) {
	if err := c.checkCurrency(amount); err != nil {
		return nil, err
	}
	return c.withdraw(amount, c.AvailableBalance())
}

func (c *CheckingAccount) Snapshot() Snapshot {
	return Snapshot{
		ID:             c.id,
		Type:           Checking,
		HolderName:     c.holderName,
		Balance:        c.balance,
		CreatedAt:      c.createdAt,
		OverdraftLimit: c.overdraftLimit,
	}
}

func (c *CheckingAccount) Clone() Account {
	return &CheckingAccount{
		accountBase:    c.accountBase.clone(),
		overdraftLimit: c.overdraftLimit,
	}
}
