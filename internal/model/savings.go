package model

import (
	"fmt"

	"github.com/hance08/teller/internal/money"
	"github.com/shopspring/decimal"
)

// SavingsAccount keeps a minimum balance and earns interest.
type SavingsAccount struct {
	accountBase
	interestRate   decimal.Decimal
	minimumBalance money.Money
}

func NewSavingsAccount(id AccountID, holderName string, initial money.Money, interestRate decimal.Decimal, minimum money.Money) (*SavingsAccount, error) {
	if id.Type() != Savings {
		return nil, fmt.Errorf("%w: %s is not a savings id", ErrInvalidAccountID, id)
	}
	if err := validateSavingsPolicy(initial, interestRate, minimum); err != nil {
		return nil, err
	}

	b, err := newAccountBase(id, holderName, initial)
	if err != nil {
		return nil, err
	}

	acc := &SavingsAccount{accountBase: b, interestRate: interestRate, minimumBalance: minimum}
	acc.opened(Savings)
	return acc, nil
}

func validateSavingsPolicy(balance money.Money, rate decimal.Decimal, minimum money.Money) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: interest rate %s is negative", ErrInvalidPolicy, rate)
	}
	if minimum.Currency() != balance.Currency() {
		return fmt.Errorf("%w: minimum balance in %s, account in %s", money.ErrCurrencyMismatch, minimum.CurrencyCode(), balance.CurrencyCode())
	}
	return nil
}

func (s *SavingsAccount) Type() AccountType             { return Savings }
func (s *SavingsAccount) InterestRate() decimal.Decimal { return s.interestRate }
func (s *SavingsAccount) MinimumBalance() money.Money   { return s.minimumBalance }

// AvailableBalance is balance minus the minimum. It may be negative.
func (s *SavingsAccount) AvailableBalance() money.Money {
	return money.New(s.balance.Amount().Sub(s.minimumBalance.Amount()), s.balance.Currency())
}

// Withdraw refuses to go below the minimum balance, then applies the shared
// ceiling check against the full balance.
func (s *SavingsAccount) Withdraw(amount money.Money) (OperationResult, error) {
	if err := s.checkCurrency(amount); err != nil {
		return nil, err
	}

	potential, err := s.balance.Subtract(amount)
	if err != nil {
		return nil, err
	}
	below, err := potential.IsLessThan(s.minimumBalance)
	if err != nil {
		return nil, err
	}
	if below {
		return ViolatesMinimumBalance{Minimum: s.minimumBalance, ResultingBalance: potential}, nil
	}

	return s.withdraw(amount, s.balance)
}

// CalculateInterest returns balance times rate. It does not credit it.
func (s *SavingsAccount) CalculateInterest() money.Money {
	return s.balance.MulRate(s.interestRate)
}

func (s *SavingsAccount) Snapshot() Snapshot {
	return Snapshot{
		ID:             s.id,
		Type:           Savings,
		HolderName:     s.holderName,
		Balance:        s.balance,
		CreatedAt:      s.createdAt,
		InterestRate:   s.interestRate,
		MinimumBalance: s.minimumBalance,
	}
}

func (s *SavingsAccount) Clone() Account {
	return &SavingsAccount{
		accountBase:    s.accountBase.clone(),
		interestRate:   s.interestRate,
		minimumBalance: s.minimumBalance,
	}
}
