package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/teller/internal/money"
	"github.com/shopspring/decimal"
)

// Account is the aggregate root for one bank account. Only *SavingsAccount
// and *CheckingAccount implement it.
//
// Accounts hold no lock; callers serialize access per AccountID.
type Account interface {
	ID() AccountID
	Type() AccountType
	HolderName() string
	Balance() money.Money
	CreatedAt() time.Time
	AvailableBalance() money.Money

	Deposit(amount money.Money) (OperationResult, error)
	Withdraw(amount money.Money) (OperationResult, error)
	RecordTransfer(destination AccountID, amount money.Money, reference string)

	Events() []DomainEvent
	PullEvents() []DomainEvent
	ClearEvents()

	Snapshot() Snapshot
	Clone() Account

	base() *accountBase
}

type accountBase struct {
	id         AccountID
	holderName string
	balance    money.Money
	createdAt  time.Time
	events     []DomainEvent
}

func newAccountBase(id AccountID, holderName string, initial money.Money) (accountBase, error) {
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return accountBase{}, ErrBlankHolderName
	}
	if !initial.IsPositive() {
		return accountBase{}, fmt.Errorf("initial balance %s: %w", initial, ErrNonPositiveAmount)
	}

	return accountBase{
		id:         id,
		holderName: holderName,
		balance:    initial,
		createdAt:  time.Now().UTC(),
	}, nil
}

func (a *accountBase) ID() AccountID            { return a.id }
func (a *accountBase) HolderName() string       { return a.holderName }
func (a *accountBase) Balance() money.Money     { return a.balance }
func (a *accountBase) CreatedAt() time.Time     { return a.createdAt }
func (a *accountBase) base() *accountBase       { return a }
func (a *accountBase) record(event DomainEvent) { a.events = append(a.events, event) }

// Deposit adds a strictly positive amount to the balance.
func (a *accountBase) Deposit(amount money.Money) (OperationResult, error) {
	if err := a.checkCurrency(amount); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return DepositFailed{Reason: "deposit amount must be positive"}, nil
	}

	oldBalance := a.balance
	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return nil, err
	}
	a.balance = newBalance

	a.record(FundsDeposited{
		BaseEvent:  newBaseEvent(a.id),
		Amount:     amount,
		OldBalance: oldBalance,
		NewBalance: newBalance,
	})
	return DepositSuccess{NewBalance: newBalance}, nil
}

// withdraw is shared by both account types. ceiling is the most the
// variant allows to leave the account in this call.
func (a *accountBase) withdraw(amount, ceiling money.Money) (OperationResult, error) {
	if !amount.IsPositive() {
		return WithdrawalFailed{Reason: "withdrawal amount must be positive"}, nil
	}

	over, err := amount.IsGreaterThan(ceiling)
	if err != nil {
		return nil, err
	}
	if over {
		return InsufficientFunds{Available: ceiling, Requested: amount}, nil
	}

	oldBalance := a.balance
	newBalance, err := a.balance.Subtract(amount)
	if err != nil {
		return nil, err
	}
	a.balance = newBalance

	a.record(FundsWithdrawn{
		BaseEvent:  newBaseEvent(a.id),
		Amount:     amount,
		OldBalance: oldBalance,
		NewBalance: newBalance,
	})
	return WithdrawalSuccess{NewBalance: newBalance}, nil
}

// RecordTransfer notes a completed outgoing transfer. It does not move money.
func (a *accountBase) RecordTransfer(destination AccountID, amount money.Money, reference string) {
	a.record(FundsTransferred{
		BaseEvent:   newBaseEvent(a.id),
		Destination: destination,
		Amount:      amount,
		Reference:   reference,
	})
}

func (a *accountBase) Events() []DomainEvent {
	out := make([]DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// PullEvents returns the pending events and clears them.
func (a *accountBase) PullEvents() []DomainEvent {
	out := a.events
	a.events = nil
	return out
}

func (a *accountBase) ClearEvents() {
	a.events = nil
}

func (a *accountBase) checkCurrency(amount money.Money) error {
	if amount.Currency() != a.balance.Currency() {
		return fmt.Errorf("account %s holds %s, got %s: %w",
			a.id, a.balance.CurrencyCode(), amount.CurrencyCode(), money.ErrCurrencyMismatch)
	}
	return nil
}

func (a *accountBase) clone() accountBase {
	cp := *a
	cp.events = a.Events()
	return cp
}

func (a *accountBase) opened(accType AccountType) {
	a.record(AccountOpened{
		BaseEvent:      newBaseEvent(a.id),
		AccountType:    accType,
		HolderName:     a.holderName,
		InitialBalance: a.balance,
	})
}

// Snapshot is the flat, event-free form of an account used by stores.
// Fields that do not apply to the account type are left zero.
type Snapshot struct {
	ID             AccountID
	Type           AccountType
	HolderName     string
	Balance        money.Money
	CreatedAt      time.Time
	InterestRate   decimal.Decimal
	MinimumBalance money.Money
	OverdraftLimit money.Money
}

// FromSnapshot rebuilds an account without recording an opened event.
func FromSnapshot(s Snapshot) (Account, error) {
	if _, err := ParseAccountID(string(s.ID)); err != nil {
		return nil, err
	}
	if s.ID.Type() != s.Type {
		return nil, fmt.Errorf("%w: id %s does not match type %s", ErrInvalidAccountID, s.ID, s.Type)
	}

	b := accountBase{
		id:         s.ID,
		holderName: s.HolderName,
		balance:    s.Balance,
		createdAt:  s.CreatedAt,
	}

	switch s.Type {
	case Savings:
		if err := validateSavingsPolicy(s.Balance, s.InterestRate, s.MinimumBalance); err != nil {
			return nil, err
		}
		return &SavingsAccount{accountBase: b, interestRate: s.InterestRate, minimumBalance: s.MinimumBalance}, nil
	case Checking:
		if err := validateCheckingPolicy(s.Balance, s.OverdraftLimit); err != nil {
			return nil, err
		}
		return &CheckingAccount{accountBase: b, overdraftLimit: s.OverdraftLimit}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, string(s.Type))
	}
}
