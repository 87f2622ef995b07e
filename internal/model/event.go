package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/hance08/teller/internal/money"
)

type EventType string

const (
	EventAccountOpened    EventType = "ACCOUNT_OPENED"
	EventFundsDeposited   EventType = "FUNDS_DEPOSITED"
	EventFundsWithdrawn   EventType = "FUNDS_WITHDRAWN"
	EventFundsTransferred EventType = "FUNDS_TRANSFERRED"
)

// DomainEvent is an immutable fact about one account. The set of
// implementations is closed to this package.
type DomainEvent interface {
	EventID() uuid.UUID
	OccurredAt() time.Time
	EventType() EventType
	AccountID() AccountID
	isDomainEvent()
}

type BaseEvent struct {
	ID        uuid.UUID `json:"event_id"`
	Timestamp time.Time `json:"occurred_at"`
	Account   AccountID `json:"account_id"`
}

func newBaseEvent(id AccountID) BaseEvent {
	return BaseEvent{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Account:   id,
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }
func (e BaseEvent) AccountID() AccountID  { return e.Account }
func (BaseEvent) isDomainEvent()          {}

type AccountOpened struct {
	BaseEvent
	AccountType    AccountType `json:"account_type"`
	HolderName     string      `json:"holder_name"`
	InitialBalance money.Money `json:"initial_balance"`
}

func (AccountOpened) EventType() EventType { return EventAccountOpened }

type FundsDeposited struct {
	BaseEvent
	Amount     money.Money `json:"amount"`
	OldBalance money.Money `json:"old_balance"`
	NewBalance money.Money `json:"new_balance"`
}

func (FundsDeposited) EventType() EventType { return EventFundsDeposited }

type FundsWithdrawn struct {
	BaseEvent
	Amount     money.Money `json:"amount"`
	OldBalance money.Money `json:"old_balance"`
	NewBalance money.Money `json:"new_balance"`
}

func (FundsWithdrawn) EventType() EventType { return EventFundsWithdrawn }

// FundsTransferred is recorded against the source account only.
type FundsTransferred struct {
	BaseEvent
	Destination AccountID   `json:"destination_account_id"`
	Amount      money.Money `json:"amount"`
	Reference   string      `json:"reference,omitempty"`
}

func (FundsTransferred) EventType() EventType { return EventFundsTransferred }
