package store

import (
	"context"

	"github.com/hance08/teller/internal/model"
)

// Repository persists account snapshots keyed by AccountID. FindByID must
// reflect the most recent Save for that key.
type Repository interface {
	Save(ctx context.Context, account model.Account) error
	FindByID(ctx context.Context, id model.AccountID) (model.Account, error)
	FindAll(ctx context.Context) ([]model.Account, error)
	Delete(ctx context.Context, id model.AccountID) error
	Count(ctx context.Context) (int, error)
}

// SequenceGenerator hands out per-type sequence numbers starting at 1.
// Concurrent callers never receive the same number for the same type.
type SequenceGenerator interface {
	NextSequence(ctx context.Context, accType model.AccountType) (int, error)
}

// Transactor runs fn against a Repository whose writes are applied all
// together or not at all.
type Transactor interface {
	ExecTx(ctx context.Context, fn func(Repository) error) error
}

// EventJournal keeps published domain events for later display.
type EventJournal interface {
	AppendEvents(ctx context.Context, events []model.DomainEvent) error
	ListEvents(ctx context.Context, id model.AccountID) ([]EventRecord, error)
}

// Backend is everything the application needs from one storage engine.
type Backend interface {
	Repository
	SequenceGenerator
	Transactor
	EventJournal
	Close() error
}
