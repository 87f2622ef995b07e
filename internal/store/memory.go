package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hance08/teller/internal/model"
)

// MemoryStore keeps snapshots in a map. Accounts are copied on the way in
// and out, so callers never share state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[model.AccountID]model.Snapshot
	events   []EventRecord

	sequences map[model.AccountType]*atomic.Int64
}

func NewMemoryStore() *MemoryStore {
	seqs := make(map[model.AccountType]*atomic.Int64, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		seqs[t] = new(atomic.Int64)
	}
	return &MemoryStore{
		accounts:  make(map[model.AccountID]model.Snapshot),
		sequences: seqs,
	}
}

func (m *MemoryStore) Save(ctx context.Context, account model.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID()] = account.Snapshot()
	return nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id model.AccountID) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	snap, ok := m.accounts[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, ErrRecordNotFound)
	}
	return model.FromSnapshot(snap)
}

func (m *MemoryStore) FindAll(ctx context.Context) ([]model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	ids := slices.Sorted(maps.Keys(m.accounts))
	snaps := make([]model.Snapshot, 0, len(ids))
	for _, id := range ids {
		snaps = append(snaps, m.accounts[id])
	}
	m.mu.RUnlock()

	accounts := make([]model.Account, 0, len(snaps))
	for _, snap := range snaps {
		acc, err := model.FromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id model.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return fmt.Errorf("account %s: %w", id, ErrRecordNotFound)
	}
	delete(m.accounts, id)
	return nil
}

func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts), nil
}

func (m *MemoryStore) NextSequence(ctx context.Context, accType model.AccountType) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	counter, ok := m.sequences[accType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownAccountType, string(accType))
	}
	return int(counter.Add(1)), nil
}

// ExecTx stages writes in a private copy of the account map and swaps it
// in only when fn succeeds. The write lock is held for the whole call.
func (m *MemoryStore) ExecTx(ctx context.Context, fn func(Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{accounts: maps.Clone(m.accounts)}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.accounts = tx.accounts
	return nil
}

func (m *MemoryStore) AppendEvents(ctx context.Context, events []model.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	records := make([]EventRecord, 0, len(events))
	for _, event := range events {
		rec, err := newEventRecord(event)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		if slices.ContainsFunc(m.events, func(r EventRecord) bool { return r.EventID == rec.EventID }) {
			continue
		}
		m.events = append(m.events, rec)
	}
	return nil
}

func (m *MemoryStore) ListEvents(ctx context.Context, id model.AccountID) ([]EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var records []EventRecord
	for _, rec := range m.events {
		if rec.AccountID == id {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (m *MemoryStore) Close() error { return nil }

// memoryTx is the Repository handed to ExecTx callbacks. The parent's lock
// is already held, so it touches its own map without locking.
type memoryTx struct {
	accounts map[model.AccountID]model.Snapshot
}

func (t *memoryTx) Save(ctx context.Context, account model.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.accounts[account.ID()] = account.Snapshot()
	return nil
}

func (t *memoryTx) FindByID(ctx context.Context, id model.AccountID) (model.Account, error) {
	snap, ok := t.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, ErrRecordNotFound)
	}
	return model.FromSnapshot(snap)
}

func (t *memoryTx) FindAll(ctx context.Context) ([]model.Account, error) {
	accounts := make([]model.Account, 0, len(t.accounts))
	for _, id := range slices.Sorted(maps.Keys(t.accounts)) {
		acc, err := model.FromSnapshot(t.accounts[id])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (t *memoryTx) Delete(ctx context.Context, id model.AccountID) error {
	if _, ok := t.accounts[id]; !ok {
		return fmt.Errorf("account %s: %w", id, ErrRecordNotFound)
	}
	delete(t.accounts, id)
	return nil
}

func (t *memoryTx) Count(ctx context.Context) (int, error) {
	return len(t.accounts), nil
}
