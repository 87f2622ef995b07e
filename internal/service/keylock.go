package service

import (
	"slices"
	"sync"

	"github.com/hance08/teller/internal/model"
)

// keyLock serializes work per AccountID. Entries are reference counted and
// dropped once nobody holds or waits on them.
type keyLock struct {
	mu      sync.Mutex
	entries map[model.AccountID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{entries: make(map[model.AccountID]*lockEntry)}
}

// Lock acquires every id in ascending order and returns the matching unlock.
// Duplicate ids are locked once.
func (k *keyLock) Lock(ids ...model.AccountID) (unlock func()) {
	ids = slices.Clone(ids)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	held := make([]*lockEntry, 0, len(ids))
	for _, id := range ids {
		e := k.acquire(id)
		e.mu.Lock()
		held = append(held, e)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
			k.release(ids[i])
		}
	}
}

func (k *keyLock) acquire(id model.AccountID) *lockEntry {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[id]
	if !ok {
		e = &lockEntry{}
		k.entries[id] = e
	}
	e.refs++
	return e
}

func (k *keyLock) release(id model.AccountID) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e := k.entries[id]
	e.refs--
	if e.refs == 0 {
		delete(k.entries, id)
	}
}

func (k *keyLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
