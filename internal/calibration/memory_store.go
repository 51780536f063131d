package calibration

import (
	"context"
	"slices"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps calibrations in process memory. A mutex per key
// serializes updates of the same key while different keys proceed in parallel.
// Key mutexes live only while some update holds or waits for them.
type MemoryStore struct {
	mutex    sync.Mutex
	keyLocks map[Key]*keyLock
	states   map[Key]State
	history  map[Key][]HistoryEntry
}

type keyLock struct {
	sync.Mutex
	// refs counts the updates holding or waiting for the lock, guarded by MemoryStore.mutex.
	refs int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keyLocks: map[Key]*keyLock{},
		states:   map[Key]State{},
		history:  map[Key][]HistoryEntry{},
	}
}

func (s *MemoryStore) acquireKeyLock(key Key) *keyLock {
	s.mutex.Lock()
	l, ok := s.keyLocks[key]
	if !ok {
		l = &keyLock{}
		s.keyLocks[key] = l
	}
	l.refs++
	s.mutex.Unlock()

	l.Lock()
	return l
}

func (s *MemoryStore) releaseKeyLock(key Key, l *keyLock) {
	l.Unlock()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.keyLocks, key)
	}
}

func (s *MemoryStore) Update(ctx context.Context, key Key, fn func(tx Tx) error) error {
	l := s.acquireKeyLock(key)
	defer s.releaseKeyLock(key, l)

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{store: s, key: key}
	if err := fn(tx); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if tx.pendingState != nil {
		s.states[key] = *tx.pendingState
	}
	s.history[key] = append(s.history[key], tx.pendingHistory...)

	return nil
}

func (s *MemoryStore) History(_ context.Context, key Key) ([]HistoryEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return slices.Clone(s.history[key]), nil
}

// memoryTx buffers writes until Update commits them.
type memoryTx struct {
	store          *MemoryStore
	key            Key
	pendingState   *State
	pendingHistory []HistoryEntry
}

func (tx *memoryTx) entries() []HistoryEntry {
	tx.store.mutex.Lock()
	committed := slices.Clone(tx.store.history[tx.key])
	tx.store.mutex.Unlock()
	return append(committed, tx.pendingHistory...)
}

func (tx *memoryTx) State(_ context.Context) (*State, error) {
	if tx.pendingState != nil {
		st := *tx.pendingState
		return &st, nil
	}

	tx.store.mutex.Lock()
	defer tx.store.mutex.Unlock()
	st, ok := tx.store.states[tx.key]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (tx *memoryTx) LatestFactorForWeight(_ context.Context, weight float64) (float64, bool, error) {
	entries := tx.entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight == weight {
			return entries[i].Factor, true, nil
		}
	}
	return 0, false, nil
}

func (tx *memoryTx) LowestWeightEntry(_ context.Context) (*HistoryEntry, error) {
	var lowest *HistoryEntry
	entries := tx.entries()
	for i := range entries {
		if lowest == nil || entries[i].Weight <= lowest.Weight {
			lowest = &entries[i]
		}
	}
	return lowest, nil
}

func (tx *memoryTx) SaveState(_ context.Context, state State) error {
	tx.pendingState = &state
	return nil
}

func (tx *memoryTx) AppendHistory(_ context.Context, entry HistoryEntry) (bool, error) {
	for _, e := range tx.entries() {
		if e.sameTriple(entry) {
			return false, nil
		}
	}
	tx.pendingHistory = append(tx.pendingHistory, entry)
	return true, nil
}
