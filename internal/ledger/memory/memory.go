package memory

import (
	"context"
	"sync"

	"fishledger/internal/core"
)

// Store keeps the ledger in process memory. It hands out copies so callers
// see the same load-mutate-save cycle as with a file.
type Store struct {
	mu     sync.Mutex
	ledger core.Ledger
	saves  int
}

func New() *Store {
	return &Store{ledger: core.Ledger{}}
}

// NewWith seeds the store with an existing ledger.
func NewWith(l core.Ledger) *Store {
	if l == nil {
		l = core.Ledger{}
	}
	return &Store{ledger: l.Clone()}
}

// Load implements ledger.Loader.
func (s *Store) Load(_ context.Context) (core.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clone(), nil
}

// Save implements ledger.Saver.
func (s *Store) Save(_ context.Context, l core.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l == nil {
		l = core.Ledger{}
	}
	s.ledger = l.Clone()
	s.saves++
	return nil
}

// Saves reports how many times Save was called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
