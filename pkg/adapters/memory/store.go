package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/tmsim/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Record
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Record),
	}
}

func clone(rec *domain.Record) *domain.Record {
	cp := *rec
	if rec.Result.Steps != nil {
		cp.Result.Steps = make([]domain.Step, len(rec.Result.Steps))
		copy(cp.Result.Steps, rec.Result.Steps)
	}
	return &cp
}

// Save stores a copy of the record.
func (s *Store) Save(ctx context.Context, rec *domain.Record) error {
	cp := clone(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rec.ID] = cp
	return nil
}

// Load returns a copy of the stored record.
func (s *Store) Load(ctx context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return clone(rec), nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
