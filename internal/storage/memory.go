package storage

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by unit tests instead of a real file.
// Optional error injection makes storage failures testable.
type MemStore[T any] struct {
	mu      sync.Mutex
	records []T

	LoadErr error
	SaveErr error
}

func NewMemStore[T any]() *MemStore[T] {
	return &MemStore[T]{}
}

func (s *MemStore[T]) Load(ctx context.Context) ([]T, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemStore[T]) Save(ctx context.Context, records []T) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]T, len(records))
	copy(s.records, records)
	return nil
}
