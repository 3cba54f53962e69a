// Package storage provides the flat-file persistence primitives used on
// both sides of tripdiary: a whole-file JSON array store for record
// sequences and a single-document JSON store. Every mutation is a full
// load, in-memory transform and full save. Acceptable for the data sizes
// this application handles; a known scalability ceiling.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrRead marks a store that exists but cannot be read or parsed.
	ErrRead = errors.New("storage read error")
	// ErrWrite marks an I/O failure while replacing the store content.
	ErrWrite = errors.New("storage write error")
)

// Store is the port for durable storage of an ordered record sequence.
//
// Contract:
//   - Load returns the full sequence; a missing backing store is not an
//     error and yields an empty sequence.
//   - Save replaces the full sequence.
//
// Implementations are safe for concurrent use; callers that do
// load-modify-save cycles still need their own mutual exclusion around
// the whole cycle.
type Store[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}
