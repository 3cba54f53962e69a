package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrNoDocument is returned by JSONFileDoc.Load when nothing has been
// saved yet.
var ErrNoDocument = errors.New("no document")

// JSONFileDoc persists a single JSON document, the file-system analogue of
// one key in the mobile app's key-value storage. Unlike JSONFileStore, a
// missing file is reported, not created: absence is meaningful (for
// example, "no user is cached on this device").
type JSONFileDoc[T any] struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileDoc[T any](path string) *JSONFileDoc[T] {
	return &JSONFileDoc[T]{path: path}
}

func (d *JSONFileDoc[T]) Path() string {
	return d.path
}

func (d *JSONFileDoc[T]) Load(ctx context.Context) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrRead, d.path, err)
	}

	doc := new(T)
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRead, d.path, err)
	}
	return doc, nil
}

func (d *JSONFileDoc[T]) Save(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrWrite, d.path, err)
	}
	data = append(data, '\n')

	d.mu.Lock()
	defer d.mu.Unlock()
	return replaceFile(d.path, data)
}

// Clear removes the document; clearing an absent document is not an error.
func (d *JSONFileDoc[T]) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.Remove(d.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %v", ErrWrite, d.path, err)
	}
	return nil
}
