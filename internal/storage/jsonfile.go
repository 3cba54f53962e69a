package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONFileStore persists records as a single pretty-printed JSON array.
// The file is created with an empty array on first Load. Save replaces the
// whole file via a temp file and rename, so readers never observe a
// partially written array.
type JSONFileStore[T any] struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileStore[T any](path string) *JSONFileStore[T] {
	return &JSONFileStore[T]{path: path}
}

// Path returns the backing file path.
func (s *JSONFileStore[T]) Path() string {
	return s.path
}

func (s *JSONFileStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := replaceFile(s.path, []byte("[]\n")); err != nil {
				return nil, err
			}
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrRead, s.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRead, s.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *JSONFileStore[T]) Save(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrWrite, s.path, err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceFile(s.path, data)
}

// replaceFile swaps in the new content via a temp file and rename, so
// readers never observe a partially written file.
func replaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: tmp %s: %v", ErrWrite, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrWrite, path, err)
	}
	return nil
}
