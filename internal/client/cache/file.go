package cache

import (
	"context"
	"errors"

	"github.com/mvberkel/tripdiary/internal/storage"
)

// FileCache persists the shadow as a single JSON document on disk.
type FileCache struct {
	doc *storage.JSONFileDoc[Shadow]
}

func NewFileCache(path string) *FileCache {
	return &FileCache{doc: storage.NewJSONFileDoc[Shadow](path)}
}

func (c *FileCache) Read(ctx context.Context) (*Shadow, error) {
	s, err := c.doc.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoDocument) {
			return nil, ErrNoCachedUser
		}
		return nil, err
	}
	return s, nil
}

func (c *FileCache) Write(ctx context.Context, s *Shadow) error {
	return c.doc.Save(ctx, s)
}

func (c *FileCache) Clear(ctx context.Context) error {
	return c.doc.Clear(ctx)
}
