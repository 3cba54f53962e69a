// Package groups manages travel groups kept on the local machine: named
// circles of people with tags, used to organize who a trip was shared with.
package groups

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/storage"
)

type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Tags    []string `json:"tags"`
	Members []string `json:"members"`
}

// Service keeps all groups in a single whole-file JSON store. The mutex is
// held for the full load-modify-save cycle so concurrent commands cannot
// race past the lookup.
type Service struct {
	store storage.Store[Group]
	mu    sync.Mutex
}

func NewService(store storage.Store[Group]) *Service {
	return &Service{store: store}
}

func NewFileService(path string) *Service {
	return NewService(storage.NewJSONFileStore[Group](path))
}

func (s *Service) List(ctx context.Context) ([]Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []Group{}
	}
	return groups, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			g := groups[i]
			return &g, nil
		}
	}
	return nil, common.ErrNotFound
}

// Create adds a new group with a generated id. Tags and members may be empty.
func (s *Service) Create(ctx context.Context, name string, tags []string, members []string) (*Group, error) {
	if name == "" {
		return nil, common.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	g := Group{
		ID:      uuid.New().String(),
		Name:    name,
		Tags:    tags,
		Members: members,
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	if g.Members == nil {
		g.Members = []string{}
	}

	groups = append(groups, g)
	if err := s.store.Save(ctx, groups); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) Rename(ctx context.Context, id string, name string) (*Group, error) {
	if name == "" {
		return nil, common.ErrValidation
	}
	return s.update(ctx, id, func(g *Group) { g.Name = name })
}

func (s *Service) SetTags(ctx context.Context, id string, tags []string) (*Group, error) {
	return s.update(ctx, id, func(g *Group) {
		if tags == nil {
			tags = []string{}
		}
		g.Tags = tags
	})
}

// AddMember appends a member to the group; adding someone already present
// is a no-op.
func (s *Service) AddMember(ctx context.Context, id string, member string) (*Group, error) {
	if member == "" {
		return nil, common.ErrValidation
	}
	return s.update(ctx, id, func(g *Group) {
		if !slices.Contains(g.Members, member) {
			g.Members = append(g.Members, member)
		}
	})
}

func (s *Service) RemoveMember(ctx context.Context, id string, member string) (*Group, error) {
	return s.update(ctx, id, func(g *Group) {
		g.Members = slices.DeleteFunc(g.Members, func(m string) bool { return m == member })
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID == id {
			groups = append(groups[:i], groups[i+1:]...)
			return s.store.Save(ctx, groups)
		}
	}
	return common.ErrNotFound
}

func (s *Service) update(ctx context.Context, id string, apply func(*Group)) (*Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			apply(&groups[i])
			if err := s.store.Save(ctx, groups); err != nil {
				return nil, err
			}
			g := groups[i]
			return &g, nil
		}
	}
	return nil, common.ErrNotFound
}
