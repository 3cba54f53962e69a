// Package notifications keeps a small local feed of in-app notices: an
// active list shown to the user and a history of dismissed ones.
package notifications

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/storage"
)

type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Image   string    `json:"image"`
	Time    time.Time `json:"time"`
}

// Feed is the persisted notification state.
type Feed struct {
	Active  []Notification `json:"active"`
	History []Notification `json:"history"`
}

// Service persists the feed as a single JSON document. now is a seam for
// tests; it defaults to time.Now.
type Service struct {
	doc *storage.JSONFileDoc[Feed]
	mu  sync.Mutex
	now func() time.Time
}

func NewService(path string) *Service {
	return &Service{
		doc: storage.NewJSONFileDoc[Feed](path),
		now: time.Now,
	}
}

func (s *Service) load(ctx context.Context) (*Feed, error) {
	feed, err := s.doc.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoDocument) {
			return &Feed{Active: []Notification{}, History: []Notification{}}, nil
		}
		return nil, err
	}
	if feed.Active == nil {
		feed.Active = []Notification{}
	}
	if feed.History == nil {
		feed.History = []Notification{}
	}
	return feed, nil
}

// Add appends a notice to the active list and returns it.
func (s *Service) Add(ctx context.Context, message string, image string) (*Notification, error) {
	if message == "" {
		return nil, common.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	n := Notification{
		ID:      uuid.New().String(),
		Message: message,
		Image:   image,
		Time:    s.now(),
	}
	feed.Active = append(feed.Active, n)

	if err := s.doc.Save(ctx, feed); err != nil {
		return nil, err
	}
	return &n, nil
}

// Dismiss moves a notice from the active list to the history.
func (s *Service) Dismiss(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range feed.Active {
		if feed.Active[i].ID == id {
			n := feed.Active[i]
			feed.Active = append(feed.Active[:i], feed.Active[i+1:]...)
			feed.History = append(feed.History, n)
			return s.doc.Save(ctx, feed)
		}
	}
	return common.ErrNotFound
}

// DismissAll moves every active notice to the history.
func (s *Service) DismissAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.load(ctx)
	if err != nil {
		return err
	}

	feed.History = append(feed.History, feed.Active...)
	feed.Active = []Notification{}
	return s.doc.Save(ctx, feed)
}

func (s *Service) Active(ctx context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Active, nil
}

func (s *Service) History(ctx context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return feed.History, nil
}
