package trips

import (
	"context"
	"fmt"

	"github.com/mvberkel/tripdiary/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []Trip{}
	}
	return trips, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Trip, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing trip id", common.ErrValidation)
	}
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Entries == nil {
		trip.Entries = []DiaryEntry{}
	}
	return trip, nil
}

// Create registers a new trip with an empty entry list. The id is
// caller-supplied and must be unique.
func (s *Service) Create(ctx context.Context, id, location, image, startDate, endDate string) (*Trip, error) {
	if id == "" || location == "" {
		return nil, fmt.Errorf("%w: missing trip id or location", common.ErrValidation)
	}

	trip := &Trip{
		ID:        id,
		Location:  location,
		Image:     image,
		StartDate: startDate,
		EndDate:   endDate,
		Entries:   []DiaryEntry{},
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// AddEntry appends a diary entry to the trip, preserving insertion order.
func (s *Service) AddEntry(ctx context.Context, tripID, entryID, date, text string) (*DiaryEntry, error) {
	if tripID == "" || entryID == "" || date == "" || text == "" {
		return nil, fmt.Errorf("%w: missing entry fields", common.ErrValidation)
	}

	entry := DiaryEntry{EntryID: entryID, Date: date, Text: text}
	if err := s.repo.AppendEntry(ctx, tripID, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
