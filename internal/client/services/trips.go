package services

import (
	"context"

	"github.com/mvberkel/tripdiary/internal/client/client"
	"github.com/mvberkel/tripdiary/internal/client/models"
)

// TripService exposes trip and diary entry operations for the CLI. Trips
// live on the server only; there is no offline copy.
type TripService interface {
	List(ctx context.Context) ([]*models.Trip, error)
	Get(ctx context.Context, id string) (*models.Trip, error)
	Create(ctx context.Context, id, location, image, startDate, endDate string) (*models.Trip, error)
	AddEntry(ctx context.Context, tripID, entryID, date, text string) (*models.DiaryEntry, error)
}

type tripService struct {
	client client.Client
}

func NewTripService(client client.Client) TripService {
	return &tripService{client: client}
}

func (s *tripService) List(ctx context.Context) ([]*models.Trip, error) {
	return s.client.ListTrips(ctx)
}

func (s *tripService) Get(ctx context.Context, id string) (*models.Trip, error) {
	return s.client.GetTrip(ctx, id)
}

func (s *tripService) Create(ctx context.Context, id, location, image, startDate, endDate string) (*models.Trip, error) {
	if id == "" || location == "" {
		return nil, ErrValidation
	}
	return s.client.CreateTrip(ctx, &models.Trip{
		ID:        id,
		Location:  location,
		Image:     image,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (s *tripService) AddEntry(ctx context.Context, tripID, entryID, date, text string) (*models.DiaryEntry, error) {
	if tripID == "" || entryID == "" || date == "" || text == "" {
		return nil, ErrValidation
	}
	return s.client.AddEntry(ctx, tripID, &models.DiaryEntry{EntryID: entryID, Date: date, Text: text})
}
