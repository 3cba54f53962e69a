package trips

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Trip, error)
	GetByID(ctx context.Context, id string) (*Trip, error)
	Create(ctx context.Context, trip *Trip) error
	// AppendEntry adds the entry to the trip, rejecting duplicate entry ids
	// within the same trip.
	AppendEntry(ctx context.Context, tripID string, entry DiaryEntry) error
}
