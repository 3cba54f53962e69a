package client

import (
	"context"

	"github.com/mvberkel/tripdiary/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email string, password string) error
	Login(ctx context.Context, email string, password string) (string, *models.Profile, error)
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	SaveProfile(ctx context.Context, email string, password string, upd *models.ProfileUpdate) (*models.Profile, error)
	DeleteAccount(ctx context.Context, email string, password string) error
	ChangePassword(ctx context.Context, email string, oldPassword string, newPassword string) error
	ListTrips(ctx context.Context) ([]*models.Trip, error)
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	AddEntry(ctx context.Context, tripID string, entry *models.DiaryEntry) (*models.DiaryEntry, error)
	Ping(ctx context.Context) error
}
