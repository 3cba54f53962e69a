// Package cache keeps a local shadow of the signed-in user so the CLI can
// authenticate and show the profile while the server is unreachable.
package cache

import (
	"context"
	"errors"

	"github.com/mvberkel/tripdiary/internal/client/models"
)

// ErrNoCachedUser is returned when no shadow has been written yet,
// e.g. on a fresh install or after logout.
var ErrNoCachedUser = errors.New("no cached user")

// Shadow is the locally persisted view of the account. The password is
// stored only as a bcrypt hash; the cleartext never touches disk.
type Shadow struct {
	Email        string          `json:"email"`
	PasswordHash string          `json:"passwordHash"`
	Token        string          `json:"token"`
	Profile      *models.Profile `json:"profile"`
}

type Cache interface {
	Read(ctx context.Context) (*Shadow, error)
	Write(ctx context.Context, s *Shadow) error
	Clear(ctx context.Context) error
}
