package users

import (
	"context"
)

// Repository is keyed by email; emails are compared case-sensitively, as the
// original service did.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, email string) error
}
