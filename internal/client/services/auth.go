// Package services contains application services for the trip diary client.
// This file defines the authentication service: remote-first login with an
// offline fallback, local-first registration, and housekeeping of the cached
// account shadow.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvberkel/tripdiary/internal/client/cache"
	"github.com/mvberkel/tripdiary/internal/client/client"
	"github.com/mvberkel/tripdiary/internal/client/models"
)

// RegisterStatus reports where a freshly registered account lives.
type RegisterStatus int

const (
	// RegisterSynced means the account exists both locally and on the server.
	RegisterSynced RegisterStatus = iota
	// RegisterLocalOnly means the account was saved locally but the server
	// attempt failed; a later login will sync it.
	RegisterLocalOnly
)

// LoginStatus reports which authority confirmed the credentials.
type LoginStatus int

const (
	LoginServerConfirmed LoginStatus = iota
	LoginOffline
)

// ErrValidation is returned when required input is missing.
var ErrValidation = errors.New("email and password are required")

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: save credentials locally first, then best-effort on the server.
//   - Login: authenticate against the server; fall back to the local shadow
//     only when the server cannot be reached. A server rejection is final.
//   - Profile/SaveProfile: read and update the profile, with offline reads.
//   - ChangePassword/DeleteAccount: server-authoritative, shadow kept in step.
//   - Logout: forget the local shadow.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email string, password string) (RegisterStatus, error)
	Login(ctx context.Context, email string, password string) (LoginStatus, *models.Profile, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*cache.Shadow, error)
	Profile(ctx context.Context) (*models.Profile, bool, error)
	SaveProfile(ctx context.Context, password string, upd *models.ProfileUpdate) (*models.Profile, error)
	ChangePassword(ctx context.Context, oldPassword string, newPassword string) error
	DeleteAccount(ctx context.Context, password string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	cache  cache.Cache
}

// NewAuthService constructs an AuthService bound to the given API client
// and local shadow cache.
func NewAuthService(client client.Client, cache cache.Cache) AuthService {
	return &authService{client: client, cache: cache}
}

// Register saves the account locally before talking to the server, so a dead
// connection never loses the signup. The password is stored only as a bcrypt
// hash. A failed server attempt is a soft success: the account is usable
// offline and syncs on the next online login.
func (a *authService) Register(ctx context.Context, email string, password string) (RegisterStatus, error) {
	if email == "" || password == "" {
		return 0, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	shadow := &cache.Shadow{Email: email, PasswordHash: string(hash)}
	if err := a.cache.Write(ctx, shadow); err != nil {
		return 0, fmt.Errorf("saving local account: %w", err)
	}

	if err := a.client.Register(ctx, email, password); err != nil {
		return RegisterLocalOnly, nil
	}
	return RegisterSynced, nil
}

// Login asks the server first. On success the shadow is rewritten from the
// server's answer. The local shadow is consulted only when the server is
// unreachable; a server rejection (wrong password, unknown user) is returned
// as-is and never falls back, so a revoked account cannot keep logging in
// offline past a reachable server.
func (a *authService) Login(ctx context.Context, email string, password string) (LoginStatus, *models.Profile, error) {
	if email == "" || password == "" {
		return 0, nil, ErrValidation
	}

	token, profile, err := a.client.Login(ctx, email, password)
	if err == nil {
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return 0, nil, fmt.Errorf("hashing password: %w", herr)
		}
		shadow := &cache.Shadow{
			Email:        email,
			PasswordHash: string(hash),
			Token:        token,
			Profile:      profile,
		}
		if werr := a.cache.Write(ctx, shadow); werr != nil {
			return 0, nil, fmt.Errorf("saving local account: %w", werr)
		}
		return LoginServerConfirmed, profile, nil
	}

	if !errors.Is(err, client.ErrUnavailable) {
		return 0, nil, err
	}

	return a.offlineLogin(ctx, email, password)
}

func (a *authService) offlineLogin(ctx context.Context, email string, password string) (LoginStatus, *models.Profile, error) {
	shadow, err := a.cache.Read(ctx)
	if err != nil {
		return 0, nil, err
	}

	if shadow.Email != email {
		return 0, nil, client.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(shadow.PasswordHash), []byte(password)); err != nil {
		return 0, nil, client.ErrUnauthorized
	}
	return LoginOffline, shadow.Profile, nil
}

// Logout forgets the local shadow.
func (a *authService) Logout(ctx context.Context) error {
	return a.cache.Clear(ctx)
}

// CurrentUser returns the cached shadow, or cache.ErrNoCachedUser when
// nobody is signed in.
func (a *authService) CurrentUser(ctx context.Context) (*cache.Shadow, error) {
	return a.cache.Read(ctx)
}

// Profile returns the signed-in user's profile, preferring the server's copy.
// The second return reports whether the value came from the server; false
// means the server was unreachable and the cached copy is shown instead.
func (a *authService) Profile(ctx context.Context) (*models.Profile, bool, error) {
	shadow, err := a.cache.Read(ctx)
	if err != nil {
		return nil, false, err
	}

	profile, err := a.client.GetProfile(ctx, shadow.Email)
	if err == nil {
		shadow.Profile = profile
		if werr := a.cache.Write(ctx, shadow); werr != nil {
			return nil, false, werr
		}
		return profile, true, nil
	}

	if errors.Is(err, client.ErrUnavailable) && shadow.Profile != nil {
		return shadow.Profile, false, nil
	}
	return nil, false, err
}

// SaveProfile updates the profile on the server and mirrors the result into
// the shadow. The password re-confirms the account; profile edits are never
// applied offline since the server is the authority on profile state.
func (a *authService) SaveProfile(ctx context.Context, password string, upd *models.ProfileUpdate) (*models.Profile, error) {
	shadow, err := a.cache.Read(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := a.client.SaveProfile(ctx, shadow.Email, password, upd)
	if err != nil {
		return nil, err
	}

	shadow.Profile = profile
	if err := a.cache.Write(ctx, shadow); err != nil {
		return nil, err
	}
	return profile, nil
}

// ChangePassword changes the password on the server and rehashes the shadow
// so offline login keeps working with the new password.
func (a *authService) ChangePassword(ctx context.Context, oldPassword string, newPassword string) error {
	if newPassword == "" {
		return ErrValidation
	}

	shadow, err := a.cache.Read(ctx)
	if err != nil {
		return err
	}

	if err := a.client.ChangePassword(ctx, shadow.Email, oldPassword, newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	shadow.PasswordHash = string(hash)
	return a.cache.Write(ctx, shadow)
}

// DeleteAccount removes the account on the server, then the local shadow.
func (a *authService) DeleteAccount(ctx context.Context, password string) error {
	shadow, err := a.cache.Read(ctx)
	if err != nil {
		return err
	}

	if err := a.client.DeleteAccount(ctx, shadow.Email, password); err != nil {
		return err
	}
	return a.cache.Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
