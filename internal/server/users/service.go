package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/server/auth"
)

// ProfileUpdate carries the fields of a profile save. Pointer fields
// distinguish "not provided" (nil, keep the stored value) from an explicit
// empty value (blank the field). Password is the current password and is
// required when the account already exists.
type ProfileUpdate struct {
	Email      string
	Password   string
	Name       *string
	Pronouns   *string
	Bio        *string
	CoverURL   *string
	AvatarURL  *string
	Favourites *[]string
}

type Service struct {
	repo                Repository
	jwtSecret           []byte
	tokenValidityPeriod time.Duration
}

func NewService(repo Repository, jwtSecret []byte, tokenValidityPeriod time.Duration) *Service {
	return &Service{
		repo:                repo,
		jwtSecret:           jwtSecret,
		tokenValidityPeriod: tokenValidityPeriod,
	}
}

func hashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(h), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates an account with no profile yet.
// Returns common.ErrAlreadyExists for a duplicate email.
func (s *Service) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: missing email or password", common.ErrValidation)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return common.ErrInternal
	}

	return s.repo.Create(ctx, &User{Email: email, PasswordHash: hash})
}

// Login verifies the credentials and issues an access token.
// Returns common.ErrNotFound for an unknown email and common.ErrUnauthorized
// for a wrong password; the HTTP layer keeps the two distinct so clients can
// tell an authoritative rejection from anything else.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: missing email or password", common.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.tokenValidityPeriod)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

// GetProfile returns the account for the given email.
func (s *Service) GetProfile(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: missing email", common.ErrValidation)
	}
	return s.repo.GetByEmail(ctx, email)
}

// UpsertProfile creates the account if the email is unknown, otherwise
// verifies the password and sparse-merges the provided fields over the
// stored ones. Either way the record ends up with HasProfile=true.
func (s *Service) UpsertProfile(ctx context.Context, upd ProfileUpdate) (*User, error) {
	if upd.Email == "" {
		return nil, fmt.Errorf("%w: missing email", common.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, upd.Email)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return s.createWithProfile(ctx, upd)
	}

	if !checkPassword(user.PasswordHash, upd.Password) {
		return nil, common.ErrUnauthorized
	}

	applyUpdate(user, upd)
	user.HasProfile = true

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) createWithProfile(ctx context.Context, upd ProfileUpdate) (*User, error) {
	if upd.Password == "" {
		return nil, fmt.Errorf("%w: missing password", common.ErrValidation)
	}
	hash, err := hashPassword(upd.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{Email: upd.Email, PasswordHash: hash, HasProfile: true}
	applyUpdate(user, upd)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func applyUpdate(user *User, upd ProfileUpdate) {
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Pronouns != nil {
		user.Pronouns = *upd.Pronouns
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.CoverURL != nil {
		user.CoverURL = *upd.CoverURL
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = *upd.AvatarURL
	}
	if upd.Favourites != nil {
		user.Favourites = append([]string(nil), (*upd.Favourites)...)
	}
}

// DeleteAccount removes the record for the given email.
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: missing email", common.ErrValidation)
	}
	return s.repo.Delete(ctx, email)
}

// ChangePassword replaces the credential after verifying the old one.
func (s *Service) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if email == "" || oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: missing email or password", common.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !checkPassword(user.PasswordHash, oldPassword) {
		return common.ErrUnauthorized
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return common.ErrInternal
	}
	user.PasswordHash = hash

	return s.repo.Update(ctx, user)
}
