package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvberkel/tripdiary/internal/client/cache"
	"github.com/mvberkel/tripdiary/internal/client/client"
	"github.com/mvberkel/tripdiary/internal/client/models"
)

// ---- fake client ----

type fakeClient struct {
	RegisterErr error

	LoginToken   string
	LoginProfile *models.Profile
	LoginErr     error

	GetProfileRet *models.Profile
	GetProfileErr error

	SaveProfileRet *models.Profile
	SaveProfileErr error

	ChangePasswordErr error
	DeleteAccountErr  error

	RegisterCalls int
	LoginCalls    int
}

func (f *fakeClient) Close() error                   { return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) Register(ctx context.Context, email, password string) error {
	f.RegisterCalls++
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, *models.Profile, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return "", nil, f.LoginErr
	}
	return f.LoginToken, f.LoginProfile, nil
}

func (f *fakeClient) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) SaveProfile(ctx context.Context, email, password string, upd *models.ProfileUpdate) (*models.Profile, error) {
	return f.SaveProfileRet, f.SaveProfileErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context, email, password string) error {
	return f.DeleteAccountErr
}

func (f *fakeClient) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	return f.ChangePasswordErr
}

func (f *fakeClient) ListTrips(ctx context.Context) ([]*models.Trip, error) { return nil, nil }
func (f *fakeClient) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	return nil, nil
}
func (f *fakeClient) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	return trip, nil
}
func (f *fakeClient) AddEntry(ctx context.Context, tripID string, entry *models.DiaryEntry) (*models.DiaryEntry, error) {
	return entry, nil
}

// ---- helpers ----

func newTestAuth(t *testing.T, fc *fakeClient) (AuthService, cache.Cache) {
	t.Helper()
	c := cache.NewFileCache(filepath.Join(t.TempDir(), "user.json"))
	return NewAuthService(fc, c), c
}

func TestRegister_LocalFirstSurvivesDeadServer(t *testing.T) {
	fc := &fakeClient{RegisterErr: client.ErrUnavailable}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	status, err := svc.Register(ctx, "a@b.com", "secret")
	require.NoError(t, err)
	require.Equal(t, RegisterLocalOnly, status)
	require.Equal(t, 1, fc.RegisterCalls)

	shadow, err := c.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", shadow.Email)
	require.NotEqual(t, "secret", shadow.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(shadow.PasswordHash), []byte("secret")))
}

func TestRegister_SyncedWhenServerAccepts(t *testing.T) {
	fc := &fakeClient{}
	svc, _ := newTestAuth(t, fc)

	status, err := svc.Register(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.Equal(t, RegisterSynced, status)
}

func TestRegister_RequiresCredentials(t *testing.T) {
	svc, _ := newTestAuth(t, &fakeClient{})

	_, err := svc.Register(context.Background(), "", "secret")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), "a@b.com", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestLogin_ServerConfirmedRefreshesShadow(t *testing.T) {
	fc := &fakeClient{
		LoginToken:   "tok123",
		LoginProfile: &models.Profile{Email: "a@b.com", Name: "Ann"},
	}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	status, profile, err := svc.Login(ctx, "a@b.com", "secret")
	require.NoError(t, err)
	require.Equal(t, LoginServerConfirmed, status)
	require.Equal(t, "Ann", profile.Name)

	shadow, err := c.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok123", shadow.Token)
	require.Equal(t, "Ann", shadow.Profile.Name)
}

func TestLogin_ServerRejectionNeverFallsBack(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	// a valid local shadow exists, but the server said no
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, &cache.Shadow{Email: "a@b.com", PasswordHash: string(hash)}))

	_, _, err = svc.Login(ctx, "a@b.com", "secret")
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestLogin_OfflineFallbackOnUnreachableServer(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnavailable}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, &cache.Shadow{
		Email:        "a@b.com",
		PasswordHash: string(hash),
		Profile:      &models.Profile{Email: "a@b.com", Name: "Ann"},
	}))

	status, profile, err := svc.Login(ctx, "a@b.com", "secret")
	require.NoError(t, err)
	require.Equal(t, LoginOffline, status)
	require.Equal(t, "Ann", profile.Name)
}

func TestLogin_OfflineRejectsWrongPassword(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnavailable}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, &cache.Shadow{Email: "a@b.com", PasswordHash: string(hash)}))

	_, _, err = svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "other@b.com", "secret")
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestLogin_OfflineWithoutShadowFails(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnavailable}
	svc, _ := newTestAuth(t, fc)

	_, _, err := svc.Login(context.Background(), "a@b.com", "secret")
	require.ErrorIs(t, err, cache.ErrNoCachedUser)
}

func TestProfile_PrefersServerAndCachesResult(t *testing.T) {
	fc := &fakeClient{GetProfileRet: &models.Profile{Email: "a@b.com", Bio: "fresh"}}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, &cache.Shadow{
		Email:   "a@b.com",
		Profile: &models.Profile{Email: "a@b.com", Bio: "stale"},
	}))

	profile, fromServer, err := svc.Profile(ctx)
	require.NoError(t, err)
	require.True(t, fromServer)
	require.Equal(t, "fresh", profile.Bio)

	shadow, err := c.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "fresh", shadow.Profile.Bio)
}

func TestProfile_OfflineServesCachedCopy(t *testing.T) {
	fc := &fakeClient{GetProfileErr: client.ErrUnavailable}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, &cache.Shadow{
		Email:   "a@b.com",
		Profile: &models.Profile{Email: "a@b.com", Bio: "stale"},
	}))

	profile, fromServer, err := svc.Profile(ctx)
	require.NoError(t, err)
	require.False(t, fromServer)
	require.Equal(t, "stale", profile.Bio)
}

func TestChangePassword_RehashesShadow(t *testing.T) {
	fc := &fakeClient{}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, &cache.Shadow{Email: "a@b.com", PasswordHash: string(hash)}))

	require.NoError(t, svc.ChangePassword(ctx, "old", "new"))

	shadow, err := c.Read(ctx)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(shadow.PasswordHash), []byte("new")))
}

func TestDeleteAccount_ClearsShadow(t *testing.T) {
	fc := &fakeClient{}
	svc, c := newTestAuth(t, fc)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, &cache.Shadow{Email: "a@b.com"}))
	require.NoError(t, svc.DeleteAccount(ctx, "secret"))

	_, err := c.Read(ctx)
	require.ErrorIs(t, err, cache.ErrNoCachedUser)
}

func TestLogout_ForgetsUser(t *testing.T) {
	svc, c := newTestAuth(t, &fakeClient{})
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, &cache.Shadow{Email: "a@b.com"}))
	require.NoError(t, svc.Logout(ctx))

	_, err := svc.CurrentUser(ctx)
	require.ErrorIs(t, err, cache.ErrNoCachedUser)
}
