package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvberkel/tripdiary/internal/client/cache"
	"github.com/mvberkel/tripdiary/internal/client/client"
	"github.com/mvberkel/tripdiary/internal/client/models"
	"github.com/mvberkel/tripdiary/internal/client/services"
)

// ---- fake auth service ----

type fakeAuthService struct {
	registerStatus services.RegisterStatus
	registerErr    error

	loginStatus services.LoginStatus
	loginErr    error

	logoutCalled bool
}

func (f *fakeAuthService) Register(ctx context.Context, email, password string) (services.RegisterStatus, error) {
	return f.registerStatus, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (services.LoginStatus, *models.Profile, error) {
	if f.loginErr != nil {
		return 0, nil, f.loginErr
	}
	return f.loginStatus, &models.Profile{Email: email}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context) (*cache.Shadow, error) {
	return nil, cache.ErrNoCachedUser
}

func (f *fakeAuthService) Profile(ctx context.Context) (*models.Profile, bool, error) {
	return nil, false, cache.ErrNoCachedUser
}

func (f *fakeAuthService) SaveProfile(ctx context.Context, password string, upd *models.ProfileUpdate) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return nil
}

func (f *fakeAuthService) DeleteAccount(ctx context.Context, password string) error { return nil }
func (f *fakeAuthService) Ping(ctx context.Context) error                           { return nil }
func (f *fakeAuthService) Close(ctx context.Context) error                          { return nil }

// ---- helpers ----

func stubInput(t *testing.T, text, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return text, nil
	}
	getPassword = func(w io.Writer, prompt string) (string, error) {
		return password, nil
	}
}

func newTestApp(fa *fakeAuthService) *App {
	return &App{
		authService: fa,
		reader:      bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_OnlineSetsOnlineMode(t *testing.T) {
	stubInput(t, "a@b.com", "secret")

	app := newTestApp(&fakeAuthService{loginStatus: services.LoginServerConfirmed})
	require.NoError(t, app.Login(context.Background()))

	require.True(t, app.isLoggedIn())
	require.Equal(t, "a@b.com", app.email)
	require.Equal(t, ModeOnline, app.Mode)
}

func TestLogin_OfflineSetsOfflineMode(t *testing.T) {
	stubInput(t, "a@b.com", "secret")

	app := newTestApp(&fakeAuthService{loginStatus: services.LoginOffline})
	require.NoError(t, app.Login(context.Background()))

	require.True(t, app.isLoggedIn())
	require.Equal(t, ModeOffline, app.Mode)
}

func TestLogin_RejectionLeavesLoggedOut(t *testing.T) {
	stubInput(t, "a@b.com", "wrong")

	app := newTestApp(&fakeAuthService{loginErr: client.ErrUnauthorized})
	err := app.Login(context.Background())

	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.False(t, app.isLoggedIn())
}

func TestRegister_LocalOnlyStillSignsIn(t *testing.T) {
	stubInput(t, "a@b.com", "secret")

	app := newTestApp(&fakeAuthService{registerStatus: services.RegisterLocalOnly})
	require.NoError(t, app.Register(context.Background()))

	require.True(t, app.isLoggedIn())
	require.Equal(t, ModeOffline, app.Mode)
}

func TestLogout_ClearsSession(t *testing.T) {
	fa := &fakeAuthService{}
	app := newTestApp(fa)
	app.email = "a@b.com"

	require.NoError(t, app.Logout(context.Background()))
	require.True(t, fa.logoutCalled)
	require.False(t, app.isLoggedIn())
}
