package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/storage"
)

// ---- helpers ----

func strptr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *storage.MemStore[User]) {
	t.Helper()
	store := storage.NewMemStore[User]()
	repo := NewStoreRepository(store)
	return NewService(repo, []byte("test-secret"), time.Hour), store
}

func register(t *testing.T, s *Service, email, password string) {
	t.Helper()
	require.NoError(t, s.Register(context.Background(), email, password))
}

// ---- TESTS ----

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "a@x.com", "p"))
	err := s.Register(ctx, "a@x.com", "p")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestRegister_MissingFields(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Register(ctx, "", "p"), common.ErrValidation)
	require.ErrorIs(t, s.Register(ctx, "a@x.com", ""), common.ErrValidation)
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	s, store := newTestService(t)
	register(t, s, "a@x.com", "secret")

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotEqual(t, "secret", records[0].PasswordHash)
	require.True(t, checkPassword(records[0].PasswordHash, "secret"))
	require.False(t, records[0].HasProfile)
}

func TestLogin_Success_IssuesToken(t *testing.T) {
	s, _ := newTestService(t)
	register(t, s, "a@x.com", "p")

	user, token, err := s.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)
	require.NotEmpty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := newTestService(t)

	_, _, err := s.Login(context.Background(), "nobody@x.com", "p")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newTestService(t)
	register(t, s, "a@x.com", "p")

	_, _, err := s.Login(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestUpsertProfile_CreatesWhenMissing(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	user, err := s.UpsertProfile(ctx, ProfileUpdate{
		Email:    "new@x.com",
		Password: "p",
		Name:     strptr("Ines"),
		Bio:      strptr("traveller"),
	})
	require.NoError(t, err)
	require.True(t, user.HasProfile)
	require.Equal(t, "Ines", user.Name)

	got, err := s.GetProfile(ctx, "new@x.com")
	require.NoError(t, err)
	require.Equal(t, "traveller", got.Bio)
}

func TestUpsertProfile_WrongPassword_DoesNotMutate(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	register(t, s, "a@x.com", "p")

	_, err := s.UpsertProfile(ctx, ProfileUpdate{
		Email:    "a@x.com",
		Password: "wrong",
		Name:     strptr("Mallory"),
	})
	require.ErrorIs(t, err, common.ErrUnauthorized)

	got, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	require.Empty(t, got.Name)
	require.False(t, got.HasProfile)
}

func TestUpsertProfile_SparseMerge(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	register(t, s, "a@x.com", "p")

	_, err := s.UpsertProfile(ctx, ProfileUpdate{
		Email:    "a@x.com",
		Password: "p",
		Name:     strptr("Ines"),
		Bio:      strptr("traveller"),
	})
	require.NoError(t, err)

	// nil fields keep stored values, non-nil empty blanks deliberately
	user, err := s.UpsertProfile(ctx, ProfileUpdate{
		Email:    "a@x.com",
		Password: "p",
		Bio:      strptr(""),
	})
	require.NoError(t, err)
	require.Equal(t, "Ines", user.Name, "omitted field must keep stored value")
	require.Empty(t, user.Bio, "empty field must blank stored value")
}

func TestUpsertProfile_Favourites(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	favourites := []string{"rome.png", "tokyo.png"}
	user, err := s.UpsertProfile(ctx, ProfileUpdate{
		Email:      "a@x.com",
		Password:   "p",
		Favourites: &favourites,
	})
	require.NoError(t, err)
	require.Equal(t, favourites, user.Favourites)
}

func TestChangePassword(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	register(t, s, "a@x.com", "old")

	require.ErrorIs(t, s.ChangePassword(ctx, "a@x.com", "wrong", "new"), common.ErrUnauthorized)
	require.ErrorIs(t, s.ChangePassword(ctx, "nobody@x.com", "old", "new"), common.ErrNotFound)

	require.NoError(t, s.ChangePassword(ctx, "a@x.com", "old", "new"))

	_, _, err := s.Login(ctx, "a@x.com", "old")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	_, _, err = s.Login(ctx, "a@x.com", "new")
	require.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	register(t, s, "a@x.com", "p")

	require.NoError(t, s.DeleteAccount(ctx, "a@x.com"))
	require.ErrorIs(t, s.DeleteAccount(ctx, "a@x.com"), common.ErrNotFound)
}
