package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newStore(t *testing.T) *JSONFileStore[rec] {
	t.Helper()
	return NewJSONFileStore[rec](filepath.Join(t.TempDir(), "records.json"))
}

func TestJSONFileStore_Load_CreatesMissingFile(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	// file must now exist and hold an empty array
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))
}

func TestJSONFileStore_SaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	want := []rec{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestJSONFileStore_SaveLoad_IdempotentOnFileContent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []rec{{ID: "1", Name: "a"}}))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, loaded))

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestJSONFileStore_Load_InvalidContent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not an array"), 0o660))

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrRead)
}

func TestJSONFileStore_Save_NilBecomesEmptyArray(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, nil))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))
}
