package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONFileDoc_LoadMissing(t *testing.T) {
	d := NewJSONFileDoc[rec](filepath.Join(t.TempDir(), "doc.json"))

	_, err := d.Load(context.Background())
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestJSONFileDoc_SaveLoadClear(t *testing.T) {
	d := NewJSONFileDoc[rec](filepath.Join(t.TempDir(), "doc.json"))
	ctx := context.Background()

	require.NoError(t, d.Save(ctx, &rec{ID: "1", Name: "a"}))

	got, err := d.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, &rec{ID: "1", Name: "a"}, got)

	require.NoError(t, d.Clear(ctx))
	_, err = d.Load(ctx)
	require.ErrorIs(t, err, ErrNoDocument)

	// clearing twice is fine
	require.NoError(t, d.Clear(ctx))
}
