package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTripService_CreateValidation(t *testing.T) {
	svc := NewTripService(&fakeClient{})

	_, err := svc.Create(context.Background(), "", "Rome", "", "", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), "t1", "", "", "", "")
	require.ErrorIs(t, err, ErrValidation)

	trip, err := svc.Create(context.Background(), "t1", "Rome", "rome.png", "2023-01-05", "2023-01-12")
	require.NoError(t, err)
	require.Equal(t, "Rome", trip.Location)
}

func TestTripService_AddEntryValidation(t *testing.T) {
	svc := NewTripService(&fakeClient{})

	_, err := svc.AddEntry(context.Background(), "t1", "e1", "", "Arrived")
	require.ErrorIs(t, err, ErrValidation)

	entry, err := svc.AddEntry(context.Background(), "t1", "e1", "2023-01-05", "Arrived")
	require.NoError(t, err)
	require.Equal(t, "e1", entry.EntryID)
}
