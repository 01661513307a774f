package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
)

func TestStorage_SaveAndLoadClock(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	packed := "000000000001000:00003:node-a"
	require.NoError(t, store.SaveClock(ctx, packed))

	got, err := store.LoadClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, packed, got)
}

func TestStorage_SaveClock_Overwrites(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveClock(ctx, "000000000001000:00001:node-a"))
	require.NoError(t, store.SaveClock(ctx, "000000000002000:00000:node-a"))

	got, err := store.LoadClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, "000000000002000:00000:node-a", got)
}

func TestStorage_LoadClock_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.LoadClock(context.Background())
	assert.ErrorIs(t, err, storage.ErrClockNotFound)
}

func TestStorage_Clock_Closed(t *testing.T) {
	store := createTestStorage(t)
	require.NoError(t, store.Close())
	store.db = nil

	err := store.SaveClock(context.Background(), "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.LoadClock(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
