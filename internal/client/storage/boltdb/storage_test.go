package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/models"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// createTestDocument создает документ с одной задачей для тестов
func createTestDocument(docID, noteEntityID, taskEntityID string) *models.Document {
	return &models.Document{
		ID:        docID,
		Version:   1,
		UpdatedAt: time.Now().UTC(),
		Root: &models.Node{
			ID:   docID + "-root",
			Type: models.NodeTypeNote,
			Attrs: models.Attrs{
				EntityID: noteEntityID,
				Version:  1,
				Fields:   map[string]any{"title": "test note"},
			},
			Children: []*models.Node{
				{
					ID:   docID + "-task",
					Type: models.NodeTypeTask,
					Attrs: models.Attrs{
						EntityID: taskEntityID,
						Version:  1,
						Order:    1,
						Fields:   map[string]any{"status": "todo"},
					},
				},
			},
		},
	}
}

func TestStorage_New(t *testing.T) {
	store := createTestStorage(t)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Greater(t, size, int64(0), "db file should have non-zero size")
}

func TestStorage_Size_Closed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	store.db = nil
	_, err = store.Size()
	assert.Error(t, err)
}
