package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
)

func TestStorage_SaveAndGetDocument(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := createTestDocument("doc-1", "note-1", "task-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Version, got.Version)
	require.NotNil(t, got.Root)
	assert.Equal(t, "test note", got.Root.Attrs.Fields["title"])
}

func TestStorage_GetDocument_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_GetAllDocuments(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-1", "note-1", "task-1")))
	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-2", "note-2", "task-2")))

	docs, err := store.GetAllDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestStorage_FindDocumentByEntity(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-1", "note-1", "task-1")))
	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-2", "note-2", "task-2")))

	tests := []struct {
		name     string
		entityID string
		wantDoc  string
	}{
		{"root entity of first doc", "note-1", "doc-1"},
		{"nested entity of second doc", "task-2", "doc-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := store.FindDocumentByEntity(ctx, tt.entityID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDoc, doc.ID)
		})
	}
}

func TestStorage_FindDocumentByEntity_NotFound(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-1", "note-1", "task-1")))

	_, err := store.FindDocumentByEntity(ctx, "ghost-entity")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_SaveDocument_RewritesIndex(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Первая версия документа содержит task-1
	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-1", "note-1", "task-1")))

	// Новая версия того же документа содержит task-other вместо task-1
	updated := createTestDocument("doc-1", "note-1", "task-other")
	updated.Version = 2
	require.NoError(t, store.SaveDocument(ctx, updated))

	doc, err := store.FindDocumentByEntity(ctx, "task-other")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)

	// Старая сущность больше нигде не живет
	_, err = store.FindDocumentByEntity(ctx, "task-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_DeleteDocument(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, createTestDocument("doc-1", "note-1", "task-1")))
	require.NoError(t, store.DeleteDocument(ctx, "doc-1"))

	_, err := store.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	// Index-записи удалены вместе с документом
	_, err = store.FindDocumentByEntity(ctx, "task-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_DeleteDocument_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.DeleteDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}
