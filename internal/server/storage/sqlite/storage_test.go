package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func testDocument(id string, version int64) *storage.Document {
	return &storage.Document{
		ID:        id,
		Version:   version,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
		Body:      []byte(`{"root":{"id":"` + id + `"}}`),
	}
}

func TestStorage_SaveAndGetDocument(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	doc := testDocument("doc-1", 1)
	require.NoError(t, s.SaveDocument(ctx, doc))

	got, err := s.GetDocument(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Version, got.Version)
	assert.Equal(t, doc.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, doc.Body, got.Body)
	assert.Equal(t, int64(1), got.Seq)
}

func TestStorage_GetDocument_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_SaveDocument_UpdateAdvancesCursor(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-1", 1)))
	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-2", 1)))

	// повторное сохранение doc-1 должно сдвинуть его в конец курсора
	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-1", 2)))

	got, err := s.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, int64(3), got.Seq)

	cursor, err := s.CurrentCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cursor)
}

func TestStorage_GetDocumentsSince(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-1", 1)))
	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-2", 1)))
	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-3", 1)))

	docs, err := s.GetDocumentsSince(ctx, 1)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "doc-2", docs[0].ID)
	assert.Equal(t, "doc-3", docs[1].ID)

	docs, err = s.GetDocumentsSince(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStorage_DeleteDocument(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, testDocument("doc-1", 1)))
	require.NoError(t, s.DeleteDocument(ctx, "doc-1"))

	_, err := s.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	// Повторное удаление - no-op
	assert.NoError(t, s.DeleteDocument(ctx, "doc-1"))
}

func TestStorage_CurrentCursor_Empty(t *testing.T) {
	s := newTestStorage(t)

	cursor, err := s.CurrentCursor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), cursor)
}

func TestStorage_SaveAndGetBlob(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	blob := &storage.Blob{
		ID:        "blob-1",
		MimeType:  "image/png",
		Data:      []byte{0x89, 0x50, 0x4e, 0x47},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.SaveBlob(ctx, blob))

	got, err := s.GetBlob(ctx, "blob-1")
	require.NoError(t, err)

	assert.Equal(t, blob.ID, got.ID)
	assert.Equal(t, blob.MimeType, got.MimeType)
	assert.Equal(t, blob.Data, got.Data)
	assert.Equal(t, blob.CreatedAt, got.CreatedAt)
}

func TestStorage_SaveBlob_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	blob := &storage.Blob{
		ID:        "blob-1",
		MimeType:  "image/png",
		Data:      []byte("first"),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.SaveBlob(ctx, blob))

	blob.Data = []byte("second")
	require.NoError(t, s.SaveBlob(ctx, blob))

	got, err := s.GetBlob(ctx, "blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got.Data)
}

func TestStorage_GetBlob_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetBlob(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)
}
