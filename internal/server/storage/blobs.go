package storage

import (
	"context"
	"time"
)

// Blob представляет загруженный бинарный файл
type Blob struct {
	CreatedAt time.Time
	ID        string
	MimeType  string
	Data      []byte
}

// BlobStore defines interface for uploaded binary storage
type BlobStore interface {
	// SaveBlob stores a blob. Saving an existing ID is an idempotent
	// overwrite: клиент может повторить запрос после потерянного ответа
	SaveBlob(ctx context.Context, blob *Blob) error

	// GetBlob retrieves a blob by ID
	// Returns ErrBlobNotFound if the blob doesn't exist
	GetBlob(ctx context.Context, id string) (*Blob, error)
}
