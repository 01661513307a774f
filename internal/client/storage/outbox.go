package storage

import (
	"context"
	"time"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out outbox_mock.go . OutboxStorage

// OutboxStorage defines interface for the binary outbox.
// Несинхронизированная запись - единственная копия файла: удаление
// разрешено только для записей со статусом synced.
type OutboxStorage interface {
	// SaveUpload stores or fully replaces a pending upload record
	SaveUpload(ctx context.Context, upload *models.PendingUpload) error

	// GetUpload retrieves a pending upload by ID
	// Returns ErrUploadNotFound if the record doesn't exist
	GetUpload(ctx context.Context, id string) (*models.PendingUpload, error)

	// GetAllUploads returns all outbox records
	GetAllUploads(ctx context.Context) ([]*models.PendingUpload, error)

	// GetUnsyncedUploads returns records with status != synced.
	// Used for crash recovery re-enqueue at startup
	GetUnsyncedUploads(ctx context.Context) ([]*models.PendingUpload, error)

	// GetExpiredUploads returns synced records whose LastAccessedAt is
	// before the cutoff. Never returns pending/uploading/error records
	GetExpiredUploads(ctx context.Context, before time.Time) ([]*models.PendingUpload, error)

	// TouchUpload bumps LastAccessedAt (read-through LRU signal)
	TouchUpload(ctx context.Context, id string, accessedAt time.Time) error

	// DeleteUpload removes a record and frees its payload storage
	DeleteUpload(ctx context.Context, id string) error
}
