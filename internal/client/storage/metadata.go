package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncCursor saves the server cursor of the last successful sync
	SaveLastSyncCursor(ctx context.Context, cursor int64) error

	// GetLastSyncCursor retrieves the server cursor of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncCursor(ctx context.Context) (int64, error)
}
