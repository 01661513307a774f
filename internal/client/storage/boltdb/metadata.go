package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
)

const (
	keyLastSyncCursor = "last_sync_cursor"
)

// SaveLastSyncCursor saves the server cursor of the last successful sync
func (s *Storage) SaveLastSyncCursor(ctx context.Context, cursor int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		cursorBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(cursorBytes, uint64(cursor))

		if err := bucket.Put([]byte(keyLastSyncCursor), cursorBytes); err != nil {
			return fmt.Errorf("failed to save last sync cursor: %w", err)
		}

		return nil
	})
}

// GetLastSyncCursor retrieves the server cursor of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncCursor(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var cursor int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		cursorBytes := bucket.Get([]byte(keyLastSyncCursor))
		if cursorBytes == nil {
			// Курсор не найден - первая синхронизация
			cursor = 0
			return nil
		}

		cursor = int64(binary.BigEndian.Uint64(cursorBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last sync cursor: %w", err)
	}

	return cursor, nil
}
