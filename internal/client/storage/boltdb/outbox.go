package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// SaveUpload stores or fully replaces a pending upload record.
// Запись всегда перезаписывается целиком: промежуточных частично
// записанных состояний не бывает даже при отмене посреди retry-цикла.
func (s *Storage) SaveUpload(ctx context.Context, upload *models.PendingUpload) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(upload)
	if err != nil {
		return fmt.Errorf("failed to marshal upload: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUploads)
		if bucket == nil {
			return fmt.Errorf("uploads bucket not found")
		}

		if err := bucket.Put([]byte(upload.ID), data); err != nil {
			return fmt.Errorf("failed to save upload: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("upload transaction failed: %w", err)
	}

	return nil
}

// GetUpload retrieves a pending upload by ID
func (s *Storage) GetUpload(ctx context.Context, id string) (*models.PendingUpload, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var upload *models.PendingUpload

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUploads)
		if bucket == nil {
			return storage.ErrUploadNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrUploadNotFound
		}

		upload = &models.PendingUpload{}
		if err := json.Unmarshal(data, upload); err != nil {
			return fmt.Errorf("failed to unmarshal upload: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return upload, nil
}

// GetAllUploads returns all outbox records
func (s *Storage) GetAllUploads(ctx context.Context) ([]*models.PendingUpload, error) {
	return s.filterUploads(func(u *models.PendingUpload) bool { return true })
}

// GetUnsyncedUploads returns records with status != synced.
// Это записи, которые надо заново поставить в очередь после перезапуска.
func (s *Storage) GetUnsyncedUploads(ctx context.Context) ([]*models.PendingUpload, error) {
	return s.filterUploads(func(u *models.PendingUpload) bool {
		return !u.IsSynced()
	})
}

// GetExpiredUploads returns synced records whose LastAccessedAt is before
// the cutoff. Несинхронизированные записи не возвращаются никогда,
// независимо от возраста: их payload - единственная копия.
func (s *Storage) GetExpiredUploads(ctx context.Context, before time.Time) ([]*models.PendingUpload, error) {
	return s.filterUploads(func(u *models.PendingUpload) bool {
		return u.IsSynced() && u.LastAccessedAt.Before(before)
	})
}

// filterUploads возвращает записи outbox, прошедшие предикат
func (s *Storage) filterUploads(keep func(*models.PendingUpload) bool) ([]*models.PendingUpload, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var uploads []*models.PendingUpload

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUploads)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var upload models.PendingUpload
			if err := json.Unmarshal(v, &upload); err != nil {
				return fmt.Errorf("failed to unmarshal upload: %w", err)
			}
			if keep(&upload) {
				uploads = append(uploads, &upload)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan uploads: %w", err)
	}

	return uploads, nil
}

// TouchUpload bumps LastAccessedAt (read-through LRU signal for retention)
func (s *Storage) TouchUpload(ctx context.Context, id string, accessedAt time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUploads)
		if bucket == nil {
			return storage.ErrUploadNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrUploadNotFound
		}

		var upload models.PendingUpload
		if err := json.Unmarshal(data, &upload); err != nil {
			return fmt.Errorf("failed to unmarshal upload: %w", err)
		}

		upload.LastAccessedAt = accessedAt

		updated, err := json.Marshal(&upload)
		if err != nil {
			return fmt.Errorf("failed to marshal upload: %w", err)
		}

		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save touched upload: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// DeleteUpload removes a record and frees its payload storage
func (s *Storage) DeleteUpload(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUploads)
		if bucket == nil {
			return storage.ErrUploadNotFound
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrUploadNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete upload: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}
