package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
)

const (
	// keyClockValue единственный ключ с упакованным значением HLC
	keyClockValue = "clock_value"
)

// SaveClock persists the packed clock value
func (s *Storage) SaveClock(ctx context.Context, packed string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClock)
		if bucket == nil {
			return fmt.Errorf("clock bucket not found")
		}

		if err := bucket.Put([]byte(keyClockValue), []byte(packed)); err != nil {
			return fmt.Errorf("failed to save clock value: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clock transaction failed: %w", err)
	}

	return nil
}

// LoadClock reads the persisted packed clock value
// Returns storage.ErrClockNotFound if no value has been saved yet
func (s *Storage) LoadClock(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var packed string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClock)
		if bucket == nil {
			return storage.ErrClockNotFound
		}

		data := bucket.Get([]byte(keyClockValue))
		if data == nil {
			return storage.ErrClockNotFound
		}

		packed = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return packed, nil
}
