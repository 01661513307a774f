package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// mutationKey строит ключ записи лога.
// Упакованный HLC лексикографически упорядочен, поэтому естественный
// порядок ключей bolt - это причинный порядок мутаций; ID в хвосте
// разводит гипотетические коллизии.
func mutationKey(m *models.Mutation) []byte {
	return []byte(m.Timestamp + "/" + m.ID)
}

// Append adds a mutation to the tail of the log
func (s *Storage) Append(ctx context.Context, mutation *models.Mutation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(mutation)
	if err != nil {
		return fmt.Errorf("failed to marshal mutation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return fmt.Errorf("mutations bucket not found")
		}

		if err := bucket.Put(mutationKey(mutation), data); err != nil {
			return fmt.Errorf("failed to append mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("mutation transaction failed: %w", err)
	}

	return nil
}

// Pending returns all unacknowledged mutations in timestamp order
func (s *Storage) Pending(ctx context.Context) ([]*models.Mutation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var mutations []*models.Mutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return nil
		}

		// ForEach идет в порядке ключей - то есть в порядке HLC
		return bucket.ForEach(func(k, v []byte) error {
			var mutation models.Mutation
			if err := json.Unmarshal(v, &mutation); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}
			mutations = append(mutations, &mutation)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get pending mutations: %w", err)
	}

	return mutations, nil
}

// MarkApplied removes acknowledged mutations from the log.
// Вызывается только после успешного push: до подтверждения мутация
// обязана пережить перезапуск.
func (s *Storage) MarkApplied(ctx context.Context, ids []string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if len(ids) == 0 {
		return nil
	}

	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var mutation models.Mutation
			if err := json.Unmarshal(v, &mutation); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}
			if _, ok := applied[mutation.ID]; ok {
				if err := cursor.Delete(); err != nil {
					return fmt.Errorf("failed to delete mutation: %w", err)
				}
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("mark applied transaction failed: %w", err)
	}

	return nil
}

// Clear removes all mutations from the log
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketMutations); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		if _, err := tx.CreateBucket(bucketMutations); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
