package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/server/storage"
)

// SaveBlob сохраняет бинарные данные. Повторная отправка того же ID
// перезаписывает запись, поэтому ретраи клиента безопасны.
func (s *Storage) SaveBlob(ctx context.Context, blob *storage.Blob) error {
	query := `
		INSERT INTO blobs (id, mime_type, data, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			mime_type = excluded.mime_type,
			data      = excluded.data
	`

	_, err := s.db.ExecContext(ctx, query,
		blob.ID,
		blob.MimeType,
		blob.Data,
		blob.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}

	return nil
}

// GetBlob возвращает бинарные данные по ID
func (s *Storage) GetBlob(ctx context.Context, id string) (*storage.Blob, error) {
	query := `
		SELECT id, mime_type, data, created_at
		FROM blobs
		WHERE id = ?
	`

	var blob storage.Blob
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blob.ID,
		&blob.MimeType,
		&blob.Data,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}

	blob.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &blob, nil
}
