package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/server/storage"
)

// SaveDocument сохраняет документ и присваивает ему новую позицию в курсоре.
// Каждая запись получает seq строго больше всех существующих, так что
// клиенты могут выбирать изменения через GetDocumentsSince.
func (s *Storage) SaveDocument(ctx context.Context, doc *storage.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO documents (id, version, updated_at, body, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM documents))
		ON CONFLICT(id) DO UPDATE SET
			version    = excluded.version,
			updated_at = excluded.updated_at,
			body       = excluded.body,
			seq        = excluded.seq
	`

	_, err = tx.ExecContext(ctx, query,
		doc.ID,
		doc.Version,
		doc.UpdatedAt.Unix(),
		doc.Body,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDocument возвращает документ по ID
func (s *Storage) GetDocument(ctx context.Context, id string) (*storage.Document, error) {
	query := `
		SELECT id, version, updated_at, body, seq
		FROM documents
		WHERE id = ?
	`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// GetDocumentsSince возвращает документы, изменённые после указанного курсора,
// в порядке возрастания seq
func (s *Storage) GetDocumentsSince(ctx context.Context, since int64) ([]*storage.Document, error) {
	query := `
		SELECT id, version, updated_at, body, seq
		FROM documents
		WHERE seq > ?
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []*storage.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

// DeleteDocument удаляет документ; удаление отсутствующего документа - no-op
func (s *Storage) DeleteDocument(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// CurrentCursor возвращает позицию последнего изменения
func (s *Storage) CurrentCursor(ctx context.Context) (int64, error) {
	var cursor int64
	query := `SELECT COALESCE(MAX(seq), 0) FROM documents`

	if err := s.db.QueryRowContext(ctx, query).Scan(&cursor); err != nil {
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	return cursor, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*storage.Document, error) {
	var doc storage.Document
	var updatedAt int64

	err := row.Scan(&doc.ID, &doc.Version, &updatedAt, &doc.Body, &doc.Seq)
	if err != nil {
		return nil, err
	}

	doc.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &doc, nil
}
