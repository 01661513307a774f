package storage

import (
	"context"
	"time"
)

// Document представляет авторитетное состояние документа на сервере.
// Body хранит сериализованное дерево; Seq - серверный курсор изменений,
// растущий при каждой записи.
type Document struct {
	UpdatedAt time.Time
	ID        string
	Body      []byte
	Version   int64
	Seq       int64
}

// DocumentStore defines interface for the authoritative document storage
type DocumentStore interface {
	// SaveDocument creates or fully replaces a document and advances its
	// change cursor
	SaveDocument(ctx context.Context, doc *Document) error

	// GetDocument retrieves a document by ID
	// Returns ErrDocumentNotFound if the document doesn't exist
	GetDocument(ctx context.Context, id string) (*Document, error)

	// GetDocumentsSince returns documents changed after the given cursor,
	// ordered by cursor
	GetDocumentsSince(ctx context.Context, since int64) ([]*Document, error)

	// DeleteDocument removes a document; deleting a missing document is a no-op
	DeleteDocument(ctx context.Context, id string) error

	// CurrentCursor returns the highest change cursor, 0 for empty storage
	CurrentCursor(ctx context.Context) (int64, error)
}
