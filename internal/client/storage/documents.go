package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out documents_mock.go . DocumentStorage

// DocumentStorage defines interface for the local document cache.
// Все писатели обязаны использовать один и тот же транзакционный
// read-modify-write паттерн: SaveDocument атомарно перезаписывает документ
// и его плоский индекс сущностей.
type DocumentStorage interface {
	// SaveDocument stores the document and rewrites its entity index
	// (entityID -> documentID) in a single transaction
	SaveDocument(ctx context.Context, doc *models.Document) error

	// GetDocument retrieves a document by ID
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// GetAllDocuments returns all cached documents
	GetAllDocuments(ctx context.Context) ([]*models.Document, error)

	// FindDocumentByEntity resolves the document containing the entity.
	// Uses the flattened index first, falls back to a full scan.
	// Returns ErrDocumentNotFound if no document contains the entity
	FindDocumentByEntity(ctx context.Context, entityID string) (*models.Document, error)

	// DeleteDocument removes a document and its index entries
	DeleteDocument(ctx context.Context, id string) error
}
