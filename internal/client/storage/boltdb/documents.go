package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// SaveDocument stores the document and rewrites its flattened entity index
// (entityID -> documentID) in a single transaction.
// Плоская проекция обновляется в той же транзакции, что и дерево:
// мутатор никогда не может увидеть рассогласованный индекс.
func (s *Storage) SaveDocument(ctx context.Context, doc *models.Document) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocuments)
		index := tx.Bucket(bucketEntityIndex)
		if docs == nil || index == nil {
			return fmt.Errorf("document buckets not found")
		}

		// Удаляем index-записи предыдущей версии документа
		if old := docs.Get([]byte(doc.ID)); old != nil {
			var prev models.Document
			if err := json.Unmarshal(old, &prev); err == nil {
				for _, entityID := range prev.EntityIDs() {
					if err := index.Delete([]byte(entityID)); err != nil {
						return fmt.Errorf("failed to drop index entry: %w", err)
					}
				}
			}
		}

		if err := docs.Put([]byte(doc.ID), data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		// Перестраиваем индекс для нового состояния
		for _, entityID := range doc.EntityIDs() {
			if err := index.Put([]byte(entityID), []byte(doc.ID)); err != nil {
				return fmt.Errorf("failed to save index entry: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("document transaction failed: %w", err)
	}

	return nil
}

// GetDocument retrieves a document by ID
func (s *Storage) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return storage.ErrDocumentNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// GetAllDocuments returns all cached documents
func (s *Storage) GetAllDocuments(ctx context.Context) ([]*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var docs []*models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all documents: %w", err)
	}

	return docs, nil
}

// FindDocumentByEntity resolves the document containing the entity.
// Сначала смотрим плоский индекс; при промахе — полный скан документов
// (сущности в дереве отдельно не индексируются сервером, индекс может
// отставать после прямого применения pull-а).
func (s *Storage) FindDocumentByEntity(ctx context.Context, entityID string) (*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocuments)
		index := tx.Bucket(bucketEntityIndex)
		if docs == nil {
			return storage.ErrDocumentNotFound
		}

		// Быстрый путь: индекс
		if index != nil {
			if docID := index.Get([]byte(entityID)); docID != nil {
				if data := docs.Get(docID); data != nil {
					candidate := &models.Document{}
					if err := json.Unmarshal(data, candidate); err != nil {
						return fmt.Errorf("failed to unmarshal indexed document: %w", err)
					}
					if candidate.FindEntity(entityID) != nil {
						doc = candidate
						return nil
					}
				}
			}
		}

		// Медленный путь: полный скан
		err := docs.ForEach(func(k, v []byte) error {
			if doc != nil {
				return nil
			}
			candidate := &models.Document{}
			if err := json.Unmarshal(v, candidate); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}
			if candidate.FindEntity(entityID) != nil {
				doc = candidate
			}
			return nil
		})
		if err != nil {
			return err
		}

		if doc == nil {
			return storage.ErrDocumentNotFound
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument removes a document and its index entries
func (s *Storage) DeleteDocument(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocuments)
		index := tx.Bucket(bucketEntityIndex)
		if docs == nil {
			return storage.ErrDocumentNotFound
		}

		data := docs.Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		var doc models.Document
		if err := json.Unmarshal(data, &doc); err == nil && index != nil {
			for _, entityID := range doc.EntityIDs() {
				if err := index.Delete([]byte(entityID)); err != nil {
					return fmt.Errorf("failed to drop index entry: %w", err)
				}
			}
		}

		if err := docs.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}
