package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/notesync/internal/hlc"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/pkg/api"
)

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.DocumentStore
	clock   *authorityClock
	nowFunc func() time.Time
}

// NewSyncHandler creates a new sync handler
// nodeID identifies the server's HLC node in issued timestamps
func NewSyncHandler(logger *slog.Logger, store storage.DocumentStore, nodeID string) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: store,
		clock:   newAuthorityClock(nodeID),
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// HandleSync обрабатывает POST /api/v1/sync:
// применяет мутации клиента в порядке прихода и возвращает авторитетные
// состояния документов, изменившихся после курсора клиента
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode sync request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.Info("sync request", "since", req.Since, "mutations_count", len(req.Mutations))

	conflicts := 0
	skipped := 0

	for _, m := range req.Mutations {
		// Чужие часы учитываются до применения: выданная в ответе метка
		// окажется позже любой принятой мутации
		remote, err := hlc.Unpack(m.Timestamp)
		if err != nil {
			h.logger.Warn("mutation has malformed timestamp, skipping", "mutation_id", m.ID, "error", err)
			skipped++
			continue
		}
		h.clock.Observe(remote)

		doc, err := h.loadDocument(ctx, m.DocumentID)
		if err != nil {
			h.logger.Error("failed to load document", "error", err, "document_id", m.DocumentID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		next, outcome, applyErr := applyMutation(doc, m, h.nowFunc())
		switch outcome {
		case outcomeConflict:
			conflicts++
			h.logger.Debug("mutation rejected", "mutation_id", m.ID, "kind", m.Kind, "entity_id", m.EntityID)
			continue
		case outcomeSkipped:
			skipped++
			h.logger.Warn("mutation skipped", "mutation_id", m.ID, "kind", m.Kind, "error", applyErr)
			continue
		case outcomeApplied:
		}

		if next == doc {
			// Повторная доставка, состояние не изменилось
			continue
		}

		if err := h.saveDocument(ctx, m.DocumentID, next); err != nil {
			h.logger.Error("failed to store document", "error", err, "document_id", m.DocumentID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	docs, err := h.storage.GetDocumentsSince(ctx, req.Since)
	if err != nil {
		h.logger.Error("failed to get documents", "error", err, "since", req.Since)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	apiDocs := make([]api.SyncDocument, 0, len(docs))
	cursor := req.Since
	for _, doc := range docs {
		apiDocs = append(apiDocs, api.SyncDocument{
			ID:        doc.ID,
			Version:   doc.Version,
			UpdatedAt: doc.UpdatedAt,
			Body:      doc.Body,
		})
		if doc.Seq > cursor {
			cursor = doc.Seq
		}
	}

	response := api.SyncResponse{
		Documents:        apiDocs,
		CurrentTimestamp: hlc.Pack(h.clock.Tick()),
		Cursor:           cursor,
		Conflicts:        conflicts,
		Skipped:          skipped,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}

	h.logger.Info("sync completed",
		"received_mutations", len(req.Mutations),
		"returned_documents", len(apiDocs),
		"conflicts", conflicts,
		"skipped", skipped)
}

// loadDocument читает и декодирует документ; отсутствие документа — nil
func (h *SyncHandler) loadDocument(ctx context.Context, id string) (*models.Document, error) {
	stored, err := h.storage.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var doc models.Document
	if err := json.Unmarshal(stored.Body, &doc); err != nil {
		return nil, err
	}
	doc.ID = stored.ID
	doc.Version = stored.Version
	doc.UpdatedAt = stored.UpdatedAt
	return &doc, nil
}

// saveDocument сериализует и сохраняет документ; nil означает удаление
func (h *SyncHandler) saveDocument(ctx context.Context, id string, doc *models.Document) error {
	if doc == nil {
		return h.storage.DeleteDocument(ctx, id)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return h.storage.SaveDocument(ctx, &storage.Document{
		ID:        doc.ID,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
		Body:      body,
	})
}
