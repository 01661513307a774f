package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/clock"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию с сервером
	Sync(ctx context.Context) (*SyncResult, error)

	// PendingCount возвращает количество мутаций, ожидающих отправки
	PendingCount(ctx context.Context) (int, error)
}

type service struct {
	apiClient httpClient.ClientAPI
	mutations storage.MutationLog
	documents storage.DocumentStorage
	metadata  storage.MetadataStorage
	clocks    *clock.Service
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(
	apiClient httpClient.ClientAPI,
	mutations storage.MutationLog,
	documents storage.DocumentStorage,
	metadata storage.MetadataStorage,
	clocks *clock.Service,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient: apiClient,
		mutations: mutations,
		documents: documents,
		metadata:  metadata,
		clocks:    clocks,
		logger:    logger,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	Pushed    int // количество отправленных на сервер мутаций
	Pulled    int // количество полученных с сервера документов
	Applied   int // количество примененных локально документов
	Discarded int // количество отброшенных по версии документов (локальная новее)
	Skipped   int // количество пропущенных документов (ошибки декодирования)
	Conflicts int // количество мутаций, отклоненных сервером по версии
}

// Sync performs full synchronization with server
// 1. Pushes pending mutations in HLC order
// 2. Pulls authoritative documents changed since the last cursor
// 3. Applies pulled documents to the local cache with a version guard
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	// Курсор последней синхронизации; при ошибке чтения начинаем с нуля
	cursor, err := s.metadata.GetLastSyncCursor(ctx)
	if err != nil {
		s.logger.Warn("failed to get last sync cursor, using 0", "error", err)
		cursor = 0
	}

	// Pending уже отсортирован по HLC timestamp: bolt ключи лексикографичны
	pending, err := s.mutations.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending mutations: %w", err)
	}

	s.logger.Info("starting synchronization", "pending", len(pending), "cursor", cursor)

	apiMutations := make([]api.Mutation, 0, len(pending))
	for _, m := range pending {
		apiMutation, err := toAPIMutation(m)
		if err != nil {
			// Битую мутацию нельзя оставлять в логе навсегда: она
			// встанет в голову очереди и заблокирует отправку
			s.logger.Warn("failed to encode mutation, dropping", "mutation_id", m.ID, "error", err)
			if err := s.mutations.MarkApplied(ctx, []string{m.ID}); err != nil {
				return nil, fmt.Errorf("failed to drop bad mutation: %w", err)
			}
			continue
		}
		apiMutations = append(apiMutations, apiMutation)
	}

	syncResp, err := s.apiClient.Sync(ctx, api.SyncRequest{
		Mutations: apiMutations,
		Since:     cursor,
	})
	if err != nil {
		// Мутации остаются в логе и уйдут со следующей попыткой
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	result.Pushed = len(apiMutations)
	result.Pulled = len(syncResp.Documents)
	result.Conflicts = syncResp.Conflicts

	// Сервер принял батч (включая отклоненные по версии мутации):
	// локальный лог можно очищать
	if len(pending) > 0 {
		ids := make([]string, 0, len(pending))
		for _, m := range pending {
			ids = append(ids, m.ID)
		}
		if err := s.mutations.MarkApplied(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to mark mutations applied: %w", err)
		}
	}

	// Серверный HLC двигает локальные часы вперед
	if syncResp.CurrentTimestamp != "" {
		if err := s.clocks.ObserveRemote(ctx, syncResp.CurrentTimestamp); err != nil {
			s.logger.Warn("failed to observe server timestamp", "error", err)
		}
	}

	for _, apiDoc := range syncResp.Documents {
		doc, err := decodeDocument(apiDoc)
		if err != nil {
			s.logger.Warn("failed to decode document, skipping",
				"document_id", apiDoc.ID,
				"error", err)
			result.Skipped++
			continue
		}

		applied, err := s.mergeDocument(ctx, doc)
		if err != nil {
			s.logger.Warn("failed to merge document, skipping",
				"document_id", doc.ID,
				"error", err)
			result.Skipped++
			continue
		}

		if applied {
			result.Applied++
		} else {
			result.Discarded++
		}
	}

	// Курсор сохраняем последним: при падении до этой точки следующий
	// цикл перечитает те же документы, что безопасно
	if err := s.metadata.SaveLastSyncCursor(ctx, syncResp.Cursor); err != nil {
		s.logger.Warn("failed to save sync cursor", "error", err)
	}

	s.logger.Info("synchronization completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"applied", result.Applied,
		"discarded", result.Discarded,
		"skipped", result.Skipped,
		"conflicts", result.Conflicts)

	return result, nil
}

// mergeDocument применяет авторитетный документ сервера к локальному кэшу.
// Версионная защита: серверная копия пишется, только если она строго новее
// локальной - иначе затерлись бы неотправленные локальные правки.
func (s *service) mergeDocument(ctx context.Context, doc *models.Document) (bool, error) {
	existing, err := s.documents.GetDocument(ctx, doc.ID)
	if err != nil {
		if err == storage.ErrDocumentNotFound {
			return true, s.documents.SaveDocument(ctx, doc)
		}
		return false, fmt.Errorf("failed to get existing document: %w", err)
	}

	if doc.Version <= existing.Version {
		s.logger.Debug("discarding server document (local is newer)",
			"document_id", doc.ID,
			"server_version", doc.Version,
			"local_version", existing.Version)
		return false, nil
	}

	return true, s.documents.SaveDocument(ctx, doc)
}

// PendingCount возвращает количество мутаций, еще не принятых сервером
func (s *service) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.mutations.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending mutations: %w", err)
	}
	return len(pending), nil
}

// toAPIMutation конвертирует мутацию лога в wire формат
func toAPIMutation(m *models.Mutation) (api.Mutation, error) {
	var fields json.RawMessage
	if len(m.Fields) > 0 {
		data, err := json.Marshal(m.Fields)
		if err != nil {
			return api.Mutation{}, fmt.Errorf("failed to marshal fields: %w", err)
		}
		fields = data
	}

	return api.Mutation{
		ID:              m.ID,
		Kind:            string(m.Kind),
		Timestamp:       m.Timestamp,
		NodeID:          m.NodeID,
		DocumentID:      m.DocumentID,
		EntityID:        m.EntityID,
		ParentEntityID:  m.ParentEntityID,
		Fields:          fields,
		ExpectedVersion: m.ExpectedVersion,
		Delta:           m.Delta,
		CreatedAt:       m.CreatedAt,
	}, nil
}

// decodeDocument разбирает авторитетный документ из ответа сервера.
// Body несет дерево документа, метаданные приходят отдельными полями.
func decodeDocument(apiDoc api.SyncDocument) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(apiDoc.Body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document body: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("document %s has no root node", apiDoc.ID)
	}

	doc.ID = apiDoc.ID
	doc.Version = apiDoc.Version
	doc.UpdatedAt = apiDoc.UpdatedAt
	return &doc, nil
}
