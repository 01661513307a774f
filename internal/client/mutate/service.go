package mutate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/client/clock"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс мутаторов документов.
// Каждый мутатор - транзакционный read-modify-write над локальным кэшем:
// читаем документ, строим полностью новое состояние с поднятыми версиями,
// сохраняем одной транзакцией и ставим мутацию в durable лог отправки.
//
// "Сущность не найдена" - не ошибка, а тихий no-op (false, nil): сущность
// может принадлежать еще не реплицированному документу.
type Service interface {
	// CreateNote создает новый документ-заметку (version = 1)
	CreateNote(ctx context.Context, title string) (*models.Document, error)

	// CreateBlock вставляет блок в конец детей родительской сущности
	CreateBlock(ctx context.Context, parentEntityID string, fields map[string]any) (string, error)

	// CreateTask вставляет задачу в конец детей родительской сущности
	CreateTask(ctx context.Context, parentEntityID string, fields map[string]any) (string, error)

	// UpdateEntity мержит поля в сущность и поднимает ее версию до
	// expectedVersion + 1. Возвращает true, если сущность найдена и обновлена
	UpdateEntity(ctx context.Context, entityID string, fields map[string]any, expectedVersion int64) (bool, error)

	// SetEntityFields - как UpdateEntity, но от текущей версии сущности.
	// Используется write-back путями (upload coordinator), у которых нет
	// пользовательской ожидаемой версии
	SetEntityFields(ctx context.Context, entityID string, fields map[string]any) (bool, error)

	// DeleteEntity удаляет сущность из дерева документа
	DeleteEntity(ctx context.Context, entityID string) (bool, error)

	// RevertEntity возвращает поля сущности к историческому снапшоту.
	// Версия растет как у обычного обновления: revert двигает историю
	// вперед, а не откатывает счетчик
	RevertEntity(ctx context.Context, entityID string, snapshot map[string]any, expectedVersion int64) (bool, error)

	// IncrementCounter прибавляет delta к числовому полю счетчика
	IncrementCounter(ctx context.Context, entityID, field string, delta int64) (bool, error)
}

type service struct {
	documents storage.DocumentStorage
	log       storage.MutationLog
	clocks    *clock.Service
	logger    *slog.Logger
	nowFunc   func() time.Time
}

// NewService creates a new mutator service
func NewService(documents storage.DocumentStorage, log storage.MutationLog, clocks *clock.Service, logger *slog.Logger) Service {
	return &service{
		documents: documents,
		log:       log,
		clocks:    clocks,
		logger:    logger,
		nowFunc:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateNote создает новый документ с корневым узлом заметки
func (s *service) CreateNote(ctx context.Context, title string) (*models.Document, error) {
	entityID := uuid.New().String()
	doc := &models.Document{
		ID:        uuid.New().String(),
		Version:   1,
		UpdatedAt: s.nowFunc(),
		Root: &models.Node{
			ID:   uuid.New().String(),
			Type: models.NodeTypeNote,
			Attrs: models.Attrs{
				EntityID: entityID,
				Version:  1,
				Fields:   map[string]any{"title": title},
			},
		},
	}

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save new note: %w", err)
	}

	if err := s.logMutation(ctx, models.MutationCreateNote, doc.ID, entityID, "", map[string]any{"title": title}, 0, 0); err != nil {
		return nil, err
	}

	s.logger.Info("created note", "document_id", doc.ID, "entity_id", entityID)
	return doc, nil
}

// CreateBlock вставляет блок как последнего ребенка родительской сущности
func (s *service) CreateBlock(ctx context.Context, parentEntityID string, fields map[string]any) (string, error) {
	return s.createChild(ctx, models.NodeTypeBlock, models.MutationCreateBlock, parentEntityID, fields)
}

// CreateTask вставляет задачу как последнего ребенка родительской сущности
func (s *service) CreateTask(ctx context.Context, parentEntityID string, fields map[string]any) (string, error) {
	return s.createChild(ctx, models.NodeTypeTask, models.MutationCreateTask, parentEntityID, fields)
}

func (s *service) createChild(ctx context.Context, nodeType models.NodeType, kind models.MutationKind, parentEntityID string, fields map[string]any) (string, error) {
	doc, err := s.documents.FindDocumentByEntity(ctx, parentEntityID)
	if err != nil {
		if err == storage.ErrDocumentNotFound {
			return "", fmt.Errorf("parent entity %s not found", parentEntityID)
		}
		return "", fmt.Errorf("failed to find parent document: %w", err)
	}

	next := doc.Clone()
	parent := next.FindEntity(parentEntityID)
	if parent == nil {
		return "", fmt.Errorf("parent entity %s not found", parentEntityID)
	}

	entityID := uuid.New().String()
	child := &models.Node{
		ID:   uuid.New().String(),
		Type: nodeType,
		Attrs: models.Attrs{
			EntityID: entityID,
			Version:  1,
			// Порядок вставки: max существующих соседей + 1
			Order:  parent.MaxChildOrder() + 1,
			Fields: cloneFields(fields),
		},
	}
	parent.Children = append(parent.Children, child)

	next.Version++
	next.UpdatedAt = s.nowFunc()

	if err := s.documents.SaveDocument(ctx, next); err != nil {
		return "", fmt.Errorf("failed to save document: %w", err)
	}

	if err := s.logMutation(ctx, kind, next.ID, entityID, parentEntityID, fields, 0, 0); err != nil {
		return "", err
	}

	return entityID, nil
}

// UpdateEntity мержит поля и поднимает версию сущности до expectedVersion + 1
func (s *service) UpdateEntity(ctx context.Context, entityID string, fields map[string]any, expectedVersion int64) (bool, error) {
	return s.applyUpdate(ctx, models.MutationUpdateEntity, entityID, fields, 0, func(node *models.Node) {
		mergeFields(node, fields)
		node.Attrs.Version = expectedVersion + 1
	})
}

// SetEntityFields мержит поля от текущей версии сущности (read-modify-write)
func (s *service) SetEntityFields(ctx context.Context, entityID string, fields map[string]any) (bool, error) {
	return s.applyUpdate(ctx, models.MutationUpdateEntity, entityID, fields, 0, func(node *models.Node) {
		mergeFields(node, fields)
		node.Attrs.Version++
	})
}

// RevertEntity применяет снапшот как обычное обновление
func (s *service) RevertEntity(ctx context.Context, entityID string, snapshot map[string]any, expectedVersion int64) (bool, error) {
	return s.applyUpdate(ctx, models.MutationRevertEntity, entityID, snapshot, 0, func(node *models.Node) {
		// Поля приходят из истории, но версия движется только вперед
		node.Attrs.Fields = cloneFields(snapshot)
		node.Attrs.Version = expectedVersion + 1
	})
}

// IncrementCounter прибавляет delta к числовому полю.
// Read-modify-write под тем же сканом, что и остальные мутаторы:
// быстрые последовательные инкременты не теряются.
func (s *service) IncrementCounter(ctx context.Context, entityID, field string, delta int64) (bool, error) {
	// Имя поля уходит в лог вместе с дельтой, чтобы сервер знал, что двигать
	return s.applyUpdate(ctx, models.MutationIncrementCounter, entityID, map[string]any{field: delta}, delta, func(node *models.Node) {
		current := numericField(node, field)
		mergeFields(node, map[string]any{field: current + delta})
		node.Attrs.Version++
	})
}

// DeleteEntity удаляет сущность из дерева.
// Удаление корневой сущности удаляет весь документ.
func (s *service) DeleteEntity(ctx context.Context, entityID string) (bool, error) {
	doc, err := s.documents.FindDocumentByEntity(ctx, entityID)
	if err != nil {
		if err == storage.ErrDocumentNotFound {
			// Сущность не найдена - тихий no-op
			return false, nil
		}
		return false, fmt.Errorf("failed to find document: %w", err)
	}

	next := doc.Clone()

	if next.Root != nil && next.Root.Attrs.EntityID == entityID {
		if err := s.documents.DeleteDocument(ctx, next.ID); err != nil {
			return false, fmt.Errorf("failed to delete document: %w", err)
		}
	} else {
		if !next.Root.RemoveEntity(entityID) {
			return false, nil
		}
		next.Version++
		next.UpdatedAt = s.nowFunc()
		if err := s.documents.SaveDocument(ctx, next); err != nil {
			return false, fmt.Errorf("failed to save document: %w", err)
		}
	}

	if err := s.logMutation(ctx, models.MutationDeleteEntity, doc.ID, entityID, "", nil, 0, 0); err != nil {
		return false, err
	}

	return true, nil
}

// applyUpdate - общий алгоритм "обновить сущность по id":
// найти документ, склонировать, найти узел в копии, применить apply,
// поднять версию документа и сохранить документ вместе с индексом одной
// транзакцией. Возвращает, произошло ли обновление.
func (s *service) applyUpdate(
	ctx context.Context,
	kind models.MutationKind,
	entityID string,
	fields map[string]any,
	delta int64,
	apply func(*models.Node),
) (bool, error) {
	doc, err := s.documents.FindDocumentByEntity(ctx, entityID)
	if err != nil {
		if err == storage.ErrDocumentNotFound {
			s.logger.Debug("mutation target not found, skipping", "entity_id", entityID, "kind", kind)
			return false, nil
		}
		return false, fmt.Errorf("failed to find document: %w", err)
	}

	next := doc.Clone()
	node := next.FindEntity(entityID)
	if node == nil {
		return false, nil
	}

	priorVersion := node.Attrs.Version
	apply(node)

	next.Version++
	next.UpdatedAt = s.nowFunc()

	if err := s.documents.SaveDocument(ctx, next); err != nil {
		return false, fmt.Errorf("failed to save document: %w", err)
	}

	if err := s.logMutation(ctx, kind, next.ID, entityID, "", fields, priorVersion, delta); err != nil {
		return false, err
	}

	s.logger.Debug("applied mutation",
		"kind", kind,
		"entity_id", entityID,
		"entity_version", node.Attrs.Version,
		"document_version", next.Version)

	return true, nil
}

// logMutation ставит мутацию в durable лог отправки.
// Timestamp берется через NextSync: мутаторы обязаны оставаться
// синхронными, персист часов уходит в фон.
func (s *service) logMutation(ctx context.Context, kind models.MutationKind, documentID, entityID, parentEntityID string, fields map[string]any, expectedVersion, delta int64) error {
	mutation := &models.Mutation{
		ID:              uuid.New().String(),
		Kind:            kind,
		Timestamp:       s.clocks.NextSync(),
		NodeID:          s.clocks.NodeID(),
		DocumentID:      documentID,
		EntityID:        entityID,
		ParentEntityID:  parentEntityID,
		Fields:          cloneFields(fields),
		ExpectedVersion: expectedVersion,
		Delta:           delta,
		CreatedAt:       s.nowFunc(),
	}

	if err := s.log.Append(ctx, mutation); err != nil {
		return fmt.Errorf("failed to append mutation to log: %w", err)
	}

	return nil
}

// mergeFields мержит поля в узел, создавая map при необходимости
func mergeFields(node *models.Node, fields map[string]any) {
	if len(fields) == 0 {
		return
	}
	if node.Attrs.Fields == nil {
		node.Attrs.Fields = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		node.Attrs.Fields[k] = v
	}
}

// cloneFields возвращает копию map полей (nil для пустого входа)
func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	clone := make(map[string]any, len(fields))
	for k, v := range fields {
		clone[k] = v
	}
	return clone
}

// numericField читает числовое поле узла.
// После JSON round-trip числа приходят как float64
func numericField(node *models.Node, field string) int64 {
	if node.Attrs.Fields == nil {
		return 0
	}
	switch v := node.Attrs.Fields[field].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
