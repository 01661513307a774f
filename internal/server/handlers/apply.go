package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

// applyOutcome результат применения одной мутации
type applyOutcome int

const (
	outcomeApplied applyOutcome = iota
	outcomeConflict
	outcomeSkipped
)

// applyMutation применяет мутацию клиента к авторитетной копии документа.
// doc == nil означает, что документ серверу еще не известен. Возвращает
// новое состояние (nil — документ удален) и исход.
//
// Доставка at-least-once: повтор уже примененной create-мутации
// распознается по entity id и схлопывается в no-op.
func applyMutation(doc *models.Document, m api.Mutation, now time.Time) (*models.Document, applyOutcome, error) {
	fields, err := decodeFields(m.Fields)
	if err != nil {
		return doc, outcomeSkipped, fmt.Errorf("failed to decode mutation fields: %w", err)
	}

	switch models.MutationKind(m.Kind) {
	case models.MutationCreateNote:
		if doc != nil {
			// Повторная доставка: документ уже создан
			return doc, outcomeApplied, nil
		}
		return &models.Document{
			ID:        m.DocumentID,
			Version:   1,
			UpdatedAt: now,
			Root: &models.Node{
				ID:   uuid.New().String(),
				Type: models.NodeTypeNote,
				Attrs: models.Attrs{
					EntityID: m.EntityID,
					Version:  1,
					Fields:   fields,
				},
			},
		}, outcomeApplied, nil

	case models.MutationCreateBlock, models.MutationCreateTask:
		if doc == nil {
			return nil, outcomeSkipped, fmt.Errorf("document %s not found", m.DocumentID)
		}
		if doc.FindEntity(m.EntityID) != nil {
			return doc, outcomeApplied, nil
		}

		next := doc.Clone()
		parent := next.FindEntity(m.ParentEntityID)
		if parent == nil {
			return doc, outcomeConflict, nil
		}

		nodeType := models.NodeTypeBlock
		if models.MutationKind(m.Kind) == models.MutationCreateTask {
			nodeType = models.NodeTypeTask
		}
		parent.Children = append(parent.Children, &models.Node{
			ID:   uuid.New().String(),
			Type: nodeType,
			Attrs: models.Attrs{
				EntityID: m.EntityID,
				Version:  1,
				Order:    parent.MaxChildOrder() + 1,
				Fields:   fields,
			},
		})
		next.Version++
		next.UpdatedAt = now
		return next, outcomeApplied, nil

	case models.MutationUpdateEntity, models.MutationRevertEntity:
		return applyEntityUpdate(doc, m, now, true, func(node *models.Node) {
			if models.MutationKind(m.Kind) == models.MutationRevertEntity {
				node.Attrs.Fields = fields
			} else {
				mergeNodeFields(node, fields)
			}
			node.Attrs.Version = m.ExpectedVersion + 1
		})

	case models.MutationIncrementCounter:
		// Инкременты коммутативны: проверка версии не нужна,
		// иначе параллельные инкременты с разных устройств
		// конфликтовали бы и дельта терялась
		return applyEntityUpdate(doc, m, now, false, func(node *models.Node) {
			for field := range fields {
				mergeNodeFields(node, map[string]any{field: nodeNumericField(node, field) + m.Delta})
			}
			node.Attrs.Version++
		})

	case models.MutationDeleteEntity:
		if doc == nil {
			return nil, outcomeSkipped, fmt.Errorf("document %s not found", m.DocumentID)
		}
		if doc.Root != nil && doc.Root.Attrs.EntityID == m.EntityID {
			// Удаление корневой сущности удаляет документ целиком
			return nil, outcomeApplied, nil
		}

		next := doc.Clone()
		if !next.Root.RemoveEntity(m.EntityID) {
			// Уже удалена — повторная доставка
			return doc, outcomeApplied, nil
		}
		next.Version++
		next.UpdatedAt = now
		return next, outcomeApplied, nil

	default:
		return doc, outcomeSkipped, fmt.Errorf("unknown mutation kind %q", m.Kind)
	}
}

// applyEntityUpdate применяет изменение сущности с проверкой оптимистичной
// версии. Несовпадение ожидаемой версии — конфликт, мутация отклоняется.
// checkVersion == false отключает проверку для коммутативных мутаций.
func applyEntityUpdate(doc *models.Document, m api.Mutation, now time.Time, checkVersion bool, apply func(*models.Node)) (*models.Document, applyOutcome, error) {
	if doc == nil {
		return nil, outcomeSkipped, fmt.Errorf("document %s not found", m.DocumentID)
	}

	next := doc.Clone()
	node := next.FindEntity(m.EntityID)
	if node == nil {
		return doc, outcomeConflict, nil
	}

	if checkVersion && m.ExpectedVersion != 0 && node.Attrs.Version != m.ExpectedVersion {
		return doc, outcomeConflict, nil
	}

	apply(node)
	next.Version++
	next.UpdatedAt = now
	return next, outcomeApplied, nil
}

func decodeFields(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func mergeNodeFields(node *models.Node, fields map[string]any) {
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

// nodeNumericField читает числовое поле узла; после JSON round-trip
// числа приходят как float64
func nodeNumericField(node *models.Node, field string) int64 {
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
