package models

import "time"

// MutationKind вид мутации документа.
type MutationKind string

// Поддерживаемые виды мутаций
const (
	MutationCreateNote       MutationKind = "create_note"
	MutationCreateBlock      MutationKind = "create_block"
	MutationCreateTask       MutationKind = "create_task"
	MutationUpdateEntity     MutationKind = "update_entity"
	MutationDeleteEntity     MutationKind = "delete_entity"
	MutationRevertEntity     MutationKind = "revert_entity"
	MutationIncrementCounter MutationKind = "increment_counter"
)

// Mutation представляет одну запись в durable логе локальных мутаций.
// Лог — очередь "ожидает отправки": мутация применяется к локальному кэшу
// немедленно (оптимистично), а на сервер уходит при следующем Sync.
// Доставка at-least-once: сервер обязан переносить повторную отправку.
type Mutation struct {
	CreatedAt       time.Time      `json:"created_at"`
	ID              string         `json:"id"`
	Kind            MutationKind   `json:"kind"`
	Timestamp       string         `json:"timestamp"` // Timestamp упакованный HLC timestamp мутации
	NodeID          string         `json:"node_id"`
	DocumentID      string         `json:"document_id"`
	EntityID        string         `json:"entity_id"`
	ParentEntityID  string         `json:"parent_entity_id,omitempty"` // ParentEntityID родитель для create_block / create_task
	Fields          map[string]any `json:"fields,omitempty"`
	ExpectedVersion int64          `json:"expected_version"`
	Delta           int64          `json:"delta,omitempty"` // Delta приращение для increment_counter
}
