package api

import (
	"encoding/json"
	"time"
)

// Mutation представляет одну локальную мутацию документа для отправки на сервер.
// Timestamp — упакованный HLC timestamp клиента, задающий причинный порядок.
type Mutation struct {
	CreatedAt       time.Time       `json:"created_at"`
	ID              string          `json:"id"`
	Kind            string          `json:"kind"`      // Kind вид мутации: "create_note", "update_entity", ...
	Timestamp       string          `json:"timestamp"` // Timestamp упакованный HLC ("<millis>:<counter>:<node>")
	NodeID          string          `json:"node_id"`
	DocumentID      string          `json:"document_id"`
	EntityID        string          `json:"entity_id"`
	ParentEntityID  string          `json:"parent_entity_id,omitempty"` // ParentEntityID родитель для create_block / create_task
	Fields          json.RawMessage `json:"fields,omitempty"` // Fields изменяемые поля сущности (JSON объект)
	ExpectedVersion int64           `json:"expected_version"`
	Delta           int64           `json:"delta,omitempty"` // Delta приращение для счетчиков
}

// SyncDocument представляет авторитетное состояние документа в ответе сервера.
type SyncDocument struct {
	UpdatedAt time.Time       `json:"updated_at"`
	ID        string          `json:"id"`
	Body      json.RawMessage `json:"body"` // Body сериализованное дерево документа
	Version   int64           `json:"version"`
}

// SyncRequest представляет запрос на синхронизацию от клиента
type SyncRequest struct {
	Mutations []Mutation `json:"mutations"`
	Since     int64      `json:"since"` // Since серверный курсор последней синхронизации
}

// SyncResponse представляет ответ сервера на синхронизацию
type SyncResponse struct {
	Documents        []SyncDocument `json:"documents"`         // Documents изменённые документы от сервера
	CurrentTimestamp string         `json:"current_timestamp"` // CurrentTimestamp упакованный HLC сервера
	Cursor           int64          `json:"cursor"`            // Cursor курсор для следующего Since
	Conflicts        int            `json:"conflicts"`         // Conflicts количество отклонённых по версии мутаций
	Skipped          int            `json:"skipped"`           // Skipped количество невалидных мутаций
}

// PresenceEvent представляет best-effort событие присутствия.
// Канал не durable: доставка не гарантируется и не влияет на корректность.
type PresenceEvent struct {
	NodeID     string `json:"node_id"`
	DocumentID string `json:"document_id"`
	Kind       string `json:"kind"` // Kind тип события: "typing", "viewing"
	Timestamp  string `json:"timestamp"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
