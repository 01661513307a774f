package models

import "time"

// UploadStatus статус отложенной загрузки в BinaryOutbox.
type UploadStatus string

// Жизненный цикл: pending -> uploading -> {synced | error}.
// error терминален только для non-retryable ошибок; ручной повтор
// возвращает запись в pending.
const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusSynced    UploadStatus = "synced"
	UploadStatusError     UploadStatus = "error"
)

// PendingUpload представляет одну отложенную загрузку бинарного файла.
// Пока Status != synced запись - единственная копия данных и обязана
// переживать перезапуски; удалять ее может только RetentionCollector
// и только после подтверждения синхронизации.
type PendingUpload struct {
	CreatedAt      time.Time    `json:"created_at"`
	LastAccessedAt time.Time    `json:"last_accessed_at"` // LastAccessedAt время последнего чтения (LRU-сигнал для retention)
	LastAttemptAt  time.Time    `json:"last_attempt_at"`
	ID             string       `json:"id"`
	OwnerEntityID  string       `json:"owner_entity_id"` // OwnerEntityID сущность, которой принадлежит вложение
	MimeType       string       `json:"mime_type"`
	LastError      string       `json:"last_error,omitempty"`
	Payload        []byte       `json:"payload"` // Payload содержимое файла
	Status         UploadStatus `json:"status"`
	RetryCount     int          `json:"retry_count"`
}

// Clone создает глубокую копию записи.
func (u *PendingUpload) Clone() *PendingUpload {
	payload := make([]byte, len(u.Payload))
	copy(payload, u.Payload)

	clone := *u
	clone.Payload = payload
	return &clone
}

// IsSynced возвращает true, если загрузка подтверждена сервером.
// Только такие записи может удалять RetentionCollector.
func (u *PendingUpload) IsSynced() bool {
	return u.Status == UploadStatusSynced
}
