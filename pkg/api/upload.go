package api

// UploadResponse представляет ответ сервера на загрузку бинарного файла.
type UploadResponse struct {
	URL string `json:"url"` // URL публичный адрес загруженного файла
}

// Upload size and type limits enforced by the server.
// Клиент использует их только в сообщениях об ошибках: классификация
// ответа идёт по HTTP статусу, а не по локальной проверке.
const (
	// MaxUploadBytes максимальный размер одного файла (25 MiB)
	MaxUploadBytes = 25 << 20
)
