package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента сервера синхронизации
type ClientAPI interface {
	// Sync отправляет накопленные мутации и забирает изменённые документы
	Sync(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error)

	// Upload загружает бинарный файл и возвращает его публичный URL.
	// Окончательные отказы сервера (413, 415, 400) приходят как
	// *FatalUploadError, всё остальное считается временным сбоем
	Upload(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error)

	// Presence отправляет best-effort событие присутствия
	Presence(ctx context.Context, event api.PresenceEvent) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Sync выполняет один цикл push/pull синхронизации
func (c *Client) Sync(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync", req, &resp); err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// Upload отправляет payload как raw body с MIME типом файла.
// ID загрузки уходит заголовком, чтобы сервер мог дедуплицировать ретраи.
func (c *Client) Upload(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
	url := c.baseURL + "/api/v1/uploads"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(upload.Payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", upload.MimeType)
	req.Header.Set("X-Upload-ID", upload.ID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := errorMessage(respBody)
		switch resp.StatusCode {
		case http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType, http.StatusBadRequest:
			// Сервер не примет этот payload никогда
			return nil, &FatalUploadError{StatusCode: resp.StatusCode, Message: message}
		default:
			return nil, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, message)
		}
	}

	var uploadResp api.UploadResponse
	if err := json.Unmarshal(respBody, &uploadResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &uploadResp, nil
}

// Presence отправляет событие присутствия. Ответ сервера не содержит тела
func (c *Client) Presence(ctx context.Context, event api.PresenceEvent) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/presence", event, nil); err != nil {
		return fmt.Errorf("presence request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, errorMessage(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorMessage достает человекочитаемое сообщение из тела ошибки
func errorMessage(respBody []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(respBody)
}
