package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Sync проверяет успешную синхронизацию
func TestClient_Sync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/sync", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SyncRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, 2, len(req.Mutations))
		assert.Equal(t, int64(41), req.Since)

		w.WriteHeader(http.StatusOK)
		resp := api.SyncResponse{
			Documents: []api.SyncDocument{
				{
					ID:        "doc-1",
					Body:      json.RawMessage(`{"id":"doc-1"}`),
					Version:   7,
					UpdatedAt: time.Now(),
				},
			},
			CurrentTimestamp: "000001724832000:00003:server",
			Cursor:           42,
			Conflicts:        1,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()
	req := api.SyncRequest{
		Mutations: []api.Mutation{
			{
				ID:         "m-1",
				Kind:       "update_entity",
				Timestamp:  "000001724831000:00001:node-a",
				NodeID:     "node-a",
				DocumentID: "doc-1",
				EntityID:   "task-1",
				CreatedAt:  time.Now(),
			},
			{
				ID:         "m-2",
				Kind:       "delete_entity",
				Timestamp:  "000001724831000:00002:node-a",
				NodeID:     "node-a",
				DocumentID: "doc-1",
				EntityID:   "task-2",
				CreatedAt:  time.Now(),
			},
		},
		Since: 41,
	}

	resp, err := client.Sync(ctx, req)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "doc-1", resp.Documents[0].ID)
	assert.Equal(t, int64(42), resp.Cursor)
	assert.Equal(t, 1, resp.Conflicts)
	assert.Equal(t, "000001724832000:00003:server", resp.CurrentTimestamp)
}

// TestClient_Sync_ServerError проверяет обработку ошибок сервера
func TestClient_Sync_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		resp := api.ErrorResponse{
			Message: "database unavailable",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.Sync(ctx, api.SyncRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "database unavailable")
}

// TestClient_Upload проверяет успешную загрузку файла
func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/uploads", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, "upload-1", r.Header.Get("X-Upload-ID"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), body)

		w.WriteHeader(http.StatusCreated)
		resp := api.UploadResponse{
			URL: "https://files.example.com/upload-1.png",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()
	upload := &models.PendingUpload{
		ID:            "upload-1",
		OwnerEntityID: "attach-1",
		MimeType:      "image/png",
		Payload:       []byte("png-bytes"),
		Status:        models.UploadStatusPending,
	}

	resp, err := client.Upload(ctx, upload)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "https://files.example.com/upload-1.png", resp.URL)
}

// TestClient_Upload_FatalStatuses проверяет классификацию окончательных отказов
func TestClient_Upload_FatalStatuses(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
	}{
		{
			name:       "Payload too large",
			statusCode: http.StatusRequestEntityTooLarge,
			message:    "file exceeds 25 MiB limit",
		},
		{
			name:       "Unsupported media type",
			statusCode: http.StatusUnsupportedMediaType,
			message:    "mime type not allowed",
		},
		{
			name:       "Malformed request",
			statusCode: http.StatusBadRequest,
			message:    "empty payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: tt.message})
			}))
			defer server.Close()

			client := NewClient(server.URL)
			upload := &models.PendingUpload{
				ID:       "upload-1",
				MimeType: "application/octet-stream",
				Payload:  []byte("data"),
			}

			resp, err := client.Upload(context.Background(), upload)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, IsFatal(err), "status %d must classify as fatal", tt.statusCode)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

// TestClient_Upload_TransientStatuses проверяет, что остальные сбои
// остаются повторяемыми
func TestClient_Upload_TransientStatuses(t *testing.T) {
	for _, statusCode := range []int{
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusTooManyRequests,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(statusCode)
		}))

		client := NewClient(server.URL)
		upload := &models.PendingUpload{
			ID:       "upload-1",
			MimeType: "image/png",
			Payload:  []byte("data"),
		}

		resp, err := client.Upload(context.Background(), upload)
		server.Close()

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.False(t, IsFatal(err), "status %d must stay retryable", statusCode)
	}
}

// TestClient_Upload_NetworkError проверяет, что ошибки сети - временные
func TestClient_Upload_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // клиент пойдет на закрытый порт

	client := NewClient(server.URL)
	upload := &models.PendingUpload{
		ID:       "upload-1",
		MimeType: "image/png",
		Payload:  []byte("data"),
	}

	resp, err := client.Upload(context.Background(), upload)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.False(t, IsFatal(err))
}

// TestClient_Presence проверяет отправку события присутствия
func TestClient_Presence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/presence", r.URL.Path)

		var event api.PresenceEvent
		err := json.NewDecoder(r.Body).Decode(&event)
		require.NoError(t, err)

		assert.Equal(t, "node-a", event.NodeID)
		assert.Equal(t, "typing", event.Kind)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	event := api.PresenceEvent{
		NodeID:     "node-a",
		DocumentID: "doc-1",
		Kind:       "typing",
		Timestamp:  "000001724831000:00001:node-a",
	}

	err := client.Presence(context.Background(), event)

	require.NoError(t, err)
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Имитируем долгий запрос
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	resp, err := client.Sync(ctx, api.SyncRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

// TestClient_InvalidJSON проверяет обработку невалидного JSON в ответе
func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Sync(context.Background(), api.SyncRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// TestClient_HTTPClientRedirect проверяет обработку редиректов
func TestClient_HTTPClientRedirect(t *testing.T) {
	redirectCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redirectCount < 3 {
			redirectCount++
			w.Header().Set("Location", "/redirected")
			w.WriteHeader(http.StatusFound)
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.SyncResponse{Cursor: 1})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Sync(context.Background(), api.SyncRequest{})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.Cursor)
	assert.Equal(t, 3, redirectCount) // Проверяем что было 3 редиректа
}
