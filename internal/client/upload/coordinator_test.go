package upload

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/mutate"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// fastConfig сжимает все задержки, чтобы тест шел миллисекунды
func fastConfig() Config {
	return Config{
		Workers:     2,
		SettleDelay: time.Millisecond,
		RetryBase:   time.Millisecond,
		RetryCap:    5 * time.Millisecond,
	}
}

// memOutbox - потокобезопасный in-memory outbox поверх moq мока
type memOutbox struct {
	mu      sync.Mutex
	uploads map[string]*models.PendingUpload
}

func newMemOutbox() (*memOutbox, *storage.OutboxStorageMock) {
	m := &memOutbox{uploads: make(map[string]*models.PendingUpload)}

	mock := &storage.OutboxStorageMock{
		SaveUploadFunc: func(ctx context.Context, upload *models.PendingUpload) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.uploads[upload.ID] = upload.Clone()
			return nil
		},
		GetUploadFunc: func(ctx context.Context, id string) (*models.PendingUpload, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			upload, ok := m.uploads[id]
			if !ok {
				return nil, storage.ErrUploadNotFound
			}
			return upload.Clone(), nil
		},
		GetUnsyncedUploadsFunc: func(ctx context.Context) ([]*models.PendingUpload, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var result []*models.PendingUpload
			for _, upload := range m.uploads {
				if !upload.IsSynced() {
					result = append(result, upload.Clone())
				}
			}
			return result, nil
		},
	}

	return m, mock
}

func (m *memOutbox) get(id string) *models.PendingUpload {
	m.mu.Lock()
	defer m.mu.Unlock()
	if upload, ok := m.uploads[id]; ok {
		return upload.Clone()
	}
	return nil
}

func (m *memOutbox) put(upload *models.PendingUpload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads[upload.ID] = upload.Clone()
}

func (m *memOutbox) status(id string) models.UploadStatus {
	if upload := m.get(id); upload != nil {
		return upload.Status
	}
	return ""
}

func okMutators() *mutate.ServiceMock {
	return &mutate.ServiceMock{
		SetEntityFieldsFunc: func(ctx context.Context, entityID string, fields map[string]any) (bool, error) {
			return true, nil
		},
	}
}

// TestCoordinator_Submit проверяет создание durable записи до постановки
// в очередь
func TestCoordinator_Submit(t *testing.T) {
	outbox, outboxMock := newMemOutbox()
	c := NewCoordinator(outboxMock, &httpClient.ClientAPIMock{}, okMutators(), testLogger(), fastConfig())

	id, err := c.Submit(context.Background(), "attach-1", "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, c.QueueDepth())

	upload := outbox.get(id)
	require.NotNil(t, upload)
	assert.Equal(t, models.UploadStatusPending, upload.Status)
	assert.Equal(t, "attach-1", upload.OwnerEntityID)
	assert.Equal(t, []byte("png-bytes"), upload.Payload)
	assert.False(t, upload.CreatedAt.IsZero())
}

// TestCoordinator_SuccessfulUpload проверяет полный успешный цикл:
// pending -> uploading -> synced + запись URL в сущность-владельца
func TestCoordinator_SuccessfulUpload(t *testing.T) {
	outbox, outboxMock := newMemOutbox()

	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
			return &api.UploadResponse{URL: "https://files.example.com/" + upload.ID}, nil
		},
	}
	mutators := okMutators()

	c := NewCoordinator(outboxMock, apiMock, mutators, testLogger(), fastConfig())
	c.Start(context.Background())
	defer c.Close()

	id, err := c.Submit(context.Background(), "attach-1", "image/png", []byte("data"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return outbox.status(id) == models.UploadStatusSynced
	}, 2*time.Second, 5*time.Millisecond)

	// URL ушел в сущность-владельца
	calls := mutators.SetEntityFieldsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "attach-1", calls[0].EntityID)
	assert.Equal(t, "https://files.example.com/"+id, calls[0].Fields["url"])

	// Локальная копия остается после синхронизации
	upload := outbox.get(id)
	assert.Equal(t, []byte("data"), upload.Payload)
	assert.Empty(t, upload.LastError)
}

// TestCoordinator_TransientRetry проверяет backoff и персист метаданных ретрая
func TestCoordinator_TransientRetry(t *testing.T) {
	outbox, outboxMock := newMemOutbox()

	var attempts int
	var mu sync.Mutex
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
			mu.Lock()
			attempts++
			n := attempts
			mu.Unlock()
			if n <= 2 {
				return nil, errors.New("connection reset")
			}
			return &api.UploadResponse{URL: "https://files.example.com/ok"}, nil
		},
	}

	c := NewCoordinator(outboxMock, apiMock, okMutators(), testLogger(), fastConfig())
	c.Start(context.Background())
	defer c.Close()

	id, err := c.Submit(context.Background(), "attach-1", "image/png", []byte("data"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return outbox.status(id) == models.UploadStatusSynced
	}, 2*time.Second, 5*time.Millisecond)

	upload := outbox.get(id)
	assert.Equal(t, 2, upload.RetryCount, "both transient failures must be counted")
	assert.False(t, upload.LastAttemptAt.IsZero())
}

// TestCoordinator_FatalError проверяет терминальный статус error
// без записи URL
func TestCoordinator_FatalError(t *testing.T) {
	outbox, outboxMock := newMemOutbox()

	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
			return nil, &httpClient.FatalUploadError{StatusCode: 413, Message: "file exceeds limit"}
		},
	}
	mutators := okMutators()

	c := NewCoordinator(outboxMock, apiMock, mutators, testLogger(), fastConfig())
	c.Start(context.Background())
	defer c.Close()

	id, err := c.Submit(context.Background(), "attach-1", "video/mp4", []byte("huge"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return outbox.status(id) == models.UploadStatusError
	}, 2*time.Second, 5*time.Millisecond)

	upload := outbox.get(id)
	assert.Contains(t, upload.LastError, "file exceeds limit")

	// Fatal означает ровно одну попытку и никакого write-back
	assert.Len(t, apiMock.UploadCalls(), 1)
	assert.Empty(t, mutators.SetEntityFieldsCalls())
}

// TestCoordinator_ManualRetry проверяет ручной повтор после fatal
func TestCoordinator_ManualRetry(t *testing.T) {
	outbox, outboxMock := newMemOutbox()

	var failFirst = true
	var mu sync.Mutex
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
			mu.Lock()
			defer mu.Unlock()
			if failFirst {
				failFirst = false
				return nil, &httpClient.FatalUploadError{StatusCode: 415, Message: "mime not allowed"}
			}
			return &api.UploadResponse{URL: "https://files.example.com/ok"}, nil
		},
	}

	c := NewCoordinator(outboxMock, apiMock, okMutators(), testLogger(), fastConfig())
	c.Start(context.Background())
	defer c.Close()

	id, err := c.Submit(context.Background(), "attach-1", "image/png", []byte("data"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return outbox.status(id) == models.UploadStatusError
	}, 2*time.Second, 5*time.Millisecond)

	// Ручной повтор возвращает запись в работу
	require.NoError(t, c.Retry(context.Background(), id))

	require.Eventually(t, func() bool {
		return outbox.status(id) == models.UploadStatusSynced
	}, 2*time.Second, 5*time.Millisecond)
}

// TestCoordinator_Recover проверяет постановку незавершенных записей
// в очередь на старте
func TestCoordinator_Recover(t *testing.T) {
	outbox, outboxMock := newMemOutbox()

	// Состояние после "падения": одна pending, одна застрявшая uploading,
	// одна уже synced и одна в терминальном error
	outbox.put(&models.PendingUpload{ID: "u-pending", Status: models.UploadStatusPending, Payload: []byte("a")})
	outbox.put(&models.PendingUpload{ID: "u-uploading", Status: models.UploadStatusUploading, Payload: []byte("b")})
	outbox.put(&models.PendingUpload{ID: "u-synced", Status: models.UploadStatusSynced, Payload: []byte("c")})
	outbox.put(&models.PendingUpload{ID: "u-error", Status: models.UploadStatusError, Payload: []byte("d")})

	c := NewCoordinator(outboxMock, &httpClient.ClientAPIMock{}, okMutators(), testLogger(), fastConfig())

	require.NoError(t, c.Recover(context.Background()))
	assert.Equal(t, 2, c.QueueDepth(), "only pending and uploading records are re-enqueued")

	// error терминален: без ручного Retry перезапуск его не подбирает
	assert.Equal(t, models.UploadStatusError, outbox.status("u-error"))
}

// TestCoordinator_FinalizePreservesLastAccess проверяет, что терминальная
// запись не затирает LastAccessedAt, обновленный чтением payload
// параллельно с загрузкой
func TestCoordinator_FinalizePreservesLastAccess(t *testing.T) {
	outbox, outboxMock := newMemOutbox()

	stale := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	touched := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	outbox.put(&models.PendingUpload{
		ID:             "u-1",
		OwnerEntityID:  "attach-1",
		Status:         models.UploadStatusPending,
		Payload:        []byte("data"),
		LastAccessedAt: stale,
	})

	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
			// Пока идет загрузка, кто-то читает payload и двигает access time
			record := outbox.get("u-1")
			record.LastAccessedAt = touched
			outbox.put(record)
			return &api.UploadResponse{URL: "https://files.example.com/u-1"}, nil
		},
	}

	c := NewCoordinator(outboxMock, apiMock, okMutators(), testLogger(), fastConfig())
	c.process(context.Background(), "u-1")

	upload := outbox.get("u-1")
	require.Equal(t, models.UploadStatusSynced, upload.Status)
	assert.Equal(t, touched, upload.LastAccessedAt, "finalize must not clobber concurrent access time updates")
}

// TestCoordinator_SkipsAlreadySynced проверяет no-op для записи,
// финализированной между постановкой в очередь и обработкой
func TestCoordinator_SkipsAlreadySynced(t *testing.T) {
	outbox, outboxMock := newMemOutbox()
	outbox.put(&models.PendingUpload{ID: "u-1", Status: models.UploadStatusSynced, Payload: []byte("a")})

	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, upload *models.PendingUpload) (*api.UploadResponse, error) {
			t.Error("synced upload must not be re-sent")
			return nil, nil
		},
	}

	c := NewCoordinator(outboxMock, apiMock, okMutators(), testLogger(), fastConfig())
	c.process(context.Background(), "u-1")
	c.process(context.Background(), "u-missing") // удаленная запись - тоже no-op

	assert.Empty(t, apiMock.UploadCalls())
}

// TestCoordinator_CloseStopsWorkers проверяет остановку пула
func TestCoordinator_CloseStopsWorkers(t *testing.T) {
	_, outboxMock := newMemOutbox()

	c := NewCoordinator(outboxMock, &httpClient.ClientAPIMock{}, okMutators(), testLogger(), fastConfig())
	c.Start(context.Background())

	done := make(chan struct{})
	go func() {
		c.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not stop workers")
	}
}

// TestIDQueue_Dedupe проверяет дедупликацию стоящих в очереди id
func TestIDQueue_Dedupe(t *testing.T) {
	q := newIDQueue()

	q.Enqueue("u-1")
	q.Enqueue("u-1")
	q.Enqueue("u-2")

	assert.Equal(t, 2, q.Depth())

	id, ok := q.Dequeue(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u-1", id)

	// После выхода из очереди id можно ставить снова
	q.Enqueue("u-1")
	assert.Equal(t, 2, q.Depth())
}

// TestIDQueue_DequeueCancellation проверяет выход по отмене контекста
func TestIDQueue_DequeueCancellation(t *testing.T) {
	q := newIDQueue()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, ok := q.Dequeue(ctx)
	assert.False(t, ok)
}
