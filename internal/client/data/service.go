package data

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/iudanet/notesync/internal/client/storage"
)

// prefetchConcurrency - своя, более широкая граница параллелизма:
// прогрев кэша не критичен для корректности, в отличие от пула загрузок
const prefetchConcurrency = 8

// Service предоставляет читающую сторону кэша вложений
type Service interface {
	// GetAttachment возвращает payload и MIME тип кэшированного вложения.
	// Чтение поднимает LastAccessedAt - LRU сигнал для сборщика
	GetAttachment(ctx context.Context, id string) ([]byte, string, error)

	// Prefetch прогревает кэш по списку удаленных URL.
	// Best-effort: ошибки отбрасываются, результат не ждется
	Prefetch(ctx context.Context, urls []string)
}

type service struct {
	outbox     storage.OutboxStorage
	logger     *slog.Logger
	httpClient *http.Client
	nowFunc    func() time.Time
}

// NewService creates a new attachment read service
func NewService(outbox storage.OutboxStorage, logger *slog.Logger) Service {
	return &service{
		outbox: outbox,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// GetAttachment читает вложение из outbox и отмечает доступ
func (s *service) GetAttachment(ctx context.Context, id string) ([]byte, string, error) {
	upload, err := s.outbox.GetUpload(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get attachment: %w", err)
	}

	// Touch best-effort: вложение отдаем даже если отметка не записалась
	if err := s.outbox.TouchUpload(ctx, id, s.nowFunc()); err != nil {
		s.logger.Warn("failed to touch attachment", "upload_id", id, "error", err)
	}

	return upload.Payload, upload.MimeType, nil
}

// Prefetch греет кэш параллельными GET запросами, не дожидаясь результата
func (s *service) Prefetch(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}

	sem := semaphore.NewWeighted(prefetchConcurrency)

	for _, url := range urls {
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}

		go func(url string) {
			defer sem.Release(1)
			if err := s.fetch(ctx, url); err != nil {
				s.logger.Debug("prefetch failed", "url", url, "error", err)
			}
		}(url)
	}
}

func (s *service) fetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Тело вычитываем полностью, чтобы прогреть HTTP кэш по дороге
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
