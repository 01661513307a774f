package upload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/mutate"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// Config задает параметры пайплайна загрузки
type Config struct {
	Workers     int           // Workers размер пула воркеров
	SettleDelay time.Duration // SettleDelay пауза перед первой попыткой (размазывает всплески вставок)
	RetryBase   time.Duration // RetryBase начальная задержка backoff
	RetryCap    time.Duration // RetryCap потолок задержки backoff
}

// DefaultConfig возвращает параметры по умолчанию
func DefaultConfig() Config {
	return Config{
		Workers:     2,
		SettleDelay: 200 * time.Millisecond,
		RetryBase:   500 * time.Millisecond,
		RetryCap:    time.Minute,
	}
}

// Coordinator гонит отложенные загрузки из BinaryOutbox на сервер.
// Машина состояний записи: pending -> uploading -> {synced | error}.
// Transient ошибки повторяются бесконечно с экспоненциальным backoff;
// fatal (413/415/400) переводят запись в терминальный error до ручного
// повтора. Успех пишет публичный URL обратно в сущность-владельца.
type Coordinator struct {
	outbox   storage.OutboxStorage
	client   httpClient.ClientAPI
	mutators mutate.Service
	logger   *slog.Logger
	queue    *idQueue
	cancel   context.CancelFunc
	group    *errgroup.Group
	nowFunc  func() time.Time
	cfg      Config
}

// NewCoordinator создает координатор загрузок. Воркеры стартуют в Start
func NewCoordinator(
	outbox storage.OutboxStorage,
	client httpClient.ClientAPI,
	mutators mutate.Service,
	logger *slog.Logger,
	cfg Config,
) *Coordinator {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 500 * time.Millisecond
	}
	if cfg.RetryCap <= 0 {
		cfg.RetryCap = time.Minute
	}

	return &Coordinator{
		outbox:   outbox,
		client:   client,
		mutators: mutators,
		logger:   logger,
		queue:    newIDQueue(),
		nowFunc:  func() time.Time { return time.Now().UTC() },
		cfg:      cfg,
	}
}

// Start запускает пул воркеров, привязанный к ctx
func (c *Coordinator) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.group, ctx = errgroup.WithContext(ctx)

	for i := 0; i < c.cfg.Workers; i++ {
		c.group.Go(func() error {
			c.worker(ctx)
			return nil
		})
	}

	c.logger.Info("upload coordinator started", "workers", c.cfg.Workers)
}

// Submit создает durable запись загрузки и ставит ее в очередь.
// Возвращает id записи.
func (c *Coordinator) Submit(ctx context.Context, ownerEntityID, mimeType string, payload []byte) (string, error) {
	now := c.nowFunc()
	upload := &models.PendingUpload{
		ID:             uuid.New().String(),
		OwnerEntityID:  ownerEntityID,
		MimeType:       mimeType,
		Payload:        payload,
		Status:         models.UploadStatusPending,
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	// Сначала durable запись, потом очередь: обратный порядок терял бы
	// файл при падении между шагами
	if err := c.outbox.SaveUpload(ctx, upload); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	c.queue.Enqueue(upload.ID)
	c.logger.Info("upload queued", "upload_id", upload.ID, "owner", ownerEntityID, "size", len(payload))
	return upload.ID, nil
}

// Retry вручную возвращает запись со статусом error в работу
func (c *Coordinator) Retry(ctx context.Context, id string) error {
	upload, err := c.outbox.GetUpload(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get upload: %w", err)
	}
	if upload.IsSynced() {
		return nil
	}

	next := upload.Clone()
	next.Status = models.UploadStatusPending
	next.LastError = ""
	if err := c.outbox.SaveUpload(ctx, next); err != nil {
		return fmt.Errorf("failed to reset upload: %w", err)
	}

	c.queue.Enqueue(id)
	return nil
}

// Recover ставит в очередь все незавершенные записи.
// Вызывается один раз на старте: так начатые до падения процесса
// загрузки доезжают до сервера. Записи в терминальном error не
// подбираются: после fatal отказа повтор только ручной, через Retry.
func (c *Coordinator) Recover(ctx context.Context) error {
	unsynced, err := c.outbox.GetUnsyncedUploads(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unsynced uploads: %w", err)
	}

	recovered := 0
	for _, upload := range unsynced {
		if upload.Status == models.UploadStatusError {
			continue
		}
		c.queue.Enqueue(upload.ID)
		recovered++
	}

	if recovered > 0 {
		c.logger.Info("recovered unfinished uploads", "count", recovered)
	}
	return nil
}

// QueueDepth возвращает число загрузок, ожидающих воркера
func (c *Coordinator) QueueDepth() int {
	return c.queue.Depth()
}

// Close останавливает воркеров и дожидается их завершения
func (c *Coordinator) Close() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.group != nil {
		_ = c.group.Wait()
	}
	c.logger.Info("upload coordinator stopped")
}

func (c *Coordinator) worker(ctx context.Context) {
	for {
		id, ok := c.queue.Dequeue(ctx)
		if !ok {
			return
		}
		c.process(ctx, id)
	}
}

// process выполняет машину состояний одной записи
func (c *Coordinator) process(ctx context.Context, id string) {
	// Перечитываем запись: между постановкой в очередь и обработкой ее
	// могли финализировать или удалить
	upload, err := c.outbox.GetUpload(ctx, id)
	if err != nil {
		if err != storage.ErrUploadNotFound {
			c.logger.Warn("failed to read upload", "upload_id", id, "error", err)
		}
		return
	}
	if upload.IsSynced() {
		return
	}

	current := upload.Clone()
	current.Status = models.UploadStatusUploading
	if err := c.outbox.SaveUpload(ctx, current); err != nil {
		c.logger.Warn("failed to mark upload as uploading", "upload_id", id, "error", err)
		return
	}

	// Пауза-отстой против thundering herd при массовой вставке вложений
	if c.cfg.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.cfg.SettleDelay):
		}
	}

	var remoteURL string
	backoff := retry.WithJitterPercent(20, retry.WithCappedDuration(c.cfg.RetryCap, retry.NewExponential(c.cfg.RetryBase)))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, uploadErr := c.client.Upload(ctx, current)
		if uploadErr != nil {
			if httpClient.IsFatal(uploadErr) {
				// Повторы не помогут - выходим из цикла с ошибкой
				return uploadErr
			}

			// Метаданные ретрая персистим до следующей попытки:
			// счетчик и последняя ошибка переживают перезапуск
			current.RetryCount++
			current.LastError = uploadErr.Error()
			current.LastAttemptAt = c.nowFunc()
			if saveErr := c.outbox.SaveUpload(ctx, current); saveErr != nil {
				c.logger.Warn("failed to persist retry state", "upload_id", id, "error", saveErr)
			}

			c.logger.Debug("transient upload failure, will retry",
				"upload_id", id,
				"attempt", current.RetryCount,
				"error", uploadErr)
			return retry.RetryableError(uploadErr)
		}

		remoteURL = resp.URL
		return nil
	})

	if err != nil {
		if httpClient.IsFatal(err) {
			c.finalizeFatal(ctx, id, err)
		}
		// Отмена контекста: запись остается uploading, следующий запуск
		// подберет ее через Recover
		return
	}

	c.finalizeSuccess(ctx, id, current.OwnerEntityID, remoteURL)
}

// reloadForFinalize перечитывает запись перед терминальной записью.
// Пока шла загрузка, чтение payload могло подвинуть LastAccessedAt;
// запись устаревшей копии из process затерла бы его.
func (c *Coordinator) reloadForFinalize(ctx context.Context, id string) *models.PendingUpload {
	upload, err := c.outbox.GetUpload(ctx, id)
	if err != nil {
		c.logger.Error("failed to reload upload for finalize", "upload_id", id, "error", err)
		return nil
	}
	return upload.Clone()
}

// finalizeFatal переводит запись в терминальный error
func (c *Coordinator) finalizeFatal(ctx context.Context, id string, cause error) {
	upload := c.reloadForFinalize(ctx, id)
	if upload == nil {
		return
	}
	upload.Status = models.UploadStatusError
	upload.LastError = cause.Error()
	upload.LastAttemptAt = c.nowFunc()

	if err := c.outbox.SaveUpload(ctx, upload); err != nil {
		c.logger.Error("failed to mark upload as failed", "upload_id", upload.ID, "error", err)
		return
	}

	c.logger.Warn("upload permanently rejected",
		"upload_id", upload.ID,
		"owner", upload.OwnerEntityID,
		"error", cause)
}

// finalizeSuccess пишет URL в сущность-владельца и помечает запись synced.
// Локальный payload сохраняется: это самый быстрый путь для UI
// и оффлайн-показ.
func (c *Coordinator) finalizeSuccess(ctx context.Context, id, ownerEntityID, remoteURL string) {
	updated, err := c.mutators.SetEntityFields(ctx, ownerEntityID, map[string]any{"url": remoteURL})
	if err != nil {
		c.logger.Error("failed to write back upload url",
			"upload_id", id,
			"owner", ownerEntityID,
			"error", err)
		return
	}
	if !updated {
		// Владелец мог быть удален, пока файл грузился; запись все равно
		// финализируем - сервер файл уже принял
		c.logger.Warn("upload owner entity no longer exists", "upload_id", id, "owner", ownerEntityID)
	}

	upload := c.reloadForFinalize(ctx, id)
	if upload == nil {
		return
	}
	upload.Status = models.UploadStatusSynced
	upload.LastError = ""
	upload.LastAttemptAt = c.nowFunc()

	if err := c.outbox.SaveUpload(ctx, upload); err != nil {
		c.logger.Error("failed to mark upload as synced", "upload_id", upload.ID, "error", err)
		return
	}

	c.logger.Info("upload completed", "upload_id", upload.ID, "url", remoteURL, "attempts", upload.RetryCount+1)
}
