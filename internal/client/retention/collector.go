package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/notesync/internal/client/storage"
)

// Config задает параметры сборщика
type Config struct {
	StartupGrace  time.Duration // StartupGrace пауза перед первым проходом
	SweepPeriod   time.Duration // SweepPeriod интервал между проходами
	DefaultWindow time.Duration // DefaultWindow окно хранения при нормальном давлении
	ShortWindow   time.Duration // ShortWindow окно хранения при высоком давлении
	HighWaterMark float64       // HighWaterMark порог давления для перехода на короткое окно
}

// DefaultConfig возвращает параметры по умолчанию
func DefaultConfig() Config {
	return Config{
		StartupGrace:  time.Minute,
		SweepPeriod:   12 * time.Hour,
		DefaultWindow: 30 * 24 * time.Hour,
		ShortWindow:   24 * time.Hour,
		HighWaterMark: 0.8,
	}
}

// Collector периодически вычищает из BinaryOutbox подтвержденные
// и давно не читавшиеся записи. Окно хранения адаптивно: при высоком
// давлении на хранилище оно сжимается с месяца до суток.
// Несинхронизированные записи не удаляются никогда - это единственная
// копия файла.
type Collector struct {
	outbox   storage.OutboxStorage
	pressure PressureEstimator
	logger   *slog.Logger
	nowFunc  func() time.Time
	cfg      Config
}

// NewCollector создает сборщик. Цикл запускается отдельно через Run
func NewCollector(outbox storage.OutboxStorage, pressure PressureEstimator, logger *slog.Logger, cfg Config) *Collector {
	if cfg.SweepPeriod <= 0 {
		cfg.SweepPeriod = 12 * time.Hour
	}
	if cfg.DefaultWindow <= 0 {
		cfg.DefaultWindow = 30 * 24 * time.Hour
	}
	if cfg.ShortWindow <= 0 {
		cfg.ShortWindow = 24 * time.Hour
	}
	if cfg.HighWaterMark <= 0 {
		cfg.HighWaterMark = 0.8
	}

	return &Collector{
		outbox:   outbox,
		pressure: pressure,
		logger:   logger,
		nowFunc:  func() time.Time { return time.Now().UTC() },
		cfg:      cfg,
	}
}

// Run крутит цикл очистки до отмены контекста.
// Первый проход идет после стартовой паузы, чтобы не мешать
// восстановлению и первой синхронизации.
func (c *Collector) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(c.cfg.StartupGrace):
	}

	c.sweep(ctx)

	ticker := time.NewTicker(c.cfg.SweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

// Sweep выполняет один проход очистки и возвращает число удаленных записей
func (c *Collector) Sweep(ctx context.Context) int {
	return c.sweep(ctx)
}

func (c *Collector) sweep(ctx context.Context) int {
	window := c.retentionWindow()
	cutoff := c.nowFunc().Add(-window)

	// GetExpiredUploads отдает только synced записи старше порога;
	// pending/uploading/error не могут попасть под удаление
	expired, err := c.outbox.GetExpiredUploads(ctx, cutoff)
	if err != nil {
		c.logger.Warn("retention sweep failed to list expired uploads", "error", err)
		return 0
	}

	deleted := 0
	for _, upload := range expired {
		if err := c.outbox.DeleteUpload(ctx, upload.ID); err != nil {
			c.logger.Warn("failed to delete expired upload", "upload_id", upload.ID, "error", err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		c.logger.Info("retention sweep completed",
			"deleted", deleted,
			"window", window.String(),
			"cutoff", cutoff)
	}
	return deleted
}

// retentionWindow выбирает окно хранения по текущему давлению
func (c *Collector) retentionWindow() time.Duration {
	usage, err := c.pressure.Usage()
	if err != nil {
		// Оценка недоступна - ведем себя консервативно, длинное окно
		c.logger.Warn("failed to estimate storage pressure, using default window", "error", err)
		return c.cfg.DefaultWindow
	}

	if usage > c.cfg.HighWaterMark {
		c.logger.Info("storage pressure high, using short retention window",
			"usage", usage,
			"high_water_mark", c.cfg.HighWaterMark)
		return c.cfg.ShortWindow
	}
	return c.cfg.DefaultWindow
}
