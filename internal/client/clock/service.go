package clock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/hlc"
)

// Service владеет текущим значением HLC и является единственным его
// писателем: все обновления сериализованы мьютексом, два tick'а никогда
// не вернут одинаковое упакованное значение для одного NodeID.
//
// Значение персистится через ClockStore после каждого изменения:
// синхронный путь (NextSync) откладывает запись в фоновый writer.
// Потеря записи при крэше безопасна: восстановленные часы всегда <=
// потерянного значения, а Receive по первому же удаленному timestamp
// восстанавливает порядок.
type Service struct {
	store   storage.ClockStore
	logger  *slog.Logger
	nowFunc func() int64 // nowFunc источник wall clock в миллисекундах (подменяется в тестах)

	mu      sync.Mutex
	current hlc.Value

	notify chan struct{} // notify будит фоновый writer (буфер 1, coalescing)
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewService создает сервис часов, восстанавливая состояние из store.
// Если значение отсутствует - инициализируем свежие часы с новым NodeID;
// если есть - немедленно делаем Receive(persisted, persisted, now), чтобы
// перешагнуть возможный откат wall clock с прошлой сессии.
func NewService(ctx context.Context, store storage.ClockStore, logger *slog.Logger) (*Service, error) {
	s := &Service{
		store:   store,
		logger:  logger,
		nowFunc: func() int64 { return time.Now().UnixMilli() },
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	now := s.nowFunc()

	packed, err := store.LoadClock(ctx)
	switch {
	case errors.Is(err, storage.ErrClockNotFound):
		s.current = hlc.New(uuid.New().String(), now)
		logger.Info("initialized fresh clock", "node_id", s.current.NodeID)
	case err != nil:
		// Ошибка чтения хранилища трактуется как "значения нет"
		s.logger.Warn("failed to load persisted clock, starting fresh", "error", err)
		s.current = hlc.New(uuid.New().String(), now)
	default:
		persisted, perr := hlc.Unpack(packed)
		if perr != nil {
			s.logger.Warn("persisted clock is corrupt, starting fresh", "error", perr)
			s.current = hlc.New(uuid.New().String(), now)
		} else {
			// Fast-forward: результат >= persisted даже если wall clock
			// откатился между сессиями
			s.current = hlc.Receive(persisted, persisted, now)
		}
	}

	if err := store.SaveClock(ctx, hlc.Pack(s.current)); err != nil {
		return nil, fmt.Errorf("failed to persist initial clock: %w", err)
	}

	s.wg.Add(1)
	go s.persistLoop()

	return s, nil
}

// Next атомарно продвигает часы и синхронно персистит новое значение.
// Возвращает упакованный timestamp.
func (s *Service) Next(ctx context.Context) (string, error) {
	packed := s.tick()

	if err := s.store.SaveClock(ctx, packed); err != nil {
		return "", fmt.Errorf("failed to persist clock: %w", err)
	}

	return packed, nil
}

// NextSync продвигает часы немедленно, а запись в хранилище отдает
// фоновому writer'у. Для вызовов, которые обязаны оставаться
// синхронными (исполнение мутаторов).
func (s *Service) NextSync() string {
	packed := s.tick()

	// Будим writer; если сигнал уже висит - новое значение он и так
	// прочитает из s.current (last-value-wins)
	select {
	case s.notify <- struct{}{}:
	default:
	}

	return packed
}

// ObserveRemote вливает внешний timestamp (например, из pull-а) в
// локальные часы и персистит результат.
func (s *Service) ObserveRemote(ctx context.Context, packed string) error {
	remote, err := hlc.Unpack(packed)
	if err != nil {
		return fmt.Errorf("failed to unpack remote timestamp: %w", err)
	}

	s.mu.Lock()
	s.current = hlc.Receive(s.current, remote, s.nowFunc())
	merged := hlc.Pack(s.current)
	s.mu.Unlock()

	if err := s.store.SaveClock(ctx, merged); err != nil {
		return fmt.Errorf("failed to persist merged clock: %w", err)
	}

	return nil
}

// Current возвращает текущее значение часов без продвижения.
func (s *Service) Current() hlc.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// NodeID возвращает стабильный идентификатор узла.
func (s *Service) NodeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.NodeID
}

// Close останавливает фоновый writer, дождавшись финального flush.
func (s *Service) Close() {
	close(s.done)
	s.wg.Wait()
}

// tick продвигает часы под мьютексом и возвращает упакованное значение
func (s *Service) tick() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = hlc.Tick(s.current, s.nowFunc())
	return hlc.Pack(s.current)
}

// persistLoop - фоновый writer для NextSync.
// Всегда пишет актуальное s.current, поэтому при слиянии нескольких
// сигналов теряются только промежуточные значения (persisted <= current
// в любой момент).
func (s *Service) persistLoop() {
	defer s.wg.Done()

	ctx := context.Background()

	flush := func() {
		s.mu.Lock()
		packed := hlc.Pack(s.current)
		s.mu.Unlock()

		if err := s.store.SaveClock(ctx, packed); err != nil {
			// Не фатально: потеря фоновой записи чинится при Receive
			s.logger.Warn("background clock persist failed", "error", err)
		}
	}

	for {
		select {
		case <-s.done:
			flush()
			return
		case <-s.notify:
			flush()
		}
	}
}
