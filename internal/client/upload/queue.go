package upload

import (
	"context"
	"sync"
)

// idQueue - неограниченная in-memory очередь идентификаторов загрузок.
// Durable состояние живет в OutboxStorage, очередь лишь подсказывает
// воркерам, что пора работать: потеря очереди при падении процесса
// компенсируется Recover() на старте.
type idQueue struct {
	mu     sync.Mutex
	items  []string
	queued map[string]struct{}
	signal chan struct{}
}

func newIDQueue() *idQueue {
	return &idQueue{
		queued: make(map[string]struct{}),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue добавляет id в хвост очереди.
// Уже стоящий в очереди id не дублируется.
func (q *idQueue) Enqueue(id string) {
	q.mu.Lock()
	if _, ok := q.queued[id]; ok {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, id)
	q.queued[id] = struct{}{}
	q.mu.Unlock()

	// Неблокирующий сигнал: буфера в один слот достаточно,
	// воркеры после пробуждения выгребают все накопившееся
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Dequeue снимает id с головы очереди, блокируясь до появления
// элемента или отмены контекста.
func (q *idQueue) Dequeue(ctx context.Context) (string, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			id := q.items[0]
			q.items = q.items[1:]
			delete(q.queued, id)
			if len(q.items) > 0 {
				// Остались элементы - будим следующего воркера
				select {
				case q.signal <- struct{}{}:
				default:
				}
			}
			q.mu.Unlock()
			return id, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", false
		case <-q.signal:
		}
	}
}

// Depth возвращает текущую длину очереди
func (q *idQueue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
