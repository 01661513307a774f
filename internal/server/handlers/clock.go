package handlers

import (
	"sync"
	"time"

	"github.com/iudanet/notesync/internal/hlc"
)

// authorityClock — HLC узел сервера. Сервер наблюдает метки всех клиентов
// и выдает собственную, поэтому его время никогда не отстает от уже
// принятых мутаций.
type authorityClock struct {
	mu      sync.Mutex
	current hlc.Value
	nowFunc func() int64
}

func newAuthorityClock(nodeID string) *authorityClock {
	return &authorityClock{
		current: hlc.Value{NodeID: nodeID},
		nowFunc: func() int64 { return time.Now().UnixMilli() },
	}
}

// Tick выдает новую метку для исходящего ответа
func (c *authorityClock) Tick() hlc.Value {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = hlc.Tick(c.current, c.nowFunc())
	return c.current
}

// Observe учитывает метку, пришедшую с мутацией клиента
func (c *authorityClock) Observe(remote hlc.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = hlc.Receive(c.current, remote, c.nowFunc())
}
