package presence

import (
	"context"
	"log/slog"
	"time"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/clock"
	"github.com/iudanet/notesync/internal/hlc"
	"github.com/iudanet/notesync/pkg/api"
)

// Виды событий присутствия
const (
	KindTyping  = "typing"
	KindViewing = "viewing"
)

// notifyTimeout ограничивает фоновую отправку одного события
const notifyTimeout = 5 * time.Second

// Notifier отправляет best-effort события присутствия.
// Канал не durable: событие либо уходит сразу, либо теряется;
// корректность синхронизации от него не зависит.
type Notifier struct {
	client httpClient.ClientAPI
	clocks *clock.Service
	logger *slog.Logger
}

// NewNotifier создает нотификатор присутствия
func NewNotifier(client httpClient.ClientAPI, clocks *clock.Service, logger *slog.Logger) *Notifier {
	return &Notifier{
		client: client,
		clocks: clocks,
		logger: logger,
	}
}

// Notify отправляет событие в фоне, не блокируя вызывающего
func (n *Notifier) Notify(documentID, kind string) {
	event := api.PresenceEvent{
		NodeID:     n.clocks.NodeID(),
		DocumentID: documentID,
		Kind:       kind,
		Timestamp:  hlc.Pack(n.clocks.Current()),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.client.Presence(ctx, event); err != nil {
			// Потеря события допустима, хватает debug записи
			n.logger.Debug("presence event dropped", "document_id", documentID, "kind", kind, "error", err)
		}
	}()
}
