package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/notesync/internal/hlc"
	"github.com/iudanet/notesync/pkg/api"
)

// PresenceHandler принимает best-effort события присутствия.
// События нигде не хранятся: канал не durable и на корректность
// синхронизации не влияет, сервер лишь учитывает часы отправителя.
type PresenceHandler struct {
	logger *slog.Logger
	clock  *authorityClock
}

// NewPresenceHandler creates a new presence handler
func NewPresenceHandler(logger *slog.Logger, sync *SyncHandler) *PresenceHandler {
	return &PresenceHandler{
		logger: logger,
		clock:  sync.clock,
	}
}

// HandlePresence обрабатывает POST /api/v1/presence
func (h *PresenceHandler) HandlePresence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var event api.PresenceEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.logger.Warn("failed to decode presence event", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if remote, err := hlc.Unpack(event.Timestamp); err == nil {
		h.clock.Observe(remote)
	}

	h.logger.Debug("presence event",
		"node_id", event.NodeID,
		"document_id", event.DocumentID,
		"kind", event.Kind)

	w.WriteHeader(http.StatusAccepted)
}
