package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/pkg/api"
)

// allowedMimePrefixes ограничивает принимаемые типы вложений
var allowedMimePrefixes = []string{
	"image/",
	"audio/",
	"video/",
	"application/pdf",
	"application/octet-stream",
	"text/",
}

// UploadHandler принимает бинарные вложения и отдает их содержимое
type UploadHandler struct {
	logger  *slog.Logger
	storage storage.BlobStore
	baseURL string
	nowFunc func() time.Time
}

// NewUploadHandler creates a new upload handler
// baseURL is the externally visible server address used to build blob URLs
func NewUploadHandler(logger *slog.Logger, store storage.BlobStore, baseURL string) *UploadHandler {
	return &UploadHandler{
		logger:  logger,
		storage: store,
		baseURL: strings.TrimRight(baseURL, "/"),
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// HandleUpload обрабатывает POST /api/v1/uploads.
// Отказы, которые не исправит повтор, отвечают 413/415/400: клиент
// различает их и не ретраит
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	mimeType := r.Header.Get("Content-Type")
	if !mimeAllowed(mimeType) {
		h.logger.Warn("rejected upload with unsupported media type", "mime_type", mimeType)
		h.writeError(w, http.StatusUnsupportedMediaType, "unsupported media type", mimeType)
		return
	}

	// Читаем на один байт больше лимита, чтобы отличить ровно-лимит от перебора
	data, err := io.ReadAll(io.LimitReader(r.Body, api.MaxUploadBytes+1))
	if err != nil {
		h.logger.Error("failed to read upload body", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if len(data) > api.MaxUploadBytes {
		h.logger.Warn("rejected oversized upload", "size", len(data))
		h.writeError(w, http.StatusRequestEntityTooLarge, "payload too large",
			fmt.Sprintf("upload exceeds %d bytes", api.MaxUploadBytes))
		return
	}

	if len(data) == 0 {
		h.writeError(w, http.StatusBadRequest, "bad request", "empty payload")
		return
	}

	// Клиент присылает свой id для идемпотентного повтора; без него
	// генерируем новый
	id := r.Header.Get("X-Upload-ID")
	if id == "" {
		id = uuid.New().String()
	}

	blob := &storage.Blob{
		ID:        id,
		MimeType:  mimeType,
		Data:      data,
		CreatedAt: h.nowFunc(),
	}
	if err := h.storage.SaveBlob(r.Context(), blob); err != nil {
		h.logger.Error("failed to save blob", "error", err, "blob_id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("blob stored", "blob_id", id, "mime_type", mimeType, "size", len(data))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.UploadResponse{
		URL: h.baseURL + "/files/" + id,
	}); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// HandleDownload обрабатывает GET /files/{id}
func (h *UploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/files/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	blob, err := h.storage.GetBlob(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get blob", "error", err, "blob_id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", blob.MimeType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob.Data); err != nil {
		h.logger.Error("failed to write blob", "error", err, "blob_id", id)
	}
}

func (h *UploadHandler) writeError(w http.ResponseWriter, status int, errText, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   errText,
		Message: message,
	}); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}

func mimeAllowed(mimeType string) bool {
	for _, prefix := range allowedMimePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}
