package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out mutationlog_mock.go . MutationLog

// MutationLog defines interface for the durable log of pending mutations.
// Лог хранит локальные мутации до подтверждения отправки на сервер;
// порядок записей - порядок их HLC timestamp'ов (порядок применения).
type MutationLog interface {
	// Append adds a mutation to the tail of the log
	Append(ctx context.Context, mutation *models.Mutation) error

	// Pending returns all unacknowledged mutations in timestamp order
	Pending(ctx context.Context) ([]*models.Mutation, error)

	// MarkApplied removes acknowledged mutations from the log.
	// Called only after a successful push
	MarkApplied(ctx context.Context, ids []string) error

	// Clear removes all mutations
	// Used for testing and full re-sync
	Clear(ctx context.Context) error
}
