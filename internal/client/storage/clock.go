package storage

import "context"

//go:generate moq -out clockstore_mock.go . ClockStore

// ClockStore defines interface for durable persistence of the HLC value.
// Хранится единственный ключ с упакованным значением часов: читается один
// раз на старте, записывается после каждого tick.
type ClockStore interface {
	// SaveClock persists the packed clock value
	SaveClock(ctx context.Context, packed string) error

	// LoadClock reads the persisted packed clock value
	// Returns ErrClockNotFound if no value has been saved yet
	LoadClock(ctx context.Context) (string, error)
}
