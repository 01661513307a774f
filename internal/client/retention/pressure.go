package retention

import "fmt"

//go:generate moq -out pressure_mock.go . PressureEstimator

// PressureEstimator оценивает заполненность локального хранилища.
// Usage возвращает долю занятого места от квоты в диапазоне [0, 1+];
// значения выше 1 означают превышение квоты.
type PressureEstimator interface {
	Usage() (float64, error)
}

// SizeReporter отдает текущий размер хранилища в байтах.
// Реализуется boltdb.Storage.
type SizeReporter interface {
	Size() (int64, error)
}

// boltPressure считает давление как отношение размера bolt файла к квоте
type boltPressure struct {
	store SizeReporter
	quota int64
}

// NewBoltPressure создает оценщик давления над bolt хранилищем
func NewBoltPressure(store SizeReporter, quotaBytes int64) (PressureEstimator, error) {
	if quotaBytes <= 0 {
		return nil, fmt.Errorf("storage quota must be positive, got %d", quotaBytes)
	}
	return &boltPressure{store: store, quota: quotaBytes}, nil
}

func (p *boltPressure) Usage() (float64, error) {
	size, err := p.store.Size()
	if err != nil {
		return 0, fmt.Errorf("failed to get storage size: %w", err)
	}
	return float64(size) / float64(p.quota), nil
}
