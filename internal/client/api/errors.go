package api

import (
	"errors"
	"fmt"
)

// FatalUploadError означает, что сервер отверг файл навсегда:
// слишком большой (413), неподдерживаемый тип (415) или битый запрос (400).
// Повторять такую загрузку бессмысленно - payload от ретрая не изменится.
type FatalUploadError struct {
	Message    string
	StatusCode int
}

func (e *FatalUploadError) Error() string {
	return fmt.Sprintf("upload rejected (%d): %s", e.StatusCode, e.Message)
}

// IsFatal сообщает, является ли ошибка загрузки окончательным отказом
func IsFatal(err error) bool {
	var fatalErr *FatalUploadError
	return errors.As(err, &fatalErr)
}
