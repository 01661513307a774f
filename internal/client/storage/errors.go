package storage

import "errors"

// Common client storage errors
var (
	// ErrClockNotFound indicates that no persisted clock value exists yet
	ErrClockNotFound = errors.New("clock value not found")

	// ErrDocumentNotFound indicates that document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUploadNotFound indicates that pending upload was not found
	ErrUploadNotFound = errors.New("pending upload not found")

	// ErrMutationNotFound indicates that mutation log record was not found
	ErrMutationNotFound = errors.New("mutation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
