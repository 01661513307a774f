package storage

import "errors"

// Common storage errors
var (
	// ErrDocumentNotFound indicates that document was not found in storage
	ErrDocumentNotFound = errors.New("document not found")

	// ErrBlobNotFound indicates that blob was not found in storage
	ErrBlobNotFound = errors.New("blob not found")
)
