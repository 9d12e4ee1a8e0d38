package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexUnavailable indicates no index source is configured.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrUnsupportedFormat indicates an index file in an unknown encoding.
	ErrUnsupportedFormat = errors.New("unsupported index format")
)
