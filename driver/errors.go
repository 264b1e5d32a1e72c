package driver

import "errors"

// Driver package errors.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("driver: document not found")
)
