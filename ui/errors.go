package ui

import "errors"

// UI package errors.
var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("ui: invalid configuration")

	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("ui: not found")

	// ErrBadRequest indicates an invalid request.
	ErrBadRequest = errors.New("ui: bad request")

	// ErrReadOnly indicates the UI is in read-only mode.
	ErrReadOnly = errors.New("ui: read-only mode")

	// ErrSummarizerRequired indicates a summarizer is required for the operation.
	ErrSummarizerRequired = errors.New("ui: summarizer required for summarization")
)
