package service

import "errors"

// Service package errors.
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("service: not found")

	// ErrValidation indicates invalid request input.
	ErrValidation = errors.New("service: validation failed")

	// ErrNoSummarizer indicates summarization was requested without a
	// configured summarizer.
	ErrNoSummarizer = errors.New("service: no summarizer configured")
)
