package docpg

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	// ErrNoStore is returned when a Client is created without a store.
	ErrNoStore = errors.New("no store configured")

	// ErrNoSummarizer is returned when summarization is requested but no
	// summarizer was configured.
	ErrNoSummarizer = errors.New("no summarizer configured")

	// ErrInvalidSourceType is returned for unknown source type values.
	ErrInvalidSourceType = errors.New("invalid source type")
)

// DocError represents a failed document operation with its context.
type DocError struct {
	Op         string    // Operation that failed
	DocumentID uuid.UUID // Document ID if applicable
	Err        error     // Underlying error
}

// Error implements the error interface.
func (e *DocError) Error() string {
	if e.DocumentID != uuid.Nil {
		return fmt.Sprintf("%s (document=%s): %v", e.Op, e.DocumentID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *DocError) Unwrap() error {
	return e.Err
}

func newDocError(op string, id uuid.UUID, err error) *DocError {
	return &DocError{Op: op, DocumentID: id, Err: err}
}
