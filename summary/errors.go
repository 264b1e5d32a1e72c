package summary

import "errors"

// Summary package errors.
var (
	// ErrEmptyDocument is returned when there is nothing to summarize.
	ErrEmptyDocument = errors.New("summary: document has no content")

	// ErrSummarizationFailed wraps API and streaming failures.
	ErrSummarizationFailed = errors.New("summary: summarization failed")
)
