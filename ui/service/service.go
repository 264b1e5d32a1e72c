package service

import (
	"context"

	"github.com/docpg/docpg/driver"
)

// Summarizer generates a prose summary for a document.
// *summary.Summarizer is the shipped implementation; it may be nil,
// in which case SummarizeDocument returns ErrNoSummarizer.
type Summarizer interface {
	Summarize(ctx context.Context, doc *driver.Document) (string, error)
}

// Service provides document dashboard operations.
type Service struct {
	store      driver.Store
	summarizer Summarizer
}

// New creates a new Service with the given store and optional summarizer.
func New(store driver.Store, summarizer Summarizer) *Service {
	return &Service{
		store:      store,
		summarizer: summarizer,
	}
}

// Store returns the underlying store.
// This is useful for advanced operations not covered by the service.
func (s *Service) Store() driver.Store {
	return s.store
}

// CanSummarize reports whether a summarizer is configured.
func (s *Service) CanSummarize() bool {
	return s.summarizer != nil
}
