// Package hooks provides lifecycle hooks for document operations.
// Applications register callbacks to observe creates, updates, deletes,
// and summarizations, for audit logging, cache invalidation, search
// indexing, or metrics.
package hooks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
)

// DocumentHook is called with the document after a create or update
type DocumentHook func(ctx context.Context, doc *driver.Document) error

// DeleteHook is called with the document ID after a delete
type DeleteHook func(ctx context.Context, id uuid.UUID) error

// SummaryHook is called after a summary is generated and persisted
type SummaryHook func(ctx context.Context, doc *driver.Document, summary string) error

// Registry holds all registered hooks
type Registry struct {
	mu        sync.RWMutex
	created   []DocumentHook
	updated   []DocumentHook
	deleted   []DeleteHook
	summarize []SummaryHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{
		created:   []DocumentHook{},
		updated:   []DocumentHook{},
		deleted:   []DeleteHook{},
		summarize: []SummaryHook{},
	}
}

// OnCreated registers a hook to be called after a document is created
func (r *Registry) OnCreated(hook DocumentHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, hook)
}

// OnUpdated registers a hook to be called after a document is updated
func (r *Registry) OnUpdated(hook DocumentHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, hook)
}

// OnDeleted registers a hook to be called after a document is deleted
func (r *Registry) OnDeleted(hook DeleteHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, hook)
}

// OnSummarized registers a hook to be called after a summary is stored
func (r *Registry) OnSummarized(hook SummaryHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summarize = append(r.summarize, hook)
}

// TriggerCreated calls all registered created hooks
func (r *Registry) TriggerCreated(ctx context.Context, doc *driver.Document) error {
	r.mu.RLock()
	hooks := make([]DocumentHook, len(r.created))
	copy(hooks, r.created)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// TriggerUpdated calls all registered updated hooks
func (r *Registry) TriggerUpdated(ctx context.Context, doc *driver.Document) error {
	r.mu.RLock()
	hooks := make([]DocumentHook, len(r.updated))
	copy(hooks, r.updated)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// TriggerDeleted calls all registered deleted hooks
func (r *Registry) TriggerDeleted(ctx context.Context, id uuid.UUID) error {
	r.mu.RLock()
	hooks := make([]DeleteHook, len(r.deleted))
	copy(hooks, r.deleted)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// TriggerSummarized calls all registered summarized hooks
func (r *Registry) TriggerSummarized(ctx context.Context, doc *driver.Document, summary string) error {
	r.mu.RLock()
	hooks := make([]SummaryHook, len(r.summarize))
	copy(hooks, r.summarize)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, doc, summary); err != nil {
			return err
		}
	}
	return nil
}
