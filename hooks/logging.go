package hooks

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
)

// LoggingHooks provides built-in logging hooks for observability
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with default logger
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// Created logs document creation
func (h *LoggingHooks) Created(ctx context.Context, doc *driver.Document) error {
	h.logger.Printf("[docpg] Created document %s (%s) in collection %s", doc.ID, doc.SourceType, doc.Collection)
	return nil
}

// Updated logs document updates
func (h *LoggingHooks) Updated(ctx context.Context, doc *driver.Document) error {
	h.logger.Printf("[docpg] Updated document %s (%d bytes)", doc.ID, len(doc.Content))
	return nil
}

// Deleted logs document deletion
func (h *LoggingHooks) Deleted(ctx context.Context, id uuid.UUID) error {
	h.logger.Printf("[docpg] Deleted document %s", id)
	return nil
}

// Summarized logs summary generation
func (h *LoggingHooks) Summarized(ctx context.Context, doc *driver.Document, summary string) error {
	preview := summary
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	h.logger.Printf("[docpg] Summarized document %s: %s", doc.ID, preview)
	return nil
}

// Register attaches all logging hooks to a registry.
func (h *LoggingHooks) Register(r *Registry) {
	r.OnCreated(h.Created)
	r.OnUpdated(h.Updated)
	r.OnDeleted(h.Deleted)
	r.OnSummarized(h.Summarized)
}

// MetricsHooks collects metrics for monitoring
type MetricsHooks struct {
	OnMetric func(name string, value float64, tags map[string]string)
}

// NewMetricsHooks creates metrics collection hooks
func NewMetricsHooks(onMetric func(string, float64, map[string]string)) *MetricsHooks {
	return &MetricsHooks{OnMetric: onMetric}
}

// Created records creation metrics
func (h *MetricsHooks) Created(ctx context.Context, doc *driver.Document) error {
	h.OnMetric("docpg.document.created", 1, map[string]string{
		"collection":  doc.Collection,
		"source_type": doc.SourceType,
	})
	h.OnMetric("docpg.document.content_bytes", float64(len(doc.Content)), nil)
	return nil
}

// Deleted records deletion metrics
func (h *MetricsHooks) Deleted(ctx context.Context, id uuid.UUID) error {
	h.OnMetric("docpg.document.deleted", 1, nil)
	return nil
}

// Summarized records summarization metrics
func (h *MetricsHooks) Summarized(ctx context.Context, doc *driver.Document, summary string) error {
	h.OnMetric("docpg.document.summarized", 1, map[string]string{"collection": doc.Collection})
	h.OnMetric("docpg.summary.bytes", float64(len(summary)), nil)
	return nil
}

// Register attaches all metrics hooks to a registry.
func (h *MetricsHooks) Register(r *Registry) {
	r.OnCreated(h.Created)
	r.OnDeleted(h.Deleted)
	r.OnSummarized(h.Summarized)
}
