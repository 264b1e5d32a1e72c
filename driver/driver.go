// Package driver provides the database abstraction for docpg.
//
// It defines the Store interface that database backends implement, plus the
// document model and parameter types shared by all backends. Two
// implementations ship with docpg:
//   - github.com/docpg/docpg/driver/pgxv5 for pgx/v5 connection pools
//   - github.com/docpg/docpg/driver/databasesql for database/sql
package driver

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Document is a stored knowledge-base entry. Content holds raw Markdown;
// rendering to HTML happens at display time, never at rest.
type Document struct {
	ID         uuid.UUID      `json:"id"`
	Collection string         `json:"collection"`
	Title      string         `json:"title"`
	SourceType string         `json:"source_type"`
	Content    string         `json:"content"`
	Summary    *string        `json:"summary,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CreateDocumentParams holds the fields for a new document.
type CreateDocumentParams struct {
	Collection string
	Title      string
	SourceType string
	Content    string
	Metadata   map[string]any
}

// UpdateDocumentParams holds the mutable fields of a document.
// Nil pointers leave the stored value unchanged.
type UpdateDocumentParams struct {
	Collection *string
	Title      *string
	Content    *string
	Metadata   map[string]any
}

// ListDocumentsParams filters and paginates document listings.
type ListDocumentsParams struct {
	// Collection restricts results to one collection. Empty means all.
	Collection string

	// SourceType restricts results to one source type (note, transcript,
	// upload). Empty means all.
	SourceType string

	// Query is a case-insensitive substring match against title and content.
	Query string

	Limit  int
	Offset int
}

// CollectionStats summarizes one collection for the browser sidebar.
type CollectionStats struct {
	Name          string    `json:"name"`
	DocumentCount int       `json:"document_count"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// Stats holds the dashboard counters.
type Stats struct {
	TotalDocuments   int            `json:"total_documents"`
	TotalCollections int            `json:"total_collections"`
	Summarized       int            `json:"summarized"`
	UpdatedToday     int            `json:"updated_today"`
	BySourceType     map[string]int `json:"by_source_type"`
}

// Store handles all persistence operations for documents.
//
// Implementations must translate their backend's "no rows" condition into
// ErrNotFound so callers can distinguish missing documents from failures.
type Store interface {
	// CreateDocument inserts a new document and returns it with its
	// generated ID and timestamps.
	CreateDocument(ctx context.Context, params CreateDocumentParams) (*Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)

	// UpdateDocument applies the non-nil fields of params and returns the
	// updated document. Updating content clears any stored summary, which
	// is derived data.
	UpdateDocument(ctx context.Context, id uuid.UUID, params UpdateDocumentParams) (*Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	// ListDocuments returns a filtered page of documents ordered by most
	// recently updated, plus the total count matching the filter.
	ListDocuments(ctx context.Context, params ListDocumentsParams) ([]*Document, int, error)

	// SetDocumentSummary stores a generated summary for a document.
	SetDocumentSummary(ctx context.Context, id uuid.UUID, summary string) error

	// ListCollections returns per-collection counts, ordered by name.
	ListCollections(ctx context.Context) ([]*CollectionStats, error)

	// GetStats returns the dashboard counters.
	GetStats(ctx context.Context) (*Stats, error)
}
