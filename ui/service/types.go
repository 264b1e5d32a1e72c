package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
)

// Validation constants for query parameters
const (
	// MaxPageLimit is the maximum allowed page size to prevent resource exhaustion
	MaxPageLimit = 1000
	// MinPageLimit is the minimum allowed page size
	MinPageLimit = 1
	// snippetLength is the length of list-view content previews
	snippetLength = 140
)

// AllowedSourceTypes is the whitelist of valid source type filter values.
var AllowedSourceTypes = map[string]bool{
	"":           true, // empty means no filter
	"note":       true,
	"transcript": true,
	"upload":     true,
}

// ValidateSourceType validates a source type filter value.
// Returns the validated value or an empty string if invalid.
func ValidateSourceType(value string) string {
	if AllowedSourceTypes[value] {
		return value
	}
	return ""
}

// ValidateLimit ensures limit is within acceptable bounds.
func ValidateLimit(limit int) int {
	if limit < MinPageLimit {
		return MinPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// ValidateOffset ensures offset is non-negative.
func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// DocumentListParams filters and paginates document lists.
type DocumentListParams struct {
	Collection string `json:"collection,omitempty"`
	SourceType string `json:"source_type,omitempty"`
	Query      string `json:"query,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// DocumentSummary is a list-view projection of a document.
type DocumentSummary struct {
	ID         uuid.UUID `json:"id"`
	Collection string    `json:"collection"`
	Title      string    `json:"title"`
	SourceType string    `json:"source_type"`
	Snippet    string    `json:"snippet"`
	HasSummary bool      `json:"has_summary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DocumentList is a paginated list of document summaries.
type DocumentList struct {
	Documents  []*DocumentSummary `json:"documents"`
	TotalCount int                `json:"total_count"`
	HasMore    bool               `json:"has_more"`
}

// DocumentDetail is a document together with its rendered content.
type DocumentDetail struct {
	Document *driver.Document `json:"document"`

	// HTML is the document content rendered from Markdown. It is an
	// unsanitized fragment; frontends sanitize it at the template sink.
	HTML string `json:"html"`

	WordCount int `json:"word_count"`
	LineCount int `json:"line_count"`
}

// CreateDocumentRequest is the payload for creating a document.
type CreateDocumentRequest struct {
	Collection string         `json:"collection"`
	Title      string         `json:"title"`
	SourceType string         `json:"source_type"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// UpdateDocumentRequest is the payload for updating a document.
// Nil fields are left unchanged.
type UpdateDocumentRequest struct {
	Collection *string        `json:"collection,omitempty"`
	Title      *string        `json:"title,omitempty"`
	Content    *string        `json:"content,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// RenderRequest is the payload for ad-hoc Markdown rendering.
type RenderRequest struct {
	Content string `json:"content"`
}

// RenderResult is the outcome of a render operation.
type RenderResult struct {
	HTML string `json:"html"`
}

// SummarizeResult is the outcome of a summarize operation.
type SummarizeResult struct {
	Summary string `json:"summary"`
}

// DashboardStats contains aggregated statistics for the dashboard.
type DashboardStats struct {
	TotalDocuments   int `json:"total_documents"`
	TotalCollections int `json:"total_collections"`
	Summarized       int `json:"summarized"`
	UpdatedToday     int `json:"updated_today"`

	// Breakdown by source type
	BySourceType map[string]int `json:"by_source_type"`

	// Collection breakdown
	Collections []*driver.CollectionStats `json:"collections"`

	// Recent activity
	RecentDocuments []*DocumentSummary `json:"recent_documents"`
}
