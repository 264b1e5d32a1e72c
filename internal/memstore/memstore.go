// Package memstore provides an in-memory driver.Store used by unit tests
// and runnable examples that should not need a database.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
)

// Store is an in-memory driver.Store. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entry
	seq  int64
}

// entry pairs a document with a write sequence number so "most recently
// updated" ordering stays deterministic even when timestamps collide.
type entry struct {
	doc *driver.Document
	seq int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{docs: make(map[uuid.UUID]*entry)}
}

// CreateDocument inserts a new document.
func (s *Store) CreateDocument(ctx context.Context, params driver.CreateDocumentParams) (*driver.Document, error) {
	if params.Title == "" {
		return nil, &validationError{"title is required"}
	}
	if params.Collection == "" {
		params.Collection = "default"
	}
	if params.SourceType == "" {
		params.SourceType = "note"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	doc := &driver.Document{
		ID:         uuid.New(),
		Collection: params.Collection,
		Title:      params.Title,
		SourceType: params.SourceType,
		Content:    params.Content,
		Metadata:   params.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.seq++
	s.docs[doc.ID] = &entry{doc: doc, seq: s.seq}
	return copyDoc(doc), nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*driver.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.docs[id]
	if !ok {
		return nil, driver.ErrNotFound
	}
	return copyDoc(e.doc), nil
}

// UpdateDocument applies the non-nil fields of params.
func (s *Store) UpdateDocument(ctx context.Context, id uuid.UUID, params driver.UpdateDocumentParams) (*driver.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.docs[id]
	if !ok {
		return nil, driver.ErrNotFound
	}

	if params.Collection != nil {
		e.doc.Collection = *params.Collection
	}
	if params.Title != nil {
		e.doc.Title = *params.Title
	}
	if params.Content != nil {
		e.doc.Content = *params.Content
		e.doc.Summary = nil // derived data, stale after a content change
	}
	if params.Metadata != nil {
		e.doc.Metadata = params.Metadata
	}
	e.doc.UpdatedAt = time.Now()
	s.seq++
	e.seq = s.seq
	return copyDoc(e.doc), nil
}

// DeleteDocument removes a document.
func (s *Store) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return driver.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// ListDocuments returns a filtered page ordered by most recently updated.
func (s *Store) ListDocuments(ctx context.Context, params driver.ListDocumentsParams) ([]*driver.Document, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*entry
	for _, e := range s.docs {
		if params.Collection != "" && e.doc.Collection != params.Collection {
			continue
		}
		if params.SourceType != "" && e.doc.SourceType != params.SourceType {
			continue
		}
		if params.Query != "" {
			q := strings.ToLower(params.Query)
			if !strings.Contains(strings.ToLower(e.doc.Title), q) &&
				!strings.Contains(strings.ToLower(e.doc.Content), q) {
				continue
			}
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].seq > matched[j].seq })
	total := len(matched)

	offset := params.Offset
	if offset > total {
		offset = total
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	end := offset + limit
	if end > total {
		end = total
	}

	docs := make([]*driver.Document, 0, end-offset)
	for _, e := range matched[offset:end] {
		docs = append(docs, copyDoc(e.doc))
	}
	return docs, total, nil
}

// SetDocumentSummary stores a generated summary.
func (s *Store) SetDocumentSummary(ctx context.Context, id uuid.UUID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.docs[id]
	if !ok {
		return driver.ErrNotFound
	}
	e.doc.Summary = &summary
	e.doc.UpdatedAt = time.Now()
	return nil
}

// ListCollections returns per-collection counts ordered by name.
func (s *Store) ListCollections(ctx context.Context) ([]*driver.CollectionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName := make(map[string]*driver.CollectionStats)
	for _, e := range s.docs {
		c, ok := byName[e.doc.Collection]
		if !ok {
			c = &driver.CollectionStats{Name: e.doc.Collection}
			byName[e.doc.Collection] = c
		}
		c.DocumentCount++
		if e.doc.UpdatedAt.After(c.LastUpdatedAt) {
			c.LastUpdatedAt = e.doc.UpdatedAt
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	collections := make([]*driver.CollectionStats, 0, len(names))
	for _, name := range names {
		collections = append(collections, byName[name])
	}
	return collections, nil
}

// GetStats returns the dashboard counters.
func (s *Store) GetStats(ctx context.Context) (*driver.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &driver.Stats{BySourceType: make(map[string]int)}
	collections := make(map[string]bool)
	today := time.Now().Truncate(24 * time.Hour)

	for _, e := range s.docs {
		stats.TotalDocuments++
		collections[e.doc.Collection] = true
		stats.BySourceType[e.doc.SourceType]++
		if e.doc.Summary != nil {
			stats.Summarized++
		}
		if !e.doc.UpdatedAt.Before(today) {
			stats.UpdatedToday++
		}
	}
	stats.TotalCollections = len(collections)
	return stats, nil
}

func copyDoc(doc *driver.Document) *driver.Document {
	out := *doc
	if doc.Summary != nil {
		summary := *doc.Summary
		out.Summary = &summary
	}
	if doc.Metadata != nil {
		out.Metadata = make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }
