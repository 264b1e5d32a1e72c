package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
	"github.com/docpg/docpg/markdown"
)

// ListDocuments returns a paginated list of documents.
func (s *Service) ListDocuments(ctx context.Context, params DocumentListParams) (*DocumentList, error) {
	if params.Limit <= 0 {
		params.Limit = 25
	}

	docs, total, err := s.store.ListDocuments(ctx, driver.ListDocumentsParams{
		Collection: params.Collection,
		SourceType: ValidateSourceType(params.SourceType),
		Query:      params.Query,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]*DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, summarize(doc))
	}

	return &DocumentList{
		Documents:  summaries,
		TotalCount: total,
		HasMore:    params.Offset+len(summaries) < total,
	}, nil
}

// GetDocument returns a document by ID.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*driver.Document, error) {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, driver.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// GetDocumentDetail returns a document with its rendered HTML and
// content stats for the detail view.
func (s *Service) GetDocumentDetail(ctx context.Context, id uuid.UUID) (*DocumentDetail, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DocumentDetail{
		Document:  doc,
		HTML:      markdown.Render(doc.Content),
		WordCount: len(strings.Fields(doc.Content)),
		LineCount: strings.Count(doc.Content, "\n") + 1,
	}, nil
}

// CreateDocument creates a new document.
func (s *Service) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*driver.Document, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.SourceType != "" && !AllowedSourceTypes[req.SourceType] {
		return nil, fmt.Errorf("%w: unknown source type %q", ErrValidation, req.SourceType)
	}

	return s.store.CreateDocument(ctx, driver.CreateDocumentParams{
		Collection: req.Collection,
		Title:      req.Title,
		SourceType: req.SourceType,
		Content:    req.Content,
		Metadata:   req.Metadata,
	})
}

// UpdateDocument applies a partial update. A content change clears any
// stored summary; the store enforces that.
func (s *Service) UpdateDocument(ctx context.Context, id uuid.UUID, req UpdateDocumentRequest) (*driver.Document, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	doc, err := s.store.UpdateDocument(ctx, id, driver.UpdateDocumentParams{
		Collection: req.Collection,
		Title:      req.Title,
		Content:    req.Content,
		Metadata:   req.Metadata,
	})
	if err != nil {
		if errors.Is(err, driver.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes a document.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, driver.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RenderDocument returns the stored document's content rendered to HTML.
func (s *Service) RenderDocument(ctx context.Context, id uuid.UUID) (*RenderResult, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RenderResult{HTML: markdown.Render(doc.Content)}, nil
}

// Preview renders arbitrary Markdown without touching the store. Used by
// the live editor preview and the ad-hoc render endpoint.
func (s *Service) Preview(content string) *RenderResult {
	return &RenderResult{HTML: markdown.Render(content)}
}

// SummarizeDocument generates and persists a summary for the document.
func (s *Service) SummarizeDocument(ctx context.Context, id uuid.UUID) (*SummarizeResult, error) {
	if s.summarizer == nil {
		return nil, ErrNoSummarizer
	}

	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := s.summarizer.Summarize(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetDocumentSummary(ctx, id, text); err != nil {
		if errors.Is(err, driver.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &SummarizeResult{Summary: text}, nil
}

// ListCollections returns per-collection document counts.
func (s *Service) ListCollections(ctx context.Context) ([]*driver.CollectionStats, error) {
	return s.store.ListCollections(ctx)
}

// summarize projects a document into its list-view shape.
func summarize(doc *driver.Document) *DocumentSummary {
	return &DocumentSummary{
		ID:         doc.ID,
		Collection: doc.Collection,
		Title:      doc.Title,
		SourceType: doc.SourceType,
		Snippet:    snippet(doc.Content),
		HasSummary: doc.Summary != nil,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// snippet produces a single-line plain text preview of Markdown content.
func snippet(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	line = strings.TrimLeft(line, "#>*-` ")
	if len(line) > snippetLength {
		line = line[:snippetLength-3] + "..."
	}
	return line
}
