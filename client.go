package docpg

import (
	"context"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
	"github.com/docpg/docpg/hooks"
	"github.com/docpg/docpg/markdown"
)

// Logger is the structured logging interface accepted across docpg.
// It matches log/slog's method shape; *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Summarizer generates a prose summary for a document.
// *summary.Summarizer is the shipped implementation.
type Summarizer interface {
	Summarize(ctx context.Context, doc *driver.Document) (string, error)
}

// Client provides programmatic access to a docpg store, for use from
// ingest jobs and application code rather than HTTP handlers.
type Client struct {
	store      driver.Store
	summarizer Summarizer
	logger     Logger
	hooks      *hooks.Registry
}

// NewClient creates a Client over the given store.
func NewClient(store driver.Store, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	c := &Client{store: store}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Store returns the underlying store for operations not covered here.
func (c *Client) Store() driver.Store {
	return c.store
}

// CreateNote stores a user-authored Markdown note.
func (c *Client) CreateNote(ctx context.Context, collection, title, content string, metadata map[string]any) (*driver.Document, error) {
	return c.create(ctx, "CreateNote", driver.CreateDocumentParams{
		Collection: collection,
		Title:      title,
		SourceType: SourceTypeNote.String(),
		Content:    content,
		Metadata:   metadata,
	})
}

// ImportTranscript stores a voice-call transcription as a document.
func (c *Client) ImportTranscript(ctx context.Context, collection, title, transcript string, metadata map[string]any) (*driver.Document, error) {
	return c.create(ctx, "ImportTranscript", driver.CreateDocumentParams{
		Collection: collection,
		Title:      title,
		SourceType: SourceTypeTranscript.String(),
		Content:    transcript,
		Metadata:   metadata,
	})
}

func (c *Client) create(ctx context.Context, op string, params driver.CreateDocumentParams) (*driver.Document, error) {
	doc, err := c.store.CreateDocument(ctx, params)
	if err != nil {
		return nil, newDocError(op, uuid.Nil, err)
	}
	if c.logger != nil {
		c.logger.Info("document created", "id", doc.ID, "collection", doc.Collection, "source_type", doc.SourceType)
	}
	if c.hooks != nil {
		if err := c.hooks.TriggerCreated(ctx, doc); err != nil {
			return nil, newDocError(op, doc.ID, err)
		}
	}
	return doc, nil
}

// Document retrieves a document by ID.
func (c *Client) Document(ctx context.Context, id uuid.UUID) (*driver.Document, error) {
	doc, err := c.store.GetDocument(ctx, id)
	if err != nil {
		return nil, newDocError("Document", id, err)
	}
	return doc, nil
}

// UpdateDocument applies a partial update. Changing the content clears any
// stored summary.
func (c *Client) UpdateDocument(ctx context.Context, id uuid.UUID, params driver.UpdateDocumentParams) (*driver.Document, error) {
	doc, err := c.store.UpdateDocument(ctx, id, params)
	if err != nil {
		return nil, newDocError("UpdateDocument", id, err)
	}
	if c.logger != nil {
		c.logger.Info("document updated", "id", id)
	}
	if c.hooks != nil {
		if err := c.hooks.TriggerUpdated(ctx, doc); err != nil {
			return nil, newDocError("UpdateDocument", id, err)
		}
	}
	return doc, nil
}

// RenderDocument fetches a document and renders its Markdown content to an
// HTML fragment.
func (c *Client) RenderDocument(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := c.store.GetDocument(ctx, id)
	if err != nil {
		return "", newDocError("RenderDocument", id, err)
	}
	return markdown.Render(doc.Content), nil
}

// SummarizeDocument generates a summary via the configured summarizer and
// persists it on the document. Returns the summary text.
func (c *Client) SummarizeDocument(ctx context.Context, id uuid.UUID) (string, error) {
	if c.summarizer == nil {
		return "", newDocError("SummarizeDocument", id, ErrNoSummarizer)
	}

	doc, err := c.store.GetDocument(ctx, id)
	if err != nil {
		return "", newDocError("SummarizeDocument", id, err)
	}

	text, err := c.summarizer.Summarize(ctx, doc)
	if err != nil {
		return "", newDocError("SummarizeDocument", id, err)
	}

	if err := c.store.SetDocumentSummary(ctx, id, text); err != nil {
		return "", newDocError("SummarizeDocument", id, err)
	}
	if c.logger != nil {
		c.logger.Info("document summarized", "id", id, "summary_len", len(text))
	}
	if c.hooks != nil {
		if err := c.hooks.TriggerSummarized(ctx, doc, text); err != nil {
			return "", newDocError("SummarizeDocument", id, err)
		}
	}
	return text, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if err := c.store.DeleteDocument(ctx, id); err != nil {
		return newDocError("DeleteDocument", id, err)
	}
	if c.logger != nil {
		c.logger.Info("document deleted", "id", id)
	}
	if c.hooks != nil {
		if err := c.hooks.TriggerDeleted(ctx, id); err != nil {
			return newDocError("DeleteDocument", id, err)
		}
	}
	return nil
}
