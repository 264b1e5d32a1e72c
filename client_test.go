package docpg

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
	"github.com/docpg/docpg/hooks"
	"github.com/docpg/docpg/internal/memstore"
)

type fakeSummarizer struct {
	text string
	err  error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, doc *driver.Document) (string, error) {
	return f.text, f.err
}

func TestNewClient_RequiresStore(t *testing.T) {
	_, err := NewClient(nil)
	if !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}

func TestClient_CreateNote(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := context.Background()
	doc, err := client.CreateNote(ctx, "meetings", "Standup", "# Notes", map[string]any{"week": 34})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if doc.ID == uuid.Nil {
		t.Error("expected a generated document ID")
	}
	if doc.Collection != "meetings" {
		t.Errorf("collection = %q, want %q", doc.Collection, "meetings")
	}
	if doc.SourceType != SourceTypeNote.String() {
		t.Errorf("source type = %q, want %q", doc.SourceType, SourceTypeNote)
	}

	got, err := client.Document(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if got.Content != "# Notes" {
		t.Errorf("content = %q, want %q", got.Content, "# Notes")
	}
}

func TestClient_ImportTranscript(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	doc, err := client.ImportTranscript(context.Background(), "calls", "Kickoff call", "hello world", nil)
	if err != nil {
		t.Fatalf("ImportTranscript: %v", err)
	}
	if doc.SourceType != SourceTypeTranscript.String() {
		t.Errorf("source type = %q, want %q", doc.SourceType, SourceTypeTranscript)
	}
}

func TestClient_RenderDocument(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := context.Background()
	doc, err := client.CreateNote(ctx, "", "Readme", "# Hello\n\nThis is **bold**.", nil)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	html, err := client.RenderDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	want := "<h1>Hello</h1>\n<p>This is <strong>bold</strong>.</p>"
	if html != want {
		t.Errorf("RenderDocument = %q, want %q", html, want)
	}
}

func TestClient_RenderDocument_NotFound(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.RenderDocument(context.Background(), uuid.New())
	if !errors.Is(err, driver.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var docErr *DocError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected *DocError, got %T", err)
	}
	if docErr.Op != "RenderDocument" {
		t.Errorf("op = %q, want %q", docErr.Op, "RenderDocument")
	}
}

func TestClient_SummarizeDocument(t *testing.T) {
	store := memstore.New()
	client, err := NewClient(store, WithSummarizer(&fakeSummarizer{text: "A short recap."}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := context.Background()
	doc, err := client.CreateNote(ctx, "", "Long note", "lots of text", nil)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	text, err := client.SummarizeDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("SummarizeDocument: %v", err)
	}
	if text != "A short recap." {
		t.Errorf("summary = %q, want %q", text, "A short recap.")
	}

	got, err := store.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got.Summary == nil || *got.Summary != "A short recap." {
		t.Errorf("persisted summary = %v, want %q", got.Summary, "A short recap.")
	}
}

func TestClient_SummarizeDocument_NoSummarizer(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	doc, err := client.CreateNote(context.Background(), "", "Note", "text", nil)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	_, err = client.SummarizeDocument(context.Background(), doc.ID)
	if !errors.Is(err, ErrNoSummarizer) {
		t.Fatalf("expected ErrNoSummarizer, got %v", err)
	}
}

func TestClient_DeleteDocument(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := context.Background()
	doc, err := client.CreateNote(ctx, "", "Note", "text", nil)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if err := client.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if err := client.DeleteDocument(ctx, doc.ID); !errors.Is(err, driver.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClient_UpdateDocument(t *testing.T) {
	client, err := NewClient(memstore.New())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := context.Background()
	doc, err := client.CreateNote(ctx, "", "Note", "v1", nil)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	content := "v2"
	updated, err := client.UpdateDocument(ctx, doc.ID, driver.UpdateDocumentParams{Content: &content})
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}
	if updated.Content != "v2" {
		t.Errorf("content = %q, want v2", updated.Content)
	}
}

func TestClient_HooksFire(t *testing.T) {
	registry := hooks.NewRegistry()
	var events []string
	registry.OnCreated(func(ctx context.Context, doc *driver.Document) error {
		events = append(events, "created")
		return nil
	})
	registry.OnSummarized(func(ctx context.Context, doc *driver.Document, summary string) error {
		events = append(events, "summarized:"+summary)
		return nil
	})
	registry.OnDeleted(func(ctx context.Context, id uuid.UUID) error {
		events = append(events, "deleted")
		return nil
	})

	client, err := NewClient(memstore.New(),
		WithSummarizer(&fakeSummarizer{text: "recap"}),
		WithHooks(registry),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := context.Background()
	doc, err := client.CreateNote(ctx, "", "Note", "text", nil)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := client.SummarizeDocument(ctx, doc.ID); err != nil {
		t.Fatalf("SummarizeDocument: %v", err)
	}
	if err := client.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}

	want := []string{"created", "summarized:recap", "deleted"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestSourceType_Valid(t *testing.T) {
	for _, st := range []SourceType{SourceTypeNote, SourceTypeTranscript, SourceTypeUpload} {
		if !st.Valid() {
			t.Errorf("%q should be valid", st)
		}
	}
	if SourceType("email").Valid() {
		t.Error("unknown source type should not be valid")
	}
}
