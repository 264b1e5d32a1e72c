package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
	"github.com/docpg/docpg/internal/memstore"
)

type fakeSummarizer struct {
	text string
	err  error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, doc *driver.Document) (string, error) {
	return f.text, f.err
}

func seedDocument(t *testing.T, svc *Service, collection, title, content string) *driver.Document {
	t.Helper()
	doc, err := svc.CreateDocument(context.Background(), CreateDocumentRequest{
		Collection: collection,
		Title:      title,
		Content:    content,
	})
	if err != nil {
		t.Fatalf("CreateDocument(%q): %v", title, err)
	}
	return doc
}

func TestService_CreateDocument_Validation(t *testing.T) {
	svc := New(memstore.New(), nil)
	ctx := context.Background()

	_, err := svc.CreateDocument(ctx, CreateDocumentRequest{Title: "   "})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("blank title: expected ErrValidation, got %v", err)
	}

	_, err = svc.CreateDocument(ctx, CreateDocumentRequest{Title: "Doc", SourceType: "email"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown source type: expected ErrValidation, got %v", err)
	}
}

func TestService_ListDocuments(t *testing.T) {
	svc := New(memstore.New(), nil)
	ctx := context.Background()

	seedDocument(t, svc, "notes", "Alpha", "alpha body")
	seedDocument(t, svc, "notes", "Beta", "beta body")
	seedDocument(t, svc, "calls", "Gamma", "gamma body")

	list, err := svc.ListDocuments(ctx, DocumentListParams{Collection: "notes"})
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if list.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", list.TotalCount)
	}
	if list.HasMore {
		t.Error("HasMore should be false")
	}

	// Most recently created first
	if list.Documents[0].Title != "Beta" {
		t.Errorf("first document = %q, want %q", list.Documents[0].Title, "Beta")
	}

	paged, err := svc.ListDocuments(ctx, DocumentListParams{Limit: 2})
	if err != nil {
		t.Fatalf("ListDocuments paged: %v", err)
	}
	if len(paged.Documents) != 2 || !paged.HasMore {
		t.Errorf("paged: got %d documents, HasMore=%v; want 2, true", len(paged.Documents), paged.HasMore)
	}
}

func TestService_ListDocuments_InvalidSourceTypeIsIgnored(t *testing.T) {
	svc := New(memstore.New(), nil)
	seedDocument(t, svc, "notes", "Alpha", "alpha body")

	list, err := svc.ListDocuments(context.Background(), DocumentListParams{SourceType: "bogus"})
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if list.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1 (invalid filter dropped)", list.TotalCount)
	}
}

func TestService_GetDocumentDetail(t *testing.T) {
	svc := New(memstore.New(), nil)
	doc := seedDocument(t, svc, "notes", "Readme", "# Hello\n\nSome **bold** text here.")

	detail, err := svc.GetDocumentDetail(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("GetDocumentDetail: %v", err)
	}
	if !strings.Contains(detail.HTML, "<h1>Hello</h1>") {
		t.Errorf("HTML missing heading: %q", detail.HTML)
	}
	if !strings.Contains(detail.HTML, "<strong>bold</strong>") {
		t.Errorf("HTML missing bold: %q", detail.HTML)
	}
	if detail.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", detail.WordCount)
	}
	if detail.LineCount != 3 {
		t.Errorf("LineCount = %d, want 3", detail.LineCount)
	}
}

func TestService_GetDocument_NotFound(t *testing.T) {
	svc := New(memstore.New(), nil)

	_, err := svc.GetDocument(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_UpdateDocument_ClearsSummaryOnContentChange(t *testing.T) {
	store := memstore.New()
	svc := New(store, &fakeSummarizer{text: "recap"})
	doc := seedDocument(t, svc, "notes", "Doc", "original")
	ctx := context.Background()

	if _, err := svc.SummarizeDocument(ctx, doc.ID); err != nil {
		t.Fatalf("SummarizeDocument: %v", err)
	}

	content := "rewritten"
	updated, err := svc.UpdateDocument(ctx, doc.ID, UpdateDocumentRequest{Content: &content})
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}
	if updated.Summary != nil {
		t.Errorf("summary should be cleared after content change, got %q", *updated.Summary)
	}
}

func TestService_SummarizeDocument_NoSummarizer(t *testing.T) {
	svc := New(memstore.New(), nil)
	doc := seedDocument(t, svc, "notes", "Doc", "body")

	_, err := svc.SummarizeDocument(context.Background(), doc.ID)
	if !errors.Is(err, ErrNoSummarizer) {
		t.Fatalf("expected ErrNoSummarizer, got %v", err)
	}
}

func TestService_Preview(t *testing.T) {
	svc := New(memstore.New(), nil)

	result := svc.Preview("*emphasis* and <script>")
	want := "<p><em>emphasis</em> and &lt;script&gt;</p>"
	if result.HTML != want {
		t.Errorf("Preview = %q, want %q", result.HTML, want)
	}
}

func TestService_GetDashboardStats(t *testing.T) {
	store := memstore.New()
	svc := New(store, &fakeSummarizer{text: "recap"})
	ctx := context.Background()

	a := seedDocument(t, svc, "notes", "Alpha", "alpha")
	seedDocument(t, svc, "notes", "Beta", "beta")
	seedDocument(t, svc, "calls", "Gamma", "gamma")

	if _, err := svc.SummarizeDocument(ctx, a.ID); err != nil {
		t.Fatalf("SummarizeDocument: %v", err)
	}

	stats, err := svc.GetDashboardStats(ctx, "")
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalDocuments != 3 {
		t.Errorf("TotalDocuments = %d, want 3", stats.TotalDocuments)
	}
	if stats.TotalCollections != 2 {
		t.Errorf("TotalCollections = %d, want 2", stats.TotalCollections)
	}
	if stats.Summarized != 1 {
		t.Errorf("Summarized = %d, want 1", stats.Summarized)
	}
	if stats.BySourceType["note"] != 3 {
		t.Errorf("BySourceType[note] = %d, want 3", stats.BySourceType["note"])
	}
	if len(stats.Collections) != 2 || stats.Collections[0].Name != "calls" {
		t.Errorf("collections = %+v, want calls first", stats.Collections)
	}
	if len(stats.RecentDocuments) != 3 {
		t.Errorf("RecentDocuments = %d, want 3", len(stats.RecentDocuments))
	}
}

func TestSnippet(t *testing.T) {
	got := snippet("# Title line\nsecond line")
	if got != "Title line second line" {
		t.Errorf("snippet = %q", got)
	}

	long := strings.Repeat("word ", 60)
	if got := snippet(long); len(got) != snippetLength {
		t.Errorf("snippet length = %d, want %d", len(got), snippetLength)
	}
}
