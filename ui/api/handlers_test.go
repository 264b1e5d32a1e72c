package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docpg/docpg/driver"
	"github.com/docpg/docpg/internal/memstore"
	"github.com/docpg/docpg/ui/service"
)

type fakeSummarizer struct {
	text string
	err  error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, doc *driver.Document) (string, error) {
	return f.text, f.err
}

func newTestRouter(t *testing.T, cfg *Config) (http.Handler, *service.Service) {
	t.Helper()
	svc := service.New(memstore.New(), &fakeSummarizer{text: "recap"})
	return NewRouter(svc, cfg), svc
}

func createDocument(t *testing.T, handler http.Handler, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create document: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	return decodeData(t, rec)
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return resp.Data
}

func TestAPI_CreateAndGetDocument(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	created := createDocument(t, handler, `{"collection":"notes","title":"Readme","content":"# Hello"}`)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("missing document id in %v", created)
	}

	req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get document: status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	data := decodeData(t, rec)
	if html, _ := data["html"].(string); html != "<h1>Hello</h1>" {
		t.Errorf("html = %q, want %q", html, "<h1>Hello</h1>")
	}
}

func TestAPI_GetDocument_InvalidID(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/documents/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAPI_GetDocument_NotFound(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/documents/9f4c1f9e-66a7-4f27-9b25-7e1f6a3c2d10", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Errorf("body missing error code: %s", rec.Body.String())
	}
}

func TestAPI_ListDocuments_Pagination(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	for i := 0; i < 3; i++ {
		createDocument(t, handler, fmt.Sprintf(`{"title":"Doc %d","content":"body"}`, i))
	}

	req := httptest.NewRequest(http.MethodGet, "/documents?limit=2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
		Meta struct {
			TotalCount int  `json:"total_count"`
			HasMore    bool `json:"has_more"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(resp.Data))
	}
	if resp.Meta.TotalCount != 3 || !resp.Meta.HasMore {
		t.Errorf("meta = %+v, want total 3 has_more true", resp.Meta)
	}
}

func TestAPI_UpdateDocument(t *testing.T) {
	handler, _ := newTestRouter(t, nil)
	created := createDocument(t, handler, `{"title":"Doc","content":"v1"}`)
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodPut, "/documents/"+id, strings.NewReader(`{"title":"Renamed"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["title"] != "Renamed" {
		t.Errorf("title = %v, want Renamed", data["title"])
	}
}

func TestAPI_DeleteDocument(t *testing.T) {
	handler, _ := newTestRouter(t, nil)
	created := createDocument(t, handler, `{"title":"Doc","content":"body"}`)
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", rec.Code)
	}
}

func TestAPI_Render(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	body := `{"content":"**bold** and [x](javascript:alert(1))"}`
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeData(t, rec)
	html := data["html"].(string)
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("html missing bold: %q", html)
	}
	if !strings.Contains(html, `href="#"`) {
		t.Errorf("javascript link not neutralized: %q", html)
	}
}

func TestAPI_Summarize(t *testing.T) {
	handler, _ := newTestRouter(t, nil)
	created := createDocument(t, handler, `{"title":"Doc","content":"long body"}`)
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodPost, "/documents/"+id+"/summarize", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["summary"] != "recap" {
		t.Errorf("summary = %v, want recap", data["summary"])
	}
}

func TestAPI_Summarize_NoSummarizer(t *testing.T) {
	svc := service.New(memstore.New(), nil)
	handler := NewRouter(svc, nil)

	doc, err := svc.CreateDocument(context.Background(), service.CreateDocumentRequest{Title: "Doc"})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/documents/"+doc.ID.String()+"/summarize", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestAPI_ReadOnlyBlocksWrites(t *testing.T) {
	handler, svc := newTestRouter(t, &Config{ReadOnly: true, PageSize: 25})

	doc, err := svc.CreateDocument(context.Background(), service.CreateDocumentRequest{Title: "Doc"})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	writes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/documents", `{"title":"X"}`},
		{http.MethodPut, "/documents/" + doc.ID.String(), `{"title":"X"}`},
		{http.MethodDelete, "/documents/" + doc.ID.String(), ""},
		{http.MethodPost, "/documents/" + doc.ID.String() + "/summarize", ""},
	}
	for _, wr := range writes {
		var body *bytes.Reader
		if wr.body != "" {
			body = bytes.NewReader([]byte(wr.body))
		} else {
			body = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(wr.method, wr.path, body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s: status = %d, want 403", wr.method, wr.path, rec.Code)
		}
	}

	// Reads still work
	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("read in read-only mode: status = %d, want 200", rec.Code)
	}
}

func TestAPI_Dashboard(t *testing.T) {
	handler, _ := newTestRouter(t, nil)
	createDocument(t, handler, `{"collection":"notes","title":"A","content":"a"}`)
	createDocument(t, handler, `{"collection":"calls","title":"B","content":"b","source_type":"transcript"}`)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["total_documents"].(float64) != 2 {
		t.Errorf("total_documents = %v, want 2", data["total_documents"])
	}
	if data["total_collections"].(float64) != 2 {
		t.Errorf("total_collections = %v, want 2", data["total_collections"])
	}
}

func TestAPI_Collections(t *testing.T) {
	handler, _ := newTestRouter(t, nil)
	createDocument(t, handler, `{"collection":"notes","title":"A","content":"a"}`)

	req := httptest.NewRequest(http.MethodGet, "/collections", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0]["name"] != "notes" {
		t.Errorf("collections = %v", resp.Data)
	}
}

func TestAPI_PinnedCollectionOverridesRequest(t *testing.T) {
	handler, _ := newTestRouter(t, &Config{Collection: "pinned", PageSize: 25})

	created := createDocument(t, handler, `{"collection":"other","title":"Doc","content":"x"}`)
	if created["collection"] != "pinned" {
		t.Errorf("collection = %v, want pinned", created["collection"])
	}
}
