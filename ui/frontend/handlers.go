package frontend

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/docpg/docpg/ui/service"
)

// maxContentBytes caps form submissions to keep a single document from
// exhausting memory.
const maxContentBytes = 1 << 20

// parseInt parses an integer from a query parameter with a default.
// It applies bounds validation to prevent resource exhaustion.
func parseInt(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return service.ValidateLimit(i)
}

// parseOffset parses an offset from a query parameter with a default.
func parseOffset(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return service.ValidateOffset(i)
}

// parseUUID parses a UUID from a string.
func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// logError logs an error if the logger is configured.
// It's used for optional data fetches that shouldn't break the page.
func (rt *router) logError(msg string, err error) {
	if rt.config.Logger != nil {
		rt.config.Logger.Warn(msg, "error", err.Error())
	}
}

// requireWrite rejects the request when the UI is read-only.
func (rt *router) requireWrite(w http.ResponseWriter) bool {
	if rt.config.ReadOnly {
		http.Error(w, "Read-only mode", http.StatusForbidden)
		return false
	}
	return true
}

// redirect sends a redirect honoring the mount prefix.
func (rt *router) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, rt.config.BasePath+path, http.StatusSeeOther)
}

// collectionFilter resolves the effective collection filter for a request.
// A pinned collection always wins; otherwise the query parameter applies.
func (rt *router) collectionFilter(r *http.Request) string {
	if rt.config.Collection != "" {
		return rt.config.Collection
	}
	return r.URL.Query().Get("collection")
}

// Main page handlers

func (rt *router) handleRedirectToDashboard(w http.ResponseWriter, r *http.Request) {
	rt.redirect(w, r, "/dashboard")
}

func (rt *router) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := rt.svc.GetDashboardStats(r.Context(), rt.config.Collection)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title": "Dashboard",
		"Stats": stats,
	}

	if err := rt.renderer.render(w, r, "dashboard.html", rt.svc.CanSummarize(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleDocuments(w http.ResponseWriter, r *http.Request) {
	params := service.DocumentListParams{
		Collection: rt.collectionFilter(r),
		SourceType: service.ValidateSourceType(r.URL.Query().Get("source_type")),
		Query:      r.URL.Query().Get("q"),
		Limit:      parseInt(r, "limit", rt.config.PageSize),
		Offset:     parseOffset(r, "offset", 0),
	}

	list, err := rt.svc.ListDocuments(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Collection dropdown options (only when not pinned)
	var collections []any
	if rt.config.Collection == "" {
		stats, err := rt.svc.ListCollections(r.Context())
		if err != nil {
			rt.logError("failed to list collections", err)
		} else {
			for _, c := range stats {
				collections = append(collections, c)
			}
		}
	}

	data := map[string]any{
		"Title":       "Documents",
		"Documents":   list.Documents,
		"TotalCount":  list.TotalCount,
		"HasMore":     list.HasMore,
		"Limit":       params.Limit,
		"Offset":      params.Offset,
		"Query":       params.Query,
		"Collection":  params.Collection,
		"SourceType":  params.SourceType,
		"Collections": collections,
		"CurrentPage": params.Offset/params.Limit + 1,
		"TotalPages":  (list.TotalCount + params.Limit - 1) / params.Limit,
	}

	if err := rt.renderer.render(w, r, "documents/list.html", rt.svc.CanSummarize(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleDocumentDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	detail, err := rt.svc.GetDocumentDetail(r.Context(), id)
	if err != nil {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}

	data := map[string]any{
		"Title":    detail.Document.Title,
		"Detail":   detail,
		"Document": detail.Document,
	}

	if err := rt.renderer.render(w, r, "documents/detail.html", rt.svc.CanSummarize(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleDocumentNew(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	data := map[string]any{
		"Title":      "New Document",
		"Collection": rt.config.Collection,
	}

	if err := rt.renderer.render(w, r, "documents/new.html", rt.svc.CanSummarize(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleDocumentEdit(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	doc, err := rt.svc.GetDocument(r.Context(), id)
	if err != nil {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}

	data := map[string]any{
		"Title":    "Edit: " + doc.Title,
		"Document": doc,
	}

	if err := rt.renderer.render(w, r, "documents/edit.html", rt.svc.CanSummarize(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleHelp(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":   "Markdown Help",
		"Content": helpContent,
	}

	if err := rt.renderer.render(w, r, "help.html", rt.svc.CanSummarize(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Form action handlers

func (rt *router) handleDocumentCreate(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxContentBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := service.CreateDocumentRequest{
		Collection: r.PostFormValue("collection"),
		Title:      r.PostFormValue("title"),
		SourceType: r.PostFormValue("source_type"),
		Content:    r.PostFormValue("content"),
	}
	if rt.config.Collection != "" {
		req.Collection = rt.config.Collection
	}

	doc, err := rt.svc.CreateDocument(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rt.redirect(w, r, "/documents/"+doc.ID.String())
}

func (rt *router) handleDocumentUpdate(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxContentBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := service.UpdateDocumentRequest{}
	if title := r.PostFormValue("title"); title != "" {
		req.Title = &title
	}
	if r.PostForm.Has("content") {
		content := r.PostFormValue("content")
		req.Content = &content
	}
	if collection := r.PostFormValue("collection"); collection != "" && rt.config.Collection == "" {
		req.Collection = &collection
	}

	if _, err := rt.svc.UpdateDocument(r.Context(), id, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rt.redirect(w, r, "/documents/"+id.String())
}

func (rt *router) handleDocumentDelete(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	if err := rt.svc.DeleteDocument(r.Context(), id); err != nil {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}

	rt.redirect(w, r, "/documents")
}

func (rt *router) handleDocumentSummarize(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	if _, err := rt.svc.SummarizeDocument(r.Context(), id); err != nil {
		rt.logError("summarization failed", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	rt.redirect(w, r, "/documents/"+id.String())
}

// HTMX fragment handlers

func (rt *router) handleFragmentDocumentList(w http.ResponseWriter, r *http.Request) {
	params := service.DocumentListParams{
		Collection: rt.collectionFilter(r),
		SourceType: service.ValidateSourceType(r.URL.Query().Get("source_type")),
		Query:      r.URL.Query().Get("q"),
		Limit:      parseInt(r, "limit", rt.config.PageSize),
		Offset:     parseOffset(r, "offset", 0),
	}

	list, err := rt.svc.ListDocuments(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Documents":  list.Documents,
		"TotalCount": list.TotalCount,
		"BasePath":   rt.config.BasePath,
	}

	if err := rt.renderer.renderFragment(w, "fragments/document-list.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleFragmentPreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContentBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	data := map[string]any{
		"Content": r.PostFormValue("content"),
	}

	if err := rt.renderer.renderFragment(w, "fragments/preview.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
