package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/docpg/docpg/ui/service"
)

// Response wraps all API responses.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
	Meta  *Meta     `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta contains pagination metadata.
type Meta struct {
	TotalCount int  `json:"total_count,omitempty"`
	HasMore    bool `json:"has_more,omitempty"`
	Limit      int  `json:"limit,omitempty"`
	Offset     int  `json:"offset,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

// writeJSONWithMeta writes a JSON response with metadata.
func writeJSONWithMeta(w http.ResponseWriter, status int, data any, meta *Meta) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data, Meta: meta})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Error: &APIError{Code: code, Message: message},
	})
}

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "document not found")
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, service.ErrNoSummarizer):
		writeError(w, http.StatusConflict, "no_summarizer", "summarization is not configured")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// parseUUID parses a UUID from a path parameter.
func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

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

// requireWrite rejects the request when the API is read-only.
func (rt *router) requireWrite(w http.ResponseWriter) bool {
	if rt.config.ReadOnly {
		writeError(w, http.StatusForbidden, "read_only", "API is in read-only mode")
		return false
	}
	return true
}

// Dashboard handlers

func (rt *router) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := rt.svc.GetDashboardStats(r.Context(), rt.config.Collection)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Document handlers

func (rt *router) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	params := service.DocumentListParams{
		Collection: rt.config.Collection,
		SourceType: service.ValidateSourceType(r.URL.Query().Get("source_type")),
		Query:      r.URL.Query().Get("q"),
		Limit:      parseInt(r, "limit", rt.config.PageSize),
		Offset:     parseOffset(r, "offset", 0),
	}
	// Only allow collection override if config.Collection is empty (admin mode)
	if rt.config.Collection == "" {
		if collection := r.URL.Query().Get("collection"); collection != "" {
			params.Collection = collection
		}
	}

	list, err := rt.svc.ListDocuments(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONWithMeta(w, http.StatusOK, list.Documents, &Meta{
		TotalCount: list.TotalCount,
		HasMore:    list.HasMore,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
}

func (rt *router) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	var req service.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if rt.config.Collection != "" {
		req.Collection = rt.config.Collection
	}

	doc, err := rt.svc.CreateDocument(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (rt *router) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid document ID")
		return
	}

	detail, err := rt.svc.GetDocumentDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (rt *router) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid document ID")
		return
	}

	var req service.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	doc, err := rt.svc.UpdateDocument(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (rt *router) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid document ID")
		return
	}

	if err := rt.svc.DeleteDocument(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (rt *router) handleGetDocumentHTML(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid document ID")
		return
	}

	result, err := rt.svc.RenderDocument(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (rt *router) handleSummarizeDocument(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWrite(w) {
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid document ID")
		return
	}

	result, err := rt.svc.SummarizeDocument(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rt.config.Logger != nil {
		rt.config.Logger.Info("document summarized", "id", id)
	}

	writeJSON(w, http.StatusOK, result)
}

// Render handlers

func (rt *router) handleRender(w http.ResponseWriter, r *http.Request) {
	var req service.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, rt.svc.Preview(req.Content))
}

// Collection handlers

func (rt *router) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := rt.svc.ListCollections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, collections)
}
