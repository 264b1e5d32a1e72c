package api

import (
	"net/http"

	"github.com/docpg/docpg/ui/service"
)

// Config holds API router configuration.
type Config struct {
	// Collection pins the API to a single collection.
	// If empty, all collections are visible.
	Collection string

	// ReadOnly disables write endpoints.
	ReadOnly bool

	// PageSize for pagination.
	PageSize int

	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the API router state.
type router struct {
	svc    *service.Service
	config *Config
}

// NewRouter creates a new API router.
func NewRouter(svc *service.Service, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			PageSize: 25,
		}
	}

	r := &router{
		svc:    svc,
		config: cfg,
	}

	mux := http.NewServeMux()

	// Dashboard
	mux.HandleFunc("GET /dashboard", r.handleDashboard)

	// Documents
	mux.HandleFunc("GET /documents", r.handleListDocuments)
	mux.HandleFunc("POST /documents", r.handleCreateDocument)
	mux.HandleFunc("GET /documents/{id}", r.handleGetDocument)
	mux.HandleFunc("PUT /documents/{id}", r.handleUpdateDocument)
	mux.HandleFunc("DELETE /documents/{id}", r.handleDeleteDocument)
	mux.HandleFunc("GET /documents/{id}/html", r.handleGetDocumentHTML)
	mux.HandleFunc("POST /documents/{id}/summarize", r.handleSummarizeDocument)

	// Rendering
	mux.HandleFunc("POST /render", r.handleRender)

	// Collections
	mux.HandleFunc("GET /collections", r.handleListCollections)

	return withMiddleware(mux, cfg)
}

// withMiddleware wraps the handler with common middleware.
func withMiddleware(handler http.Handler, cfg *Config) http.Handler {
	// Add JSON content type
	handler = jsonMiddleware(handler)
	// Add error recovery
	handler = recoveryMiddleware(handler, cfg.Logger)
	return handler
}

// jsonMiddleware sets JSON content type for all responses.
func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, `{"error":{"code":"internal_error","message":"internal server error"}}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
