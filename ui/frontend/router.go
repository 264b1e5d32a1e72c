package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/docpg/docpg/ui/service"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// All navigation links will be prefixed with this path.
	BasePath string

	// Collection pins the UI to a single collection.
	// If empty, all collections are shown with a collection selector.
	Collection string

	// ReadOnly disables write operations (create, edit, delete, summarize).
	ReadOnly bool

	// PageSize for pagination.
	PageSize int

	// RefreshInterval for auto-refresh.
	RefreshInterval time.Duration

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

// router holds the frontend router state.
type router struct {
	svc      *service.Service
	config   *Config
	tmpl     *template.Template
	renderer *renderer
}

// NewRouter creates a new frontend router.
func NewRouter(svc *service.Service, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			PageSize:        25,
			RefreshInterval: 5 * time.Second,
		}
	}

	// Parse base templates (layout, nav, shared fragments)
	// Page-specific templates are parsed dynamically by the renderer
	// to avoid conflicts between "content" blocks in different pages.
	baseTmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS,
			"templates/base.html",
			"templates/fragments/document-list.html",
			"templates/fragments/preview.html",
		))

	r := &router{
		svc:      svc,
		config:   cfg,
		tmpl:     baseTmpl,
		renderer: newRenderer(baseTmpl, templatesFS, cfg),
	}

	mux := http.NewServeMux()

	// Static assets
	staticSub, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Main pages
	mux.HandleFunc("GET /", r.handleRedirectToDashboard)
	mux.HandleFunc("GET /dashboard", r.handleDashboard)
	mux.HandleFunc("GET /documents", r.handleDocuments)
	mux.HandleFunc("GET /documents/new", r.handleDocumentNew)
	mux.HandleFunc("GET /documents/{id}", r.handleDocumentDetail)
	mux.HandleFunc("GET /documents/{id}/edit", r.handleDocumentEdit)
	mux.HandleFunc("GET /help", r.handleHelp)

	// Form actions
	mux.HandleFunc("POST /documents", r.handleDocumentCreate)
	mux.HandleFunc("POST /documents/{id}", r.handleDocumentUpdate)
	mux.HandleFunc("POST /documents/{id}/delete", r.handleDocumentDelete)
	mux.HandleFunc("POST /documents/{id}/summarize", r.handleDocumentSummarize)

	// HTMX fragments
	mux.HandleFunc("GET /fragments/document-list", r.handleFragmentDocumentList)
	mux.HandleFunc("POST /fragments/preview", r.handleFragmentPreview)

	return withFrontendMiddleware(mux, cfg)
}

// withFrontendMiddleware wraps the handler with frontend-specific middleware.
func withFrontendMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = frontendRecoveryMiddleware(handler, cfg.Logger)
	return handler
}

// frontendRecoveryMiddleware recovers from panics.
func frontendRecoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTime":      formatTime,
		"formatTimeAgo":   formatTimeAgo,
		"truncate":        truncate,
		"sourceColor":     sourceColor,
		"sourceBgColor":   sourceBgColor,
		"json":            jsonEncode,
		"safeHTML":        safeHTML,
		"markdown":        markdownHTML,
		"trustedMarkdown": trustedMarkdownHTML,
		"add":             add,
		"sub":             sub,
		"div":             div,
		"seq":             seq,
		"default":         defaultVal,
		"dict":            dictFunc,
	}
}

// dictFunc creates a map from key-value pairs for use in templates.
// Usage: {{template "foo" (dict "key1" val1 "key2" val2)}}
func dictFunc(values ...any) map[string]any {
	if len(values)%2 != 0 {
		return nil
	}
	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		dict[key] = values[i+1]
	}
	return dict
}
