package ui

import (
	"net/http"

	"github.com/docpg/docpg/driver"
	"github.com/docpg/docpg/ui/api"
	"github.com/docpg/docpg/ui/frontend"
	"github.com/docpg/docpg/ui/service"
)

// UIHandler returns an http.Handler for the SSR frontend.
// This handler provides an interactive document dashboard using HTMX + Tailwind.
//
// The summarizer parameter is required for summarization. If nil, the
// summarize action is disabled (equivalent to ReadOnly mode for summaries).
//
// Usage:
//
//	http.Handle("/docs/", http.StripPrefix("/docs", ui.UIHandler(store, summarizer, cfg)))
//	r.Mount("/docs", ui.UIHandler(store, summarizer, cfg))
func UIHandler(store driver.Store, summarizer service.Summarizer, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}

	// Validate configuration (panic on invalid config as this is a programmer error)
	if err := cfg.validate(); err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}

	svc := service.New(store, summarizer)
	handler := frontend.NewRouter(svc, &frontend.Config{
		BasePath:        cfg.BasePath,
		Collection:      cfg.Collection,
		ReadOnly:        cfg.ReadOnly,
		PageSize:        cfg.PageSize,
		RefreshInterval: cfg.RefreshInterval,
		Logger:          cfg.Logger,
	})

	return handler
}

// APIHandler returns an http.Handler for the JSON REST API.
// See the api package documentation for the endpoint list.
//
// Usage:
//
//	http.Handle("/api/docs/", http.StripPrefix("/api/docs", ui.APIHandler(store, summarizer, cfg)))
func APIHandler(store driver.Store, summarizer service.Summarizer, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}

	if err := cfg.validate(); err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}

	svc := service.New(store, summarizer)
	return api.NewRouter(svc, &api.Config{
		Collection: cfg.Collection,
		ReadOnly:   cfg.ReadOnly,
		PageSize:   cfg.PageSize,
		Logger:     cfg.Logger,
	})
}
