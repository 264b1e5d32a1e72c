// Package ui provides an embedded web UI for docpg.
//
// The package provides two HTTP handlers:
//   - UIHandler: SSR frontend with HTMX + Tailwind
//   - APIHandler: JSON REST API
//
// # Quick Start
//
//	pool, _ := pgxpool.New(ctx, os.Getenv("DATABASE_URL"))
//	drv := pgxv5.New(pool)
//
//	ac := anthropic.NewClient(option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")))
//	summarizer := summary.New(&ac, summary.DefaultModel, summary.DefaultMaxTokens)
//
//	mux := http.NewServeMux()
//	mux.Handle("/docs/", http.StripPrefix("/docs", ui.UIHandler(drv.GetStore(), summarizer, nil)))
//	mux.Handle("/api/docs/", http.StripPrefix("/api/docs", ui.APIHandler(drv.GetStore(), summarizer, nil)))
//
//	http.ListenAndServe(":8080", mux)
//
// Pass a nil summarizer to disable summarization; everything else keeps
// working.
//
// # Configuration
//
// The handlers accept an optional Config struct for customization:
//
//	cfg := &ui.Config{
//	    Collection:      "meetings",        // Pin the UI to one collection
//	    ReadOnly:        false,             // Disable authoring if true
//	    RefreshInterval: 5 * time.Second,
//	    PageSize:        25,
//	}
//
// # Framework Integration
//
// The handlers return standard http.Handler, compatible with any Go framework:
//
//	// Standard library
//	http.Handle("/docs/", http.StripPrefix("/docs", ui.UIHandler(store, summarizer, cfg)))
//
//	// Chi
//	r.Mount("/docs", ui.UIHandler(store, summarizer, cfg))
//
//	// Gin
//	router.Any("/docs/*any", gin.WrapH(ui.UIHandler(store, summarizer, cfg)))
//
//	// Echo
//	e.Any("/docs/*", echo.WrapHandler(ui.UIHandler(store, summarizer, cfg)))
//
// # Adding Middleware
//
// Wrap handlers externally using standard Go patterns:
//
//	// Single middleware
//	http.Handle("/docs/", http.StripPrefix("/docs", authMiddleware(ui.UIHandler(store, summarizer, cfg))))
//
//	// Multiple middlewares chained
//	handler := authMiddleware(loggingMiddleware(ui.UIHandler(store, summarizer, cfg)))
//	http.Handle("/docs/", http.StripPrefix("/docs", handler))
package ui
