// Package docpg provides an embeddable, PostgreSQL-backed knowledge
// dashboard for Go applications.
//
// docpg stores Markdown documents (notes, voice-call transcripts, uploads)
// in Postgres and serves them through a JSON REST API and a server-rendered
// admin frontend with a document browser, live-preview editor, and stats
// dashboard. Untrusted document content is rendered to HTML by a
// constrained, escaping-first Markdown renderer (package markdown).
//
// # Quick Start
//
// Connect a store and mount the UI:
//
//	pool, _ := pgxpool.New(ctx, databaseURL)
//	store := pgxv5.New(pool).GetStore()
//
//	http.Handle("/kb/", http.StripPrefix("/kb", ui.UIHandler(store, nil, nil)))
//	http.Handle("/api/kb/", http.StripPrefix("/api/kb", ui.APIHandler(store, nil, nil)))
//
// Applications on database/sql use the databasesql driver instead:
//
//	db, _ := sql.Open("postgres", databaseURL)
//	store := databasesql.New(db).GetStore()
//
// # Programmatic access
//
// The Client wraps a store for use outside HTTP handlers, e.g. an ingest
// job that imports call transcripts:
//
//	client, _ := docpg.NewClient(store,
//	    docpg.WithSummarizer(summary.New(&anthropicClient, "", 0)),
//	)
//	doc, _ := client.ImportTranscript(ctx, "calls", "Weekly sync", transcript, nil)
//	_, _ = client.SummarizeDocument(ctx, doc.ID)
//
// # Summaries
//
// An optional Claude-backed summarizer (package summary) generates short
// abstracts on demand. Summaries are stored with the document and cleared
// automatically when its content changes.
package docpg
