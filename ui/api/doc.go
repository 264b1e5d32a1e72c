// Package api implements the JSON REST API for the docpg UI.
//
// All responses use a common envelope:
//
//	{"data": ..., "meta": {...}}           on success
//	{"error": {"code": ..., "message": ...}} on failure
//
// Endpoints:
//
//	GET    /dashboard                  Aggregated statistics
//	GET    /documents                  List documents (collection, source_type, q, limit, offset)
//	POST   /documents                  Create a document
//	GET    /documents/{id}             Get a document with rendered HTML
//	PUT    /documents/{id}             Partial update
//	DELETE /documents/{id}             Delete a document
//	GET    /documents/{id}/html        Rendered HTML only
//	POST   /documents/{id}/summarize   Generate and persist a summary
//	POST   /render                     Render ad-hoc Markdown
//	GET    /collections                List collections with counts
package api
