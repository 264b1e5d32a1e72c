// Package frontend implements the SSR document dashboard.
//
// Pages are rendered server-side with html/template and progressively
// enhanced with HTMX; styling is Tailwind via CDN. Templates and static
// assets are embedded, so the handler is self-contained.
//
// Document content is untrusted Markdown. It is rendered by the markdown
// package and sanitized with bluemonday at the template sink before being
// marked as template.HTML. The embedded help page is the one exception:
// its content ships with the binary, so it goes through goldmark without
// a sanitation pass.
package frontend
