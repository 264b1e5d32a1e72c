// Package markdown converts a constrained Markdown dialect into HTML fragments.
//
// The renderer is built for untrusted input: document bodies and voice
// transcripts edited by users or imported from external services. The whole
// source is HTML-escaped before any structural markup is injected, so the
// output is safe to assign to a container's innerHTML without further
// escaping by the caller.
//
// # Dialect
//
// Block level: headings (levels 1-4), horizontal rules, fenced code blocks,
// block quotes, unordered and ordered lists, pipe tables, and paragraphs.
// Inline level: bold, italic, bold+italic, inline code, links, and
// strikethrough. Fenced code content is left verbatim.
//
// # Usage
//
//	html := markdown.Render("# Title\n\nSome **bold** text.")
//	// html == "<h1>Title</h1>\n<p>Some <strong>bold</strong> text.</p>"
//
// Render is a pure function: it holds no state between calls, performs no
// I/O, and never returns an error. Malformed input degrades to paragraph
// text rather than failing. It is safe to call concurrently, e.g. once per
// keystroke from a live-preview editor (debouncing is the caller's job).
//
// # Processing model
//
// The source is escaped, split into lines, and scanned top to bottom. Each
// line opens exactly one block type, checked in a fixed precedence order:
// fenced code, horizontal rule, heading, block quote, table, unordered
// list, ordered list, paragraph. Blank lines terminate the block in
// progress. Inline substitution passes then run over the text content of
// every block except fenced code, in a fixed order: bold+italic, bold,
// italic, inline code, links, strikethrough. The ordering is load-bearing:
// reordering the passes changes how overlapping markers resolve.
package markdown
