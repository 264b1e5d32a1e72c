package frontend

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/docpg/docpg/markdown"
)

// docPolicy sanitizes rendered document HTML before it reaches the page.
// Document content is user-supplied, so even though the renderer escapes
// its input, the sanitizer is the last line of defense at the sink.
var docPolicy = buildDocPolicy()

func buildDocPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// The renderer emits target/_blank links with rel set; UGCPolicy strips
	// these attributes unless explicitly allowed.
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	// Fenced code blocks carry a language class.
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[a-zA-Z0-9_+.#-]+$`)).OnElements("code")
	return p
}

// helpMarkdown renders the embedded help page. Its source ships with the
// binary, so GFM features like task lists and autolinks are fine here.
var helpMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// markdownHTML renders untrusted document Markdown to sanitized HTML.
// This is the "markdown" template function.
func markdownHTML(content string) template.HTML {
	rendered := markdown.Render(content)
	return template.HTML(docPolicy.Sanitize(rendered))
}

// trustedMarkdownHTML renders embedded Markdown shipped with the binary.
// This is the "trustedMarkdown" template function. Never pass user content
// through it.
func trustedMarkdownHTML(content string) template.HTML {
	var buf bytes.Buffer
	if err := helpMarkdown.Convert([]byte(content), &buf); err != nil {
		// Fall back to the strict renderer rather than dropping the page.
		return markdownHTML(content)
	}
	return template.HTML(buf.String())
}
