package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Inline patterns. The substitution order in renderInline is fixed:
// bold+italic must run before bold, bold before italic, and code before
// links, or overlapping markers resolve differently.
var (
	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	codeRe       = regexp.MustCompile("`([^`]+)`")
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strikeRe     = regexp.MustCompile(`~~(.+?)~~`)
)

// unsafeSchemes are URL prefixes that would execute script when assigned to
// an anchor href. Matched case-insensitively after trimming whitespace.
var unsafeSchemes = []string{"javascript:", "data:", "vbscript:"}

// renderInline applies the inline substitution passes to already-escaped
// block text. Never called on fenced code content.
func renderInline(s string) string {
	s = boldItalicRe.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = codeRe.ReplaceAllString(s, "<code>$1</code>")
	s = linkRe.ReplaceAllStringFunc(s, replaceLink)
	s = strikeRe.ReplaceAllString(s, "<del>$1</del>")
	return s
}

func replaceLink(match string) string {
	m := linkRe.FindStringSubmatch(match)
	if m == nil {
		return match
	}
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		sanitizeURL(m[2]), m[1])
}

// sanitizeURL blocks script-executing hrefs by replacing them with "#".
// Double quotes are entity-encoded so a URL cannot break out of the href
// attribute.
func sanitizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	lower := strings.ToLower(url)
	for _, scheme := range unsafeSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "#"
		}
	}
	return strings.ReplaceAll(url, `"`, "&quot;")
}
