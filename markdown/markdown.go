package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// htmlEscaper rewrites the three HTML-significant characters in a single
// pass, so already-produced entities are never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Block-level patterns. Compiled once, read-only.
var (
	fenceRe   = regexp.MustCompile("^\\s*```\\s*([A-Za-z0-9_+.#-]*)\\s*$")
	ruleRe    = regexp.MustCompile(`^\s*(-{3,}|\*{3,}|_{3,})\s*$`)
	headingRe = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
	bulletRe  = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	orderedRe = regexp.MustCompile(`^\s*\d+\.\s+(.*)$`)
	// Separator row under a table header: cells of dashes and colons,
	// optionally pipe-delimited.
	tableSepRe = regexp.MustCompile(`^\s*\|?[\s:|-]+\|?\s*$`)
)

// quoteMarker is the block quote prefix as it appears after escaping.
const quoteMarker = "&gt;"

// Render converts Markdown source into an HTML fragment.
//
// The input is escaped for HTML before any other processing, so raw tags in
// the source can never reach the output executable. Empty input yields an
// empty string. Render never fails: any line that matches no structural
// pattern is treated as paragraph text.
func Render(src string) string {
	if src == "" {
		return ""
	}
	escaped := htmlEscaper.Replace(strings.ReplaceAll(src, "\r\n", "\n"))
	return renderLines(strings.Split(escaped, "\n"))
}

// renderLines scans already-escaped lines top to bottom and emits one HTML
// string per block, joined with newlines. Block quotes recurse through it
// with the quote marker stripped.
func renderLines(lines []string) string {
	var blocks []string
	i := 0
	for i < len(lines) {
		line := lines[i]

		// Blank lines separate blocks and emit nothing themselves.
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		if m := fenceRe.FindStringSubmatch(line); m != nil {
			block, next := scanFence(lines, i+1, m[1])
			blocks = append(blocks, block)
			i = next
			continue
		}
		if ruleRe.MatchString(line) {
			blocks = append(blocks, "<hr>")
			i++
			continue
		}
		if m := headingRe.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			blocks = append(blocks, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(m[2]), level))
			i++
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), quoteMarker) {
			block, next := scanQuote(lines, i)
			blocks = append(blocks, block)
			i = next
			continue
		}
		if isTableStart(lines, i) {
			block, next := scanTable(lines, i)
			blocks = append(blocks, block)
			i = next
			continue
		}
		if bulletRe.MatchString(line) {
			block, next := scanList(lines, i, bulletRe, "ul")
			blocks = append(blocks, block)
			i = next
			continue
		}
		if orderedRe.MatchString(line) {
			block, next := scanList(lines, i, orderedRe, "ol")
			blocks = append(blocks, block)
			i = next
			continue
		}

		block, next := scanParagraph(lines, i)
		blocks = append(blocks, block)
		i = next
	}
	return strings.Join(blocks, "\n")
}

// scanFence consumes lines verbatim until a closing fence or end of input.
// An unterminated fence swallows the rest of the document rather than
// erroring. Content is already escaped and gets no inline substitution.
func scanFence(lines []string, start int, tag string) (string, int) {
	i := start
	var body []string
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			i++ // consume the closing fence
			break
		}
		body = append(body, lines[i])
		i++
	}
	code := strings.Join(body, "\n")
	if tag == "" {
		return "<pre><code>" + code + "</code></pre>", i
	}
	return fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>", tag, code), i
}

// scanQuote collects consecutive quote-marked lines, strips the marker, and
// re-renders the remainder as its own Markdown document.
func scanQuote(lines []string, start int) (string, int) {
	i := start
	var inner []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, quoteMarker) {
			break
		}
		stripped := strings.TrimPrefix(trimmed, quoteMarker)
		inner = append(inner, strings.TrimPrefix(stripped, " "))
		i++
	}
	return "<blockquote>" + renderLines(inner) + "</blockquote>", i
}

// isTableStart reports whether the line at i opens a table: it must contain
// a pipe and be followed by a separator row. A header row with no separator
// underneath falls through to paragraph treatment.
func isTableStart(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	if i+1 >= len(lines) {
		return false
	}
	next := lines[i+1]
	return strings.Contains(next, "-") && tableSepRe.MatchString(next)
}

// scanTable consumes the header row, discards the separator row, and treats
// every following pipe-containing line as a body row.
func scanTable(lines []string, start int) (string, int) {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range splitCells(lines[start]) {
		b.WriteString("<th>")
		b.WriteString(renderInline(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")

	i := start + 2
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" || !strings.Contains(line, "|") {
			break
		}
		b.WriteString("<tr>")
		for _, cell := range splitCells(line) {
			b.WriteString("<td>")
			b.WriteString(renderInline(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
		i++
	}
	b.WriteString("</tbody></table>")
	return b.String(), i
}

// splitCells splits a table row on pipes, dropping the empty leading and
// trailing cells produced by a leading or trailing pipe, and trims each
// remaining cell.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// scanList groups consecutive marker-matching lines into a single list so
// three "- item" lines yield one <ul>, not three.
func scanList(lines []string, start int, re *regexp.Regexp, tag string) (string, int) {
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	i := start
	for i < len(lines) {
		m := re.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		b.WriteString("<li>")
		b.WriteString(renderInline(m[len(m)-1]))
		b.WriteString("</li>")
		i++
	}
	b.WriteString("</" + tag + ">")
	return b.String(), i
}

// scanParagraph joins consecutive plain lines with single spaces: newlines
// inside a paragraph are soft wraps, not line breaks. The opening line has
// already been classified as plain by the caller and is always consumed.
func scanParagraph(lines []string, start int) (string, int) {
	parts := []string{strings.TrimSpace(lines[start])}
	i := start + 1
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" || isSpecialLine(lines, i) {
			break
		}
		parts = append(parts, strings.TrimSpace(line))
		i++
	}
	return "<p>" + renderInline(strings.Join(parts, " ")) + "</p>", i
}

// isSpecialLine reports whether the line at i would open a non-paragraph
// block, terminating the paragraph in progress.
func isSpecialLine(lines []string, i int) bool {
	line := lines[i]
	switch {
	case fenceRe.MatchString(line),
		ruleRe.MatchString(line),
		headingRe.MatchString(line),
		strings.HasPrefix(strings.TrimSpace(line), quoteMarker),
		bulletRe.MatchString(line),
		orderedRe.MatchString(line),
		isTableStart(lines, i):
		return true
	}
	return false
}
