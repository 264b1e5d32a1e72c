package frontend

// helpContent is the Markdown source of the built-in help page. It is
// rendered with the trustedMarkdown template function; keep user content
// out of it.
const helpContent = `# Markdown Help

Documents are written in a constrained Markdown dialect. The supported
constructs are listed below; anything else is rendered as plain text.

## Block elements

| Syntax | Result |
| ------ | ------ |
| ` + "`# Heading`" + ` | Heading levels 1 to 4 |
| ` + "`> quote`" + ` | Blockquote (can be nested) |
| ` + "`- item`" + ` | Bullet list (also * and +) |
| ` + "`1. item`" + ` | Numbered list |
| ` + "`---`" + ` | Horizontal rule |
| ` + "``` ``` ```" + ` | Fenced code block, optional language tag |

Tables need a header row, a separator row of dashes, and pipe-delimited
cells. A table without a separator row is treated as plain paragraphs.

Blank lines separate blocks. Consecutive non-empty lines inside a
paragraph are joined with spaces.

## Inline elements

- ` + "`**bold**`" + ` and ` + "`*italic*`" + ` (or ` + "`***both***`" + `)
- ` + "`` `inline code` ``" + `
- ` + "`~~strikethrough~~`" + `
- ` + "`[title](https://example.com)`" + ` links, which always open in a
  new tab. Links using javascript:, data:, or vbscript: schemes are
  disabled.

## Safety

Raw HTML is never interpreted. Angle brackets and ampersands in your
text are displayed literally, including inside code blocks.
`
