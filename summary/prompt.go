package summary

import (
	"fmt"
	"strings"

	"github.com/docpg/docpg/driver"
)

// SystemPrompt instructs Claude to write a browsable abstract, not a
// restatement. Transcripts get speaker/decision treatment, notes get a
// topical one.
const SystemPrompt = `You are a summarizer for a knowledge base. Write a concise summary of the document you are given.

Guidelines:
- 2-4 sentences, plain prose, no markdown formatting.
- Lead with what the document is about, then the most important specifics.
- For meeting or call transcripts: name the participants if identifiable, then the decisions made and action items agreed.
- For notes and uploads: state the topic and the key facts or conclusions.
- Do not address the reader. Do not begin with "This document".`

// BuildUserPrompt formats a document for summarization. Content beyond the
// size cap is cut from the middle so both the opening and the conclusion
// survive.
func BuildUserPrompt(doc *driver.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", doc.Title)
	fmt.Fprintf(&b, "Type: %s\n", doc.SourceType)
	fmt.Fprintf(&b, "Collection: %s\n\n", doc.Collection)
	b.WriteString("Document content:\n\n")
	b.WriteString(truncateMiddle(doc.Content, maxContentChars))
	return b.String()
}

// truncateMiddle keeps the head and tail of s, replacing the middle with an
// elision marker once s exceeds max.
func truncateMiddle(s string, max int) string {
	if len(s) <= max {
		return s
	}
	const marker = "\n\n[... middle of document elided ...]\n\n"
	keep := (max - len(marker)) / 2
	return s[:keep] + marker + s[len(s)-keep:]
}
