// Package summary generates short prose summaries of stored documents using
// the Anthropic Messages API.
//
// Summaries are derived data: they are stored alongside the document and
// cleared whenever the content changes. Generation is on-demand (a button in
// the admin UI or a REST call), never automatic.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/docpg/docpg/driver"
)

// Default generation settings.
const (
	DefaultModel     = "claude-sonnet-4-5-20250929"
	DefaultMaxTokens = 1024

	// maxContentChars caps how much document text is sent to the API.
	// Longer documents are truncated from the middle, keeping the opening
	// and closing sections which carry most of the signal.
	maxContentChars = 60000
)

// Summarizer generates document summaries via Claude's streaming API.
type Summarizer struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// New creates a Summarizer with the given Anthropic client. Empty model or
// non-positive maxTokens fall back to the package defaults.
func New(client *anthropic.Client, model string, maxTokens int) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Summarizer{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Summarize generates a summary of the document's Markdown content.
func (s *Summarizer) Summarize(ctx context.Context, doc *driver.Document) (string, error) {
	if doc == nil || strings.TrimSpace(doc.Content) == "" {
		return "", ErrEmptyDocument
	}

	stream := s.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildUserPrompt(doc))),
		},
	})

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			return "", fmt.Errorf("%w: failed to accumulate stream: %v", ErrSummarizationFailed, err)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	var out strings.Builder
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			out.WriteString(text.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%w: empty response", ErrSummarizationFailed)
	}

	return strings.TrimSpace(out.String()), nil
}
