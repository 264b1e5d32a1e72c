package summary

import (
	"strings"
	"testing"

	"github.com/docpg/docpg/driver"
)

func TestBuildUserPrompt(t *testing.T) {
	doc := &driver.Document{
		Title:      "Weekly sync",
		SourceType: "transcript",
		Collection: "calls",
		Content:    "Speaker 1: hello",
	}

	prompt := BuildUserPrompt(doc)

	for _, want := range []string{"Title: Weekly sync", "Type: transcript", "Collection: calls", "Speaker 1: hello"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	short := "short content"
	if got := truncateMiddle(short, 100); got != short {
		t.Errorf("Short content should pass through unchanged, got %q", got)
	}

	long := strings.Repeat("a", 500) + "MIDDLE" + strings.Repeat("z", 500)
	got := truncateMiddle(long, 200)
	if len(got) > 210 {
		t.Errorf("Truncated length %d exceeds cap", len(got))
	}
	if !strings.HasPrefix(got, "aaa") || !strings.HasSuffix(got, "zzz") {
		t.Errorf("Head or tail lost in truncation: %q", got)
	}
	if strings.Contains(got, "MIDDLE") {
		t.Errorf("Middle should have been elided: %q", got)
	}
	if !strings.Contains(got, "elided") {
		t.Errorf("Missing elision marker: %q", got)
	}
}
