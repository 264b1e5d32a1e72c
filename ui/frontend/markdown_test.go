package frontend

import (
	"strings"
	"testing"
)

func TestMarkdownHTML_SanitizesScript(t *testing.T) {
	out := string(markdownHTML("Hello <script>alert(1)</script> world"))
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("script source should be visible as text: %q", out)
	}
}

func TestMarkdownHTML_KeepsLinkAttributes(t *testing.T) {
	out := string(markdownHTML("[site](https://example.com)"))
	for _, want := range []string{`href="https://example.com"`, `target="_blank"`, `rel="noopener noreferrer"`} {
		if !strings.Contains(out, want) {
			t.Errorf("sanitized link missing %s: %q", want, out)
		}
	}
}

func TestMarkdownHTML_BlocksUnsafeSchemes(t *testing.T) {
	out := string(markdownHTML("[x](javascript:alert(1))"))
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript scheme survived: %q", out)
	}
}

func TestMarkdownHTML_KeepsCodeLanguageClass(t *testing.T) {
	out := string(markdownHTML("```go\nfmt.Println(1)\n```"))
	if !strings.Contains(out, `class="language-go"`) {
		t.Errorf("language class stripped: %q", out)
	}
}

func TestTrustedMarkdownHTML_RendersHelpContent(t *testing.T) {
	out := string(trustedMarkdownHTML(helpContent))
	if !strings.Contains(out, "<h1") {
		t.Errorf("help content missing heading: %q", out[:min(len(out), 200)])
	}
	if !strings.Contains(out, "<table") {
		t.Errorf("help content missing table: %q", out[:min(len(out), 200)])
	}
}
