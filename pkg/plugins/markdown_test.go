package plugins

import (
	"testing"

	"example.com/mdhighlight/pkg/highlight"
)

func TestMarkdownHighlighterDelegatesToEngine(t *testing.T) {
	md := NewMarkdownHighlighter()
	src := []byte("# Title\n\nSome `code` and a [link](https://example.com).\n")
	spans := md.Highlight(src)
	if len(spans) == 0 {
		t.Fatalf("expected some highlights for markdown")
	}

	var gotHeading, gotCode, gotLink bool
	for _, sp := range spans {
		switch sp.Style {
		case highlight.H1:
			gotHeading = true
		case highlight.InlineCodeBlock:
			gotCode = true
		case highlight.Link:
			gotLink = true
		}
	}
	if !gotHeading {
		t.Errorf("expected an H1 span")
	}
	if !gotCode {
		t.Errorf("expected an InlineCodeBlock span")
	}
	if !gotLink {
		t.Errorf("expected a Link span")
	}
}
