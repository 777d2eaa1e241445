package highlight

import "testing"

func TestYmlHighlighterKey(t *testing.T) {
	spans := ymlHighlighter("name: value")
	if !hasStyle(spans, CodeKeyWord) {
		t.Fatalf("got %+v, want a key span", spans)
	}
}

func TestYmlHighlighterSkipsComment(t *testing.T) {
	if spans := ymlHighlighter("# a comment"); spans != nil {
		t.Errorf("got %+v, want nil for a comment line", spans)
	}
}

func TestYmlHighlighterPathExclusion(t *testing.T) {
	// Uses the corrected OR check (":" followed by '\' or '/' excludes the
	// key styling) rather than the reference's always-false AND — see
	// DESIGN.md.
	spans := ymlHighlighter(`path: C:\Users`)
	// "path" itself is still a legitimate key; the interesting assertion
	// is that no key span is produced for the "C" before ":\Users".
	found := false
	for _, s := range spans {
		if s.Style == CodeKeyWord && s.Start > 5 {
			found = true
		}
	}
	if found {
		t.Errorf("got %+v, want no key span for the path-like value", spans)
	}
}

func TestYmlHighlighterUnderlinesLink(t *testing.T) {
	spans := ymlHighlighter("url: http://example.com")
	if !hasStyle(spans, Link) {
		t.Fatalf("got %+v, want a Link span for the http url", spans)
	}
}
