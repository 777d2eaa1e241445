package plugins

import (
	"example.com/mdhighlight/internal/host"
	"example.com/mdhighlight/pkg/highlight"
)

// MarkdownHighlighter adapts a host.Session to the Highlighter plugin
// interface, so callers that only know about plugins.Manager still reach
// the real line-oriented engine in pkg/highlight rather than a standalone
// heuristic. This replaces a from-scratch regex pass the original plugin
// ran per document; that pass is superseded entirely by pkg/highlight, not
// kept alongside it.
type MarkdownHighlighter struct{}

func NewMarkdownHighlighter() *MarkdownHighlighter { return &MarkdownHighlighter{} }

func (m *MarkdownHighlighter) Name() string { return "markdown" }

// Highlight runs a full session over src and flattens every line's spans
// into one slice with byte offsets relative to the whole document, so
// callers that only understand a flat Highlighter don't need to know
// about line boundaries.
func (m *MarkdownHighlighter) Highlight(src []byte) []highlight.Span {
	sess := host.NewSession()
	sess.SetText(string(src))
	sess.Recompute()

	lineSpans, _ := sess.Lines()
	lines := sess.Text()

	var out []highlight.Span
	offset := 0
	lineStart := 0
	for _, spans := range lineSpans {
		for _, sp := range spans {
			out = append(out, highlight.Span{
				Start: lineStart + sp.Start,
				End:   lineStart + sp.End,
				Style: sp.Style,
			})
		}
		// advance past this line and its newline, mirroring how the lines
		// were split out of the original document.
		for offset < len(lines) && lines[offset] != '\n' {
			offset++
		}
		if offset < len(lines) {
			offset++
		}
		lineStart = offset
	}
	return out
}
