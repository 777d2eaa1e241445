package plugins

import "example.com/mdhighlight/pkg/highlight"

// Highlighter provides syntax highlighting spans for source text.
type Highlighter interface {
	Plugin
	Highlight(src []byte) []highlight.Span
}
