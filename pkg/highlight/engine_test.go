package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlightBlockBoldAndItalic(t *testing.T) {
	h := NewHighlighter()
	result := h.HighlightBlock("a **bold** and *italic* line", "", NoState, "", nil)

	var sawBold, sawItalic bool
	for _, s := range result.Spans {
		if s.Style == Bold {
			sawBold = true
		}
		if s.Style == Italic {
			sawItalic = true
		}
	}
	require.True(t, sawBold, "expected a Bold span, got %+v", result.Spans)
	require.True(t, sawItalic, "expected an Italic span, got %+v", result.Spans)
}

func TestHighlightBlockFencedCodeRoundTrip(t *testing.T) {
	h := NewHighlighter()

	open := h.HighlightBlock("```go", "", NoState, "", nil)
	require.Equal(t, CodeGo, open.State)

	line := h.HighlightBlock("func main() {}", "```go", CodeGo, "```", nil)
	require.Equal(t, CodeGo, line.State)
	var sawKeyword bool
	for _, s := range line.Spans {
		if s.Style == CodeKeyWord {
			sawKeyword = true
		}
	}
	require.True(t, sawKeyword, "expected a keyword span for 'func', got %+v", line.Spans)

	closeLine := h.HighlightBlock("```", "func main() {}", CodeGo, "", nil)
	require.Equal(t, CodeBlockEnd, closeLine.State)
}

func TestHighlightBlockATXHeading(t *testing.T) {
	h := NewHighlighter()
	result := h.HighlightBlock("# Title", "", NoState, "", nil)
	require.Equal(t, H1, result.State)
}

func TestHighlightBlockFrontmatter(t *testing.T) {
	h := NewHighlighter()
	doc := &Document{FrontmatterArmed: true}

	open := h.HighlightBlock("---", "", NoState, "", doc)
	require.Equal(t, FrontmatterBlock, open.State)

	body := h.HighlightBlock("title: hello", "---", FrontmatterBlock, "", doc)
	require.Equal(t, FrontmatterBlock, body.State)

	closeLine := h.HighlightBlock("---", "title: hello", FrontmatterBlock, "", doc)
	require.Equal(t, FrontmatterBlockEnd, closeLine.State)
}

func hasStyle(spans []Span, style State) bool {
	for _, s := range spans {
		if s.Style == style {
			return true
		}
	}
	return false
}

func TestHighlightBlockBlockQuoteOption(t *testing.T) {
	h := NewHighlighter()

	underlineOnly := h.HighlightBlock("> quoted text", "", NoState, "", nil)
	require.True(t, hasStyle(underlineOnly.Spans, BlockQuote))

	h.SetHighlightingOptions(FullyHighlightedBlockQuote)
	full := h.HighlightBlock("> quoted text", "", NoState, "", nil)
	require.True(t, hasStyle(full.Spans, BlockQuote))
}
