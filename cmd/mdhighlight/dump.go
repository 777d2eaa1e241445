package main

import (
	"fmt"
	"io"
	"strings"

	"example.com/mdhighlight/internal/host"
	"example.com/mdhighlight/pkg/highlight"
)

// dumpANSI writes the session's buffer to w with each span colored
// according to the highlighter's active theme, in line order. Spans from
// a single line's LineResult can overlap (a post-rule painting over a
// masked group from an earlier rule); the last span covering a byte wins,
// matching how the editor's own paint order works.
func dumpANSI(sess *host.Session, w io.Writer) {
	lines := strings.Split(sess.Text(), "\n")
	spans, _ := sess.Lines()
	theme := sess.Highlighter().Theme()

	for i, text := range lines {
		if i < len(spans) {
			fmt.Fprintln(w, renderLine(text, spans[i], theme))
		} else {
			fmt.Fprintln(w, text)
		}
	}
}

// renderLine paints text left to right, picking for each byte the style
// of the last span in the list that covers it (later spans in the slice
// were emitted by later rules, so they take priority).
func renderLine(text string, spans []highlight.Span, theme highlight.Theme) string {
	if len(spans) == 0 {
		return text
	}
	style := make([]highlight.State, len(text))
	for i := range style {
		style[i] = highlight.NoState
	}
	for _, sp := range spans {
		start, end := sp.Start, sp.End
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		for i := start; i < end; i++ {
			style[i] = sp.Style
		}
	}

	var b strings.Builder
	i := 0
	for i < len(text) {
		j := i + 1
		for j < len(text) && style[j] == style[i] {
			j++
		}
		chunk := text[i:j]
		if style[i] == highlight.NoState {
			b.WriteString(chunk)
		} else {
			sprint := sprintForStyle(theme[style[i]])
			b.WriteString(sprint(chunk))
		}
		i = j
	}
	return b.String()
}
