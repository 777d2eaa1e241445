package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"example.com/mdhighlight/internal/host"
	"example.com/mdhighlight/pkg/highlight"
)

// runPager opens a read-only tcell screen that scrolls through the
// session's highlighted lines, grounded on the teacher's cmd/texteditor
// main.go screen setup and internal/app/runner_draw.go's drawFile. Unlike
// the teacher's editor, this pager never mutates the buffer, so it has no
// cursor, no modes, and no dirty state to track.
func runPager(sess *host.Session) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.SetStyle(tcell.StyleDefault)

	lines := strings.Split(sess.Text(), "\n")
	spans, _ := sess.Lines()
	theme := sess.Highlighter().Theme()

	top := 0
	draw := func() {
		drawPage(s, lines, spans, theme, top)
	}
	draw()

	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlQ || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				top = clampTop(top+1, len(lines), s)
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				top = clampTop(top-1, len(lines), s)
			case ev.Key() == tcell.KeyPgDn:
				_, h := s.Size()
				top = clampTop(top+h, len(lines), s)
			case ev.Key() == tcell.KeyPgUp:
				_, h := s.Size()
				top = clampTop(top-h, len(lines), s)
			}
			draw()
		case *tcell.EventResize:
			s.Sync()
			draw()
		}
	}
}

func clampTop(top, numLines int, s tcell.Screen) int {
	_, h := s.Size()
	maxTop := numLines - h
	if maxTop < 0 {
		maxTop = 0
	}
	if top < 0 {
		top = 0
	}
	if top > maxTop {
		top = maxTop
	}
	return top
}

func drawPage(s tcell.Screen, lines []string, spans [][]highlight.Span, theme highlight.Theme, top int) {
	width, height := s.Size()
	s.Clear()
	for row := 0; row < height && top+row < len(lines); row++ {
		text := lines[top+row]
		var lineSpans []highlight.Span
		if top+row < len(spans) {
			lineSpans = spans[top+row]
		}
		drawStyledLine(s, row, width, text, lineSpans, theme)
	}
	s.Show()
}

// drawStyledLine paints one line's runes, resolving each byte offset's
// winning span (last one covering it wins) into a tcell.Style and
// advancing the column cursor by the rune's display width so wide
// characters in fenced code don't misalign later columns.
func drawStyledLine(s tcell.Screen, row, width int, text string, spans []highlight.Span, theme highlight.Theme) {
	styleAt := make([]highlight.State, len(text))
	for i := range styleAt {
		styleAt[i] = highlight.NoState
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
			styleAt[i] = sp.Style
		}
	}

	col := 0
	byteIdx := 0
	for _, r := range text {
		if col >= width {
			break
		}
		st := tcell.StyleDefault
		if byteIdx < len(styleAt) && styleAt[byteIdx] != highlight.NoState {
			st = tcellStyleFor(theme[styleAt[byteIdx]])
		}
		s.SetContent(col, row, r, nil, st)
		col += runewidth.RuneWidth(r)
		byteIdx += len(string(r))
	}
}

func tcellStyleFor(sf highlight.StyleFormat) tcell.Style {
	st := tcell.StyleDefault.Foreground(sf.Foreground)
	if sf.Background != tcell.ColorDefault {
		st = st.Background(sf.Background)
	}
	if sf.Bold {
		st = st.Bold(true)
	}
	if sf.Italic {
		st = st.Italic(true)
	}
	if sf.Underline {
		st = st.Underline(true)
	}
	return st
}
