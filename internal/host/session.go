// Package host wires pkg/highlight to a live document: it owns line
// indices (which HighlightBlock itself never sees), drains the dirty
// queue the engine signals via LineResult.PreviousLineDirty, and
// recomputes asynchronously off the edit sequence number, the same
// coalescing shape as the teacher's internal/app/runner_syntax_async.go.
package host

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"example.com/mdhighlight/pkg/buffer"
	"example.com/mdhighlight/pkg/highlight"
)

// Session holds one open document: its text, its highlighter, and the
// per-line results of the last completed highlight pass.
type Session struct {
	mu sync.Mutex

	buf      *buffer.GapBuffer
	filePath string

	h   *highlight.Highlighter
	doc *highlight.Document

	// hasFrontmatterDelimiter caches whether line 0 of the buffer is
	// exactly "---", recomputed on every Open/SetText. Only the
	// HighlightBlock call for line 0 may arm Document.FrontmatterArmed;
	// see its doc comment.
	hasFrontmatterDelimiter bool

	lineSpans  [][]highlight.Span
	lineStates []highlight.State

	editSeq     int64
	computedSeq int64
	running     atomic.Bool
}

// NewSession creates an empty session with the default theme.
func NewSession() *Session {
	return &Session{
		buf: buffer.NewGapBufferFromString(""),
		h:   highlight.NewHighlighter(),
		doc: &highlight.Document{},
	}
}

// Open loads a file's contents into the session's buffer.
func (s *Session) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.buf = buffer.NewGapBufferFromString(string(data))
	s.filePath = path
	s.hasFrontmatterDelimiter = isFrontmatterDelimiter(s.buf.Lines())
	s.editSeq++
	s.mu.Unlock()
	return nil
}

// SetText replaces the buffer's contents directly, for hosts without a
// file on disk (e.g. piping stdin into the CLI).
func (s *Session) SetText(text string) {
	s.mu.Lock()
	s.buf = buffer.NewGapBufferFromString(text)
	s.hasFrontmatterDelimiter = isFrontmatterDelimiter(s.buf.Lines())
	s.editSeq++
	s.mu.Unlock()
}

// EditLine rewrites a single line of the open buffer in place via
// buffer.GapBuffer.ReplaceLine, instead of SetText's full-buffer rebuild —
// the incremental path a host with a live cursor actually wants, since a
// keystroke only ever touches one line.
func (s *Session) EditLine(lineIndex int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.buf.ReplaceLine(lineIndex, text); err != nil {
		return err
	}
	s.hasFrontmatterDelimiter = isFrontmatterDelimiter(s.buf.Lines())
	s.editSeq++
	return nil
}

// isFrontmatterDelimiter reports whether line 0 is exactly "---", the only
// condition under which Document.FrontmatterArmed may be set (see its doc
// comment in pkg/highlight/state.go) — arming it unconditionally would let
// a horizontal-rule "---" anywhere later in the document be misread as a
// second frontmatter block opening.
func isFrontmatterDelimiter(lines []string) bool {
	return len(lines) > 0 && strings.TrimSpace(lines[0]) == "---"
}

// Highlighter returns the underlying highlighter so a host can swap themes
// or pre/post-rule options.
func (s *Session) Highlighter() *highlight.Highlighter { return s.h }

// EditSeq returns the current edit sequence number.
func (s *Session) EditSeq() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editSeq
}

// Recompute runs a full synchronous highlight pass over every line of the
// buffer, honoring dirty-block requeues the engine raises for setext
// headings (a line is requeued once, since a single requeue is enough to
// settle the two-line ATX/setext lookback/lookahead window).
func (s *Session) Recompute() {
	s.mu.Lock()
	lines := append([]string(nil), s.buf.Lines()...)
	seq := s.editSeq
	s.mu.Unlock()

	spans, states := s.runPass(lines)

	s.mu.Lock()
	if seq == s.editSeq {
		s.lineSpans = spans
		s.lineStates = states
		s.computedSeq = seq
	}
	s.mu.Unlock()
}

// RecomputeAsync schedules a background recompute if the buffer has
// changed since the last completed pass, coalescing concurrent requests
// onto the edit sequence number the way updateSyntaxAsync does.
func (s *Session) RecomputeAsync(done func()) {
	s.mu.Lock()
	seq := s.editSeq
	stale := seq != s.computedSeq
	s.mu.Unlock()

	if !stale {
		if done != nil {
			done()
		}
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer s.running.Store(false)
		s.Recompute()
		if done != nil {
			done()
		}
	}()
}

// runPass highlights every line once, requeuing a line for a second pass
// when the engine reports PreviousLineDirty (a setext underline that
// reclassifies the line above it).
func (s *Session) runPass(lines []string) ([][]highlight.Span, []highlight.State) {
	spans := make([][]highlight.Span, len(lines))
	states := make([]highlight.State, len(lines))
	requeued := make(map[int]bool)

	var prevState highlight.State = highlight.NoState
	for i, line := range lines {
		prevText := ""
		if i > 0 {
			prevText = lines[i-1]
		}
		nextText := ""
		if i+1 < len(lines) {
			nextText = lines[i+1]
		}
		s.doc.FrontmatterArmed = i == 0 && s.hasFrontmatterDelimiter
		result := s.h.HighlightBlock(line, prevText, prevState, nextText, s.doc)
		spans[i] = result.Spans
		states[i] = result.State
		prevState = result.State

		if result.PreviousLineDirty && i > 0 && !requeued[i-1] {
			requeued[i-1] = true
			s.doc.AddDirtyBlock(i - 1)
		}
	}

	for _, line := range s.doc.DrainDirty() {
		if line < 0 || line >= len(lines) {
			continue
		}
		prevText := ""
		var prevState highlight.State = highlight.NoState
		if line > 0 {
			prevText = lines[line-1]
			prevState = states[line-1]
		}
		nextText := ""
		if line+1 < len(lines) {
			nextText = lines[line+1]
		}
		s.doc.FrontmatterArmed = line == 0 && s.hasFrontmatterDelimiter
		result := s.h.HighlightBlock(lines[line], prevText, prevState, nextText, s.doc)
		spans[line] = result.Spans
		states[line] = result.State
	}

	return spans, states
}

// Lines returns a snapshot of the current line spans and terminal states.
func (s *Session) Lines() ([][]highlight.Span, []highlight.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lineSpans, s.lineStates
}

// Text returns the full buffer contents.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}
