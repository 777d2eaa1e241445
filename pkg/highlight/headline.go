package highlight

import "strings"

// headlineResult is what detectHeadline decided about the current line,
// plus an optional mutation of the *previous* line that the caller must
// requeue via Document.AddDirtyBlock rather than re-highlight in place —
// see the LineResult doc comment in state.go.
type headlineResult struct {
	spans   []Span
	state   State
	matched bool

	// previousLineState is set only when a setext underline on this line
	// retroactively turned the line before it into a heading; it is then
	// the new terminal state (H1 or H2) that line must be given. Otherwise
	// it is left at State's zero value. previousLineDirty says whether that previous line actually
	// needs to be requeued for a full re-highlight (false when it already
	// carried the right state).
	previousLineState State
	previousLineDirty bool
}

func isAllChar(s string, c byte) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

// detectHeadline implements ATX (# ... ######) and setext (underline with
// === or ---) heading detection, including the one-line lookahead that
// lets an ATX-less line preemptively style itself when the *next* line
// (passed in as nextText) turns out to be a setext underline.
//
// previousText/previousState describe the line immediately above text;
// when a setext underline is found here, that previous line's state must
// be corrected and requeued (see headlineResult.previousLineState).
func detectHeadline(text string, previousText string, previousState State, nextText string) headlineResult {
	trimmed := text

	// ATX: up to 6 leading '#' followed by a space.
	level := 0
	for level < len(trimmed) && level < 6 && trimmed[level] == '#' {
		level++
	}
	if level > 0 && level < len(trimmed) && trimmed[level] == ' ' {
		h := H1 + State(level-1)
		return headlineResult{
			spans:   []Span{{Start: 0, End: len(text), Style: h}},
			state:   h,
			matched: true,
		}
	}

	// Setext: this line is all '=' (H1) or all '-' (H2), underlining a
	// non-empty previous line.
	if isAllChar(trimmed, '=') && strings.TrimSpace(previousText) != "" &&
		(previousState == H1 || previousState == NoState) {
		return setextResult(text, H1, previousState)
	}
	if isAllChar(trimmed, '-') && strings.TrimSpace(previousText) != "" &&
		(previousState == H2 || previousState == NoState) {
		return setextResult(text, H2, previousState)
	}

	// One-line lookahead: if the *next* line will turn out to be a setext
	// underline, style this line as the heading now rather than waiting
	// for the dirty-queue requeue to come back around. This only mutates
	// the current line, so it's safe to apply directly.
	nextTrimmed := strings.TrimSpace(nextText)
	if strings.TrimSpace(text) != "" {
		if isAllChar(nextTrimmed, '=') {
			return headlineResult{
				spans:   []Span{{Start: 0, End: len(text), Style: H1}},
				state:   H1,
				matched: true,
			}
		}
		if isAllChar(nextTrimmed, '-') && nextTrimmed != "" {
			return headlineResult{
				spans:   []Span{{Start: 0, End: len(text), Style: H2}},
				state:   H2,
				matched: true,
			}
		}
	}

	return headlineResult{}
}

func setextResult(text string, level State, previousState State) headlineResult {
	r := headlineResult{
		spans:             []Span{{Start: 0, End: len(text), Style: MaskedSyntax}},
		state:             HeadlineEnd,
		matched:           true,
		previousLineState: level,
	}
	if previousState != level {
		r.previousLineDirty = true
	}
	return r
}
