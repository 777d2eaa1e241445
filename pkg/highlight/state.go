package highlight

import "github.com/cespare/xxhash/v2"

// Span is a single style annotation on a line, a half-open byte range.
type Span struct {
	Start int
	End   int
	Style State
}

// LineResult is what HighlightBlock returns for one line: its style
// annotations and the terminal state to pass as PreviousState on the next
// call.
//
// PreviousLineDirty/PreviousLineState carry the setext-heading requeue a
// setext underline's line produces: HighlightBlock operates on raw text
// and has no idea what its own or the previous line's index is, so it
// cannot call Document.AddDirtyBlock itself. A host that sees
// PreviousLineDirty set calls doc.AddDirtyBlock(lineIndex-1) and, when it
// later re-highlights that line, passes PreviousLineState as the state it
// should be treated as having carried — this is the FIFO-requeue pattern
// described in SPEC_FULL.md §4.E, not direct recursive re-highlighting.
type LineResult struct {
	Spans             []Span
	State             State
	PreviousLineDirty bool
	PreviousLineState State
}

// LineFingerprint is a fast content hash a host can use to skip
// re-highlighting a line whose text hasn't changed since it was last
// queued, instead of keeping (or comparing) the full previous text.
func LineFingerprint(text string) uint64 {
	return xxhash.Sum64String(text)
}

// Document is the cross-line state a host holds for one open buffer. It is
// deliberately not a package global: two open documents must not share
// frontmatter-arming or dirty-queue state.
type Document struct {
	// FrontmatterArmed must be true only for the HighlightBlock call that
	// highlights line 0, and only when that line's text is exactly "---".
	// A single call has no way to see "am I line 0" on its own, so the
	// host is responsible for setting this to false again before any
	// later call — leaving it true for the whole document would let a
	// horizontal rule ("---") anywhere else be mistaken for a second
	// frontmatter block opening.
	FrontmatterArmed bool

	dirty DirtyQueue
}

// AddDirtyBlock enqueues a line index for re-highlighting, e.g. because a
// setext heading underline on this line forced the previous line's state to
// change. See headline.go.
func (d *Document) AddDirtyBlock(line int) {
	d.dirty.Push(line)
}

// DrainDirty removes and returns every currently queued line index, in the
// order they were added, clearing the queue. A host calls this after an
// edit settles to re-run HighlightBlock on each returned index.
func (d *Document) DrainDirty() []int {
	return d.dirty.DrainAll()
}

// ClearDirtyBlocks discards the queue without returning its contents, e.g.
// when the whole document is about to be fully re-highlighted anyway.
func (d *Document) ClearDirtyBlocks() {
	d.dirty.Clear()
}

// DirtyQueue is a FIFO of line indices with at-most-once membership. It
// holds no lock: a Document's queue must not be used from more than one
// goroutine at a time. The reference host (internal/host) pushes to and
// drains it within a single highlight pass.
type DirtyQueue struct {
	order  []int
	queued map[int]bool
}

// Push enqueues line if it is not already queued.
func (q *DirtyQueue) Push(line int) {
	if q.queued == nil {
		q.queued = make(map[int]bool)
	}
	if q.queued[line] {
		return
	}
	q.queued[line] = true
	q.order = append(q.order, line)
}

// DrainAll removes and returns every queued line index in insertion order.
func (q *DirtyQueue) DrainAll() []int {
	out := q.order
	q.order = nil
	q.queued = nil
	return out
}

// Clear discards all queued entries.
func (q *DirtyQueue) Clear() {
	q.order = nil
	q.queued = nil
}

// Len reports how many distinct lines are currently queued.
func (q *DirtyQueue) Len() int {
	return len(q.order)
}
