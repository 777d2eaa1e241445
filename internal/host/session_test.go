package host

import (
	"testing"

	"example.com/mdhighlight/pkg/highlight"
)

func TestSessionRecomputeProducesHeadlineSpan(t *testing.T) {
	s := NewSession()
	s.SetText("# Title\n\nsome text\n")
	s.Recompute()

	spans, _ := s.Lines()
	if len(spans) < 1 {
		t.Fatalf("expected at least one line of spans, got %d", len(spans))
	}
	found := false
	for _, sp := range spans[0] {
		if sp.Style == highlight.H1 {
			found = true
		}
	}
	if !found {
		t.Errorf("got %+v, want an H1 span on the title line", spans[0])
	}
}

func TestSessionRecomputeAsyncCoalescesOnEditSeq(t *testing.T) {
	s := NewSession()
	s.SetText("line one\nline two\n")

	done := make(chan struct{})
	s.RecomputeAsync(func() { close(done) })
	<-done

	before := s.EditSeq()
	again := make(chan struct{}, 1)
	s.RecomputeAsync(func() { again <- struct{}{} })
	select {
	case <-again:
	default:
		t.Fatalf("expected the no-op coalesced path to call done synchronously")
	}
	if s.EditSeq() != before {
		t.Errorf("EditSeq changed without an edit: got %d, want %d", s.EditSeq(), before)
	}
}

func TestSessionEditLineRewritesOneLineInPlace(t *testing.T) {
	s := NewSession()
	s.SetText("# Title\n\nsome text\n")

	if err := s.EditLine(2, "new text"); err != nil {
		t.Fatalf("EditLine failed: %v", err)
	}
	if got := s.Text(); got != "# Title\n\nnew text\n" {
		t.Fatalf("got %q, want the middle line replaced in place", got)
	}

	s.Recompute()
	spans, _ := s.Lines()
	found := false
	for _, sp := range spans[0] {
		if sp.Style == highlight.H1 {
			found = true
		}
	}
	if !found {
		t.Errorf("got %+v, want the title line's H1 span unaffected by an unrelated EditLine", spans[0])
	}
}

func TestSessionEditLineOutOfRange(t *testing.T) {
	s := NewSession()
	s.SetText("one\ntwo\n")
	if err := s.EditLine(10, "x"); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestSessionSetextRequeueAffectsLineAbove(t *testing.T) {
	s := NewSession()
	s.SetText("Title\n=====\n")
	s.Recompute()

	spans, _ := s.Lines()
	found := false
	for _, sp := range spans[0] {
		if sp.Style == highlight.H1 {
			found = true
		}
	}
	if !found {
		t.Errorf("got %+v, want the line above a setext underline requeued as H1", spans[0])
	}
}
