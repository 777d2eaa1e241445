package highlight

import "testing"

func TestDetectHeadlineATX(t *testing.T) {
	r := detectHeadline("## Section", "", NoState, "")
	if !r.matched || r.state != H2 {
		t.Fatalf("got %+v, want H2", r)
	}
}

func TestDetectHeadlineATXRequiresSpace(t *testing.T) {
	r := detectHeadline("##NoSpace", "", NoState, "")
	if r.matched {
		t.Fatalf("got %+v, want no match without a space after the #s", r)
	}
}

func TestDetectHeadlineSetext(t *testing.T) {
	r := detectHeadline("=======", "Title", NoState, "")
	if !r.matched || r.previousLineState != H1 {
		t.Fatalf("got %+v, want the previous line flagged H1", r)
	}
	if !r.previousLineDirty {
		t.Error("expected the previous line to be flagged dirty since it wasn't already H1")
	}
}

func TestDetectHeadlineSetextSkipsBlankPreviousLine(t *testing.T) {
	r := detectHeadline("-------", "", NoState, "")
	if r.matched {
		t.Fatalf("got %+v, want no match when the previous line is blank", r)
	}
}

func TestDetectHeadlineLookahead(t *testing.T) {
	r := detectHeadline("Title", "", NoState, "=====")
	if !r.matched || r.state != H1 {
		t.Fatalf("got %+v, want a lookahead-detected H1", r)
	}
}

func TestDetectHeadlineNoMatch(t *testing.T) {
	r := detectHeadline("plain text", "also plain", NoState, "still plain")
	if r.matched {
		t.Fatalf("got %+v, want no match", r)
	}
}
