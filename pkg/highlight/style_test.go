package highlight

import "testing"

func TestInComment(t *testing.T) {
	cases := []struct {
		state State
		want  bool
	}{
		{CodeBlock, false},
		{CodeBlockComment, true},
		{CodeCpp, false},
		{CodeCppComment, true},
		{CodeGo, false},
		{CodeGoComment, true},
		{CodeBash, false},
	}
	for _, c := range cases {
		if got := c.state.InComment(); got != c.want {
			t.Errorf("State(%d).InComment() = %v, want %v", c.state, got, c.want)
		}
	}
}

func TestLanguageStateRoundTrip(t *testing.T) {
	for _, base := range []State{CodeCpp, CodeJs, CodeGo, CodeRust} {
		comment := base.CommentState()
		if !comment.InComment() {
			t.Fatalf("%v.CommentState() = %v, want InComment", base, comment)
		}
		if got := comment.LanguageState(); got != base {
			t.Errorf("%v.LanguageState() = %v, want %v", comment, got, base)
		}
		if got := base.LanguageState(); got != base {
			t.Errorf("%v.LanguageState() = %v, want itself", base, got)
		}
	}
}

func TestIsHeading(t *testing.T) {
	for s := H1; s <= H6; s++ {
		if !s.IsHeading() {
			t.Errorf("%v.IsHeading() = false, want true", s)
		}
	}
	if List.IsHeading() {
		t.Error("List.IsHeading() = true, want false")
	}
}
