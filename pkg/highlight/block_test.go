package highlight

import "testing"

func TestApplyCodeBlockOpensKnownLanguage(t *testing.T) {
	r := applyCodeBlock("```go", NoState)
	if !r.handled {
		t.Fatal("expected fence open to be handled")
	}
	if r.state != CodeGo {
		t.Errorf("state = %v, want CodeGo", r.state)
	}
}

func TestApplyCodeBlockOpensUnknownLanguageFallsBackToGeneric(t *testing.T) {
	r := applyCodeBlock("```made-up-lang", NoState)
	if r.state != CodeBlock {
		t.Errorf("state = %v, want CodeBlock", r.state)
	}
}

func TestApplyCodeBlockClosesOpenFence(t *testing.T) {
	r := applyCodeBlock("```", CodeGo)
	if r.state != CodeBlockEnd {
		t.Errorf("state = %v, want CodeBlockEnd", r.state)
	}
}

func TestApplyCodeBlockCarriesLanguageForward(t *testing.T) {
	r := applyCodeBlock("func main() {}", CodeGo)
	if !r.runScanner {
		t.Fatal("expected a non-fence line inside a code block to request the scanner")
	}
	if r.state != CodeGo {
		t.Errorf("state = %v, want CodeGo carried forward", r.state)
	}
}

func TestApplyFrontmatterRequiresArming(t *testing.T) {
	r := applyFrontmatter("---", NoState, false)
	if r.handled {
		t.Error("frontmatter delimiter should be ignored when not armed")
	}
	r = applyFrontmatter("---", NoState, true)
	if !r.handled || r.state != FrontmatterBlock {
		t.Errorf("got %+v, want an opened frontmatter block", r)
	}
	r = applyFrontmatter("title: x", FrontmatterBlock, true)
	if !r.handled || r.state != FrontmatterBlock {
		t.Errorf("got %+v, want frontmatter to continue", r)
	}
	r = applyFrontmatter("---", FrontmatterBlock, true)
	if !r.handled || r.state != FrontmatterBlockEnd {
		t.Errorf("got %+v, want frontmatter to close", r)
	}
}

func TestApplyCommentBlockIgnoresSelfClosingLine(t *testing.T) {
	r := applyCommentBlock("<!-- hello -->", NoState)
	if r.handled {
		t.Error("a self-closing comment on one line should defer to the inline rule")
	}
}

func TestApplyCommentBlockOpensAndCloses(t *testing.T) {
	r := applyCommentBlock("<!-- start", NoState)
	if !r.handled || r.state != Comment {
		t.Errorf("got %+v, want an opened comment block", r)
	}
	r = applyCommentBlock("still inside", Comment)
	if !r.handled || r.state != Comment {
		t.Errorf("got %+v, want the comment block to continue", r)
	}
	r = applyCommentBlock("end -->", Comment)
	if !r.handled || r.state != NoState {
		t.Errorf("got %+v, want the comment block to close", r)
	}
}
