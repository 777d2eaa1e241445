package highlight

import "testing"

func TestIniHighlighterSection(t *testing.T) {
	spans := iniHighlighter("[server]")
	if !hasStyle(spans, CodeType) {
		t.Fatalf("got %+v, want a section span", spans)
	}
}

func TestIniHighlighterUnterminatedSectionIsBroken(t *testing.T) {
	spans := iniHighlighter("[server")
	if !hasStyle(spans, BrokenLink) {
		t.Fatalf("got %+v, want an error span for an unterminated section", spans)
	}
}

func TestIniHighlighterKeyWithoutEqualsIsBroken(t *testing.T) {
	spans := iniHighlighter("not_a_key_value_pair")
	if !hasStyle(spans, BrokenLink) {
		t.Fatalf("got %+v, want an error span for a key with no '='", spans)
	}
}
