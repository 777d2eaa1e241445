package highlight

import "testing"

func TestScanStringLiteralBasic(t *testing.T) {
	_, spans := scanStringLiteral(`"hello"`, 0)
	if len(spans) != 1 || spans[0].Style != CodeString {
		t.Fatalf("got %+v, want a single CodeString span", spans)
	}
}

func TestScanStringLiteralEscapeUsesNumLiteralColor(t *testing.T) {
	text := `"a\nb"`
	_, spans := scanStringLiteral(text, 0)
	var sawEscape bool
	for _, s := range spans {
		if s.Style == CodeNumLiteral && text[s.Start:s.End] == `\n` {
			sawEscape = true
		}
	}
	if !sawEscape {
		t.Fatalf("got %+v, want a \\n escape painted CodeNumLiteral", spans)
	}
}

func TestScanStringLiteralUnterminated(t *testing.T) {
	end, spans := scanStringLiteral(`"unterminated`, 0)
	if end != len(`"unterminated`) {
		t.Errorf("end = %d, want end of line", end)
	}
	if len(spans) == 0 {
		t.Fatal("expected at least one span for the unterminated literal")
	}
}

func TestScanEscapeHexRequiresTwoFullDigits(t *testing.T) {
	// "\xFF" needs to read both hex digits; this is the off-by-one bound
	// corrected relative to the reference scanner (see DESIGN.md).
	end, ok := scanEscape(`\xFF`, 0)
	if !ok || end != 4 {
		t.Fatalf("scanEscape(`\\xFF`, 0) = (%d, %v), want (4, true)", end, ok)
	}

	_, ok = scanEscape(`\xF`, 0)
	if ok {
		t.Error("expected a truncated \\x escape to fail")
	}
}

func TestScanEscapeOctal(t *testing.T) {
	end, ok := scanEscape(`\123`, 0)
	if !ok || end != 4 {
		t.Fatalf("scanEscape(`\\123`, 0) = (%d, %v), want (4, true)", end, ok)
	}
}

func TestScanNumericLiteralRequiresContext(t *testing.T) {
	// "x10y" — the digit run isn't preceded by a qualifying context char,
	// so it's never attempted as a numeric literal start in the scanner's
	// caller; scanNumericLiteral itself only checks the trailing context.
	if _, ok := scanNumericLiteral("(10)", 1); !ok {
		t.Error("expected (10) to qualify: trailing ')' is allowed context")
	}
	if _, ok := scanNumericLiteral("10x", 0); ok {
		t.Error("expected 10x to be rejected: 'x' isn't allowed trailing context")
	}
}

func TestScanNumericLiteralSuffix(t *testing.T) {
	end, ok := scanNumericLiteral("100L;", 0)
	if !ok || end != 4 {
		t.Fatalf("scanNumericLiteral(\"100L;\", 0) = (%d, %v), want (4, true)", end, ok)
	}
}
