package highlight

import "testing"

func TestParseCSSColorHex(t *testing.T) {
	c, ok := parseCSSColor("#336699")
	if !ok {
		t.Fatal("expected #336699 to parse")
	}
	if c.R == 0 && c.G == 0 && c.B == 0 {
		t.Error("parsed color looks like the zero value")
	}
}

func TestParseCSSColorRGB(t *testing.T) {
	c, ok := parseCSSColor("rgb(51, 102, 153)")
	if !ok {
		t.Fatal("expected rgb(...) to parse")
	}
	if c.R < 0.19 || c.R > 0.21 {
		t.Errorf("R = %v, want ~0.2", c.R)
	}
}

func TestContrastColorLightensDarkBackground(t *testing.T) {
	bg, _ := parseCSSColor("#000000")
	fg := contrastColor(bg)
	_, _, fgL := fg.Hsl()
	_, _, bgL := bg.Hsl()
	if fgL <= bgL {
		t.Errorf("expected a lighter contrast color for a dark background, fgL=%v bgL=%v", fgL, bgL)
	}
}

func TestCSSHighlighterSelector(t *testing.T) {
	spans := cssHighlighter(".button { color: #ffffff; }")
	if !hasStyle(spans, CodeType) {
		t.Errorf("got %+v, want a selector span", spans)
	}
}
