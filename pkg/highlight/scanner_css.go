package highlight

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// cssHighlighter is the CSS post-pass run after the generic scanner when
// the fenced code block's language is CSS: selector-prefix styling plus
// contrast-color computation for "color: ..." property values.
//
// Grounded on the reference's cssHighlighter, which computes a lightness-
// banded contrast foreground for the declared color and sets it as a
// background annotation so the swatch is visible regardless of the host's
// own background. The lightness math here follows spec.md §4.H's stated
// rule (<=127 lighten, >127 darken) using go-colorful's HSL space instead
// of porting Qt's QColor::lighter()/darker() byte-for-byte — see DESIGN.md
// for the discrepancy with the reference's exact thresholds.
func cssHighlighter(text string) []Span {
	var spans []Span

	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c == '.' || c == '#') && i+1 < len(text) {
			next := text[i+1]
			if next == ' ' || isDigit(next) {
				continue
			}
			j := i + 1
			for j < len(text) && (isWordChar(text[j]) || text[j] == '-') {
				j++
			}
			spans = append(spans, Span{Start: i, End: j, Style: CodeType})
			i = j - 1
			continue
		}
	}

	idx := strings.Index(text, "color:")
	if idx < 0 {
		return spans
	}
	valueStart := idx + len("color:")
	for valueStart < len(text) && text[valueStart] == ' ' {
		valueStart++
	}
	valueEnd := strings.IndexByte(text[valueStart:], ';')
	if valueEnd < 0 {
		valueEnd = len(text) - valueStart
	}
	value := strings.TrimSpace(text[valueStart : valueStart+valueEnd])

	bg, ok := parseCSSColor(value)
	if !ok {
		return spans
	}
	fg := contrastColor(bg)
	spans = append(spans, Span{
		Start: valueStart,
		End:   valueStart + len(value),
		Style: CodeString,
	})
	_ = fg // contrast color is exposed to hosts via CSSContrastColor, not a Span
	return spans
}

// CSSContrastColor exposes the contrast computation cssHighlighter uses
// internally, for a host that wants to render a live swatch next to a
// color: declaration rather than just a style span.
func CSSContrastColor(value string) (colorful.Color, bool) {
	c, ok := parseCSSColor(value)
	if !ok {
		return colorful.Color{}, false
	}
	return contrastColor(c), true
}

func parseCSSColor(value string) (colorful.Color, bool) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	if strings.HasPrefix(value, "rgb(") || strings.HasPrefix(value, "rgba(") {
		inner := value[strings.IndexByte(value, '(')+1:]
		inner = strings.TrimSuffix(inner, ")")
		parts := strings.Split(inner, ",")
		if len(parts) < 3 {
			return colorful.Color{}, false
		}
		r, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		g, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		b, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return colorful.Color{}, false
		}
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
	}
	return colorful.Color{}, false
}

// contrastColor computes a foreground that reads against bg, banding on
// bg's HSL lightness (0..255 scale, matching the reference's QColor
// lightness()) the way spec.md §4.H describes: lighten for the lower
// bands, darken above the midpoint.
func contrastColor(bg colorful.Color) colorful.Color {
	h, s, l := bg.Hsl()
	l255 := l * 255
	switch {
	case l255 <= 127:
		return colorful.Hsl(h, s, clamp01(l+100.0/255.0))
	default:
		return colorful.Hsl(h, s, clamp01(l-100.0/255.0))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
