package main

import (
	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"example.com/mdhighlight/pkg/highlight"
)

// sprintForStyle builds a fatih/color SprintFunc for a StyleFormat, used by
// the default non-interactive ANSI dump mode. fatih/color's stable
// attribute set is the 16-color ANSI palette, not true color, so
// StyleFormat's tcell.Color foregrounds are bucketed to the nearest ANSI
// color rather than rendered exactly.
func sprintForStyle(sf highlight.StyleFormat) func(...any) string {
	attrs := []color.Attribute{nearestANSI(sf.Foreground)}
	if sf.Bold {
		attrs = append(attrs, color.Bold)
	}
	if sf.Italic {
		attrs = append(attrs, color.Italic)
	}
	if sf.Underline {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...).SprintFunc()
}

// nearestANSI buckets a tcell true color into the closest basic or
// high-intensity ANSI foreground attribute fatih/color exposes.
func nearestANSI(c tcell.Color) color.Attribute {
	if c == tcell.ColorDefault {
		return color.FgWhite
	}
	r, g, b := c.RGB()
	bright := r > 128 || g > 128 || b > 128

	type bucket struct {
		attr, hi color.Attribute
		r, g, b  int32
	}
	buckets := []bucket{
		{color.FgRed, color.FgHiRed, 255, 0, 0},
		{color.FgGreen, color.FgHiGreen, 0, 255, 0},
		{color.FgYellow, color.FgHiYellow, 255, 255, 0},
		{color.FgBlue, color.FgHiBlue, 0, 0, 255},
		{color.FgMagenta, color.FgHiMagenta, 255, 0, 255},
		{color.FgCyan, color.FgHiCyan, 0, 255, 255},
		{color.FgWhite, color.FgHiWhite, 255, 255, 255},
		{color.FgBlack, color.FgHiBlack, 0, 0, 0},
	}
	best := buckets[0]
	bestDist := int64(1) << 60
	for _, bk := range buckets {
		dr, dg, db := int64(r)-int64(bk.r), int64(g)-int64(bk.g), int64(b)-int64(bk.b)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = bk
		}
	}
	if bright {
		return best.hi
	}
	return best.attr
}
