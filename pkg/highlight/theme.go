package highlight

import "github.com/gdamore/tcell/v2"

// StyleFormat is one theme entry: how a State should be painted. Grounded
// on the teacher's pkg/config.Theme, which also keys plain tcell.Color
// values rather than a custom color type.
type StyleFormat struct {
	Foreground     tcell.Color
	Background     tcell.Color
	Bold           bool
	Italic         bool
	Underline      bool
	UnderlineColor tcell.Color
	// PointSizeScale multiplies the host's base font size; 0 means "use
	// the base size unscaled" (most styles). Headings use >1.0.
	PointSizeScale float64
	Monospace      bool
}

// Theme maps every State this package can emit to how it should render. A
// host looks up Theme[span.Style] for each Span HighlightBlock returns.
type Theme map[State]StyleFormat

// DefaultTheme returns the built-in palette: a dark, Monokai-leaning code
// theme for the per-language code-scanner styles plus the Markdown
// inline/block styles at their spec.md-suggested defaults.
func DefaultTheme() Theme {
	return Theme{
		Link:            {Foreground: tcell.ColorBlue, Underline: true},
		Image:           {Foreground: tcell.ColorBlue, Italic: true},
		CodeBlock:       {Foreground: tcell.ColorSilver, Monospace: true},
		Italic:          {Italic: true},
		Bold:            {Bold: true},
		List:            {Foreground: tcell.ColorOrange},
		Comment:         {Foreground: tcell.ColorGray, Italic: true},
		H1:              {Bold: true, PointSizeScale: 1.6},
		H2:              {Bold: true, PointSizeScale: 1.45},
		H3:              {Bold: true, PointSizeScale: 1.3},
		H4:              {Bold: true, PointSizeScale: 1.15},
		H5:              {Bold: true, PointSizeScale: 1.05},
		H6:              {Bold: true, PointSizeScale: 1.0},
		BlockQuote:      {Foreground: tcell.ColorOlive, Italic: true},
		HorizontalRuler: {Foreground: tcell.ColorGray},
		Table:           {Foreground: tcell.ColorTeal},
		InlineCodeBlock: {Foreground: tcell.ColorYellow, Monospace: true},
		MaskedSyntax:    {Foreground: tcell.ColorGray},

		CurrentLineBackgroundColor: {Background: tcell.NewHexColor(0x2a2a2a)},
		BrokenLink:                 {Foreground: tcell.ColorRed, Underline: true},

		FrontmatterBlock:  {Foreground: tcell.ColorGray, Monospace: true},
		TrailingSpace:     {Background: tcell.ColorRed},
		CheckBoxUnChecked: {Foreground: tcell.ColorSilver},
		CheckBoxChecked:   {Foreground: tcell.ColorGreen},

		CodeKeyWord:    {Foreground: tcell.NewHexColor(0xf92672), Bold: true},
		CodeString:     {Foreground: tcell.NewHexColor(0xe6db74)},
		CodeComment:    {Foreground: tcell.NewHexColor(0x75715e), Italic: true},
		CodeType:       {Foreground: tcell.NewHexColor(0x66d9ef), Italic: true},
		CodeOther:      {Foreground: tcell.NewHexColor(0xa6e22e)},
		CodeNumLiteral: {Foreground: tcell.NewHexColor(0xae81ff)},
		CodeBuiltIn:    {Foreground: tcell.NewHexColor(0x66d9ef)},
	}
}
