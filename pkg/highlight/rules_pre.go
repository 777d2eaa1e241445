package highlight

import "regexp"

// buildPreRules returns the rule table applied before heading detection:
// reference-link-as-url, lists, checkboxes, block quotes, and the
// horizontal ruler. Order is significant (see rules_post.go).
//
// opts selects between the two block-quote patterns (SetHighlightingOptions
// rebuilds this table, see Highlighter.SetHighlightingOptions — unlike the
// reference implementation, where flipping the option after construction
// had no effect because the rule table was never rebuilt).
func buildPreRules(opts Options) []Rule {
	blockQuotePattern := `^\s*(>\s*)+`
	if opts&FullyHighlightedBlockQuote != 0 {
		blockQuotePattern = `^\s*(>\s*.+)`
	}

	return []Rule{
		// the reference/url rule for reference-style link definitions
		{
			Pattern:       regexp.MustCompile(`^\[.+?\]: \w+://.+$`),
			State:         MaskedSyntax,
			ShouldContain: [3]string{"://"},
		},
		// unordered lists
		{
			Pattern:                     regexp.MustCompile(`^\s*[-*+]\s`),
			State:                       List,
			ShouldContain:               [3]string{"- ", "* ", "+ "},
			UseStateAsCurrentBlockState: true,
		},
		// ordered lists. Grounded on the reference implementation, which
		// builds this rule by mutating the same descriptor used for the
		// unordered-list rule above and never resets ShouldContain before
		// appending it: the ordered-list rule is fast-rejected unless the
		// line also contains "- ", "* ", or "+ " somewhere. Preserved
		// faithfully rather than "fixed" — see DESIGN.md.
		{
			Pattern:                     regexp.MustCompile(`^\s*\d+\.\s`),
			State:                       List,
			ShouldContain:               [3]string{"- ", "* ", "+ "},
			UseStateAsCurrentBlockState: true,
		},
		// checked checkboxes
		{
			Pattern:        regexp.MustCompile(`^\s*[+|\-|\*] (\[x\])(\s+)`),
			State:          CheckBoxChecked,
			ShouldContain:  [3]string{"- [x]", "* [x]", "+ [x]"},
			CapturingGroup: 1,
		},
		// unchecked checkboxes
		{
			Pattern:        regexp.MustCompile(`^\s*[+|\-|\*] (\[( |)\])(\s+)`),
			State:          CheckBoxUnChecked,
			ShouldContain:  [3]string{"- [", "* [", "+ ["},
			CapturingGroup: 1,
		},
		// block quotes
		{
			Pattern:       regexp.MustCompile(blockQuotePattern),
			State:         BlockQuote,
			ShouldContain: [3]string{"> "},
		},
		// horizontal rulers
		{
			Pattern:       regexp.MustCompile(`^([*\-_]\s?){3,}$`),
			State:         HorizontalRuler,
			ShouldContain: [3]string{"---", "***", "+++"},
		},
	}
}
