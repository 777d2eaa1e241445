package highlight

import "strings"

// taggerScriptHighlighter styles MusicBrainz Picard "TaggerScript"
// expressions: $func(...), %variable%, $noop(...) comments, and
// \-escaped characters. Bypasses the generic scanner entirely.
//
// Grounded on the reference's taggerScriptHighlighter, which tests each of
// these four triggers with four sequential `if` statements rather than
// `if`/`else if`. The triggering characters ('$', '%', the 5-char "$noop"
// check, '\\') are mutually exclusive on a single byte, so collapsing to
// if/else-if here is a behavior-preserving simplification — see DESIGN.md.
func taggerScriptHighlighter(text string) []Span {
	var spans []Span
	n := len(text)

	for i := 0; i < n; i++ {
		switch {
		case strings.HasPrefix(text[i:], "$noop("):
			end := indexByteFrom(text, i, ')')
			if end < 0 {
				end = n - 1
			}
			spans = append(spans, Span{Start: i, End: end + 1, Style: CodeComment})
			i = end
		case text[i] == '$':
			end := i + 1
			for end < n && (isWordChar(text[end])) {
				end++
			}
			if end < n && text[end] == '(' {
				depth := 1
				j := end + 1
				for j < n && depth > 0 {
					switch text[j] {
					case '(':
						depth++
					case ')':
						depth--
					}
					j++
				}
				spans = append(spans, Span{Start: i, End: j, Style: CodeKeyWord})
				i = j - 1
			}
		case text[i] == '%':
			end := indexByteFrom(text, i+1, '%')
			if end >= 0 {
				spans = append(spans, Span{Start: i, End: end + 1, Style: CodeType})
				i = end
			}
		case text[i] == '\\':
			if i+1 < n {
				spans = append(spans, Span{Start: i, End: i + 2, Style: CodeNumLiteral})
				i++
			}
		}
	}
	return spans
}
