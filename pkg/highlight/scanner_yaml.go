package highlight

import "strings"

// ymlHighlighter styles YAML keys-before-colon and underlines bare
// http(s) links, bypassing the generic scanner's word-boundary dispatch
// (the generic scanner still owns '#' line comments and quoted strings by
// virtue of running first — see runLanguageScanner).
//
// Grounded on the reference's ymlHighlighter. Its path-exclusion check
// ("don't treat C:\... as a key") reads
// `text.at(colon+1) == '\\' && text.at(colon+1) == '/'` — the same
// character tested against two different values with AND, which is always
// false, so that exclusion never actually fires in the reference. spec.md
// §4.H states the intended behavior as an OR ("except when ':' is
// followed by '\' or '/'"); this implementation uses the corrected OR
// check rather than reproducing the always-false AND — see DESIGN.md.
func ymlHighlighter(text string) []Span {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "#") {
		return nil
	}

	var spans []Span
	n := len(text)

	for i := 0; i < n; i++ {
		c := text[i]

		if c == '"' || c == '\'' {
			end := i + 1
			for end < n && text[end] != c {
				end++
			}
			if end < n {
				end++
			}
			i = end - 1
			continue
		}

		if isWordStart(c) {
			start := i
			for i < n && (isWordChar(text[i]) || text[i] == '-') {
				i++
			}
			colon := i
			if colon < n && text[colon] == ':' {
				pathLike := colon+1 < n && (text[colon+1] == '\\' || text[colon+1] == '/')
				if colon+1 >= n || !pathLike {
					spans = append(spans, Span{Start: start, End: colon, Style: CodeKeyWord})
				}
			}

			word := text[start:i]
			if strings.HasPrefix(word, "http") {
				end := i
				for end < n && text[end] != ' ' {
					end++
				}
				spans = append(spans, Span{Start: start, End: end, Style: Link})
				i = end - 1
			}
			continue
		}
	}
	return spans
}
