package highlight

// iniHighlighter styles INI sections, ';' comments, and keys, bypassing the
// generic scanner entirely. A value after '=' is left unstyled unless a ';'
// comment follows it on the same line, in which case the text between '='
// and ';' is painted CodeString. Grounded on the reference's
// iniHighlighter, including its malformed-section/malformed-key error
// marking — ported here as BrokenLink (red, underlined in DefaultTheme)
// rather than inventing a dedicated error state, since BrokenLink is
// otherwise unused by any rule in this package and carries the right
// visual already.
func iniHighlighter(text string) []Span {
	var spans []Span
	n := len(text)

	for i := 0; i < n; i++ {
		switch {
		case text[i] == '[':
			end := indexByteFrom(text, i+1, ']')
			if end < 0 {
				spans = append(spans, Span{Start: i, End: n, Style: BrokenLink})
				return spans
			}
			spans = append(spans, Span{Start: i, End: end + 1, Style: CodeType})
			i = end
		case text[i] == ';':
			spans = append(spans, Span{Start: i, End: n, Style: CodeComment})
			return spans
		case isWordStart(text[i]):
			start := i
			eq := indexByteFrom(text, i, '=')
			if eq < 0 {
				spans = append(spans, Span{Start: start, End: n, Style: BrokenLink})
				return spans
			}
			keyEnd := eq
			for keyEnd > start && text[keyEnd-1] == ' ' {
				keyEnd--
			}
			spans = append(spans, Span{Start: start, End: keyEnd, Style: CodeKeyWord})
			i = eq
		case text[i] == '=':
			commentAt := indexByteFrom(text, i+1, ';')
			if commentAt < 0 {
				return spans
			}
			spans = append(spans, Span{Start: i + 1, End: commentAt, Style: CodeString})
			i = commentAt - 1
		}
	}
	return spans
}

func indexByteFrom(text string, from int, c byte) int {
	for i := from; i < len(text); i++ {
		if text[i] == c {
			return i
		}
	}
	return -1
}
