package highlight

// xmlHighlighter styles XML tag names and attribute names/values,
// bypassing the generic scanner entirely (see runLanguageScanner).
// Grounded on the reference's xmlHighlighter.
func xmlHighlighter(text string) []Span {
	var spans []Span
	n := len(text)

	for i := 0; i < n; i++ {
		switch text[i] {
		case '<':
			if i+1 < n && text[i+1] == '!' {
				continue
			}
			start := i + 1
			if start < n && text[start] == '/' {
				start++
			}
			j := start
			for j < n && (isWordChar(text[j]) || text[j] == '-' || text[j] == ':') {
				j++
			}
			if j > start {
				spans = append(spans, Span{Start: start, End: j, Style: CodeKeyWord})
			}
			i = j - 1
		case '=':
			// The attribute name is the word run before the nearest
			// preceding space; if that space sits immediately before the
			// '=' (a space between name and '='), walk back one more
			// word to find it.
			spaceIdx := lastIndexByteBefore(text, i, ' ')
			if spaceIdx < 0 {
				continue
			}
			nameEnd := spaceIdx
			nameStart := spaceIdx + 1
			if nameStart >= i {
				prevSpace := lastIndexByteBefore(text, spaceIdx, ' ')
				nameEnd = spaceIdx
				nameStart = prevSpace + 1
				_ = nameEnd
			}
			for nameStart < i && !isWordStart(text[nameStart]) {
				nameStart++
			}
			end := nameStart
			for end < i && (isWordChar(text[end]) || text[end] == '-') {
				end++
			}
			if end > nameStart {
				spans = append(spans, Span{Start: nameStart, End: end, Style: CodeBuiltIn})
			}
		case '"':
			end := i + 1
			for end < n && text[end] != '"' {
				end++
			}
			if end < n {
				end++
			}
			spans = append(spans, Span{Start: i, End: end, Style: CodeString})
			i = end - 1
		}
	}
	return spans
}

func lastIndexByteBefore(text string, before int, c byte) int {
	for i := before - 1; i >= 0; i-- {
		if text[i] == c {
			return i
		}
	}
	return -1
}
