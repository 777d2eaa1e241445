package highlight

// scanStringLiteral scans a quoted string literal starting at the opening
// quote character text[start]. It returns the index just past the closing
// quote (or len(text) if unterminated) and the spans covering the literal.
//
// Escape sequences (\a \b \e \f \n \r \t \v \' \" \\ \? plus \0..\7 octal
// and \x hex) are painted with CodeNumLiteral rather than CodeString,
// matching the reference scanner.
func scanStringLiteral(text string, start int) (end int, spans []Span) {
	quote := text[start]
	i := start + 1
	literalStart := start

	flush := func(to int, style State) {
		if to > literalStart {
			spans = append(spans, Span{Start: literalStart, End: to, Style: style})
		}
	}

	for i < len(text) {
		c := text[i]
		if c == quote {
			i++
			flush(i, CodeString)
			return i, spans
		}
		if c == '\\' {
			flush(i, CodeString)
			escEnd, matched := scanEscape(text, i)
			if matched {
				spans = append(spans, Span{Start: i, End: escEnd, Style: CodeNumLiteral})
				i = escEnd
				literalStart = i
				continue
			}
			// No recognized escape: the lone backslash is itself a plain
			// string character, matching the reference scanner.
			spans = append(spans, Span{Start: i, End: i + 1, Style: CodeString})
			i++
			literalStart = i
			continue
		}
		i++
	}
	flush(len(text), CodeString)
	return len(text), spans
}

// scanEscape recognizes a backslash escape sequence starting at text[i]
// (text[i] == '\\') and returns the index just past it, or ok=false if i
// isn't the start of a recognized escape.
func scanEscape(text string, i int) (end int, ok bool) {
	if i+1 >= len(text) {
		return i, false
	}
	switch text[i+1] {
	case 'a', 'b', 'e', 'f', 'n', 'r', 't', 'v', '\'', '"', '\\', '?':
		return i + 2, true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if i+4 <= len(text) && isOctalDigit(text[i+2]) && isOctalDigit(text[i+3]) {
			return i + 4, true
		}
		return i, false
	case 'x':
		// A \xHH escape needs to read text[i+2] and text[i+3], which
		// requires i+4 <= len(text). The reference scanner checks
		// i+3 <= len(text), an off-by-one that would read past the
		// second hex digit; corrected here rather than preserved, since
		// the reference's own stated intent (render a full \xHH escape)
		// only holds with the corrected bound. See DESIGN.md.
		if i+4 <= len(text) && isHexDigit(text[i+2]) && isHexDigit(text[i+3]) {
			return i + 4, true
		}
		return i, false
	}
	return i, false
}

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// numericStartContext is the set of characters that may immediately
// precede a digit for that digit to count as the start of a numeric
// literal, matching the reference scanner's context-sensitive check.
func numericStartContext(c byte) bool {
	switch c {
	case ' ', '[', '(', '{', ',', '=', '+', '-', '*', '/', '%', '<', '>':
		return true
	}
	return false
}

// numericEndContext is the set of characters allowed immediately after a
// numeric literal's digits for the run to actually be styled; end-of-line
// also qualifies.
func numericEndContext(c byte) bool {
	switch c {
	case ']', ')', '}', ',', '=', '+', '-', '*', '/', '%', '>', '<', ';':
		return true
	}
	return false
}

// scanNumericLiteral attempts to scan a numeric literal starting at
// text[start] (text[start] is a digit, and the character before it, if
// any, passed numericStartContext). It returns ok=false (no span) if the
// trailing context after the digit run doesn't qualify.
func scanNumericLiteral(text string, start int) (end int, ok bool) {
	i := start
	if i+1 < len(text) && text[i] == '0' && (text[i+1] == 'x' || text[i+1] == 'X') {
		i += 2
		for i < len(text) && isHexDigit(text[i]) {
			i++
		}
	} else {
		for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
			i++
		}
	}
	end = i
	// A trailing type-suffix letter is folded into the span.
	if end < len(text) {
		switch text[end] {
		case 'u', 'l', 'f', 'U', 'L', 'F':
			end++
		}
	}
	if end >= len(text) || numericEndContext(text[end]) {
		return end, true
	}
	return start, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
