package highlight

import "example.com/mdhighlight/pkg/langdata"

// scanGenericCode is the single-pass tokenizer used for every per-language
// code-block state that doesn't have a dedicated hand-written scanner (XML,
// INI, TaggerScript bypass this entirely; CSS and YAML run it first and then
// add their own pass — see runLanguageScanner).
// It styles the whole line as CodeBlock first, then overlays keyword/type/
// builtin/literal/comment/string/number spans as it walks the line.
//
// langState is the line's incoming per-language state (possibly already
// InComment from a /* */ block opened on a previous line); it returns the
// spans found plus the terminal per-language state for this line.
func scanGenericCode(text string, langState State) ([]Span, State) {
	spans := []Span{{Start: 0, End: len(text), Style: CodeBlock}}

	bundle, haveBundle := langdata.Registry[int(langState.LanguageState())]
	isCFamily := langState.LanguageState() == CodeCpp || langState.LanguageState() == CodeC

	inComment := langState.InComment()
	base := langState.LanguageState()

	i := 0
	n := len(text)

	if inComment {
		// A line that starts already inside a block comment resumes
		// immediately, looking only for the closing "*/".
		end := findCommentClose(text, 0)
		spans = append(spans, Span{Start: 0, End: end, Style: CodeComment})
		if end >= n {
			return spans, base.CommentState()
		}
		i = end
		inComment = false
	}

	for i < n {
		c := text[i]

		if haveBundle && bundle.LineComment != 0 && c == bundle.LineComment {
			spans = append(spans, Span{Start: i, End: n, Style: CodeComment})
			return spans, base
		}
		if c == '/' && i+1 < n && text[i+1] == '/' {
			spans = append(spans, Span{Start: i, End: n, Style: CodeComment})
			return spans, base
		}
		if c == '/' && i+1 < n && text[i+1] == '*' {
			end := findCommentClose(text, i+2)
			spans = append(spans, Span{Start: i, End: end, Style: CodeComment})
			if end >= n {
				return spans, base.CommentState()
			}
			i = end
			continue
		}
		if c == '"' || c == '\'' {
			end, litSpans := scanStringLiteral(text, i)
			spans = append(spans, litSpans...)
			i = end
			continue
		}
		if isDigit(c) && (i == 0 || numericStartContext(text[i-1])) {
			if end, ok := scanNumericLiteral(text, i); ok {
				spans = append(spans, Span{Start: i, End: end, Style: CodeNumLiteral})
				i = end
				continue
			}
		}
		if isWordStart(c) {
			wordStart := i
			for i < n && isWordChar(text[i]) {
				i++
			}
			word := text[wordStart:i]
			if haveBundle {
				if style, ok := lookupWord(bundle, word); ok {
					styleStart := wordStart
					if style == CodeOther && isCFamily && wordStart > 0 && text[wordStart-1] == '#' {
						// Preprocessor directives (#include, #define, ...)
						// are styled starting one character earlier, to
						// include the leading '#'.
						styleStart = wordStart - 1
					}
					spans = append(spans, Span{Start: styleStart, End: i, Style: style})
				}
			}
			continue
		}
		i++
	}

	return spans, base
}

// findCommentClose returns the index just past the first "*/" found at or
// after start, or len(text) if none is found on this line.
func findCommentClose(text string, start int) int {
	for i := start; i+1 < len(text); i++ {
		if text[i] == '*' && text[i+1] == '/' {
			return i + 2
		}
	}
	return len(text)
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

// lookupWord checks the bundle's type/keyword/literal/builtin/other
// tables, in that priority order, for an exact match on word — mirroring
// the reference scanner's try-types-then-keywords-then-literals-then-
// builtins-then-others dispatch. Literals are intentionally painted with
// CodeNumLiteral, not a dedicated literal color, matching the reference.
func lookupWord(b langdata.Bundle, word string) (State, bool) {
	if word == "" {
		return 0, false
	}
	first := word[0]
	if contains(b.Types[first], word) {
		return CodeType, true
	}
	if contains(b.Keywords[first], word) {
		return CodeKeyWord, true
	}
	if contains(b.Literals[first], word) {
		return CodeNumLiteral, true
	}
	if contains(b.Builtins[first], word) {
		return CodeBuiltIn, true
	}
	if contains(b.Others[first], word) {
		return CodeOther, true
	}
	return 0, false
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
