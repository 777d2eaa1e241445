package highlight

import "regexp"

// buildPostRules returns the rule table applied after heading detection:
// emphasis, links, images, trailing whitespace, inline code, indented code
// blocks, HTML/Rmarkdown comments, and tables.
func buildPostRules() []Rule {
	return []Rule{
		// italics with *single asterisks*
		{
			Pattern:        regexp.MustCompile(`(?:^|[^\*\x08])(?:\*([^\* ][^\*]*?)\*)(?:[^\*\x08]|$)`),
			State:          Italic,
			ShouldContain:  [3]string{"*"},
			CapturingGroup: 1,
		},
		// italics with _single underscores_. Grounded on the reference
		// implementation, which sets ShouldContain[0] = "_" one statement
		// *after* appending this rule, so the stored value is still "*"
		// from the previous rule — the underscore variant is fast-rejected
		// unless the line also happens to contain an asterisk. Preserved
		// faithfully rather than "fixed" — see DESIGN.md.
		{
			Pattern:        regexp.MustCompile(`\b_([^_]+)_\b`),
			State:          Italic,
			ShouldContain:  [3]string{"*"},
			CapturingGroup: 1,
		},
		// bold with **double asterisks**
		{
			Pattern:        regexp.MustCompile(`\B\*{2}(.+?)\*{2}\B`),
			State:          Bold,
			ShouldContain:  [3]string{"**"},
			CapturingGroup: 1,
		},
		// bold with __double underscores__
		{
			Pattern:        regexp.MustCompile(`\b__(.+?)__\b`),
			State:          Bold,
			ShouldContain:  [3]string{"__"},
			CapturingGroup: 1,
		},
		// ~~strikethrough~~, dimmed rather than given a dedicated style
		{
			Pattern:        regexp.MustCompile(`\~{2}(.+?)\~{2}`),
			State:          MaskedSyntax,
			ShouldContain:  [3]string{"~"},
			CapturingGroup: 1,
		},
		// bare http://... urls
		{
			Pattern:       regexp.MustCompile(`\b\w+?://[^\s>]+`),
			State:         Link,
			ShouldContain: [3]string{"://"},
		},
		// <http://...> urls without a dot after the scheme
		{
			Pattern:        regexp.MustCompile(`<(\w+?://[^\s]+)>`),
			State:          Link,
			ShouldContain:  [3]string{"://"},
			CapturingGroup: 1,
		},
		// <http://host.tld/...> urls with a dot
		{
			Pattern:        regexp.MustCompile("<([^\\s`][^`]*?\\.[^`]*?[^\\s`])>"),
			State:          Link,
			ShouldContain:  [3]string{"<"},
			CapturingGroup: 1,
		},
		// [text](url "title") and [text](url)
		{
			Pattern:        regexp.MustCompile(`\[([^\[\]]+)\]\((\S+|.+?)\)\B`),
			State:          Link,
			ShouldContain:  [3]string{"]("},
			CapturingGroup: 1,
		},
		// [](url)
		{
			Pattern:        regexp.MustCompile(`\[\]\((.+?)\)`),
			State:          Link,
			ShouldContain:  [3]string{"[]("},
			CapturingGroup: 1,
		},
		// <email@host> links
		{
			Pattern:        regexp.MustCompile(`<(.+?@.+?)>`),
			State:          Link,
			ShouldContain:  [3]string{"@"},
			CapturingGroup: 1,
		},
		// [text][reference] links
		{
			Pattern:        regexp.MustCompile(`\[(.+?)\]\[.+?\]`),
			State:          Link,
			ShouldContain:  [3]string{"["},
			CapturingGroup: 1,
		},
		// ![alt](url)
		{
			Pattern:        regexp.MustCompile(`!\[(.+?)\]\(.+?\)`),
			State:          Image,
			ShouldContain:  [3]string{"!["},
			CapturingGroup: 1,
		},
		// ![](url)
		{
			Pattern:        regexp.MustCompile(`!\[\]\((.+?)\)`),
			State:          Image,
			ShouldContain:  [3]string{"![]"},
			CapturingGroup: 1,
		},
		// [![alt](imgurl)](linkurl) — an image wrapped in a link
		{
			Pattern:        regexp.MustCompile(`\[!\[(.+?)\]\(.+?\)\]\(.+?\)`),
			State:          Link,
			ShouldContain:  [3]string{"[!["},
			CapturingGroup: 1,
		},
		// [![](imgurl)](linkurl)
		{
			Pattern:        regexp.MustCompile(`\[!\[\]\(.+?\)\]\((.+?)\)`),
			State:          Link,
			ShouldContain:  [3]string{"[![("},
			CapturingGroup: 1,
		},
		// trailing whitespace. Grounded on the reference implementation,
		// whose ShouldContain[0] is " \n" — a single line's text never
		// contains a literal newline, so this fast-reject almost never
		// passes and the rule almost never fires. Preserved faithfully
		// rather than "fixed" — see DESIGN.md.
		{
			Pattern:        regexp.MustCompile(`( +)$`),
			State:          TrailingSpace,
			ShouldContain:  [3]string{" \n"},
			CapturingGroup: 1,
		},
		// `inline code`
		{
			Pattern:        regexp.MustCompile("`(.+?)`"),
			State:          InlineCodeBlock,
			ShouldContain:  [3]string{"`"},
			CapturingGroup: 1,
		},
		// indented code blocks. Grounded on the reference implementation,
		// whose ShouldContain[0] is "\t" only — a 4-space-indented block
		// with no literal tab is fast-rejected and never highlighted.
		// Preserved faithfully rather than "fixed" — see DESIGN.md.
		{
			Pattern:                    regexp.MustCompile("^((\t)|( {4,})).+$"),
			State:                      CodeBlock,
			ShouldContain:              [3]string{"\t"},
			DisableIfCurrentStateIsSet: true,
		},
		// inline <!-- html comments -->
		{
			Pattern:        regexp.MustCompile(`<!\-\-(.+?)\-\->`),
			State:          Comment,
			ShouldContain:  [3]string{"<!--"},
			CapturingGroup: 1,
		},
		// Rmarkdown comments written as an unused reference link:
		// [comment]: # (text). The pattern has no capturing group, so
		// CapturingGroup=1 names a group that doesn't exist in the match —
		// inherited from the rule above rather than reset, exactly as in
		// the reference implementation. The engine skips painting when a
		// requested group isn't present rather than panicking, so no
		// Comment span is produced; MaskedGroup is 0, so the whole match
		// is still painted MaskedSyntax.
		{
			Pattern:        regexp.MustCompile(`^\[.+?\]: # \(.+?\)$`),
			State:          Comment,
			ShouldContain:  [3]string{"]: # ("},
			CapturingGroup: 1,
		},
		// | table | rows |
		{
			Pattern:       regexp.MustCompile(`^\|.+?\|$`),
			State:         Table,
			ShouldContain: [3]string{"|"},
		},
	}
}
