package highlight

import "strings"

// fenceResult carries what the fence/comment/frontmatter handlers decided
// about a line, so HighlightBlock knows whether to run the Markdown inline
// engine at all.
type fenceResult struct {
	spans      []Span
	state      State
	handled    bool // true if this line's styling is complete; skip inline rules
	runScanner bool // true if the language's code scanner should run on this line
}

// applyCodeBlock implements the fenced-code-block state machine: opening a
// block (resolving the language tag via LanguageForTag), closing one, or
// carrying a language state forward and running the code scanner on a
// non-fence line.
func applyCodeBlock(text string, previous State) fenceResult {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "```") {
		if previous.IsCodeBlockState() {
			return fenceResult{
				spans:   []Span{{Start: 0, End: len(text), Style: MaskedSyntax}},
				state:   CodeBlockEnd,
				handled: true,
			}
		}
		tag := strings.TrimPrefix(trimmed, "```")
		lang := LanguageForTag(tag)
		return fenceResult{
			spans:   []Span{{Start: 0, End: len(text), Style: MaskedSyntax}},
			state:   lang,
			handled: true,
		}
	}

	if previous.IsCodeBlockState() {
		return fenceResult{
			state:      previous,
			handled:    true,
			runScanner: true,
		}
	}

	return fenceResult{}
}

// applyFrontmatter implements the YAML-frontmatter block toggle. armed is
// true only on the call for the document's line 0, and only when that line
// is exactly "---" (see Document.FrontmatterArmed) — a single line has no
// visibility into its own index, so the host must restrict armed to that
// one call; continuation/closing of an already-open block is decided from
// previous alone, never from armed, so a later "---" elsewhere in the
// document (a horizontal rule) is never mistaken for a second frontmatter
// block opening.
func applyFrontmatter(text string, previous State, armed bool) fenceResult {
	trimmed := strings.TrimSpace(text)

	if previous == FrontmatterBlock {
		if trimmed == "---" {
			return fenceResult{
				spans:   []Span{{Start: 0, End: len(text), Style: MaskedSyntax}},
				state:   FrontmatterBlockEnd,
				handled: true,
			}
		}
		return fenceResult{state: FrontmatterBlock, handled: true}
	}

	if armed && trimmed == "---" {
		return fenceResult{
			spans:   []Span{{Start: 0, End: len(text), Style: MaskedSyntax}},
			state:   FrontmatterBlock,
			handled: true,
		}
	}

	return fenceResult{}
}

// applyCommentBlock implements the multi-line <!-- --> HTML comment block.
// A self-closing comment on a single line is excluded here and left to the
// inline Comment post-rule.
func applyCommentBlock(text string, previous State) fenceResult {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "<!--") && strings.Contains(trimmed, "-->") {
		return fenceResult{}
	}

	opening := strings.HasPrefix(trimmed, "<!--")
	continuing := previous == Comment

	if !opening && !continuing {
		return fenceResult{}
	}

	if strings.HasSuffix(trimmed, "-->") {
		return fenceResult{
			spans:   []Span{{Start: 0, End: len(text), Style: Comment}},
			state:   NoState,
			handled: true,
		}
	}
	return fenceResult{
		spans:   []Span{{Start: 0, End: len(text), Style: Comment}},
		state:   Comment,
		handled: true,
	}
}
