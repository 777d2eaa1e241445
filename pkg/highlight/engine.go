package highlight

// Highlighter is the synchronous, reusable entry point for highlighting
// one line at a time. A Highlighter holds no per-line state of its own —
// only its compiled rule tables and the current Theme/Options — so a
// single instance can be shared across any number of open documents; the
// per-document state (frontmatter arming, dirty queue) lives on Document.
type Highlighter struct {
	theme     Theme
	opts      Options
	preRules  []Rule
	postRules []Rule
}

// NewHighlighter builds a Highlighter with the default theme and no
// options set.
func NewHighlighter() *Highlighter {
	h := &Highlighter{theme: DefaultTheme()}
	h.rebuildRules()
	return h
}

func (h *Highlighter) rebuildRules() {
	h.preRules = buildPreRules(h.opts)
	h.postRules = buildPostRules()
}

// SetHighlightingOptions replaces the option flags and immediately rebuilds
// the rule tables that depend on them (currently just the block-quote
// pattern). Unlike the reference implementation, where calling the
// equivalent setter after construction silently had no effect because the
// rule table was never rebuilt, this takes effect on the very next
// HighlightBlock call — matching what spec.md §6 describes the operation
// as doing.
func (h *Highlighter) SetHighlightingOptions(opts Options) {
	h.opts = opts
	h.rebuildRules()
}

// SetTextFormats replaces the whole theme.
func (h *Highlighter) SetTextFormats(theme Theme) {
	h.theme = theme
}

// SetTextFormat replaces a single style's theme entry.
func (h *Highlighter) SetTextFormat(state State, format StyleFormat) {
	if h.theme == nil {
		h.theme = DefaultTheme()
	}
	h.theme[state] = format
}

// Theme returns the highlighter's current theme.
func (h *Highlighter) Theme() Theme {
	return h.theme
}

// HighlightBlock is the single per-line operation: given this line's text,
// the previous line's terminal state, the previous line's raw text (for
// setext heading lookbehind), the next line's raw text (for the one-line
// setext lookahead), and the owning Document (for frontmatter arming and
// the dirty-queue requeue), it returns this line's style spans and
// terminal state.
//
// Control flow: block state is checked first (frontmatter, fenced code,
// HTML comment) and short-circuits the Markdown inline engine entirely
// when the line is inside one of those blocks — a deliberate, documented
// deviation from the reference implementation's "always run the Markdown
// rules, then let the block handlers paint over them" order. See
// DESIGN.md.
func (h *Highlighter) HighlightBlock(text, previousText string, previous State, nextText string, doc *Document) LineResult {
	armed := doc != nil && doc.FrontmatterArmed

	if fm := applyFrontmatter(text, previous, armed); fm.handled {
		return LineResult{Spans: fm.spans, State: fm.state}
	}

	if cb := applyCodeBlock(text, previous); cb.handled {
		spans := cb.spans
		state := cb.state
		if cb.runScanner {
			scanned, endState := h.runLanguageScanner(text, previous)
			spans = scanned
			state = endState
		}
		return LineResult{Spans: spans, State: state}
	}

	if cm := applyCommentBlock(text, previous); cm.handled {
		return LineResult{Spans: cm.spans, State: cm.state}
	}

	return h.highlightMarkdown(text, previousText, previous, nextText)
}

// runLanguageScanner dispatches to the generic tokenizer or one of the
// hand-written special-language scanners, then runs CSS/YAML post-passes
// where applicable — mirroring the reference's highlightSyntax, which
// lets XML/INI/TaggerScript bypass the generic loop entirely and runs
// cssHighlighter/ymlHighlighter as additional passes after it for CSS/YAML.
func (h *Highlighter) runLanguageScanner(text string, previous State) ([]Span, State) {
	lang := previous.LanguageState()

	switch lang {
	case CodeXML:
		return append([]Span{{Start: 0, End: len(text), Style: CodeBlock}}, xmlHighlighter(text)...), previous
	case CodeINI:
		return append([]Span{{Start: 0, End: len(text), Style: CodeBlock}}, iniHighlighter(text)...), previous
	case CodeTaggerScript:
		return append([]Span{{Start: 0, End: len(text), Style: CodeBlock}}, taggerScriptHighlighter(text)...), previous
	}

	spans, state := scanGenericCode(text, previous)

	switch lang {
	case CodeCSS:
		spans = append(spans, cssHighlighter(text)...)
	case CodeYAML:
		spans = append(spans, ymlHighlighter(text)...)
	}
	return spans, state
}

// highlightMarkdown implements spec.md §4.E's inline engine: preRules,
// then heading detection, then postRules.
func (h *Highlighter) highlightMarkdown(text, previousText string, previous State, nextText string) LineResult {
	var spans []Span
	state := NoState

	spans, state = applyRuleTable(h.preRules, text, spans, state)

	result := LineResult{}

	hl := detectHeadline(text, previousText, previous, nextText)
	if hl.matched {
		spans = append(spans, hl.spans...)
		state = hl.state
		result.PreviousLineDirty = hl.previousLineDirty
		result.PreviousLineState = hl.previousLineState
	}

	spans, state = applyRuleTable(h.postRules, text, spans, state)

	result.Spans = dedupeSpans(spans)
	result.State = state
	return result
}

func dedupeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	seen := make(map[Span]bool, len(spans))
	out := spans[:0]
	for _, s := range spans {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
