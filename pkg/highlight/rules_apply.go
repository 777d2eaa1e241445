package highlight

// applyRuleTable runs every rule in rules against text, in order,
// appending style spans to spans and returning the (possibly updated)
// terminal state. Grounded on the reference's highlightAdditionalRules.
func applyRuleTable(rules []Rule, text string, spans []Span, state State) ([]Span, State) {
	for i := range rules {
		rule := &rules[i]

		if rule.DisableIfCurrentStateIsSet && state != NoState {
			continue
		}
		if !rule.fastReject(text) {
			continue
		}

		matches := rule.Pattern.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		if rule.UseStateAsCurrentBlockState {
			state = rule.State
		}

		// Inside a heading, the masked-dimming step is skipped for every
		// rule except InlineCodeBlock, matching the reference (whose
		// would-be masked-heading call is dead/commented out).
		skipMasked := state.IsHeading() && rule.State != InlineCodeBlock

		for _, m := range matches {
			if rule.CapturingGroup == 0 {
				start, end := m[0], m[1]
				if start < 0 {
					continue
				}
				spans = append(spans, Span{Start: start, End: end, Style: rule.State})
				continue
			}

			if !skipMasked {
				if ms, me, ok := groupRange(m, rule.MaskedGroup); ok {
					spans = append(spans, Span{Start: ms, End: me, Style: MaskedSyntax})
				}
			}
			if rs, re, ok := groupRange(m, rule.CapturingGroup); ok {
				spans = append(spans, Span{Start: rs, End: re, Style: rule.State})
			}
		}
	}
	return spans, state
}

// groupRange returns the [start, end) byte range of capture group g within
// match (as produced by FindAllStringSubmatchIndex), or ok=false if g has
// no corresponding group in the pattern, or the group didn't participate
// in this particular match. This is what lets a rule whose CapturingGroup
// was inherited from an earlier rule's descriptor — but doesn't correspond
// to an actual group in its own pattern — degrade to "paint nothing" for
// that group instead of panicking on an out-of-range index.
func groupRange(match []int, g int) (start, end int, ok bool) {
	idx := 2 * g
	if idx < 0 || idx+1 >= len(match) {
		return 0, 0, false
	}
	if match[idx] < 0 {
		return 0, 0, false
	}
	return match[idx], match[idx+1], true
}
