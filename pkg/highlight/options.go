package highlight

// Options is a bitset of highlighting behaviors a host can toggle.
type Options int

const (
	// FullyHighlightedBlockQuote styles an entire block-quote line instead
	// of just the leading ">" markers.
	FullyHighlightedBlockQuote Options = 1 << iota
)
