// Package langdata holds the per-language keyword/type/builtin/literal
// tables the generic code scanner (pkg/highlight/scanner_generic.go)
// consults. Each language is split into five buckets and, within each
// bucket, grouped by the first byte of the word — the same bucketing shape
// the reference highlighter loads from its own external language-data
// tables, which this package replaces with explicit Go data.
package langdata

// Bundle is one language's keyword data, pre-bucketed by first byte so the
// scanner's word-boundary dispatch never has to do a linear scan of every
// known word in a language.
type Bundle struct {
	Types    map[byte][]string
	Keywords map[byte][]string
	Builtins map[byte][]string
	Literals map[byte][]string
	Others   map[byte][]string
	// LineComment is the single-character line-comment marker for
	// languages that use one consistently (Bash, Python, YAML use '#').
	// 0 means the language has none, or uses a multi-character marker the
	// generic scanner special-cases directly (// for C-family).
	LineComment byte
}

// bucket groups words by their first byte for Bundle construction.
func bucket(words ...string) map[byte][]string {
	m := make(map[byte][]string)
	for _, w := range words {
		if w == "" {
			continue
		}
		m[w[0]] = append(m[w[0]], w)
	}
	return m
}

// Registry maps a per-language State (as defined in pkg/highlight) to its
// Bundle. Keyed by an int rather than highlight.State to avoid an import
// cycle; pkg/highlight's scanner_generic.go converts its State to int when
// looking a bundle up.
var Registry = map[int]Bundle{}

func register(state int, b Bundle) {
	Registry[state] = b
}
