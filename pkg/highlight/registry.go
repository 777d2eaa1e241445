package highlight

import "strings"

// langTags maps a fenced code block's info-string (lowercased, first word
// only) to the per-language state its lines should carry.
//
// Corrects two confirmed transcription errors in the reference
// implementation's equivalent table (`go` -> CodeCSharp, `javascript` ->
// CodeJava) per spec.md §9's instruction to decide rather than silently
// preserve or guess — see DESIGN.md.
var langTags = map[string]State{
	"c":            CodeC,
	"cpp":          CodeCpp,
	"cxx":          CodeCpp,
	"c++":          CodeCpp,
	"js":           CodeJs,
	"javascript":   CodeJs,
	"bash":         CodeBash,
	"sh":           CodeBash,
	"shell":        CodeBash,
	"php":          CodePHP,
	"qml":          CodeQML,
	"py":           CodePython,
	"python":       CodePython,
	"rust":         CodeRust,
	"rs":           CodeRust,
	"java":         CodeJava,
	"c#":           CodeCSharp,
	"csharp":       CodeCSharp,
	"cs":           CodeCSharp,
	"go":           CodeGo,
	"golang":       CodeGo,
	"v":            CodeV,
	"sql":          CodeSQL,
	"json":         CodeJSON,
	"xml":          CodeXML,
	"html":         CodeXML,
	"css":          CodeCSS,
	"ts":           CodeTypeScript,
	"typescript":   CodeTypeScript,
	"yml":          CodeYAML,
	"yaml":         CodeYAML,
	"ini":          CodeINI,
	"taggerscript": CodeTaggerScript,
	"vex":          CodeVex,
}

// LanguageForTag resolves a fenced code block's info string to the
// per-language state its lines should carry, or CodeBlock if the tag is
// empty, unrecognized, or below the per-language range.
func LanguageForTag(tag string) State {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return CodeBlock
	}
	if i := strings.IndexAny(tag, " \t"); i >= 0 {
		tag = tag[:i]
	}
	if state, ok := langTags[tag]; ok && state >= CodeCpp {
		return state
	}
	return CodeBlock
}
