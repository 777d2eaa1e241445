package langdata

func init() {
	register(202, Bundle{ // CodeJs
		Keywords: bucket("var", "let", "const", "function", "return", "if",
			"else", "for", "while", "do", "switch", "case", "default", "break",
			"continue", "new", "delete", "typeof", "instanceof", "try", "catch",
			"finally", "throw", "class", "extends", "super", "this", "async",
			"await", "yield", "import", "export", "from", "default"),
		Builtins: bucket("console", "Object", "Array", "String", "Number",
			"Boolean", "Promise", "Map", "Set", "JSON", "Math", "Symbol",
			"document", "window", "fetch", "require", "module", "exports"),
		Literals: bucket("true", "false", "null", "undefined", "NaN", "Infinity"),
		Others:   bucket(),
	})

	register(232, Bundle{ // CodeTypeScript
		Types: bucket("string", "number", "boolean", "any", "unknown", "never",
			"void", "object", "symbol", "bigint"),
		Keywords: bucket("var", "let", "const", "function", "return", "if",
			"else", "for", "while", "do", "switch", "case", "default", "break",
			"continue", "new", "delete", "typeof", "instanceof", "try", "catch",
			"finally", "throw", "class", "extends", "implements", "interface",
			"super", "this", "async", "await", "yield", "import", "export",
			"from", "type", "enum", "namespace", "readonly", "public",
			"private", "protected", "abstract", "as"),
		Builtins: bucket("console", "Object", "Array", "String", "Number",
			"Boolean", "Promise", "Map", "Set", "JSON", "Math", "Record",
			"Partial", "Pick", "Omit"),
		Literals: bucket("true", "false", "null", "undefined", "NaN"),
	})

	register(226, Bundle{ // CodeJSON
		Literals: bucket("true", "false", "null"),
	})

	register(228, Bundle{ // CodeXML
		// XML has its own dedicated scanner (scanner_xml.go); the
		// generic scanner's fall-through bundle stays empty.
	})

	register(230, Bundle{ // CodeCSS
		Types: bucket("px", "em", "rem", "vh", "vw", "deg", "ms", "s", "fr"),
		Keywords: bucket("important", "media", "keyframes", "supports",
			"import", "charset", "font-face"),
		Builtins: bucket("rgb", "rgba", "hsl", "hsla", "url", "calc", "var",
			"linear-gradient", "radial-gradient"),
		Literals: bucket("inherit", "initial", "unset", "none", "auto"),
	})
}
