package langdata

func init() {
	register(216, Bundle{ // CodeJava
		Types: bucket("int", "char", "float", "double", "void", "boolean",
			"long", "short", "byte", "String", "Object", "class", "interface",
			"enum"),
		Keywords: bucket("if", "else", "for", "while", "do", "switch", "case",
			"default", "break", "continue", "return", "public", "private",
			"protected", "static", "final", "abstract", "synchronized",
			"volatile", "transient", "native", "new", "this", "super", "try",
			"catch", "finally", "throw", "throws", "implements", "extends",
			"package", "import", "instanceof"),
		Builtins: bucket("System", "List", "Map", "Set", "ArrayList",
			"HashMap", "HashSet", "Optional", "Stream", "Override"),
		Literals: bucket("true", "false", "null"),
	})

	register(218, Bundle{ // CodeCSharp
		Types: bucket("int", "char", "float", "double", "void", "bool", "long",
			"short", "byte", "string", "object", "var", "class", "struct",
			"interface", "enum", "decimal"),
		Keywords: bucket("if", "else", "for", "foreach", "while", "do",
			"switch", "case", "default", "break", "continue", "return",
			"public", "private", "protected", "internal", "static", "sealed",
			"abstract", "virtual", "override", "readonly", "const", "new",
			"this", "base", "try", "catch", "finally", "throw", "using",
			"namespace", "async", "await", "yield", "get", "set"),
		Builtins: bucket("Console", "List", "Dictionary", "String", "Task",
			"Linq", "Nullable"),
		Literals: bucket("true", "false", "null"),
	})
}
