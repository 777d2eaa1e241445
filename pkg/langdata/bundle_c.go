package langdata

func init() {
	register(200, Bundle{ // CodeCpp
		Types: bucket("int", "char", "float", "double", "void", "bool", "long",
			"short", "unsigned", "signed", "size_t", "auto", "class", "struct",
			"enum", "union", "template", "typename", "namespace"),
		Keywords: bucket("if", "else", "for", "while", "do", "switch", "case",
			"default", "break", "continue", "return", "goto", "public",
			"private", "protected", "virtual", "override", "const", "static",
			"inline", "friend", "new", "delete", "this", "try", "catch",
			"throw", "using", "typedef", "sizeof", "constexpr", "noexcept"),
		Builtins: bucket("printf", "scanf", "malloc", "free", "memcpy", "strlen",
			"std", "cout", "cin", "endl", "vector", "string", "map", "nullptr"),
		Literals: bucket("true", "false", "NULL", "nullptr"),
		Others:   bucket("include", "define", "ifdef", "ifndef", "endif", "pragma"),
	})

	register(204, Bundle{ // CodeC
		Types: bucket("int", "char", "float", "double", "void", "long", "short",
			"unsigned", "signed", "size_t", "struct", "union", "enum"),
		Keywords: bucket("if", "else", "for", "while", "do", "switch", "case",
			"default", "break", "continue", "return", "goto", "const",
			"static", "volatile", "extern", "sizeof", "typedef"),
		Builtins: bucket("printf", "scanf", "malloc", "free", "calloc", "realloc",
			"memcpy", "memset", "strlen", "strcpy", "strcmp"),
		Literals: bucket("NULL"),
		Others:   bucket("include", "define", "ifdef", "ifndef", "endif", "pragma"),
	})
}
