package langdata

func init() {
	register(220, Bundle{ // CodeGo
		Types: bucket("int", "int8", "int16", "int32", "int64", "uint",
			"uint8", "uint16", "uint32", "uint64", "float32", "float64",
			"bool", "string", "byte", "rune", "error", "interface", "struct",
			"map", "chan", "any"),
		Keywords: bucket("package", "import", "var", "const", "type", "func",
			"return", "if", "else", "for", "range", "switch", "case",
			"default", "break", "continue", "fallthrough", "go", "defer",
			"select", "chan", "goto", "struct", "interface", "map"),
		Builtins: bucket("make", "new", "len", "cap", "append", "copy",
			"delete", "panic", "recover", "print", "println", "close"),
		Literals: bucket("true", "false", "nil", "iota"),
	})

	register(214, Bundle{ // CodeRust
		Types: bucket("i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64",
			"f32", "f64", "bool", "char", "str", "String", "Vec", "Option",
			"Result", "Box"),
		Keywords: bucket("fn", "let", "mut", "const", "static", "if", "else",
			"match", "for", "while", "loop", "break", "continue", "return",
			"struct", "enum", "trait", "impl", "pub", "use", "mod", "crate",
			"self", "Self", "as", "where", "async", "await", "unsafe",
			"move", "ref", "dyn"),
		Builtins: bucket("println", "print", "vec", "format", "panic",
			"assert", "Some", "None", "Ok", "Err"),
		Literals: bucket("true", "false"),
	})

	register(208, Bundle{ // CodePHP
		Types: bucket("int", "float", "string", "bool", "array", "object",
			"mixed", "void", "callable", "iterable"),
		Keywords: bucket("function", "return", "if", "elseif", "else", "for",
			"foreach", "while", "do", "switch", "case", "default", "break",
			"continue", "class", "interface", "trait", "extends", "implements",
			"public", "private", "protected", "static", "abstract", "final",
			"new", "use", "namespace", "try", "catch", "finally", "throw",
			"echo", "require", "require_once", "include", "include_once"),
		Builtins: bucket("array_map", "array_filter", "count", "isset",
			"empty", "print_r", "var_dump", "strlen", "implode", "explode"),
		Literals: bucket("true", "false", "null", "TRUE", "FALSE", "NULL"),
	})

	register(210, Bundle{ // CodeQML
		Types: bucket("int", "real", "bool", "string", "var", "list", "url",
			"color", "date", "point", "size", "rect"),
		Keywords: bucket("import", "property", "signal", "function", "if",
			"else", "for", "while", "return", "readonly", "default", "alias"),
		Builtins: bucket("Item", "Rectangle", "Text", "Image", "Column",
			"Row", "Component", "ListView", "MouseArea"),
		Literals: bucket("true", "false", "undefined"),
	})

	register(222, Bundle{ // CodeV
		Types: bucket("int", "i8", "i16", "i64", "u8", "u16", "u32", "u64",
			"f32", "f64", "bool", "string", "byte", "rune", "map"),
		Keywords: bucket("module", "import", "fn", "if", "else", "for", "match",
			"return", "struct", "interface", "enum", "mut", "const", "pub",
			"defer", "go", "select"),
		Builtins: bucket("println", "print", "eprintln", "panic"),
		Literals: bucket("true", "false", "none"),
	})

	register(224, Bundle{ // CodeSQL
		Keywords: bucket("SELECT", "FROM", "WHERE", "INSERT", "UPDATE",
			"DELETE", "CREATE", "TABLE", "ALTER", "DROP", "JOIN", "INNER",
			"LEFT", "RIGHT", "OUTER", "ON", "GROUP", "BY", "ORDER", "HAVING",
			"LIMIT", "AND", "OR", "NOT", "NULL", "IS", "IN", "AS", "DISTINCT",
			"INTO", "VALUES", "SET", "UNION", "select", "from", "where",
			"insert", "update", "delete", "join", "group", "order"),
		Types:    bucket("INT", "VARCHAR", "TEXT", "BOOLEAN", "DATE", "FLOAT"),
		Literals: bucket("NULL", "TRUE", "FALSE", "null", "true", "false"),
	})

	register(238, Bundle{ // CodeTaggerScript
		// TaggerScript has its own dedicated scanner (scanner_tagger.go).
	})

	register(240, Bundle{ // CodeVex
		Types: bucket("int", "float", "vector", "vector2", "vector4",
			"matrix", "matrix3", "string"),
		Keywords: bucket("if", "else", "for", "foreach", "while", "return",
			"function", "struct"),
		Builtins: bucket("addpoint", "setpointattrib", "chv", "chf", "chi",
			"chs", "point", "prim"),
		Literals: bucket("PI"),
	})
}
