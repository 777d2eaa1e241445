package langdata

func init() {
	register(206, Bundle{ // CodeBash
		Keywords: bucket("if", "then", "else", "elif", "fi", "for", "while",
			"until", "do", "done", "case", "esac", "function", "return",
			"break", "continue", "local", "export", "readonly", "shift",
			"in", "select", "time"),
		Builtins: bucket("echo", "printf", "read", "cd", "pwd", "exit", "set",
			"unset", "source", "test", "trap", "exec", "eval", "declare"),
		LineComment: '#',
	})

	register(212, Bundle{ // CodePython
		Keywords: bucket("def", "class", "if", "elif", "else", "for", "while",
			"try", "except", "finally", "raise", "with", "as", "import",
			"from", "return", "yield", "break", "continue", "pass", "lambda",
			"global", "nonlocal", "assert", "del", "and", "or", "not", "in",
			"is", "async", "await"),
		Builtins: bucket("print", "len", "range", "open", "str", "int", "float",
			"list", "dict", "set", "tuple", "enumerate", "zip", "map", "filter",
			"isinstance", "super", "self", "__init__"),
		Literals:    bucket("True", "False", "None"),
		LineComment: '#',
	})

	register(234, Bundle{ // CodeYAML
		// YAML has its own dedicated scanner (scanner_yaml.go) for
		// key-before-colon and link underlining; the generic bundle's
		// comment marker is still consulted by the shared line-comment
		// shortcut in scanner_generic.go.
		LineComment: '#',
	})

	register(236, Bundle{ // CodeINI
		// INI has its own dedicated scanner (scanner_ini.go).
	})
}
