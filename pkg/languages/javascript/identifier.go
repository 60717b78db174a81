package javascript

// reserved holds the strict-mode reserved words and the globals the dom
// toolkit declares or reads.
var reserved = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "implements": {},
	"import": {}, "in": {}, "instanceof": {}, "interface": {}, "let": {},
	"new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {},
	"void": {}, "while": {}, "with": {}, "yield": {}, "arguments": {},
	"eval": {}, "undefined": {}, "NaN": {}, "Infinity": {},
	"root": {}, "title": {}, "document": {}, "window": {},
}

// Identifier implements compose.Identifiers by appending "_" to reserved
// words.
func (Language) Identifier(name string) string {
	if _, ok := reserved[name]; ok {
		return name + "_"
	}
	return name
}
