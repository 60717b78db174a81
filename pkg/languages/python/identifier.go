package python

// reserved holds the Python keywords plus the module-level names the bridges
// introduce.
var reserved = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
	RootVar: {}, "tkinter": {}, "js": {}, "document": {}, "title": {},
}

// Identifier implements compose.Identifiers by appending "_" to reserved
// words.
func (Language) Identifier(name string) string {
	if _, ok := reserved[name]; ok {
		return name + "_"
	}
	return name
}
