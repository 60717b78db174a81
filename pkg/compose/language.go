package compose

import "github.com/goliatone/go-tkgen/pkg/codewriter"

// Bridge names identify the command space a Call is written against.
const (
	// BridgeTk addresses Tcl/Tk command words.
	BridgeTk = "tk"
	// BridgeDOM addresses the browser document object model.
	BridgeDOM = "dom"
)

// Language renders host-language constructs. Implementations must be safe
// for concurrent use; all per-call state lives in the Writer.
type Language interface {
	Name() string
	EmitProcedure(w *codewriter.Writer, name string, params []string, body string) error
	EmitVariable(w *codewriter.Writer, name string, value Arg) error
	EscapeString(s string) string
	QuoteString(s string) string
	EmitComment(w *codewriter.Writer, text string) error
	EmitCall(w *codewriter.Writer, call Call) error
}

// Bridger is implemented by languages that can reach toolkit command spaces.
type Bridger interface {
	SupportsBridge(name string) bool
	OpenBridge(w *codewriter.Writer, name string) error
	CloseBridge(w *codewriter.Writer, name string) error
	CallbackRef(bridge, proc string) Arg
}

// Aliased is implemented by languages whose handler implementations may be
// keyed under more than one name ("py" for python).
type Aliased interface {
	Aliases() []string
}

// Identifiers is implemented by languages with reserved words. Identifier
// receives an ASCII identifier and returns a form the language accepts.
type Identifiers interface {
	Identifier(name string) string
}

// Identifier maps name through the language's Identifiers capability.
// Languages without one keep name unchanged.
func Identifier(lang Language, name string) string {
	if ids, ok := lang.(Identifiers); ok {
		return ids.Identifier(name)
	}
	return name
}

// Call is a single statement expressed against a bridge. For command-word
// bridges the receiver becomes the first word; for object bridges it is the
// object the method is invoked on.
type Call struct {
	Bridge   string
	Receiver string
	Name     string
	Args     []Arg
}

// ArgKind selects how a language renders an Arg.
type ArgKind int

const (
	// ArgLiteral is a string value the language quotes.
	ArgLiteral ArgKind = iota
	// ArgWord is a toolkit token (option name, widget path, event
	// sequence). Command-word bridges hosted in another language quote it.
	ArgWord
	// ArgExpr is host-language source emitted verbatim.
	ArgExpr
	// ArgCall is a nested call whose result is the argument.
	ArgCall
)

// Arg is one argument of a Call.
type Arg struct {
	Kind ArgKind
	Text string
	Call *Call
}

// Lit returns a quoted string argument.
func Lit(s string) Arg { return Arg{Kind: ArgLiteral, Text: s} }

// Word returns a toolkit token argument.
func Word(s string) Arg { return Arg{Kind: ArgWord, Text: s} }

// Expr returns a verbatim host-language argument.
func Expr(s string) Arg { return Arg{Kind: ArgExpr, Text: s} }

// Nested returns an argument evaluated from call.
func Nested(call Call) Arg { return Arg{Kind: ArgCall, Call: &call} }

// Words turns each token into a Word argument.
func Words(tokens ...string) []Arg {
	out := make([]Arg, len(tokens))
	for i, token := range tokens {
		out[i] = Word(token)
	}
	return out
}
