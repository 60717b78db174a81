package tcl

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
)

// Name is the registry name of the language.
const Name = "tcl"

// Language writes Tcl. It reaches Tk natively through the tk bridge.
type Language struct{}

// New returns the Tcl language module.
func New() Language { return Language{} }

var (
	_ compose.Language = Language{}
	_ compose.Bridger  = Language{}
)

// Name implements compose.Language.
func (Language) Name() string { return Name }

// EscapeString backslash-escapes the characters Tcl substitutes inside a
// double-quoted word.
func (Language) EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '$', '[', ']', '"', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QuoteString renders s as a single Tcl word: bare when no character is
// special, braced when the braces balance, and double-quoted otherwise.
func (l Language) QuoteString(s string) string {
	switch {
	case s == "":
		return "{}"
	case isBareWord(s):
		return s
	case canBrace(s):
		return "{" + s + "}"
	default:
		return `"` + l.EscapeString(s) + `"`
	}
}

func isBareWord(s string) bool {
	if s == "#" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_-.,:/#%+=@!?*<>", r):
		default:
			return false
		}
	}
	return true
}

// canBrace reports whether s survives verbatim inside braces: balanced, no
// backslashes, and no newline that would read as a command separator.
func canBrace(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '\\', '\n', '\r':
			return false
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// EmitComment implements compose.Language.
func (Language) EmitComment(w *codewriter.Writer, text string) error {
	for _, line := range strings.Split(text, "\n") {
		w.Line(strings.TrimRight("# "+line, " "))
	}
	return nil
}

// EmitVariable writes "set name value".
func (l Language) EmitVariable(w *codewriter.Writer, name string, value compose.Arg) error {
	rendered, err := l.renderArg(value)
	if err != nil {
		return err
	}
	w.Linef("set %s %s", name, rendered)
	return nil
}

// EmitProcedure writes a proc whose parameters default to the empty string,
// so Tk may invoke it without arguments.
func (Language) EmitProcedure(w *codewriter.Writer, name string, params []string, body string) error {
	formal := make([]string, len(params))
	for i, param := range params {
		formal[i] = "{" + param + " {}}"
	}

	body = strings.Trim(body, "\n")
	if strings.TrimSpace(body) == "" {
		w.Linef("proc %s {%s} {}", name, strings.Join(formal, " "))
		return nil
	}
	w.Linef("proc %s {%s} {", name, strings.Join(formal, " "))
	w.Indent()
	w.Line(body)
	w.Dedent()
	w.Line("}")
	return nil
}

// EmitCall writes the call as one command.
func (l Language) EmitCall(w *codewriter.Writer, call compose.Call) error {
	rendered, err := l.renderCall(call)
	if err != nil {
		return err
	}
	w.Line(rendered)
	return nil
}

func (l Language) renderCall(call compose.Call) (string, error) {
	if call.Bridge != "" && call.Bridge != compose.BridgeTk {
		return "", compose.Unsupported("tcl cannot call into the %s bridge", call.Bridge)
	}
	var words []string
	if call.Receiver != "" {
		words = append(words, call.Receiver)
	}
	if call.Name != "" {
		words = append(words, call.Name)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("tcl: call has no command word")
	}
	for _, arg := range call.Args {
		rendered, err := l.renderArg(arg)
		if err != nil {
			return "", err
		}
		words = append(words, rendered)
	}
	return strings.Join(words, " "), nil
}

func (l Language) renderArg(arg compose.Arg) (string, error) {
	switch arg.Kind {
	case compose.ArgLiteral:
		return l.QuoteString(arg.Text), nil
	case compose.ArgWord, compose.ArgExpr:
		return arg.Text, nil
	case compose.ArgCall:
		if arg.Call == nil {
			return "", fmt.Errorf("tcl: nested call is nil")
		}
		rendered, err := l.renderCall(*arg.Call)
		if err != nil {
			return "", err
		}
		return "[" + rendered + "]", nil
	default:
		return "", fmt.Errorf("tcl: unknown argument kind %d", arg.Kind)
	}
}

// SupportsBridge implements compose.Bridger.
func (Language) SupportsBridge(name string) bool {
	return name == compose.BridgeTk
}

// OpenBridge loads Tk.
func (Language) OpenBridge(w *codewriter.Writer, name string) error {
	if name != compose.BridgeTk {
		return compose.Unsupported("tcl bridge %s", name)
	}
	w.Line("package require Tk")
	return nil
}

// CloseBridge writes nothing; wish enters the event loop on its own.
func (Language) CloseBridge(_ *codewriter.Writer, name string) error {
	if name != compose.BridgeTk {
		return compose.Unsupported("tcl bridge %s", name)
	}
	return nil
}

// CallbackRef names the proc directly.
func (Language) CallbackRef(_ string, proc string) compose.Arg {
	return compose.Word(proc)
}
