package python

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
)

// Name is the registry name of the language.
const Name = "python"

// RootVar holds the tkinter root in tk bridge output.
const RootVar = "root"

// Language writes Python 3. Tk is reached through tkinter's Tcl interpreter
// and the DOM through Pyodide's js module.
type Language struct{}

// New returns the Python language module.
func New() Language { return Language{} }

var (
	_ compose.Language    = Language{}
	_ compose.Bridger     = Language{}
	_ compose.Aliased     = Language{}
	_ compose.Identifiers = Language{}
)

// Name implements compose.Language.
func (Language) Name() string { return Name }

// Aliases implements compose.Aliased.
func (Language) Aliases() []string { return []string{"py"} }

// EscapeString escapes s for a Python string literal.
func (Language) EscapeString(s string) string {
	return escaper.Replace(s)
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// QuoteString returns a double-quoted literal.
func (l Language) QuoteString(s string) string {
	return `"` + l.EscapeString(s) + `"`
}

// EmitComment implements compose.Language.
func (Language) EmitComment(w *codewriter.Writer, text string) error {
	for _, line := range strings.Split(text, "\n") {
		w.Line(strings.TrimRight("# "+line, " "))
	}
	return nil
}

// EmitVariable writes "name = value".
func (l Language) EmitVariable(w *codewriter.Writer, name string, value compose.Arg) error {
	rendered, err := l.renderArg("", value)
	if err != nil {
		return err
	}
	w.Linef("%s = %s", name, rendered)
	return nil
}

// EmitProcedure writes a function whose parameters default to None so
// toolkits may call it without arguments.
func (Language) EmitProcedure(w *codewriter.Writer, name string, params []string, body string) error {
	formal := make([]string, len(params))
	for i, param := range params {
		formal[i] = param + "=None"
	}
	w.Linef("def %s(%s):", name, strings.Join(formal, ", "))
	w.Indent()
	body = strings.Trim(body, "\n")
	if strings.TrimSpace(body) == "" {
		body = "pass"
	}
	w.Line(body)
	w.Dedent()
	w.Blank()
	return nil
}

// EmitCall writes the call as an expression statement.
func (l Language) EmitCall(w *codewriter.Writer, call compose.Call) error {
	rendered, err := l.renderCall(call)
	if err != nil {
		return err
	}
	w.Line(rendered)
	return nil
}

func (l Language) renderCall(call compose.Call) (string, error) {
	switch call.Bridge {
	case compose.BridgeTk:
		var words []compose.Arg
		if call.Receiver != "" {
			words = append(words, compose.Word(call.Receiver))
		}
		if call.Name != "" {
			words = append(words, compose.Word(call.Name))
		}
		if len(words) == 0 {
			return "", fmt.Errorf("python: tk call has no command word")
		}
		args, err := l.renderArgs(call.Bridge, append(words, call.Args...))
		if err != nil {
			return "", err
		}
		return RootVar + ".tk.call(" + args + ")", nil
	default:
		if call.Name == "" {
			return "", fmt.Errorf("python: call has no name")
		}
		args, err := l.renderArgs(call.Bridge, call.Args)
		if err != nil {
			return "", err
		}
		target := call.Name
		if call.Receiver != "" {
			target = call.Receiver + "." + call.Name
		}
		return target + "(" + args + ")", nil
	}
}

func (l Language) renderArgs(bridge string, args []compose.Arg) (string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		rendered, err := l.renderArg(bridge, arg)
		if err != nil {
			return "", err
		}
		out = append(out, rendered)
	}
	return strings.Join(out, ", "), nil
}

// renderArg quotes toolkit words in the tk bridge, where every Tcl word is
// passed as a Python string.
func (l Language) renderArg(bridge string, arg compose.Arg) (string, error) {
	switch arg.Kind {
	case compose.ArgLiteral:
		return l.QuoteString(arg.Text), nil
	case compose.ArgWord:
		if bridge == compose.BridgeTk {
			return l.QuoteString(arg.Text), nil
		}
		return arg.Text, nil
	case compose.ArgExpr:
		return arg.Text, nil
	case compose.ArgCall:
		if arg.Call == nil {
			return "", fmt.Errorf("python: nested call is nil")
		}
		return l.renderCall(*arg.Call)
	default:
		return "", fmt.Errorf("python: unknown argument kind %d", arg.Kind)
	}
}

// SupportsBridge implements compose.Bridger.
func (Language) SupportsBridge(name string) bool {
	return name == compose.BridgeTk || name == compose.BridgeDOM
}

// OpenBridge writes the imports and, for tk, creates the root window.
func (Language) OpenBridge(w *codewriter.Writer, name string) error {
	switch name {
	case compose.BridgeTk:
		w.Line("import tkinter")
		w.Blank()
		w.Linef("%s = tkinter.Tk()", RootVar)
	case compose.BridgeDOM:
		w.Line("from js import document")
	default:
		return compose.Unsupported("python bridge %s", name)
	}
	return nil
}

// CloseBridge enters the tkinter main loop for the tk bridge.
func (Language) CloseBridge(w *codewriter.Writer, name string) error {
	switch name {
	case compose.BridgeTk:
		w.Linef("%s.mainloop()", RootVar)
	case compose.BridgeDOM:
	default:
		return compose.Unsupported("python bridge %s", name)
	}
	return nil
}

// CallbackRef registers the function as a Tcl command for tk and passes it
// through for the DOM.
func (Language) CallbackRef(bridge, proc string) compose.Arg {
	if bridge == compose.BridgeTk {
		return compose.Expr(RootVar + ".register(" + proc + ")")
	}
	return compose.Expr(proc)
}
