package javascript

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
)

// Name is the registry name of the language.
const Name = "javascript"

// Language writes browser JavaScript against the DOM bridge.
type Language struct{}

// New returns the JavaScript language module.
func New() Language { return Language{} }

var (
	_ compose.Language         = Language{}
	_ compose.Bridger          = Language{}
	_ compose.Aliased          = Language{}
	_ compose.IndentPreference = Language{}
	_ compose.Identifiers      = Language{}
)

// Name implements compose.Language.
func (Language) Name() string { return Name }

// Aliases implements compose.Aliased.
func (Language) Aliases() []string { return []string{"js"} }

// IndentUnit implements compose.IndentPreference.
func (Language) IndentUnit() string { return "  " }

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"</", `<\/`,
)

// EscapeString escapes s for a JavaScript string literal. "</" is broken up
// so output can be inlined in a script element.
func (Language) EscapeString(s string) string {
	return escaper.Replace(s)
}

// QuoteString returns a double-quoted literal.
func (l Language) QuoteString(s string) string {
	return `"` + l.EscapeString(s) + `"`
}

// EmitComment implements compose.Language.
func (Language) EmitComment(w *codewriter.Writer, text string) error {
	for _, line := range strings.Split(text, "\n") {
		w.Line(strings.TrimRight("// "+line, " "))
	}
	return nil
}

// EmitVariable writes a const declaration.
func (l Language) EmitVariable(w *codewriter.Writer, name string, value compose.Arg) error {
	rendered, err := l.renderArg(value)
	if err != nil {
		return err
	}
	w.Linef("const %s = %s;", name, rendered)
	return nil
}

// EmitProcedure writes a function declaration.
func (Language) EmitProcedure(w *codewriter.Writer, name string, params []string, body string) error {
	signature := fmt.Sprintf("function %s(%s) {", name, strings.Join(params, ", "))
	body = strings.Trim(body, "\n")
	if strings.TrimSpace(body) == "" {
		w.Line(signature + "}")
		w.Blank()
		return nil
	}
	w.Line(signature)
	w.Indent()
	w.Line(body)
	w.Dedent()
	w.Line("}")
	w.Blank()
	return nil
}

// EmitCall writes the call as a statement.
func (l Language) EmitCall(w *codewriter.Writer, call compose.Call) error {
	rendered, err := l.renderCall(call)
	if err != nil {
		return err
	}
	w.Line(rendered + ";")
	return nil
}

func (l Language) renderCall(call compose.Call) (string, error) {
	if call.Bridge == compose.BridgeTk {
		return "", compose.Unsupported("javascript cannot call into the tk bridge")
	}
	if call.Name == "" {
		return "", fmt.Errorf("javascript: call has no name")
	}
	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		rendered, err := l.renderArg(arg)
		if err != nil {
			return "", err
		}
		args = append(args, rendered)
	}
	target := call.Name
	if call.Receiver != "" {
		target = call.Receiver + "." + call.Name
	}
	return target + "(" + strings.Join(args, ", ") + ")", nil
}

func (l Language) renderArg(arg compose.Arg) (string, error) {
	switch arg.Kind {
	case compose.ArgLiteral:
		return l.QuoteString(arg.Text), nil
	case compose.ArgWord, compose.ArgExpr:
		return arg.Text, nil
	case compose.ArgCall:
		if arg.Call == nil {
			return "", fmt.Errorf("javascript: nested call is nil")
		}
		return l.renderCall(*arg.Call)
	default:
		return "", fmt.Errorf("javascript: unknown argument kind %d", arg.Kind)
	}
}

// SupportsBridge implements compose.Bridger.
func (Language) SupportsBridge(name string) bool {
	return name == compose.BridgeDOM
}

// OpenBridge writes a strict-mode directive; the DOM needs no imports.
func (Language) OpenBridge(w *codewriter.Writer, name string) error {
	if name != compose.BridgeDOM {
		return compose.Unsupported("javascript bridge %s", name)
	}
	w.Line(`"use strict";`)
	return nil
}

// CloseBridge implements compose.Bridger.
func (Language) CloseBridge(_ *codewriter.Writer, name string) error {
	if name != compose.BridgeDOM {
		return compose.Unsupported("javascript bridge %s", name)
	}
	return nil
}

// CallbackRef passes the function itself.
func (Language) CallbackRef(_ string, proc string) compose.Arg {
	return compose.Expr(proc)
}
