package javascript

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/toolkits/dom"
)

func TestQuoteString(t *testing.T) {
	got := New().QuoteString("it's \"x\"\n</script>")
	want := `"it\'s \"x\"\n<\/script>"`
	if got != want {
		t.Fatalf("QuoteString = %s, want %s", got, want)
	}
}

func TestEmitStatements(t *testing.T) {
	lang := New()
	w := codewriter.New(lang.IndentUnit())

	steps := []func() error{
		func() error { return lang.EmitComment(w, "Widgets") },
		func() error {
			return lang.EmitVariable(w, "w0", compose.Nested(compose.Call{
				Bridge: compose.BridgeDOM, Receiver: "document", Name: "createElement",
				Args: []compose.Arg{compose.Lit("button")},
			}))
		},
		func() error {
			return lang.EmitCall(w, compose.Call{
				Bridge: compose.BridgeDOM, Receiver: "w0", Name: "addEventListener",
				Args: []compose.Arg{compose.Lit("click"), lang.CallbackRef(compose.BridgeDOM, "save")},
			})
		},
		func() error { return lang.EmitProcedure(w, "save", []string{"event"}, "console.log(event);") },
		func() error { return lang.EmitProcedure(w, "noop", []string{"event"}, "") },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	want := "// Widgets\n" +
		"const w0 = document.createElement(\"button\");\n" +
		"w0.addEventListener(\"click\", save);\n" +
		"function save(event) {\n  console.log(event);\n}\n\n" +
		"function noop(event) {}\n\n"
	if got := w.String(); got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestTkBridgeUnsupported(t *testing.T) {
	lang := New()
	if lang.SupportsBridge(compose.BridgeTk) {
		t.Fatalf("javascript must not claim the tk bridge")
	}
	err := lang.EmitCall(codewriter.New(""), compose.Call{Bridge: compose.BridgeTk, Name: "pack"})
	if !errors.Is(err, compose.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := lang.OpenBridge(codewriter.New(""), compose.BridgeTk); !errors.Is(err, compose.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported from OpenBridge, got %v", err)
	}
}

func TestIdentifier(t *testing.T) {
	testCases := map[string]string{
		"delete":   "delete_",
		"function": "function_",
		"import":   "import_",
		"window":   "window_",
		"save":     "save",
	}
	lang := New()
	for in, want := range testCases {
		if got := lang.Identifier(in); got != want {
			t.Fatalf("Identifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmitReservedNamesWithDOM(t *testing.T) {
	reg := compose.NewRegistry()
	reg.MustRegisterLanguage(Name, New())
	reg.MustRegisterToolkit(dom.Name, dom.New())
	emitter, err := reg.Compose(Name, dom.Name, compose.Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	doc := ir.Document{
		Format:  ir.Format,
		Version: ir.Version,
		Widgets: []ir.Widget{{
			ID: "delete", Kind: "button",
			Events: []ir.EventRef{{Event: "click", HandlerID: "h0"}},
		}},
		Handlers: []ir.Handler{{ID: "h0", Name: "import", WidgetID: "delete"}},
	}
	result, err := emitter.Emit(doc)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, line := range []string{
		`const delete_ = document.createElement("button");`,
		"root.append(delete_);",
		"function import_(event) {",
		`delete_.addEventListener("click", import_);`,
	} {
		if !strings.Contains(result.Source, line+"\n") {
			t.Fatalf("missing %q in output:\n%s", line, result.Source)
		}
	}
}
