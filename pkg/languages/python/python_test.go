package python

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/toolkits/tk"
)

func TestQuoteString(t *testing.T) {
	got := New().QuoteString("say \"hi\"\n\tit's C:\\tmp\r")
	want := `"say \"hi\"\n\tit\'s C:\\tmp\r"`
	if got != want {
		t.Fatalf("QuoteString = %s, want %s", got, want)
	}
}

func TestEmitCall(t *testing.T) {
	testCases := []struct {
		name string
		call compose.Call
		want string
	}{
		{
			name: "tk command",
			call: compose.Call{
				Bridge: compose.BridgeTk,
				Name:   "button",
				Args:   []compose.Arg{compose.Word(".w0"), compose.Word("-text"), compose.Lit("Go")},
			},
			want: `root.tk.call("button", ".w0", "-text", "Go")`,
		},
		{
			name: "tk widget command with callback",
			call: compose.Call{
				Bridge:   compose.BridgeTk,
				Receiver: ".w0",
				Name:     "configure",
				Args:     []compose.Arg{compose.Word("-command"), New().CallbackRef(compose.BridgeTk, "save")},
			},
			want: `root.tk.call(".w0", "configure", "-command", root.register(save))`,
		},
		{
			name: "dom method",
			call: compose.Call{
				Bridge:   compose.BridgeDOM,
				Receiver: "w0.style",
				Name:     "setProperty",
				Args:     []compose.Arg{compose.Lit("color"), compose.Lit("#fff")},
			},
			want: `w0.style.setProperty("color", "#fff")`,
		},
		{
			name: "nested tk call",
			call: compose.Call{
				Bridge: compose.BridgeTk,
				Name:   "wm",
				Args: []compose.Arg{compose.Word("iconphoto"), compose.Word("."), compose.Nested(compose.Call{
					Bridge: compose.BridgeTk,
					Name:   "image",
					Args:   compose.Words("create", "photo"),
				})},
			},
			want: `root.tk.call("wm", "iconphoto", ".", root.tk.call("image", "create", "photo"))`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := codewriter.New("")
			if err := New().EmitCall(w, tc.call); err != nil {
				t.Fatalf("emit call: %v", err)
			}
			if got := w.String(); got != tc.want+"\n" {
				t.Fatalf("unexpected call\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestEmitProcedure(t *testing.T) {
	w := codewriter.New("")
	lang := New()
	if err := lang.EmitProcedure(w, "save", []string{"event"}, "print('saved')\n"); err != nil {
		t.Fatalf("emit procedure: %v", err)
	}
	if err := lang.EmitProcedure(w, "noop", []string{"event"}, ""); err != nil {
		t.Fatalf("emit stub: %v", err)
	}
	want := "def save(event=None):\n    print('saved')\n\ndef noop(event=None):\n    pass\n\n"
	if got := w.String(); got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestEmitVariable(t *testing.T) {
	w := codewriter.New("")
	err := New().EmitVariable(w, "w0", compose.Nested(compose.Call{
		Bridge:   compose.BridgeDOM,
		Receiver: "document",
		Name:     "createElement",
		Args:     []compose.Arg{compose.Lit("button")},
	}))
	if err != nil {
		t.Fatalf("emit variable: %v", err)
	}
	if got := w.String(); got != "w0 = document.createElement(\"button\")\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestBridges(t *testing.T) {
	lang := New()
	testCases := []struct {
		bridge string
		want   []string
	}{
		{compose.BridgeTk, []string{"import tkinter", "", "root = tkinter.Tk()", "root.mainloop()"}},
		{compose.BridgeDOM, []string{"from js import document"}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.bridge, func(t *testing.T) {
			t.Parallel()
			if !lang.SupportsBridge(tc.bridge) {
				t.Fatalf("bridge %s should be supported", tc.bridge)
			}
			w := codewriter.New("")
			if err := lang.OpenBridge(w, tc.bridge); err != nil {
				t.Fatalf("open: %v", err)
			}
			if err := lang.CloseBridge(w, tc.bridge); err != nil {
				t.Fatalf("close: %v", err)
			}
			got := splitLines(w.String())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("bridge output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if err := lang.OpenBridge(codewriter.New(""), "qt"); err == nil {
		t.Fatalf("expected error for unknown bridge")
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestIdentifier(t *testing.T) {
	testCases := map[string]string{
		"import":  "import_",
		"None":    "None_",
		"lambda":  "lambda_",
		"root":    "root_",
		"tkinter": "tkinter_",
		"save":    "save",
		"Import":  "Import",
	}
	lang := New()
	for in, want := range testCases {
		if got := lang.Identifier(in); got != want {
			t.Fatalf("Identifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmitHandlersWithReservedAndCollidingNames(t *testing.T) {
	reg := compose.NewRegistry()
	reg.MustRegisterLanguage(Name, New())
	reg.MustRegisterToolkit(tk.Name, tk.New())
	emitter, err := reg.Compose(Name, tk.Name, compose.Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	click := func(handler string) []ir.EventRef {
		return []ir.EventRef{{Event: "click", HandlerID: handler}}
	}
	doc := ir.Document{
		Format:  ir.Format,
		Version: ir.Version,
		Widgets: []ir.Widget{
			{ID: "w0", Kind: "container"},
			{ID: "w1", Kind: "button", ParentID: "w0", Events: click("h0")},
			{ID: "w2", Kind: "button", ParentID: "w0", Events: click("h1")},
			{ID: "w3", Kind: "button", ParentID: "w0", Events: click("h2")},
		},
		Handlers: []ir.Handler{
			{ID: "h0", Name: "import", WidgetID: "w1"},
			{ID: "h1", Name: "go-now", WidgetID: "w2", Implementations: map[string]string{"python": "print('first')"}},
			{ID: "h2", Name: "go_now", WidgetID: "w3", Implementations: map[string]string{"python": "print('second')"}},
		},
	}
	result, err := emitter.Emit(doc)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, line := range []string{
		"def import_(event=None):",
		"def go_now(event=None):",
		"    print('first')",
		"def go_now_2(event=None):",
		"    print('second')",
		`root.tk.call("bind", ".w0.w1", "<Button-1>", root.register(import_))`,
		`root.tk.call("bind", ".w0.w2", "<Button-1>", root.register(go_now))`,
		`root.tk.call("bind", ".w0.w3", "<Button-1>", root.register(go_now_2))`,
	} {
		if !strings.Contains(result.Source, line+"\n") {
			t.Fatalf("missing %q in output:\n%s", line, result.Source)
		}
	}
	if strings.Contains(result.Source, "def import(") {
		t.Fatalf("reserved word used as a function name:\n%s", result.Source)
	}
}
