package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/languages/javascript"
	"github.com/goliatone/go-tkgen/pkg/languages/python"
)

func TestMapWidgetKind(t *testing.T) {
	tk := New()
	for kind, want := range map[string]string{
		"container": "div",
		"label":     "span",
		"checkbox":  "input",
		"slider":    "input",
		"image":     "img",
		"link":      "a",
		"Button":    "button",
		"Row":       "div",
		"mystery":   "div",
	} {
		if got := tk.MapWidgetKind(kind); got != want {
			t.Fatalf("MapWidgetKind(%q) = %q, want %q", kind, got, want)
		}
	}
}

func TestMapEventName(t *testing.T) {
	tk := New()
	for event, want := range map[string]string{
		"click":       "click",
		"DoubleClick": "dblclick",
		"rightclick":  "contextmenu",
		"motion":      "mousemove",
		"focusout":    "blur",
		"Scroll":      "scroll",
	} {
		if got := tk.MapEventName(event); got != want {
			t.Fatalf("MapEventName(%q) = %q, want %q", event, got, want)
		}
	}
}

func TestVarName(t *testing.T) {
	testCases := []struct {
		path, want string
	}{
		{"w0_w1", "w0_w1"},
		{"email-field", "email_field"},
		{"1st", "w_1st"},
		{"root", "root_"},
		{"title", "title_"},
		{"", "w_"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			if got := VarName(tc.path); got != tc.want {
				t.Fatalf("VarName(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestSanitizing(t *testing.T) {
	if got := PlainText(`Hello <script>alert(1)</script><b>World</b> & co`); got != "Hello World & co" {
		t.Fatalf("PlainText = %q", got)
	}
	got := RichHTML(`<b>bold</b><script>alert(1)</script><a href="javascript:x()">x</a>`)
	if strings.Contains(got, "script") || strings.Contains(got, "javascript:") {
		t.Fatalf("RichHTML kept unsafe markup: %q", got)
	}
	if !strings.Contains(got, "<b>bold</b>") {
		t.Fatalf("RichHTML dropped safe markup: %q", got)
	}
}

func TestEmitProperty(t *testing.T) {
	entry := compose.WidgetRef{Path: "w1", ID: "w1", Kind: "input", Widget: ir.Widget{Kind: "entry"}}
	rich := compose.WidgetRef{Path: "w2", ID: "w2", Kind: "div", Widget: ir.Widget{Kind: "richtext"}}

	testCases := []struct {
		name string
		ref  compose.WidgetRef
		prop ir.Property
		want string
		err  bool
	}{
		{
			name: "entry text becomes value",
			ref:  entry,
			prop: ir.Property{Name: ir.PropText, Value: "hi"},
			want: `w1.setAttribute("value", "hi");`,
		},
		{
			name: "percent width",
			ref:  entry,
			prop: ir.Property{Name: ir.PropWidth, Value: ir.Size{Value: 50, Unit: "%"}},
			want: `w1.style.setProperty("width", "50%");`,
		},
		{
			name: "transparent background",
			ref:  entry,
			prop: ir.Property{Name: ir.PropBackground, Value: "rgba(0, 0, 255, 0)"},
			want: `w1.style.setProperty("background-color", "rgba(0, 0, 255, 0)");`,
		},
		{
			name: "disabled",
			ref:  entry,
			prop: ir.Property{Name: "enabled", Value: false},
			want: `w1.toggleAttribute("disabled");`,
		},
		{
			name: "enabled emits nothing",
			ref:  entry,
			prop: ir.Property{Name: "enabled", Value: true},
		},
		{
			name: "password",
			ref:  entry,
			prop: ir.Property{Name: "input_type", Value: "password"},
			want: `w1.setAttribute("type", "password");`,
		},
		{
			name: "tooltip",
			ref:  entry,
			prop: ir.Property{Name: "tooltip", Value: "Your email"},
			want: `w1.setAttribute("title", "Your email");`,
		},
		{
			name: "border",
			ref:  entry,
			prop: ir.Property{Name: ir.PropBorder, Value: ir.Border{Width: 2, Style: "dashed", Color: "#333333"}},
			want: `w1.style.setProperty("border", "2px dashed #333333");`,
		},
		{
			name: "rich text",
			ref:  rich,
			prop: ir.Property{Name: ir.PropText, Value: "<i>x</i><script>y</script>"},
			want: `w2.insertAdjacentHTML("beforeend", "<i>x<\/i>");`,
		},
		{
			name: "unknown",
			ref:  entry,
			prop: ir.Property{Name: "shadow", Value: "x"},
			err:  true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := codewriter.New("")
			err := New().EmitProperty(w, javascript.New(), tc.ref, tc.prop)
			if tc.err {
				if !errors.Is(err, compose.ErrUnsupported) {
					t.Fatalf("expected ErrUnsupported, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EmitProperty: %v", err)
			}
			want := tc.want
			if want != "" {
				want += "\n"
			}
			if got := w.String(); got != want {
				t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
			}
		})
	}
}

func TestLayoutStyles(t *testing.T) {
	parent := ir.Widget{ID: "w0", Kind: "container"}
	testCases := []struct {
		name   string
		layout *ir.Layout
		want   []string
	}{
		{
			name:   "row pack",
			layout: ir.NewPack(ir.PackOptions{Side: "left", Expand: true, Fill: "both"}),
			want: []string{
				"w0.append(w0_w1);",
				`w0.style.setProperty("flex-direction", "row");`,
				`w0_w1.style.setProperty("flex", "1 1 auto");`,
				`w0_w1.style.setProperty("align-self", "stretch");`,
			},
		},
		{
			name:   "grid span",
			layout: ir.NewGrid(ir.GridOptions{Row: 1, Column: 0, ColSpan: 2, Sticky: "ew"}),
			want: []string{
				"w0.append(w0_w1);",
				`w0.style.setProperty("display", "grid");`,
				`w0_w1.style.setProperty("grid-row", "2 / span 1");`,
				`w0_w1.style.setProperty("grid-column", "1 / span 2");`,
				`w0_w1.style.setProperty("justify-self", "stretch");`,
			},
		},
		{
			name:   "place",
			layout: ir.NewPlace(ir.PlaceOptions{X: 10, Y: 20, Width: 100}),
			want: []string{
				"w0.append(w0_w1);",
				`w0.style.setProperty("position", "relative");`,
				`w0_w1.style.setProperty("position", "absolute");`,
				`w0_w1.style.setProperty("left", "10px");`,
				`w0_w1.style.setProperty("top", "20px");`,
				`w0_w1.style.setProperty("width", "100px");`,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ref := compose.WidgetRef{
				Path:       "w0_w1",
				ID:         "w1",
				Kind:       "span",
				ParentPath: "w0",
				Depth:      1,
				Widget:     ir.Widget{ID: "w1", Kind: "label", ParentID: "w0", Layout: tc.layout},
				Parent:     &parent,
			}
			w := codewriter.New("")
			if err := New().EmitLayout(w, javascript.New(), ref); err != nil {
				t.Fatalf("EmitLayout: %v", err)
			}
			got := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func sampleDocument() ir.Document {
	return ir.Document{
		Format:  ir.Format,
		Version: ir.Version,
		Window:  ir.Window{Title: "Demo", Width: 320, Height: 200, Background: "#102030"},
		Widgets: []ir.Widget{
			{ID: "w0", Kind: "container", SourceKind: "Column"},
			{
				ID: "w1", Kind: "label", SourceKind: "Text", ParentID: "w0",
				Text:   "Hello <b>World</b>",
				Layout: ir.NewPack(ir.PackOptions{Side: "top"}),
			},
			{
				ID: "w2", Kind: "button", SourceKind: "Button", ParentID: "w0",
				Text:   "Save",
				Layout: ir.NewPack(ir.PackOptions{Side: "top", PadX: 4}),
				Events: []ir.EventRef{{Event: "click", HandlerID: "h0"}},
			},
		},
		Handlers: []ir.Handler{{
			ID: "h0", Name: "save", EventKind: "click", WidgetID: "w2",
			Implementations: map[string]string{"js": `console.log("saved");`},
		}},
	}
}

func emitSample(t *testing.T, language compose.Language) compose.Result {
	t.Helper()
	reg := compose.NewRegistry()
	reg.MustRegisterLanguage(language.Name(), language)
	reg.MustRegisterToolkit(Name, New())
	emitter, err := reg.Compose(language.Name(), Name, compose.Options{})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	result, err := emitter.Emit(sampleDocument())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	return result
}

func TestEmitJavaScript(t *testing.T) {
	result := emitSample(t, javascript.New())
	want := strings.Join([]string{
		`"use strict";`,
		``,
		`const root = document.getElementById("app");`,
		`root.style.setProperty("display", "flex");`,
		`root.style.setProperty("flex-direction", "column");`,
		`root.style.setProperty("width", "320px");`,
		`root.style.setProperty("height", "200px");`,
		`root.style.setProperty("overflow", "hidden");`,
		`root.style.setProperty("background-color", "#102030");`,
		`const title = document.createElement("title");`,
		`title.append("Demo");`,
		`document.head.append(title);`,
		``,
		`const w0 = document.createElement("div");`,
		`w0.style.setProperty("display", "flex");`,
		`w0.style.setProperty("flex-direction", "column");`,
		`root.append(w0);`,
		`const w0_w1 = document.createElement("span");`,
		`w0_w1.append("Hello World");`,
		`w0.append(w0_w1);`,
		`const w0_w2 = document.createElement("button");`,
		`w0_w2.append("Save");`,
		`w0.append(w0_w2);`,
		`w0_w2.style.setProperty("margin", "0px 4px");`,
		``,
		`function save(event) {`,
		`  console.log("saved");`,
		`}`,
		``,
		`w0_w2.addEventListener("click", save);`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, result.Source); diff != "" {
		t.Fatalf("javascript output mismatch (-want +got):\n%s", diff)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestEmitPythonDOM(t *testing.T) {
	result := emitSample(t, python.New())
	for _, line := range []string{
		"from js import document",
		`root = document.getElementById("app")`,
		`w0_w1 = document.createElement("span")`,
		`w0.append(w0_w1)`,
		`w0_w2.addEventListener("click", save)`,
	} {
		if !strings.Contains(result.Source, line+"\n") {
			t.Fatalf("missing line %q in:\n%s", line, result.Source)
		}
	}
	if strings.Contains(result.Source, "tk.call") || strings.Contains(result.Source, "mainloop") {
		t.Fatalf("dom output leaked tk calls:\n%s", result.Source)
	}
}
