package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tkgen/pkg/builder"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/orchestrator"
	"github.com/goliatone/go-tkgen/pkg/source"
	"github.com/goliatone/go-tkgen/pkg/testsupport"
)

const buttonTree = `{
  "window": {"title": "Demo", "width": 320, "height": 200},
  "root": {
    "type": "Column",
    "children": [
      {
        "type": "Button",
        "properties": {"text": "Go"},
        "events": [{"event": "click", "handler": "go", "implementations": {"tcl": "puts go", "python": "print('go')"}}]
      }
    ]
  }
}`

type stubLoader struct {
	payload string
	calls   int
}

func (s *stubLoader) Load(_ context.Context, src source.Source) (source.Document, error) {
	s.calls++
	return source.NewDocument(src, []byte(s.payload))
}

func TestGenerate_FromLoader(t *testing.T) {
	loader := &stubLoader{payload: buttonTree}
	orch := orchestrator.New(orchestrator.WithLoader(loader))

	result, err := orch.Generate(context.Background(), orchestrator.Request{
		Source: source.SourceFromFile("ui.json"),
		Target: "tcl+tk",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	for _, line := range []string{
		"package require Tk",
		"wm title . Demo",
		"button .w0.w1",
		".w0.w1 configure -text Go",
		"proc go {{event {}}} {",
		"bind .w0.w1 <Button-1> go",
		"pack .w0 -fill both -expand 1",
	} {
		if !strings.Contains(result.Source, line+"\n") {
			t.Fatalf("missing %q in output:\n%s", line, result.Source)
		}
	}
	if result.Document.Metadata.Source != "ui.json" {
		t.Fatalf("expected source name in metadata, got %q", result.Document.Metadata.Source)
	}
	if result.Target.String() != "tcl+tk" {
		t.Fatalf("unexpected target %s", result.Target)
	}
}

func TestGenerate_TargetResolution(t *testing.T) {
	orch := orchestrator.New()
	testCases := []struct {
		name string
		req  orchestrator.Request
		want string
	}{
		{name: "default", req: orchestrator.Request{}, want: "tcl+tk"},
		{name: "target", req: orchestrator.Request{Target: "python"}, want: "python+tk"},
		{name: "language alias", req: orchestrator.Request{Target: "tcl+tk", Language: "js"}, want: "javascript+dom"},
		{name: "toolkit override", req: orchestrator.Request{Target: "python+tk", Toolkit: "dom"}, want: "python+dom"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := tc.req
			req.Payload = []byte(buttonTree)
			result, err := orch.Generate(context.Background(), req)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if got := result.Target.String(); got != tc.want {
				t.Fatalf("target = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestGenerate_UnsupportedCombination(t *testing.T) {
	orch := orchestrator.New()
	_, err := orch.Generate(context.Background(), orchestrator.Request{
		Payload: []byte(buttonTree),
		Target:  "javascript+tk",
	})
	if !errors.Is(err, compose.ErrUnsupportedCombination) {
		t.Fatalf("expected ErrUnsupportedCombination, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "orchestrator:") {
		t.Fatalf("expected orchestrator prefix, got %q", err.Error())
	}
}

func TestGenerate_RequiresInput(t *testing.T) {
	_, err := orchestrator.New().Generate(context.Background(), orchestrator.Request{Target: "tcl"})
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &stubLoader{payload: buttonTree}
	_, err := orchestrator.New(orchestrator.WithLoader(loader)).Generate(ctx, orchestrator.Request{
		Source: source.SourceFromFile("ui.json"),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if loader.calls != 0 {
		t.Fatalf("loader should not run after cancellation")
	}
}

func TestGenerate_DocumentBypassesBuilder(t *testing.T) {
	doc := ir.Document{
		Format:  ir.Format,
		Version: ir.Version,
		Window:  ir.Window{Title: "Prebuilt", Width: 100, Height: 100, Resizable: true},
		Widgets: []ir.Widget{{ID: "w0", Kind: "label", SourceKind: "Text", Text: "hi"}},
	}
	decorator := builder.DecoratorFunc(func(d *ir.Document) error {
		d.Window.Title = "Decorated"
		return nil
	})

	result, err := orchestrator.New(orchestrator.WithDecorators(decorator)).Generate(context.Background(), orchestrator.Request{
		Document: &doc,
		Target:   "python+tk",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(result.Source, `root.tk.call("wm", "title", ".", "Decorated")`) {
		t.Fatalf("decorator not applied:\n%s", result.Source)
	}
	if doc.Window.Title != "Prebuilt" {
		t.Fatalf("caller document mutated: %q", doc.Window.Title)
	}
}

func TestGenerate_DecoratorError(t *testing.T) {
	boom := errors.New("boom")
	orch := orchestrator.New(orchestrator.WithDecorators(builder.DecoratorFunc(func(*ir.Document) error {
		return boom
	})))
	_, err := orch.Generate(context.Background(), orchestrator.Request{Payload: []byte(buttonTree)})
	if !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}

func TestGenerate_AppliesTransformer(t *testing.T) {
	called := false
	transformer := orchestrator.TransformerFunc(func(_ context.Context, tree *source.Tree) error {
		called = true
		tree.Root.Children[0].Properties["text"] = "Patched"
		return nil
	})
	tree, _, err := source.Parse([]byte(buttonTree), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	result, err := orchestrator.New(orchestrator.WithTreeTransformer(transformer)).Generate(context.Background(), orchestrator.Request{
		Tree:   &tree,
		Target: "tcl",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !called {
		t.Fatalf("expected transformer to be invoked")
	}
	if !strings.Contains(result.Source, ".w0.w1 configure -text Patched\n") {
		t.Fatalf("transformer mutation missing:\n%s", result.Source)
	}
	if tree.Root.Children[0].Properties["text"] != "Go" {
		t.Fatalf("caller tree mutated")
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	calls     [][2]string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.selection, nil
}

func TestGenerate_ThemeBackground(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"background": "#ffffff"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"background": "#112233"}},
			},
		},
	}}

	result, err := orchestrator.New(
		orchestrator.WithThemeSelector(selector),
		orchestrator.WithThemeName("acme", "dark"),
	).Generate(context.Background(), orchestrator.Request{Payload: []byte(buttonTree)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != [2]string{"acme", "dark"} {
		t.Fatalf("unexpected selector calls: %v", selector.calls)
	}
	if result.Document.Window.Background != "#112233" {
		t.Fatalf("window background = %q", result.Document.Window.Background)
	}
	if !strings.Contains(result.Source, ". configure -background #112233\n") {
		t.Fatalf("theme background not emitted:\n%s", result.Source)
	}
}

func TestGenerate_ComposeOptions(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithComposeOptions(compose.Options{IncludeComments: true, Generator: "test-suite"}))
	result, err := orch.Generate(context.Background(), orchestrator.Request{Payload: []byte(buttonTree)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(result.Source, "# Demo\n") || !strings.Contains(result.Source, "# Generated by test-suite for tcl+tk\n") {
		t.Fatalf("expected header banner:\n%s", result.Source)
	}
}

func TestGenerate_PresetFixture(t *testing.T) {
	tree := testsupport.LoadTree(t, filepath.Join("testdata", "settings.yaml"))
	preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), "preset.yaml")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	orch := orchestrator.New(orchestrator.WithTreeTransformer(preset))

	result, err := orch.Generate(testsupport.Context(), orchestrator.Request{Tree: &tree, Target: "tcl+tk"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, line := range []string{
		"wm title . {Settings (admin)}",
		".form.save configure -text Apply",
		"    puts applied",
		"bind .form.save <Button-1> save",
	} {
		if !strings.Contains(result.Source, line+"\n") {
			t.Fatalf("missing %q in output:\n%s", line, result.Source)
		}
	}
	if _, ok := result.Document.Widgets[2].Attribute("tooltip"); ok {
		t.Fatalf("tooltip should have been removed by the preset")
	}
	if tree.Window.Title != "Settings" {
		t.Fatalf("caller tree was mutated: title %v", tree.Window.Title)
	}
}
