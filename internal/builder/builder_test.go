package builder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/source"
)

func newTestBuilder(opts Options) *Builder {
	if opts.BuildID == nil {
		opts.BuildID = func() string { return "test-build" }
	}
	return New(opts)
}

func TestBuild_ColumnWithTextAndButton(t *testing.T) {
	tree := source.Tree{
		Root: &source.Component{
			Type:       "Column",
			Properties: map[string]any{"background": "#102030"},
			Children: []source.Component{
				{Type: "Text", Properties: map[string]any{"text": "Hello"}},
				{Type: "Button", Properties: map[string]any{"text": "Go", "onClick": "go"}},
			},
		},
	}

	doc, err := newTestBuilder(Options{SourceName: "inline"}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if doc.Format != ir.Format || doc.Version != ir.Version {
		t.Fatalf("unexpected header %s/%s", doc.Format, doc.Version)
	}
	if doc.Metadata.BuildID != "test-build" || doc.Metadata.Source != "inline" {
		t.Fatalf("unexpected metadata %+v", doc.Metadata)
	}
	if len(doc.Widgets) != 3 {
		t.Fatalf("expected 3 widgets, got %d", len(doc.Widgets))
	}

	column, text, button := doc.Widgets[0], doc.Widgets[1], doc.Widgets[2]
	if column.ID != "w0" || text.ID != "w1" || button.ID != "w2" {
		t.Fatalf("unexpected ids %s %s %s", column.ID, text.ID, button.ID)
	}
	if column.Kind != kinds.Container || text.Kind != kinds.Label || button.Kind != kinds.Button {
		t.Fatalf("unexpected kinds %s %s %s", column.Kind, text.Kind, button.Kind)
	}
	if column.Layout != nil {
		t.Fatalf("root widget should have no layout, got %+v", column.Layout)
	}
	for _, w := range []ir.Widget{column, text, button} {
		if w.Background != "#102030" {
			t.Fatalf("widget %s background = %q, want inherited #102030", w.ID, w.Background)
		}
	}
	if text.ParentID != column.ID || button.ParentID != column.ID {
		t.Fatalf("children not linked to column")
	}

	want := ir.NewPack(ir.PackOptions{Side: "top"})
	if diff := cmp.Diff(want, button.Layout); diff != "" {
		t.Fatalf("button layout mismatch (-want +got):\n%s", diff)
	}

	if len(doc.Handlers) != 1 {
		t.Fatalf("expected 1 handler, got %d", len(doc.Handlers))
	}
	handler := doc.Handlers[0]
	if handler.Name != "go" || handler.EventKind != "click" || handler.WidgetID != button.ID {
		t.Fatalf("unexpected handler %+v", handler)
	}
	if diff := cmp.Diff([]ir.EventRef{{Event: "click", HandlerID: handler.ID}}, button.Events); diff != "" {
		t.Fatalf("button events mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyTree(t *testing.T) {
	if _, err := newTestBuilder(Options{}).Build(source.Tree{}); err == nil {
		t.Fatalf("expected error for empty tree")
	}
}

func TestBuild_LayoutPriority(t *testing.T) {
	testCases := []struct {
		name   string
		parent string
		layout map[string]any
		props  map[string]any
		want   *ir.Layout
	}{
		{
			name:   "place beats grid",
			parent: "Column",
			layout: map[string]any{"x": 10, "y": 20, "row": 1},
			want:   ir.NewPlace(ir.PlaceOptions{X: 10, Y: 20}),
		},
		{
			name:   "grid with spans",
			parent: "Column",
			layout: map[string]any{"row": 2, "column": 1, "colspan": 3, "sticky": "NSEW"},
			want:   ir.NewGrid(ir.GridOptions{Row: 2, Column: 1, RowSpan: 1, ColSpan: 3, Sticky: "nsew"}),
		},
		{
			name:   "x alone falls through to pack",
			parent: "Row",
			layout: map[string]any{"x": 10},
			want:   ir.NewPack(ir.PackOptions{Side: "left"}),
		},
		{
			name:   "center parent",
			parent: "Center",
			want:   ir.NewPack(ir.PackOptions{Expand: true, Anchor: "center", Fill: "both"}),
		},
		{
			name:   "unknown parent",
			parent: "Panel",
			props:  map[string]any{"padding": map[string]any{"x": 4, "y": 2}},
			want:   ir.NewPack(ir.PackOptions{Side: "top", Fill: "both", Expand: true, PadX: 4, PadY: 2}),
		},
		{
			name:   "place with pixel size",
			parent: "Column",
			props:  map[string]any{"x": 1, "y": 2, "width": 100, "height": "50%"},
			want:   ir.NewPlace(ir.PlaceOptions{X: 1, Y: 2, Width: 100}),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			child := source.Component{Type: "Button", Properties: tc.props}
			if tc.layout != nil {
				child.Layout = &source.LayoutHint{Options: tc.layout}
			}
			tree := source.Tree{Root: &source.Component{Type: tc.parent, Children: []source.Component{child}}}

			doc, err := newTestBuilder(Options{}).Build(tree)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if diff := cmp.Diff(tc.want, doc.Widgets[1].Layout); diff != "" {
				t.Fatalf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_RowAlignmentAndGap(t *testing.T) {
	tree := source.Tree{Root: &source.Component{
		Type: "Row",
		Properties: map[string]any{
			"mainAxisAlignment":  "end",
			"crossAxisAlignment": "stretch",
			"gap":                8,
		},
		Children: []source.Component{{Type: "Button"}, {Type: "Button"}},
	}}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	first := ir.NewPack(ir.PackOptions{Side: "right", Fill: "y"})
	second := ir.NewPack(ir.PackOptions{Side: "right", Fill: "y", PadX: 8})
	if diff := cmp.Diff(first, doc.Widgets[1].Layout); diff != "" {
		t.Fatalf("first layout mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(second, doc.Widgets[2].Layout); diff != "" {
		t.Fatalf("second layout mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_HandlerDeduplication(t *testing.T) {
	button := func(id string) source.Component {
		return source.Component{
			Type: "Button",
			ID:   id,
			Events: []source.Event{{
				Event:           "click",
				Handler:         "save",
				Implementations: map[string]string{"python": "print('" + id + "')"},
			}},
		}
	}
	tree := source.Tree{
		Root: &source.Component{
			Type:     "Column",
			Children: []source.Component{button("a"), button("b"), button("c")},
		},
		Logic: &source.Logic{Functions: map[string]map[string]string{
			"save": {"JavaScript": "console.log('save')"},
		}},
	}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Handlers) != 1 {
		t.Fatalf("expected 1 handler, got %d", len(doc.Handlers))
	}
	handler := doc.Handlers[0]
	if handler.WidgetID != "a" {
		t.Fatalf("handler should belong to first widget, got %s", handler.WidgetID)
	}
	wantImpls := map[string]string{"python": "print('a')", "javascript": "console.log('save')"}
	if diff := cmp.Diff(wantImpls, handler.Implementations); diff != "" {
		t.Fatalf("implementations mismatch (-want +got):\n%s", diff)
	}
	for _, w := range doc.Widgets[1:] {
		if len(w.Events) != 1 || w.Events[0].HandlerID != handler.ID {
			t.Fatalf("widget %s does not reference shared handler: %+v", w.ID, w.Events)
		}
	}
}

func TestBuild_ForLoopExpansion(t *testing.T) {
	tree := source.Tree{
		Root: &source.Component{
			Type: "Column",
			For: &source.ForLoop{
				ItemName: "color",
				Source:   &source.ForSource{Expression: "palette.colors"},
			},
			Children: []source.Component{{
				Type: "Text",
				ID:   "swatch",
				PropertyBindings: map[string]source.PropertyBinding{
					"text":       {SourceExpr: "color.name"},
					"background": {SourceExpr: "color.hex"},
					"value":      {SourceExpr: "model.selected"},
				},
			}},
		},
		SourceStructures: &source.SourceStructures{ConstDeclarations: []source.ConstDeclaration{{
			Name:      "palette",
			ValueJSON: `{"colors":[{"name":"Red","hex":"#ff0000"},{"name":"Blue","hex":"#0000ff"}]}`,
		}}},
	}
	before := tree.Clone()

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if diff := cmp.Diff(before, tree); diff != "" {
		t.Fatalf("input tree mutated (-before +after):\n%s", diff)
	}
	if len(doc.Widgets) != 3 {
		t.Fatalf("expected container plus 2 expanded children, got %d", len(doc.Widgets))
	}
	if doc.Widgets[0].SourceKind != kinds.DefaultSourceKind {
		t.Fatalf("loop node should become a container, got %s", doc.Widgets[0].SourceKind)
	}

	wants := []struct{ id, text, bg string }{
		{"swatch_0", "Red", "#ff0000"},
		{"swatch_1", "Blue", "#0000ff"},
	}
	for i, want := range wants {
		w := doc.Widgets[i+1]
		if w.ID != want.id || w.Text != want.text || w.Background != want.bg {
			t.Fatalf("expanded widget %d = {%s %s %s}, want %+v", i, w.ID, w.Text, w.Background, want)
		}
	}

	if len(doc.DataBindings) != 2 {
		t.Fatalf("expected unresolved bindings kept per clone, got %d", len(doc.DataBindings))
	}
	for _, binding := range doc.DataBindings {
		if binding.Property != "value" || binding.Expression != "model.selected" {
			t.Fatalf("unexpected binding %+v", binding)
		}
	}
}

func TestBuild_ForLoopUnresolvedSource(t *testing.T) {
	tree := source.Tree{Root: &source.Component{
		Type:     "ForEach",
		For:      &source.ForLoop{Source: &source.ForSource{Expression: "missing"}},
		Children: []source.Component{{Type: "Text"}},
	}}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Widgets) != 1 {
		t.Fatalf("expected only the container, got %d widgets", len(doc.Widgets))
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     int
}

func (s *stubThemeSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, s.err
}

func TestBuild_WindowBackgroundFromTheme(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"background": "#ffffff"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"background": "#111111"}},
			},
		},
	}}

	tree := source.Tree{
		Window: &source.Window{Title: "Palette", Width: "wide", Height: 480, Resizable: false},
		Root:   &source.Component{Type: "Column"},
	}
	doc, err := newTestBuilder(Options{ThemeSelector: selector, ThemeName: "acme", ThemeVariant: "dark"}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := ir.Window{Title: "Palette", Width: DefaultWidth, Height: 480, Resizable: false, Background: "#111111"}
	if diff := cmp.Diff(want, doc.Window); diff != "" {
		t.Fatalf("window mismatch (-want +got):\n%s", diff)
	}
	if doc.Widgets[0].Background != "#111111" {
		t.Fatalf("root should inherit themed background, got %q", doc.Widgets[0].Background)
	}
	if selector.calls != 1 {
		t.Fatalf("expected one theme selection, got %d", selector.calls)
	}
}

func TestBuild_ThemeSelectionFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	selector := &stubThemeSelector{err: errors.New("no such theme")}

	doc, err := newTestBuilder(Options{Logger: zap.New(core), ThemeSelector: selector}).Build(source.Tree{
		Root: &source.Component{Type: "Column"},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if doc.Window.Background != "" {
		t.Fatalf("expected no background, got %q", doc.Window.Background)
	}
	if doc.Window.Title != DefaultTitle || !doc.Window.Resizable {
		t.Fatalf("window defaults not applied: %+v", doc.Window)
	}
	if logs.FilterMessage("builder: theme selection failed").Len() != 1 {
		t.Fatalf("expected theme failure warning, got %v", logs.All())
	}
}

func TestBuild_StyleNormalization(t *testing.T) {
	tree := source.Tree{Root: &source.Component{
		Type: "Input",
		ID:   "Email Field",
		Properties: map[string]any{
			"width":       "50%",
			"height":      map[string]any{"value": 2, "unit": "EM"},
			"font":        "14pt Helvetica Neue",
			"fontWeight":  "bold",
			"border":      map[string]any{"width": 2, "color": "RED"},
			"color":       "rgba(0, 0, 255, 0.5)",
			"background":  "transparent",
			"placeholder": "you@example.com",
			"disabled":    true,
			"type":        "Email",
		},
	}}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	w := doc.Widgets[0]

	if w.ID != "email_Field" {
		t.Fatalf("unexpected sanitized id %q", w.ID)
	}
	if w.Kind != kinds.Entry {
		t.Fatalf("unexpected kind %s", w.Kind)
	}
	if diff := cmp.Diff(&ir.Size{Value: 50, Unit: "%"}, w.Width); diff != "" {
		t.Fatalf("width mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&ir.Size{Value: 2, Unit: "em"}, w.Height); diff != "" {
		t.Fatalf("height mismatch (-want +got):\n%s", diff)
	}
	wantFont := &ir.Font{Family: "Helvetica Neue", Size: 14, SizeUnit: "pt", Weight: "bold"}
	if diff := cmp.Diff(wantFont, w.Font); diff != "" {
		t.Fatalf("font mismatch (-want +got):\n%s", diff)
	}
	wantBorder := &ir.Border{Width: 2, Color: "#ff0000", Style: "solid"}
	if diff := cmp.Diff(wantBorder, w.Border); diff != "" {
		t.Fatalf("border mismatch (-want +got):\n%s", diff)
	}
	if w.Foreground != "#0000ff80" {
		t.Fatalf("unexpected foreground %q", w.Foreground)
	}
	if w.Background != "" {
		t.Fatalf("transparent background should stay unset, got %q", w.Background)
	}

	wantAttrs := []ir.Attribute{
		ir.StringAttribute("input_type", "email"),
		ir.BoolAttribute("enabled", false),
		ir.StringAttribute("placeholder", "you@example.com"),
	}
	if diff := cmp.Diff(wantAttrs, w.Attributes); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DepthLimit(t *testing.T) {
	leaf := source.Component{Type: "Text"}
	for i := 0; i < 5; i++ {
		leaf = source.Component{Type: "Column", Children: []source.Component{leaf}}
	}

	core, logs := observer.New(zap.WarnLevel)
	doc, err := newTestBuilder(Options{Logger: zap.New(core), MaxDepth: 2}).Build(source.Tree{Root: &leaf})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Widgets) != 3 {
		t.Fatalf("expected depths 0..2 kept, got %d widgets", len(doc.Widgets))
	}
	if logs.FilterMessage("builder: nesting too deep, subtree dropped").Len() != 1 {
		t.Fatalf("expected one depth warning, got %v", logs.All())
	}
}

func TestBuild_FlatComponentsWithCycle(t *testing.T) {
	tree := source.Tree{Components: []source.Component{
		{ID: "a", ParentID: "b", Type: "Column"},
		{ID: "b", ParentID: "a", Type: "Row"},
		{ID: "c", ParentID: "a", Type: "Text"},
		{ID: "d", ParentID: "d", Type: "Button"},
	}}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Widgets) != 4 {
		t.Fatalf("expected every component once, got %d", len(doc.Widgets))
	}

	parents := map[string]string{}
	for _, w := range doc.Widgets {
		parents[w.ID] = w.ParentID
	}
	want := map[string]string{"a": "", "b": "a", "c": "a", "d": ""}
	if diff := cmp.Diff(want, parents); diff != "" {
		t.Fatalf("parent links mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DuplicateIDsAreRegenerated(t *testing.T) {
	tree := source.Tree{Root: &source.Component{
		Type: "Column",
		ID:   "main",
		Children: []source.Component{
			{Type: "Text", ID: "label"},
			{Type: "Text", ID: "label"},
		},
	}}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ids := []string{doc.Widgets[0].ID, doc.Widgets[1].ID, doc.Widgets[2].ID}
	if diff := cmp.Diff([]string{"main", "label", "w2"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DataBindings(t *testing.T) {
	tree := source.Tree{Root: &source.Component{
		Type:     "Input",
		Bindings: map[string]string{"value": "state.name", "enabled": " "},
	}}

	doc, err := newTestBuilder(Options{}).Build(tree)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []ir.Binding{{ID: "b0", WidgetID: "w0", Property: "value", Expression: "state.name"}}
	if diff := cmp.Diff(want, doc.DataBindings); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitizeID(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"", ""},
		{"submit", "submit"},
		{"Submit", "submit"},
		{"9lives", "w9lives"},
		{"a.b-c", "a_b_c"},
		{"_hidden", "w_hidden"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeID(tc.in); got != tc.want {
				t.Fatalf("sanitizeID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuild_DocumentSurvivesRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		tree source.Tree
	}{
		{
			name: "single label",
			tree: source.Tree{Root: &source.Component{Type: "Text", Properties: map[string]any{"text": "Hi"}}},
		},
		{
			name: "events and bindings",
			tree: source.Tree{Root: &source.Component{
				Type:       "Column",
				Properties: map[string]any{"gap": 4, "background": "#ffffff"},
				Children: []source.Component{
					{Type: "Text", Bindings: map[string]string{"text": "state.name"}},
					{
						Type:       "Button",
						Properties: map[string]any{"text": "Save", "disabled": true},
						Events:     []source.Event{{Event: "click", Handler: "save", Implementations: map[string]string{"tcl": "puts saved"}}},
					},
				},
			}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := newTestBuilder(Options{}).Build(tc.tree)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			for _, enc := range []ir.Encoding{ir.EncodingJSON, ir.EncodingYAML} {
				data, err := ir.Encode(doc, enc)
				if err != nil {
					t.Fatalf("encode %s: %v", enc, err)
				}
				got, err := ir.Decode(data)
				if err != nil {
					t.Fatalf("decode %s: %v", enc, err)
				}
				if diff := cmp.Diff(doc, got); diff != "" {
					t.Fatalf("%s round trip mismatch (-want +got):\n%s", enc, diff)
				}
			}
		})
	}
}
