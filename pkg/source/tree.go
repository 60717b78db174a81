package source

// Tree is the loosely typed UI description consumed by the builder. Either Root
// (a nested component tree) or Components (a flat list linked by parent_id)
// carries the widgets; Assemble folds the latter into the former.
type Tree struct {
	Window           *Window           `json:"window,omitempty" yaml:"window,omitempty"`
	Root             *Component        `json:"root,omitempty" yaml:"root,omitempty"`
	App              *Component        `json:"app,omitempty" yaml:"app,omitempty"`
	Component        *Component        `json:"component,omitempty" yaml:"component,omitempty"`
	Components       []Component       `json:"components,omitempty" yaml:"components,omitempty"`
	Logic            *Logic            `json:"logic,omitempty" yaml:"logic,omitempty"`
	SourceStructures *SourceStructures `json:"source_structures,omitempty" yaml:"source_structures,omitempty"`
	Metadata         map[string]any    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Window holds the optional top-level window description. Values stay loosely
// typed so malformed input degrades to defaults in the builder.
type Window struct {
	Title      any `json:"title,omitempty" yaml:"title,omitempty"`
	Width      any `json:"width,omitempty" yaml:"width,omitempty"`
	Height     any `json:"height,omitempty" yaml:"height,omitempty"`
	Resizable  any `json:"resizable,omitempty" yaml:"resizable,omitempty"`
	Background any `json:"background,omitempty" yaml:"background,omitempty"`
}

// Component is one node of the source tree.
type Component struct {
	Type             string                     `json:"type,omitempty" yaml:"type,omitempty"`
	ID               string                     `json:"id,omitempty" yaml:"id,omitempty"`
	ParentID         string                     `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Properties       map[string]any             `json:"properties,omitempty" yaml:"properties,omitempty"`
	Layout           *LayoutHint                `json:"layout,omitempty" yaml:"layout,omitempty"`
	Children         []Component                `json:"children,omitempty" yaml:"children,omitempty"`
	Events           []Event                    `json:"events,omitempty" yaml:"events,omitempty"`
	PropertyBindings map[string]PropertyBinding `json:"property_bindings,omitempty" yaml:"property_bindings,omitempty"`
	Bindings         map[string]string          `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	For              *ForLoop                   `json:"for,omitempty" yaml:"for,omitempty"`
}

// LayoutHint carries explicit layout options. The type is informational; the
// builder decides the layout mode from the options themselves.
type LayoutHint struct {
	Type    string         `json:"type,omitempty" yaml:"type,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Event binds a component event to a named handler.
type Event struct {
	Event           string            `json:"event,omitempty" yaml:"event,omitempty"`
	Handler         string            `json:"handler,omitempty" yaml:"handler,omitempty"`
	Implementations map[string]string `json:"implementations,omitempty" yaml:"implementations,omitempty"`
}

// PropertyBinding ties a property to an expression evaluated elsewhere.
type PropertyBinding struct {
	SourceExpr string `json:"source_expr,omitempty" yaml:"source_expr,omitempty"`
}

// ForLoop describes a compile-time repetition of the component's first child.
type ForLoop struct {
	ItemName  string     `json:"item_name,omitempty" yaml:"item_name,omitempty"`
	IndexName string     `json:"index_name,omitempty" yaml:"index_name,omitempty"`
	Source    *ForSource `json:"source,omitempty" yaml:"source,omitempty"`
}

// ForSource names where loop items come from: inline items, a JSON literal, or
// an expression resolved against the constant declarations.
type ForSource struct {
	Items       []any  `json:"items,omitempty" yaml:"items,omitempty"`
	LiteralJSON string `json:"literal_json,omitempty" yaml:"literal_json,omitempty"`
	Expression  string `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// Logic groups handler bodies declared outside the component tree, keyed by
// handler name and then by language.
type Logic struct {
	Functions map[string]map[string]string `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// SourceStructures preserves declarations from the upstream source language.
type SourceStructures struct {
	ConstDeclarations []ConstDeclaration `json:"const_declarations,omitempty" yaml:"const_declarations,omitempty"`
}

// ConstDeclaration is a named constant. ValueJSON wins over Value when both
// are present.
type ConstDeclaration struct {
	Name      string `json:"name" yaml:"name"`
	ValueJSON string `json:"value_json,omitempty" yaml:"value_json,omitempty"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// RootComponent returns the nested root, checking root, app and component in
// that order.
func (t Tree) RootComponent() *Component {
	switch {
	case t.Root != nil:
		return t.Root
	case t.App != nil:
		return t.App
	default:
		return t.Component
	}
}

// Empty reports whether the tree carries no components at all.
func (t Tree) Empty() bool {
	return t.RootComponent() == nil && len(t.Components) == 0
}

// Function returns the language implementations declared for name in the
// logic block.
func (t Tree) Function(name string) map[string]string {
	if t.Logic == nil {
		return nil
	}
	return t.Logic.Functions[name]
}

// Constant looks up a constant declaration by name.
func (t Tree) Constant(name string) (ConstDeclaration, bool) {
	if t.SourceStructures == nil {
		return ConstDeclaration{}, false
	}
	for _, decl := range t.SourceStructures.ConstDeclarations {
		if decl.Name == name {
			return decl, true
		}
	}
	return ConstDeclaration{}, false
}
