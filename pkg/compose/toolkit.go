package compose

import (
	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/ir"
)

// Toolkit renders widgets, properties, layout and event wiring by calling back
// into the composed Language. Returning ErrUnsupported (or wrapping it) marks
// a case the toolkit cannot express; the emitter records a warning.
type Toolkit interface {
	Name() string
	EmitWidgetCreation(w *codewriter.Writer, lang Language, ref WidgetRef) error
	EmitProperty(w *codewriter.Writer, lang Language, ref WidgetRef, prop ir.Property) error
	EmitLayout(w *codewriter.Writer, lang Language, ref WidgetRef) error
	EmitEventBinding(w *codewriter.Writer, lang Language, ev EventRef) error
	MapWidgetKind(kind string) string
	MapEventName(event string) string
}

// WidgetRef is a widget as seen by a toolkit: its display path, the flat id,
// the toolkit's kind, and the parent's path.
type WidgetRef struct {
	Path       string
	ID         string
	Kind       string
	ParentPath string
	Depth      int
	Widget     ir.Widget
	// Parent is nil for top-level widgets.
	Parent *ir.Widget
}

// IsRoot reports whether the widget has no resolved parent.
func (r WidgetRef) IsRoot() bool {
	return r.Parent == nil
}

// EventRef is one widget event bound to a handler procedure.
type EventRef struct {
	Widget    WidgetRef
	Event     string
	Handler   ir.Handler
	Procedure string
	// Callback is the language's reference to Procedure in the toolkit's
	// bridge.
	Callback Arg
}

// PathStyle describes how a toolkit composes hierarchical widget paths.
type PathStyle interface {
	PathSeparator() string
	PathPrefix() string
	// AncestorsFirst requests emission sorted by depth so parents exist
	// before their children are created.
	AncestorsFirst() bool
}

// WindowSetup emits the top-level window configuration.
type WindowSetup interface {
	EmitWindow(w *codewriter.Writer, lang Language, win ir.Window) error
}

// Finisher emits trailing statements once every widget and binding is out.
type Finisher interface {
	EmitFinish(w *codewriter.Writer, lang Language, roots []WidgetRef) error
}

// Bridged names the bridge a toolkit's calls are written against.
type Bridged interface {
	Bridge() string
}

// BridgeOf returns the toolkit's declared bridge, or "" when it has none.
func BridgeOf(tk Toolkit) string {
	if bridged, ok := tk.(Bridged); ok {
		return bridged.Bridge()
	}
	return ""
}
