package ir

// Format is the document format tag written by the builder.
const Format = "tkir"

// Version is the current document version.
const Version = "1.0"

// Document is the canonical, toolkit-agnostic UI representation. It owns every
// value it holds; nothing points back into the source tree it was built from.
type Document struct {
	Format       string    `json:"format" yaml:"format"`
	Version      string    `json:"version" yaml:"version"`
	Metadata     Metadata  `json:"metadata" yaml:"metadata"`
	Window       Window    `json:"window" yaml:"window"`
	Widgets      []Widget  `json:"widgets" yaml:"widgets"`
	Handlers     []Handler `json:"handlers" yaml:"handlers"`
	DataBindings []Binding `json:"data_bindings" yaml:"data_bindings"`
}

// Metadata records provenance for a built document.
type Metadata struct {
	Generator string `json:"generator,omitempty" yaml:"generator,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	BuildID   string `json:"build_id,omitempty" yaml:"build_id,omitempty"`
}

// Window describes the top-level window.
type Window struct {
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Resizable  bool   `json:"resizable" yaml:"resizable"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// Widget is one normalized node. Optional values are pointers or empty
// strings; unset means "let the toolkit decide".
type Widget struct {
	ID         string      `json:"id" yaml:"id"`
	Kind       string      `json:"kind" yaml:"kind"`
	SourceKind string      `json:"source_kind" yaml:"source_kind"`
	ParentID   string      `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Text       string      `json:"text,omitempty" yaml:"text,omitempty"`
	Width      *Size       `json:"width,omitempty" yaml:"width,omitempty"`
	Height     *Size       `json:"height,omitempty" yaml:"height,omitempty"`
	Background string      `json:"background,omitempty" yaml:"background,omitempty"`
	Foreground string      `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Font       *Font       `json:"font,omitempty" yaml:"font,omitempty"`
	Border     *Border     `json:"border,omitempty" yaml:"border,omitempty"`
	Image      string      `json:"image,omitempty" yaml:"image,omitempty"`
	Layout     *Layout     `json:"layout,omitempty" yaml:"layout,omitempty"`
	Events     []EventRef  `json:"events,omitempty" yaml:"events,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Size is a length with its unit (px, %, em, pt).
type Size struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Font describes a typeface. Weight and Style are free-form ("bold",
// "italic").
type Font struct {
	Family   string  `json:"family,omitempty" yaml:"family,omitempty"`
	Size     float64 `json:"size,omitempty" yaml:"size,omitempty"`
	SizeUnit string  `json:"size_unit,omitempty" yaml:"size_unit,omitempty"`
	Weight   string  `json:"weight,omitempty" yaml:"weight,omitempty"`
	Style    string  `json:"style,omitempty" yaml:"style,omitempty"`
}

// Border describes a widget outline.
type Border struct {
	Width int    `json:"width" yaml:"width"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// EventRef links a widget event to a handler record.
type EventRef struct {
	Event     string `json:"event" yaml:"event"`
	HandlerID string `json:"handler_id" yaml:"handler_id"`
}

// AttributeKind tags the scalar type stored in Attribute.Value.
type AttributeKind string

const (
	AttributeString AttributeKind = "string"
	AttributeNumber AttributeKind = "number"
	AttributeBool   AttributeKind = "bool"
)

// Attribute is a scalar widget property without a dedicated field
// (placeholder, enabled, value, min, max, ...). Value is stored in its
// canonical string form so documents round-trip without type drift.
type Attribute struct {
	Name  string        `json:"name" yaml:"name"`
	Kind  AttributeKind `json:"kind" yaml:"kind"`
	Value string        `json:"value" yaml:"value"`
}

// Handler is a named event procedure with per-language bodies.
type Handler struct {
	ID              string            `json:"id" yaml:"id"`
	Name            string            `json:"name" yaml:"name"`
	EventKind       string            `json:"event_kind" yaml:"event_kind"`
	WidgetID        string            `json:"widget_id" yaml:"widget_id"`
	Implementations map[string]string `json:"implementations,omitempty" yaml:"implementations,omitempty"`
}

// Binding ties a widget property to an external expression.
type Binding struct {
	ID         string `json:"id" yaml:"id"`
	WidgetID   string `json:"widget_id" yaml:"widget_id"`
	Property   string `json:"property" yaml:"property"`
	Expression string `json:"expression" yaml:"expression"`
}
