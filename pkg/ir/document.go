package ir

import "strconv"

// Property names handed to toolkits by Widget.Properties.
const (
	PropText       = "text"
	PropBackground = "background"
	PropForeground = "foreground"
	PropFont       = "font"
	PropBorder     = "border"
	PropImage      = "image"
	PropWidth      = "width"
	PropHeight     = "height"
)

// Property is a single widget property in emission form. Value holds a
// string, float64, bool, Size, Font or Border.
type Property struct {
	Name  string
	Value any
}

// Properties lists the widget's set properties in a fixed order: the typed
// fields first, then attributes in document order.
func (w Widget) Properties() []Property {
	var props []Property
	if w.Text != "" {
		props = append(props, Property{Name: PropText, Value: w.Text})
	}
	if w.Background != "" {
		props = append(props, Property{Name: PropBackground, Value: w.Background})
	}
	if w.Foreground != "" {
		props = append(props, Property{Name: PropForeground, Value: w.Foreground})
	}
	if w.Font != nil {
		props = append(props, Property{Name: PropFont, Value: *w.Font})
	}
	if w.Border != nil {
		props = append(props, Property{Name: PropBorder, Value: *w.Border})
	}
	if w.Image != "" {
		props = append(props, Property{Name: PropImage, Value: w.Image})
	}
	if w.Width != nil {
		props = append(props, Property{Name: PropWidth, Value: *w.Width})
	}
	if w.Height != nil {
		props = append(props, Property{Name: PropHeight, Value: *w.Height})
	}
	for _, attr := range w.Attributes {
		props = append(props, Property{Name: attr.Name, Value: attr.Typed()})
	}
	return props
}

// Attribute returns the named attribute.
func (w Widget) Attribute(name string) (Attribute, bool) {
	for _, attr := range w.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

// Typed converts the stored value back to a string, float64 or bool.
// Malformed numbers and booleans fall back to the raw string.
func (a Attribute) Typed() any {
	switch a.Kind {
	case AttributeNumber:
		if n, err := strconv.ParseFloat(a.Value, 64); err == nil {
			return n
		}
	case AttributeBool:
		if b, err := strconv.ParseBool(a.Value); err == nil {
			return b
		}
	}
	return a.Value
}

// StringAttribute builds a string attribute.
func StringAttribute(name, value string) Attribute {
	return Attribute{Name: name, Kind: AttributeString, Value: value}
}

// NumberAttribute builds a numeric attribute.
func NumberAttribute(name string, value float64) Attribute {
	return Attribute{Name: name, Kind: AttributeNumber, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// BoolAttribute builds a boolean attribute.
func BoolAttribute(name string, value bool) Attribute {
	return Attribute{Name: name, Kind: AttributeBool, Value: strconv.FormatBool(value)}
}

// Widget returns the widget with the given id.
func (d Document) Widget(id string) (Widget, bool) {
	for _, w := range d.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

// Handler returns the handler with the given id.
func (d Document) Handler(id string) (Handler, bool) {
	for _, h := range d.Handlers {
		if h.ID == id {
			return h, true
		}
	}
	return Handler{}, false
}

// HandlerByName returns the first handler with the given logical name.
func (d Document) HandlerByName(name string) (Handler, bool) {
	for _, h := range d.Handlers {
		if h.Name == name {
			return h, true
		}
	}
	return Handler{}, false
}

// Children returns the widgets whose parent is id, in document order.
func (d Document) Children(id string) []Widget {
	var out []Widget
	for _, w := range d.Widgets {
		if w.ParentID == id {
			out = append(out, w)
		}
	}
	return out
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	if d.Widgets != nil {
		out.Widgets = make([]Widget, len(d.Widgets))
		for i, w := range d.Widgets {
			out.Widgets[i] = w.Clone()
		}
	}
	if d.Handlers != nil {
		out.Handlers = make([]Handler, len(d.Handlers))
		for i, h := range d.Handlers {
			if h.Implementations != nil {
				impls := make(map[string]string, len(h.Implementations))
				for lang, body := range h.Implementations {
					impls[lang] = body
				}
				h.Implementations = impls
			}
			out.Handlers[i] = h
		}
	}
	if d.DataBindings != nil {
		out.DataBindings = append([]Binding(nil), d.DataBindings...)
	}
	return out
}

// Clone returns a deep copy of the widget.
func (w Widget) Clone() Widget {
	out := w
	if w.Width != nil {
		size := *w.Width
		out.Width = &size
	}
	if w.Height != nil {
		size := *w.Height
		out.Height = &size
	}
	if w.Font != nil {
		font := *w.Font
		out.Font = &font
	}
	if w.Border != nil {
		border := *w.Border
		out.Border = &border
	}
	if w.Layout != nil {
		layout := Layout{Type: w.Layout.Type}
		if w.Layout.Pack != nil {
			pack := *w.Layout.Pack
			layout.Pack = &pack
		}
		if w.Layout.Grid != nil {
			grid := *w.Layout.Grid
			layout.Grid = &grid
		}
		if w.Layout.Place != nil {
			place := *w.Layout.Place
			layout.Place = &place
		}
		out.Layout = &layout
	}
	if w.Events != nil {
		out.Events = append([]EventRef(nil), w.Events...)
	}
	if w.Attributes != nil {
		out.Attributes = append([]Attribute(nil), w.Attributes...)
	}
	return out
}
