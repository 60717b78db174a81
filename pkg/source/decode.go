package source

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Component, Event and LayoutHint decode leniently: each field is read from a
// generic value and dropped when its shape is wrong, so one malformed node
// does not reject the whole tree.

// UnmarshalJSON implements json.Unmarshaler.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = componentFromValue(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Component) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*c = componentFromValue(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = eventFromValue(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Event) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*e = eventFromValue(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LayoutHint) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = layoutFromValue(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LayoutHint) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*l = layoutFromValue(raw)
	return nil
}

func componentFromValue(value any) Component {
	obj, ok := Object(value)
	if !ok {
		return Component{}
	}

	var c Component
	c.Type, _ = String(obj["type"])
	c.ID, _ = String(obj["id"])
	c.ParentID, _ = String(obj["parent_id"])
	if props, ok := Object(obj["properties"]); ok && len(props) > 0 {
		c.Properties = props
	}
	if _, ok := Object(obj["layout"]); ok {
		layout := layoutFromValue(obj["layout"])
		c.Layout = &layout
	}
	if items, ok := obj["children"].([]any); ok {
		for _, item := range items {
			if _, ok := Object(item); ok {
				c.Children = append(c.Children, componentFromValue(item))
			}
		}
	}
	if items, ok := obj["events"].([]any); ok {
		for _, item := range items {
			if _, ok := Object(item); ok {
				c.Events = append(c.Events, eventFromValue(item))
			}
		}
	}
	if bindings, ok := Object(obj["property_bindings"]); ok {
		for name, raw := range bindings {
			binding, ok := propertyBindingFromValue(raw)
			if !ok {
				continue
			}
			if c.PropertyBindings == nil {
				c.PropertyBindings = make(map[string]PropertyBinding, len(bindings))
			}
			c.PropertyBindings[name] = binding
		}
	}
	c.Bindings = stringMap(obj["bindings"])
	if loop, ok := Object(obj["for"]); ok {
		c.For = forLoopFromObject(loop)
	}
	return c
}

func eventFromValue(value any) Event {
	obj, ok := Object(value)
	if !ok {
		return Event{}
	}
	var e Event
	e.Event, _ = String(obj["event"])
	e.Handler, _ = String(obj["handler"])
	e.Implementations = stringMap(obj["implementations"])
	return e
}

func layoutFromValue(value any) LayoutHint {
	obj, ok := Object(value)
	if !ok {
		return LayoutHint{}
	}
	var l LayoutHint
	l.Type, _ = String(obj["type"])
	if opts, ok := Object(obj["options"]); ok && len(opts) > 0 {
		l.Options = opts
	}
	return l
}

// propertyBindingFromValue accepts {"source_expr": "..."} or a bare
// expression string.
func propertyBindingFromValue(value any) (PropertyBinding, bool) {
	if expr, ok := value.(string); ok {
		return PropertyBinding{SourceExpr: expr}, true
	}
	obj, ok := Object(value)
	if !ok {
		return PropertyBinding{}, false
	}
	expr, ok := String(obj["source_expr"])
	if !ok {
		return PropertyBinding{}, false
	}
	return PropertyBinding{SourceExpr: expr}, true
}

func forLoopFromObject(obj map[string]any) *ForLoop {
	loop := &ForLoop{}
	loop.ItemName, _ = String(obj["item_name"])
	loop.IndexName, _ = String(obj["index_name"])
	if src, ok := Object(obj["source"]); ok {
		source := &ForSource{}
		if items, ok := src["items"].([]any); ok {
			source.Items = items
		}
		source.LiteralJSON, _ = String(src["literal_json"])
		source.Expression, _ = String(src["expression"])
		loop.Source = source
	}
	return loop
}

// stringMap keeps the entries of an object whose values read as strings.
func stringMap(value any) map[string]string {
	obj, ok := Object(value)
	if !ok {
		return nil
	}
	var out map[string]string
	for key, raw := range obj {
		s, ok := String(raw)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(obj))
		}
		out[key] = s
	}
	return out
}
