package source

// Clone returns a deep copy of the tree. The builder works on clones so the
// caller's tree is never mutated.
func (t Tree) Clone() Tree {
	out := Tree{
		Metadata: cloneMap(t.Metadata),
	}
	if t.Window != nil {
		w := Window{
			Title:      cloneValue(t.Window.Title),
			Width:      cloneValue(t.Window.Width),
			Height:     cloneValue(t.Window.Height),
			Resizable:  cloneValue(t.Window.Resizable),
			Background: cloneValue(t.Window.Background),
		}
		out.Window = &w
	}
	out.Root = clonePtr(t.Root)
	out.App = clonePtr(t.App)
	out.Component = clonePtr(t.Component)
	if t.Components != nil {
		out.Components = make([]Component, len(t.Components))
		for i, comp := range t.Components {
			out.Components[i] = comp.Clone()
		}
	}
	if t.Logic != nil {
		logic := Logic{}
		if t.Logic.Functions != nil {
			logic.Functions = make(map[string]map[string]string, len(t.Logic.Functions))
			for name, impls := range t.Logic.Functions {
				logic.Functions[name] = cloneStrings(impls)
			}
		}
		out.Logic = &logic
	}
	if t.SourceStructures != nil {
		structures := SourceStructures{}
		for _, decl := range t.SourceStructures.ConstDeclarations {
			decl.Value = cloneValue(decl.Value)
			structures.ConstDeclarations = append(structures.ConstDeclarations, decl)
		}
		out.SourceStructures = &structures
	}
	return out
}

// Clone returns a deep copy of the component and its subtree.
func (c Component) Clone() Component {
	out := c
	out.Properties = cloneMap(c.Properties)
	if c.Layout != nil {
		layout := LayoutHint{Type: c.Layout.Type, Options: cloneMap(c.Layout.Options)}
		out.Layout = &layout
	}
	if c.Children != nil {
		out.Children = make([]Component, len(c.Children))
		for i, child := range c.Children {
			out.Children[i] = child.Clone()
		}
	}
	if c.Events != nil {
		out.Events = make([]Event, len(c.Events))
		for i, ev := range c.Events {
			ev.Implementations = cloneStrings(ev.Implementations)
			out.Events[i] = ev
		}
	}
	if c.PropertyBindings != nil {
		out.PropertyBindings = make(map[string]PropertyBinding, len(c.PropertyBindings))
		for key, binding := range c.PropertyBindings {
			out.PropertyBindings[key] = binding
		}
	}
	out.Bindings = cloneStrings(c.Bindings)
	if c.For != nil {
		loop := *c.For
		if c.For.Source != nil {
			src := *c.For.Source
			if src.Items != nil {
				src.Items = cloneSlice(src.Items)
			}
			loop.Source = &src
		}
		out.For = &loop
	}
	return out
}

func clonePtr(c *Component) *Component {
	if c == nil {
		return nil
	}
	clone := c.Clone()
	return &clone
}

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneSlice(in []any) []any {
	out := make([]any, len(in))
	for i, value := range in {
		out[i] = cloneValue(value)
	}
	return out
}

// CloneValue deep-copies decoded JSON/YAML values.
func CloneValue(value any) any {
	return cloneValue(value)
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMap(v)
	case map[any]any:
		out := make(map[any]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item)
		}
		return out
	case []any:
		return cloneSlice(v)
	default:
		return v
	}
}
