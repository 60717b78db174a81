package kinds

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-tkgen/pkg/source"
)

// Canonical widget kinds written to ir.Widget.Kind. Toolkits map these to
// their own vocabulary.
const (
	Container = "container"
	Label     = "label"
	Button    = "button"
	Entry     = "entry"
	TextArea  = "textarea"
	Checkbox  = "checkbox"
	Radio     = "radio"
	Image     = "image"
	Canvas    = "canvas"
	Select    = "select"
	List      = "list"
	Progress  = "progress"
	Slider    = "slider"
	Notebook  = "notebook"
	Tree      = "tree"
	Link      = "link"
	RichText  = "richtext"
)

// DefaultSourceKind is assumed for components without a type.
const DefaultSourceKind = "Container"

var typeTable = map[string]string{
	"container":   Container,
	"column":      Container,
	"row":         Container,
	"center":      Container,
	"scroll":      Container,
	"scrollview":  Container,
	"box":         Container,
	"stack":       Container,
	"app":         Container,
	"form":        Container,
	"for":         Container,
	"foreach":     Container,
	"text":        Label,
	"label":       Label,
	"button":      Button,
	"input":       Entry,
	"textinput":   Entry,
	"entry":       Entry,
	"textarea":    TextArea,
	"checkbox":    Checkbox,
	"radio":       Radio,
	"image":       Image,
	"canvas":      Canvas,
	"select":      Select,
	"dropdown":    Select,
	"combobox":    Select,
	"list":        List,
	"progress":    Progress,
	"progressbar": Progress,
	"slider":      Slider,
	"notebook":    Notebook,
	"tabs":        Notebook,
	"tabgroup":    Notebook,
	"tree":        Tree,
	"link":        Link,
	"markdown":    RichText,
	"richtext":    RichText,
}

// Canonical maps a source type name to its canonical kind, defaulting to
// Container for unknown or empty names.
func Canonical(sourceKind string) string {
	if kind, ok := typeTable[strings.ToLower(strings.TrimSpace(sourceKind))]; ok {
		return kind
	}
	return Container
}

// Known reports whether sourceKind has an entry in the type table.
func Known(sourceKind string) bool {
	_, ok := typeTable[strings.ToLower(strings.TrimSpace(sourceKind))]
	return ok
}

// Matcher decides whether a kind applies to the supplied component.
type Matcher func(comp source.Component) bool

type rule struct {
	kind     string
	priority int
	match    Matcher
	order    int
}

// Registry resolves the canonical kind of a component. An explicit "widget"
// property wins, then registered matchers by priority (ties fall back to
// registration order), then the type table.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind. Higher priority values take precedence.
func (r *Registry) Register(kind string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the canonical kind for comp. It never returns "".
func (r *Registry) Resolve(comp source.Component) string {
	if explicit := explicitKind(comp); explicit != "" {
		return explicit
	}
	if r != nil {
		r.mu.RLock()
		rules := append([]rule(nil), r.rules...)
		r.mu.RUnlock()

		sort.SliceStable(rules, func(i, j int) bool {
			if rules[i].priority == rules[j].priority {
				return rules[i].order < rules[j].order
			}
			return rules[i].priority > rules[j].priority
		})
		for _, entry := range rules {
			if entry.match(comp) {
				return entry.kind
			}
		}
	}
	return Canonical(comp.Type)
}

func explicitKind(comp source.Component) string {
	widget, ok := comp.StringProperty("widget")
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(widget))
}

func isType(comp source.Component, names ...string) bool {
	for _, name := range names {
		if strings.EqualFold(comp.Type, name) {
			return true
		}
	}
	return false
}

func inputType(comp source.Component) string {
	value, _ := comp.StringProperty("inputType", "input_type", "type")
	return strings.ToLower(strings.TrimSpace(value))
}

func (r *Registry) registerBuiltins() {
	r.Register(Checkbox, 90, func(comp source.Component) bool {
		return isType(comp, "Input", "TextInput") && inputType(comp) == "checkbox"
	})

	r.Register(Radio, 90, func(comp source.Component) bool {
		return isType(comp, "Input", "TextInput") && inputType(comp) == "radio"
	})

	r.Register(Slider, 80, func(comp source.Component) bool {
		return isType(comp, "Input") && inputType(comp) == "range"
	})

	r.Register(RichText, 70, func(comp source.Component) bool {
		if !isType(comp, "Text", "Label") {
			return false
		}
		for _, key := range []string{"markdown", "html"} {
			if value, ok := comp.Property(key); ok {
				if flag, ok := source.Bool(value); ok && flag {
					return true
				}
			}
		}
		format, _ := comp.StringProperty("format")
		format = strings.ToLower(format)
		return format == "markdown" || format == "html"
	})

	r.Register(TextArea, 60, func(comp source.Component) bool {
		if !isType(comp, "Input", "TextInput") {
			return false
		}
		value, ok := comp.Property("multiline")
		if !ok {
			return false
		}
		flag, _ := source.Bool(value)
		return flag
	})
}
