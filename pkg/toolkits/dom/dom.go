package dom

import (
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/normalize"
)

// Name is the registry name of the toolkit.
const Name = "dom"

// RootVar holds the mount element every top-level widget is appended to.
const RootVar = "root"

// MountID is the id of the element the generated code mounts into.
const MountID = "app"

const titleVar = "title"

var tagTable = map[string]string{
	kinds.Container: "div",
	kinds.Label:     "span",
	kinds.Button:    "button",
	kinds.Entry:     "input",
	kinds.TextArea:  "textarea",
	kinds.Checkbox:  "input",
	kinds.Radio:     "input",
	kinds.Image:     "img",
	kinds.Canvas:    "canvas",
	kinds.Select:    "select",
	kinds.List:      "ul",
	kinds.Progress:  "progress",
	kinds.Slider:    "input",
	kinds.Notebook:  "div",
	kinds.Tree:      "ul",
	kinds.Link:      "a",
	kinds.RichText:  "div",
}

// inputTypes are set right after creation for kinds sharing the input tag.
var inputTypes = map[string]string{
	kinds.Checkbox: "checkbox",
	kinds.Radio:    "radio",
	kinds.Slider:   "range",
}

var eventTable = map[string]string{
	"click":       "click",
	"doubleclick": "dblclick",
	"rightclick":  "contextmenu",
	"keypress":    "keydown",
	"keyrelease":  "keyup",
	"focus":       "focus",
	"blur":        "blur",
	"focusout":    "blur",
	"mouseenter":  "mouseenter",
	"mouseleave":  "mouseleave",
	"motion":      "mousemove",
	"change":      "change",
	"input":       "input",
}

// Toolkit emits browser DOM calls.
type Toolkit struct{}

// New returns the DOM toolkit module.
func New() Toolkit { return Toolkit{} }

var (
	_ compose.Toolkit     = Toolkit{}
	_ compose.PathStyle   = Toolkit{}
	_ compose.WindowSetup = Toolkit{}
	_ compose.Bridged     = Toolkit{}
)

// Name implements compose.Toolkit.
func (Toolkit) Name() string { return Name }

// Bridge implements compose.Bridged.
func (Toolkit) Bridge() string { return compose.BridgeDOM }

// PathSeparator implements compose.PathStyle. Paths double as variable
// names.
func (Toolkit) PathSeparator() string { return "_" }

// PathPrefix implements compose.PathStyle.
func (Toolkit) PathPrefix() string { return "" }

// AncestorsFirst implements compose.PathStyle.
func (Toolkit) AncestorsFirst() bool { return false }

// MapWidgetKind returns the HTML tag for a canonical kind or source type.
func (Toolkit) MapWidgetKind(kind string) string {
	key := strings.ToLower(strings.TrimSpace(kind))
	if tag, ok := tagTable[key]; ok {
		return tag
	}
	if tag, ok := tagTable[kinds.Canonical(key)]; ok {
		return tag
	}
	return "div"
}

// MapEventName returns the DOM event type. Unknown events are lower-cased.
func (Toolkit) MapEventName(event string) string {
	key := strings.ToLower(strings.TrimSpace(event))
	if mapped, ok := eventTable[key]; ok {
		return mapped
	}
	return key
}

func call(w *codewriter.Writer, lang compose.Language, receiver, name string, args ...compose.Arg) error {
	return lang.EmitCall(w, compose.Call{
		Bridge:   compose.BridgeDOM,
		Receiver: receiver,
		Name:     name,
		Args:     args,
	})
}

func setStyle(w *codewriter.Writer, lang compose.Language, variable, property, value string) error {
	return call(w, lang, variable+".style", "setProperty", compose.Lit(property), compose.Lit(value))
}

func setAttribute(w *codewriter.Writer, lang compose.Language, variable, name, value string) error {
	return call(w, lang, variable, "setAttribute", compose.Lit(name), compose.Lit(value))
}

func createElement(tag string) compose.Arg {
	return compose.Nested(compose.Call{
		Bridge:   compose.BridgeDOM,
		Receiver: "document",
		Name:     "createElement",
		Args:     []compose.Arg{compose.Lit(tag)},
	})
}

// EmitWindow mounts into the #app element and sizes it.
func (Toolkit) EmitWindow(w *codewriter.Writer, lang compose.Language, win ir.Window) error {
	mount := compose.Nested(compose.Call{
		Bridge:   compose.BridgeDOM,
		Receiver: "document",
		Name:     "getElementById",
		Args:     []compose.Arg{compose.Lit(MountID)},
	})
	if err := lang.EmitVariable(w, RootVar, mount); err != nil {
		return err
	}

	styles := [][2]string{{"display", "flex"}, {"flex-direction", "column"}}
	if win.Width > 0 && win.Height > 0 {
		styles = append(styles, [2]string{"width", px(float64(win.Width))}, [2]string{"height", px(float64(win.Height))})
	}
	if !win.Resizable {
		styles = append(styles, [2]string{"overflow", "hidden"})
	}
	if color, ok := cssColor(win.Background); ok {
		styles = append(styles, [2]string{"background-color", color})
	}
	for _, style := range styles {
		if err := setStyle(w, lang, RootVar, style[0], style[1]); err != nil {
			return err
		}
	}

	if win.Title == "" {
		return nil
	}
	if err := lang.EmitVariable(w, titleVar, createElement("title")); err != nil {
		return err
	}
	if err := call(w, lang, titleVar, "append", compose.Lit(win.Title)); err != nil {
		return err
	}
	return call(w, lang, "document.head", "append", compose.Word(titleVar))
}

// EmitWidgetCreation declares the element variable.
func (Toolkit) EmitWidgetCreation(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef) error {
	variable := varName(lang, ref.Path)
	if err := lang.EmitVariable(w, variable, createElement(ref.Kind)); err != nil {
		return err
	}
	if inputType, ok := inputTypes[canonical(ref)]; ok {
		return setAttribute(w, lang, variable, "type", inputType)
	}
	if canonical(ref) == kinds.Container {
		if err := setStyle(w, lang, variable, "display", "flex"); err != nil {
			return err
		}
		return setStyle(w, lang, variable, "flex-direction", "column")
	}
	return nil
}

// EmitEventBinding writes addEventListener(event, callback).
func (t Toolkit) EmitEventBinding(w *codewriter.Writer, lang compose.Language, ev compose.EventRef) error {
	event := t.MapEventName(ev.Event)
	if event == "" {
		return compose.Unsupported("empty event name")
	}
	return call(w, lang, varName(lang, ev.Widget.Path), "addEventListener", compose.Lit(event), ev.Callback)
}

// VarName turns a widget path into a valid identifier in every supported
// language.
func VarName(path string) string {
	var b strings.Builder
	for i, r := range path {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteString("w_")
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	switch name {
	case "":
		return "w_"
	case RootVar, titleVar, "document", "window":
		return name + "_"
	}
	return name
}

// varName is VarName passed through the language's reserved words.
func varName(lang compose.Language, path string) string {
	return compose.Identifier(lang, VarName(path))
}

func canonical(ref compose.WidgetRef) string {
	if ref.Widget.Kind != "" {
		return ref.Widget.Kind
	}
	return kinds.Canonical(ref.Widget.SourceKind)
}

func cssColor(color string) (string, bool) {
	if color == "" {
		return "", false
	}
	return normalize.NormalizeColor(color, normalize.ProfileCSS)
}
