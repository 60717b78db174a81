package tk

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/normalize"
)

// Name is the registry name of the toolkit.
const Name = "tk"

// Tk widget classes used in generated code.
const (
	Frame       = "frame"
	Label       = "label"
	Button      = "button"
	Entry       = "entry"
	Text        = "text"
	Checkbutton = "checkbutton"
	Radiobutton = "radiobutton"
	Canvas      = "canvas"
	Combobox    = "ttk::combobox"
	Listbox     = "listbox"
	Progressbar = "ttk::progressbar"
	Scale       = "scale"
	Notebook    = "ttk::notebook"
	Treeview    = "ttk::treeview"
)

var kindTable = map[string]string{
	kinds.Container: Frame,
	kinds.Label:     Label,
	kinds.Image:     Label,
	kinds.Link:      Label,
	kinds.RichText:  Label,
	kinds.Button:    Button,
	kinds.Entry:     Entry,
	kinds.TextArea:  Text,
	kinds.Checkbox:  Checkbutton,
	kinds.Radio:     Radiobutton,
	kinds.Canvas:    Canvas,
	kinds.Select:    Combobox,
	kinds.List:      Listbox,
	kinds.Progress:  Progressbar,
	kinds.Slider:    Scale,
	kinds.Notebook:  Notebook,
	kinds.Tree:      Treeview,
}

var eventTable = map[string]string{
	"click":         "Button-1",
	"doubleclick":   "Double-Button-1",
	"rightclick":    "Button-3",
	"keypress":      "Key",
	"keyrelease":    "KeyRelease",
	"focus":         "FocusIn",
	"blur":          "FocusOut",
	"focusout":      "FocusOut",
	"mouseenter":    "Enter",
	"mouseleave":    "Leave",
	"motion":        "Motion",
	"buttonpress":   "ButtonPress",
	"buttonrelease": "ButtonRelease",
	"change":        "<<Modified>>",
}

// Toolkit emits Tk commands. Widget paths are Tk window names, so parents
// are always emitted before their children.
type Toolkit struct{}

// New returns the Tk toolkit module.
func New() Toolkit { return Toolkit{} }

var (
	_ compose.Toolkit     = Toolkit{}
	_ compose.PathStyle   = Toolkit{}
	_ compose.WindowSetup = Toolkit{}
	_ compose.Finisher    = Toolkit{}
	_ compose.Bridged     = Toolkit{}
)

// Name implements compose.Toolkit.
func (Toolkit) Name() string { return Name }

// Bridge implements compose.Bridged.
func (Toolkit) Bridge() string { return compose.BridgeTk }

// PathSeparator implements compose.PathStyle.
func (Toolkit) PathSeparator() string { return "." }

// PathPrefix implements compose.PathStyle.
func (Toolkit) PathPrefix() string { return "." }

// AncestorsFirst implements compose.PathStyle.
func (Toolkit) AncestorsFirst() bool { return true }

// MapWidgetKind accepts canonical kinds or source type names. Unknown kinds
// become frames.
func (Toolkit) MapWidgetKind(kind string) string {
	key := strings.ToLower(strings.TrimSpace(kind))
	if mapped, ok := kindTable[key]; ok {
		return mapped
	}
	if mapped, ok := kindTable[kinds.Canonical(key)]; ok {
		return mapped
	}
	return Frame
}

// MapEventName returns the Tk event sequence without angle brackets for
// plain events. Virtual events keep their double brackets.
func (Toolkit) MapEventName(event string) string {
	key := strings.ToLower(strings.TrimSpace(event))
	if mapped, ok := eventTable[key]; ok {
		return mapped
	}
	return event
}

func call(w *codewriter.Writer, lang compose.Language, receiver, name string, args ...compose.Arg) error {
	return lang.EmitCall(w, compose.Call{
		Bridge:   compose.BridgeTk,
		Receiver: receiver,
		Name:     name,
		Args:     args,
	})
}

func configure(w *codewriter.Writer, lang compose.Language, path string, args ...compose.Arg) error {
	return call(w, lang, path, "configure", args...)
}

// EmitWidgetCreation writes "<class> <path>".
func (Toolkit) EmitWidgetCreation(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef) error {
	return call(w, lang, "", ref.Kind, compose.Word(ref.Path))
}

// EmitWindow configures the toplevel ".".
func (Toolkit) EmitWindow(w *codewriter.Writer, lang compose.Language, win ir.Window) error {
	if err := call(w, lang, "", "wm", compose.Word("title"), compose.Word("."), compose.Lit(win.Title)); err != nil {
		return err
	}
	if win.Width > 0 && win.Height > 0 {
		geometry := strconv.Itoa(win.Width) + "x" + strconv.Itoa(win.Height)
		if err := call(w, lang, "", "wm", compose.Words("geometry", ".", geometry)...); err != nil {
			return err
		}
	}
	if !win.Resizable {
		if err := call(w, lang, "", "wm", compose.Words("resizable", ".", "0", "0")...); err != nil {
			return err
		}
	}
	if color, ok := opaque(win.Background); ok {
		return configure(w, lang, ".", compose.Word("-background"), compose.Word(color))
	}
	return nil
}

// EmitLayout writes the geometry manager command. Top-level widgets without
// a layout are packed by EmitFinish; hidden widgets are never managed.
func (Toolkit) EmitLayout(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef) error {
	if hidden(ref.Widget) {
		return nil
	}
	layout := ref.Widget.Layout
	if layout == nil {
		if ref.IsRoot() {
			return nil
		}
		return call(w, lang, "", "pack", compose.Word(ref.Path))
	}

	switch layout.Type {
	case ir.LayoutPack:
		if layout.Pack == nil {
			return compose.Unsupported("pack layout without options")
		}
		return call(w, lang, "", "pack", append(compose.Words(ref.Path), packArgs(*layout.Pack)...)...)
	case ir.LayoutGrid:
		if layout.Grid == nil {
			return compose.Unsupported("grid layout without options")
		}
		return call(w, lang, "", "grid", append(compose.Words(ref.Path), gridArgs(*layout.Grid)...)...)
	case ir.LayoutPlace:
		if layout.Place == nil {
			return compose.Unsupported("place layout without options")
		}
		return call(w, lang, "", "place", append(compose.Words(ref.Path), placeArgs(*layout.Place)...)...)
	default:
		return compose.Unsupported("layout type %q", layout.Type)
	}
}

func packArgs(p ir.PackOptions) []compose.Arg {
	var args []compose.Arg
	if p.Side != "" {
		args = append(args, compose.Words("-side", p.Side)...)
	}
	if p.Fill != "" && p.Fill != "none" {
		args = append(args, compose.Words("-fill", p.Fill)...)
	}
	if p.Expand {
		args = append(args, compose.Words("-expand", "1")...)
	}
	if p.Anchor != "" {
		args = append(args, compose.Words("-anchor", p.Anchor)...)
	}
	if p.PadX > 0 {
		args = append(args, compose.Words("-padx", strconv.Itoa(p.PadX))...)
	}
	if p.PadY > 0 {
		args = append(args, compose.Words("-pady", strconv.Itoa(p.PadY))...)
	}
	return args
}

func gridArgs(g ir.GridOptions) []compose.Arg {
	args := compose.Words("-row", strconv.Itoa(g.Row), "-column", strconv.Itoa(g.Column))
	if g.RowSpan > 1 {
		args = append(args, compose.Words("-rowspan", strconv.Itoa(g.RowSpan))...)
	}
	if g.ColSpan > 1 {
		args = append(args, compose.Words("-columnspan", strconv.Itoa(g.ColSpan))...)
	}
	if g.Sticky != "" {
		args = append(args, compose.Words("-sticky", g.Sticky)...)
	}
	return args
}

func placeArgs(p ir.PlaceOptions) []compose.Arg {
	args := compose.Words("-x", strconv.Itoa(p.X), "-y", strconv.Itoa(p.Y))
	if p.Width > 0 {
		args = append(args, compose.Words("-width", strconv.Itoa(p.Width))...)
	}
	if p.Height > 0 {
		args = append(args, compose.Words("-height", strconv.Itoa(p.Height))...)
	}
	if p.Anchor != "" {
		args = append(args, compose.Words("-anchor", p.Anchor)...)
	}
	return args
}

// EmitEventBinding writes "bind <path> <Sequence> callback".
func (t Toolkit) EmitEventBinding(w *codewriter.Writer, lang compose.Language, ev compose.EventRef) error {
	sequence := t.MapEventName(ev.Event)
	if sequence == "" {
		return compose.Unsupported("empty event name")
	}
	if !strings.HasPrefix(sequence, "<") {
		sequence = "<" + sequence + ">"
	}
	return call(w, lang, "", "bind", compose.Word(ev.Widget.Path), compose.Word(sequence), ev.Callback)
}

// EmitFinish packs every visible top-level widget that has no layout of its
// own so it fills the window.
func (Toolkit) EmitFinish(w *codewriter.Writer, lang compose.Language, roots []compose.WidgetRef) error {
	for _, ref := range roots {
		if ref.Widget.Layout != nil || hidden(ref.Widget) {
			continue
		}
		if err := call(w, lang, "", "pack", compose.Words(ref.Path, "-fill", "both", "-expand", "1")...); err != nil {
			return err
		}
	}
	return nil
}

func hidden(widget ir.Widget) bool {
	attr, ok := widget.Attribute("visible")
	if !ok {
		return false
	}
	visible, isBool := attr.Typed().(bool)
	return isBool && !visible
}

func opaque(color string) (string, bool) {
	if color == "" || normalize.IsTransparent(color) {
		return "", false
	}
	return normalize.NormalizeColor(color, normalize.ProfileOpaque)
}
