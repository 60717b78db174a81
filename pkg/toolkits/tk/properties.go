package tk

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/normalize"
)

// classic Tk widgets accept -background and -foreground; the themed ttk
// widgets are styled through ttk::style instead.
var foregroundClasses = map[string]bool{
	Label: true, Button: true, Entry: true, Text: true,
	Checkbutton: true, Radiobutton: true, Listbox: true, Scale: true,
}

var reliefs = map[string]string{
	"solid":  "solid",
	"none":   "flat",
	"flat":   "flat",
	"groove": "groove",
	"ridge":  "ridge",
	"raised": "raised",
	"inset":  "sunken",
	"sunken": "sunken",
	"outset": "raised",
}

// EmitProperty writes one "configure" (or widget command) per property.
func (Toolkit) EmitProperty(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef, prop ir.Property) error {
	path := ref.Path
	themed := strings.HasPrefix(ref.Kind, "ttk::")

	switch prop.Name {
	case ir.PropText:
		if ref.Kind == Frame {
			return nil
		}
		return emitText(w, lang, ref, stringValue(prop.Value))

	case ir.PropBackground, ir.PropForeground:
		if prop.Name == ir.PropForeground && ref.Kind == Frame {
			return nil
		}
		if themed || (prop.Name == ir.PropForeground && !foregroundClasses[ref.Kind]) {
			return compose.Unsupported("%s on %s", prop.Name, ref.Kind)
		}
		color, ok := opaque(stringValue(prop.Value))
		if !ok {
			return nil
		}
		return configure(w, lang, path, compose.Word("-"+prop.Name), compose.Word(color))

	case ir.PropFont:
		font, ok := prop.Value.(ir.Font)
		if !ok {
			return compose.Unsupported("font value %T", prop.Value)
		}
		if themed || ref.Kind == Frame {
			return compose.Unsupported("font on %s", ref.Kind)
		}
		return configure(w, lang, path, compose.Word("-font"), compose.Lit(FontSpec(font)))

	case ir.PropBorder:
		border, ok := prop.Value.(ir.Border)
		if !ok {
			return compose.Unsupported("border value %T", prop.Value)
		}
		if themed {
			return compose.Unsupported("border on %s", ref.Kind)
		}
		return configure(w, lang, path, borderArgs(border)...)

	case ir.PropImage:
		image := "img_" + ref.ID
		if err := call(w, lang, "", "image", compose.Word("create"), compose.Word("photo"), compose.Word(image),
			compose.Word("-file"), compose.Lit(stringValue(prop.Value))); err != nil {
			return err
		}
		return configure(w, lang, path, compose.Word("-image"), compose.Word(image))

	case ir.PropWidth, ir.PropHeight:
		size, ok := prop.Value.(ir.Size)
		if !ok {
			return compose.Unsupported("%s value %T", prop.Name, prop.Value)
		}
		if size.Unit == normalize.UnitPercent {
			return compose.Unsupported("percentage %s", prop.Name)
		}
		return configure(w, lang, path, compose.Word("-"+prop.Name), compose.Word(number(size.Value)))

	default:
		return emitAttribute(w, lang, ref, prop)
	}
}

func emitText(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef, text string) error {
	switch ref.Kind {
	case Entry:
		return call(w, lang, ref.Path, "insert", compose.Word("0"), compose.Lit(text))
	case Text, Listbox:
		return call(w, lang, ref.Path, "insert", compose.Word("end"), compose.Lit(text))
	case Combobox:
		return call(w, lang, ref.Path, "set", compose.Lit(text))
	case Label, Button, Checkbutton, Radiobutton:
		return configure(w, lang, ref.Path, compose.Word("-text"), compose.Lit(text))
	default:
		return compose.Unsupported("text on %s", ref.Kind)
	}
}

func emitAttribute(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef, prop ir.Property) error {
	path := ref.Path
	switch prop.Name {
	case "visible":
		// handled by EmitLayout and EmitFinish
		return nil
	case "placeholder":
		if ref.Kind == Frame {
			return nil
		}
		return compose.Unsupported("placeholder on %s", ref.Kind)
	case "enabled":
		state := "normal"
		if enabled, ok := prop.Value.(bool); ok && !enabled {
			state = "disabled"
		}
		return configure(w, lang, path, compose.Words("-state", state)...)
	case "input_type":
		if stringValue(prop.Value) == "password" && ref.Kind == Entry {
			return configure(w, lang, path, compose.Word("-show"), compose.Lit("*"))
		}
		return nil
	case "value":
		switch ref.Kind {
		case Entry:
			return call(w, lang, path, "insert", compose.Word("0"), compose.Lit(stringValue(prop.Value)))
		case Scale, Combobox:
			return call(w, lang, path, "set", compose.Lit(stringValue(prop.Value)))
		}
	case "checked":
		if ref.Kind == Checkbutton || ref.Kind == Radiobutton {
			if checked, ok := prop.Value.(bool); ok && checked {
				return call(w, lang, path, "select")
			}
			return call(w, lang, path, "deselect")
		}
	case "min", "max", "step":
		if ref.Kind == Scale {
			option := map[string]string{"min": "-from", "max": "-to", "step": "-resolution"}[prop.Name]
			return configure(w, lang, path, compose.Word(option), compose.Word(stringValue(prop.Value)))
		}
		if ref.Kind == Progressbar && prop.Name == "max" {
			return configure(w, lang, path, compose.Word("-maximum"), compose.Word(stringValue(prop.Value)))
		}
	case "orientation":
		if ref.Kind == Scale || ref.Kind == Progressbar {
			orient := strings.ToLower(stringValue(prop.Value))
			if orient != "vertical" {
				orient = "horizontal"
			}
			return configure(w, lang, path, compose.Words("-orient", orient)...)
		}
	}
	return compose.Unsupported("property %q on %s", prop.Name, ref.Kind)
}

func borderArgs(b ir.Border) []compose.Arg {
	relief, ok := reliefs[strings.ToLower(b.Style)]
	if !ok {
		relief = "solid"
	}
	args := compose.Words("-borderwidth", strconv.Itoa(b.Width), "-relief", relief)
	if color, ok := opaque(b.Color); ok {
		args = append(args, compose.Word("-highlightbackground"), compose.Word(color),
			compose.Word("-highlightthickness"), compose.Word(strconv.Itoa(b.Width)))
	}
	return args
}

// FontSpec renders a font as a Tk font description list, for example
// "{Helvetica Neue} 12 bold italic". Pixel sizes are negative in Tk.
func FontSpec(f ir.Font) string {
	family := f.Family
	if family == "" {
		family = "TkDefaultFont"
	}
	if strings.ContainsAny(family, " \t") {
		family = "{" + family + "}"
	}
	parts := []string{family}

	switch f.SizeUnit {
	case normalize.UnitPercent:
	case normalize.UnitEm:
		parts = append(parts, strconv.Itoa(int(math.Round(f.Size*12))))
	case normalize.UnitPt:
		parts = append(parts, strconv.Itoa(int(math.Round(f.Size))))
	default:
		if f.Size > 0 {
			parts = append(parts, strconv.Itoa(-int(math.Round(f.Size))))
		}
	}

	if weight := strings.ToLower(f.Weight); weight == "bold" || weight == "700" || weight == "800" || weight == "900" {
		parts = append(parts, "bold")
	}
	if style := strings.ToLower(f.Style); style == "italic" || style == "oblique" {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, " ")
}

func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return number(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func number(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
