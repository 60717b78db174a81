package dom

import (
	"html"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/normalize"
)

var (
	policyOnce   sync.Once
	strictPolicy *bluemonday.Policy
	richPolicy   *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		richPolicy = bluemonday.UGCPolicy()
	})
	return strictPolicy, richPolicy
}

// PlainText strips markup from text destined for a text node.
func PlainText(text string) string {
	strict, _ := policies()
	return html.UnescapeString(strict.Sanitize(text))
}

// RichHTML keeps user-generated-content safe markup only.
func RichHTML(markup string) string {
	_, rich := policies()
	return rich.Sanitize(markup)
}

// booleanAttributes map attribute names to the HTML attribute toggled on
// when the value matches.
var booleanAttributes = map[string]struct {
	html string
	when bool
}{
	"enabled": {html: "disabled", when: false},
	"checked": {html: "checked", when: true},
}

var plainAttributes = map[string]string{
	"placeholder": "placeholder",
	"value":       "value",
	"min":         "min",
	"max":         "max",
	"step":        "step",
	"tooltip":     "title",
	"orientation": "aria-orientation",
}

// EmitProperty writes inline styles, attributes or content for one property.
func (Toolkit) EmitProperty(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef, prop ir.Property) error {
	variable := varName(lang, ref.Path)

	switch prop.Name {
	case ir.PropText:
		text := stringValue(prop.Value)
		switch canonical(ref) {
		case kinds.RichText:
			return call(w, lang, variable, "insertAdjacentHTML", compose.Lit("beforeend"), compose.Lit(RichHTML(text)))
		case kinds.Entry, kinds.Checkbox, kinds.Radio, kinds.Slider:
			return setAttribute(w, lang, variable, "value", PlainText(text))
		case kinds.Image:
			return setAttribute(w, lang, variable, "alt", PlainText(text))
		case kinds.Canvas, kinds.Progress:
			return compose.Unsupported("text on %s", ref.Kind)
		default:
			return call(w, lang, variable, "append", compose.Lit(PlainText(text)))
		}

	case ir.PropBackground, ir.PropForeground:
		color, ok := cssColor(stringValue(prop.Value))
		if !ok {
			return compose.Unsupported("%s color %q", prop.Name, prop.Value)
		}
		property := "background-color"
		if prop.Name == ir.PropForeground {
			property = "color"
		}
		return setStyle(w, lang, variable, property, color)

	case ir.PropFont:
		font, ok := prop.Value.(ir.Font)
		if !ok {
			return compose.Unsupported("font value %T", prop.Value)
		}
		for _, style := range fontStyles(font) {
			if err := setStyle(w, lang, variable, style[0], style[1]); err != nil {
				return err
			}
		}
		return nil

	case ir.PropBorder:
		border, ok := prop.Value.(ir.Border)
		if !ok {
			return compose.Unsupported("border value %T", prop.Value)
		}
		return setStyle(w, lang, variable, "border", BorderCSS(border))

	case ir.PropImage:
		return setAttribute(w, lang, variable, "src", stringValue(prop.Value))

	case ir.PropWidth, ir.PropHeight:
		size, ok := prop.Value.(ir.Size)
		if !ok {
			return compose.Unsupported("%s value %T", prop.Name, prop.Value)
		}
		return setStyle(w, lang, variable, prop.Name, SizeCSS(size))
	}

	if prop.Name == "visible" {
		if visible, ok := prop.Value.(bool); ok && !visible {
			return setStyle(w, lang, variable, "display", "none")
		}
		return nil
	}
	if prop.Name == "input_type" {
		if canonical(ref) != kinds.Entry {
			return nil
		}
		return setAttribute(w, lang, variable, "type", stringValue(prop.Value))
	}
	if attr, ok := booleanAttributes[prop.Name]; ok {
		value, isBool := prop.Value.(bool)
		if !isBool {
			return compose.Unsupported("%s value %T", prop.Name, prop.Value)
		}
		if value != attr.when {
			return nil
		}
		return call(w, lang, variable, "toggleAttribute", compose.Lit(attr.html))
	}
	if name, ok := plainAttributes[prop.Name]; ok {
		return setAttribute(w, lang, variable, name, stringValue(prop.Value))
	}
	return compose.Unsupported("property %q on %s", prop.Name, ref.Kind)
}

func fontStyles(f ir.Font) [][2]string {
	var styles [][2]string
	if f.Family != "" {
		family := f.Family
		if strings.ContainsAny(family, " \t") {
			family = `"` + family + `"`
		}
		styles = append(styles, [2]string{"font-family", family})
	}
	if f.Size > 0 {
		styles = append(styles, [2]string{"font-size", SizeCSS(ir.Size{Value: f.Size, Unit: f.SizeUnit})})
	}
	if f.Weight != "" {
		styles = append(styles, [2]string{"font-weight", strings.ToLower(f.Weight)})
	}
	if f.Style != "" {
		styles = append(styles, [2]string{"font-style", strings.ToLower(f.Style)})
	}
	return styles
}

// BorderCSS renders the border shorthand, e.g. "1px solid #333".
func BorderCSS(b ir.Border) string {
	style := b.Style
	if style == "" {
		style = "solid"
	}
	parts := []string{px(float64(b.Width)), style}
	if color, ok := cssColor(b.Color); ok {
		parts = append(parts, color)
	}
	return strings.Join(parts, " ")
}

// SizeCSS renders a length; a missing unit means pixels.
func SizeCSS(s ir.Size) string {
	unit := s.Unit
	if unit == "" {
		unit = normalize.UnitPx
	}
	return number(s.Value) + unit
}

func px(v float64) string {
	return number(v) + normalize.UnitPx
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
