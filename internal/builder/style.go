package builder

import (
	"strings"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/normalize"
	"github.com/goliatone/go-tkgen/pkg/source"
)

const defaultFontSize = 12

var (
	textKeys       = []string{"text", "label", "content"}
	backgroundKeys = []string{"background", "backgroundColor", "bg"}
	foregroundKeys = []string{"foreground", "color", "textColor", "fg"}
	imageKeys      = []string{"src", "image", "source"}
)

// applyStyle fills the visual fields of w. inherited is the parent's already
// resolved background.
func (st *state) applyStyle(w *ir.Widget, comp source.Component, inherited string) {
	if text, ok := comp.StringProperty(textKeys...); ok {
		w.Text = text
	}

	w.Background = inherited
	if raw, ok := comp.StringProperty(backgroundKeys...); ok {
		if color, ok := normalize.NormalizeColor(raw, normalize.ProfileHex); ok && !normalize.IsTransparent(raw) {
			w.Background = color
		}
	}
	if raw, ok := comp.StringProperty(foregroundKeys...); ok {
		if color, ok := normalize.NormalizeColor(raw, normalize.ProfileHex); ok {
			w.Foreground = color
		}
	}

	if value, ok := comp.Property("width"); ok {
		w.Width = normalizeSize(value)
	}
	if value, ok := comp.Property("height"); ok {
		w.Height = normalizeSize(value)
	}
	w.Font = normalizeFont(comp)
	w.Border = normalizeBorder(comp)

	if image, ok := comp.StringProperty(imageKeys...); ok && image != "" {
		w.Image = image
	}
}

// normalizeSize accepts numbers (px), length strings and {value, unit}
// objects. Anything else is unset.
func normalizeSize(value any) *ir.Size {
	switch v := value.(type) {
	case string:
		n, unit, ok := normalize.ParseLength(v)
		if !ok {
			return nil
		}
		return &ir.Size{Value: n, Unit: unit}
	default:
		if obj, ok := source.Object(v); ok {
			n, ok := source.Number(obj["value"])
			if !ok {
				return nil
			}
			unit, _ := source.String(obj["unit"])
			if unit == "" {
				unit = normalize.UnitPx
			}
			return &ir.Size{Value: n, Unit: strings.ToLower(unit)}
		}
		if n, ok := source.Number(v); ok {
			return &ir.Size{Value: n, Unit: normalize.UnitPx}
		}
		return nil
	}
}

// normalizeFont reads the font property (string or object) and the separate
// fontFamily/fontSize/fontWeight/fontStyle properties, which win when both
// are present.
func normalizeFont(comp source.Component) *ir.Font {
	var font ir.Font
	found := false

	if value, ok := comp.Property("font"); ok {
		switch v := value.(type) {
		case string:
			font = parseFontString(v)
			found = font.Family != ""
		default:
			if obj, ok := source.Object(v); ok {
				font.Family, _ = source.String(obj["family"])
				applyFontSize(&font, obj["size"])
				font.Weight, _ = source.String(obj["weight"])
				font.Style, _ = source.String(obj["style"])
				found = true
			}
		}
	}

	if family, ok := comp.StringProperty("fontFamily", "font_family"); ok {
		font.Family = family
		found = true
	}
	if size, ok := comp.Property("fontSize", "font_size"); ok {
		applyFontSize(&font, size)
		found = true
	}
	if weight, ok := comp.StringProperty("fontWeight", "font_weight"); ok {
		font.Weight = weight
		found = true
	}
	if style, ok := comp.StringProperty("fontStyle", "font_style"); ok {
		font.Style = style
		found = true
	}

	if !found {
		return nil
	}
	if font.Size == 0 {
		font.Size = defaultFontSize
		font.SizeUnit = normalize.UnitPx
	}
	return &font
}

// parseFontString accepts "Family" or the shorthand "<size><unit> Family".
func parseFontString(raw string) ir.Font {
	trimmed := strings.TrimSpace(raw)
	fields := strings.Fields(trimmed)
	if len(fields) > 1 {
		if size, unit, ok := normalize.ParseLength(fields[0]); ok {
			return ir.Font{
				Family:   strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0])),
				Size:     size,
				SizeUnit: unit,
			}
		}
	}
	return ir.Font{Family: trimmed, Size: defaultFontSize, SizeUnit: normalize.UnitPx}
}

func applyFontSize(font *ir.Font, value any) {
	if value == nil {
		return
	}
	if s, ok := value.(string); ok {
		if size, unit, ok := normalize.ParseLength(s); ok {
			font.Size = size
			font.SizeUnit = unit
		}
		return
	}
	if n, ok := source.Number(value); ok {
		font.Size = n
		font.SizeUnit = normalize.UnitPx
	}
}

// normalizeBorder reads the border property (color string or object) and
// the separate borderWidth/borderColor/borderStyle properties.
func normalizeBorder(comp source.Component) *ir.Border {
	border := ir.Border{Width: 1, Style: "solid"}
	found := false

	if value, ok := comp.Property("border"); ok {
		switch v := value.(type) {
		case string:
			if color, ok := normalize.NormalizeColor(v, normalize.ProfileHex); ok {
				border.Color = color
				found = true
			}
		default:
			if obj, ok := source.Object(v); ok {
				if n, ok := source.Number(obj["width"]); ok {
					border.Width = int(n)
				}
				if raw, ok := source.String(obj["color"]); ok {
					if color, ok := normalize.NormalizeColor(raw, normalize.ProfileHex); ok {
						border.Color = color
					}
				}
				if style, ok := source.String(obj["style"]); ok && style != "" {
					border.Style = style
				}
				found = true
			}
		}
	}

	if n, ok := comp.NumberProperty("borderWidth", "border_width"); ok {
		border.Width = int(n)
		found = true
	}
	if raw, ok := comp.StringProperty("borderColor", "border_color"); ok {
		if color, ok := normalize.NormalizeColor(raw, normalize.ProfileHex); ok {
			border.Color = color
			found = true
		}
	}
	if style, ok := comp.StringProperty("borderStyle", "border_style"); ok && style != "" {
		border.Style = style
		found = true
	}

	if !found {
		return nil
	}
	return &border
}

// attributeKeys lists the scalar properties carried as attributes, in
// emission order.
var attributeKeys = []string{
	"placeholder", "value", "checked", "enabled", "visible",
	"min", "max", "step", "orientation", "tooltip",
}

func collectAttributes(comp source.Component, kind string) []ir.Attribute {
	var attrs []ir.Attribute
	if isInputKind(kind) {
		if inputType, ok := comp.StringProperty("inputType", "input_type", "type"); ok && inputType != "" {
			attrs = append(attrs, ir.StringAttribute("input_type", strings.ToLower(inputType)))
		}
	}
	if disabled, ok := comp.Property("disabled"); ok {
		if flag, ok := source.Bool(disabled); ok {
			attrs = append(attrs, ir.BoolAttribute("enabled", !flag))
		}
	}
	for _, key := range attributeKeys {
		value, ok := comp.Property(key)
		if !ok {
			continue
		}
		if attr, ok := toAttribute(key, value); ok {
			if key == "enabled" && hasAttribute(attrs, "enabled") {
				continue
			}
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

func toAttribute(name string, value any) (ir.Attribute, bool) {
	switch v := value.(type) {
	case bool:
		return ir.BoolAttribute(name, v), true
	case string:
		return ir.StringAttribute(name, v), true
	default:
		if n, ok := source.Number(v); ok {
			return ir.NumberAttribute(name, n), true
		}
		return ir.Attribute{}, false
	}
}

func hasAttribute(attrs []ir.Attribute, name string) bool {
	for _, attr := range attrs {
		if attr.Name == name {
			return true
		}
	}
	return false
}

func isInputKind(kind string) bool {
	switch kind {
	case kinds.Entry, kinds.Checkbox, kinds.Radio, kinds.Slider:
		return true
	default:
		return false
	}
}
