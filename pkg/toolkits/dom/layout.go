package dom

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
)

var packDirections = map[string]string{
	"left":   "row",
	"right":  "row-reverse",
	"bottom": "column-reverse",
}

var anchorAlignment = map[string]string{
	"n":      "flex-start",
	"w":      "flex-start",
	"nw":     "flex-start",
	"s":      "flex-end",
	"e":      "flex-end",
	"se":     "flex-end",
	"center": "center",
}

// EmitLayout attaches the element to its parent and translates the layout
// into flex, grid or absolute positioning styles.
func (Toolkit) EmitLayout(w *codewriter.Writer, lang compose.Language, ref compose.WidgetRef) error {
	variable := varName(lang, ref.Path)
	parent := RootVar
	if !ref.IsRoot() {
		parent = varName(lang, ref.ParentPath)
	}
	if err := call(w, lang, parent, "append", compose.Word(variable)); err != nil {
		return err
	}

	layout := ref.Widget.Layout
	if layout == nil {
		return nil
	}

	var styles, parentStyles [][2]string
	switch layout.Type {
	case ir.LayoutPack:
		if layout.Pack == nil {
			return compose.Unsupported("pack layout without options")
		}
		parentStyles, styles = packStyles(*layout.Pack)
	case ir.LayoutGrid:
		if layout.Grid == nil {
			return compose.Unsupported("grid layout without options")
		}
		parentStyles = [][2]string{{"display", "grid"}}
		styles = gridStyles(*layout.Grid)
	case ir.LayoutPlace:
		if layout.Place == nil {
			return compose.Unsupported("place layout without options")
		}
		parentStyles = [][2]string{{"position", "relative"}}
		styles = placeStyles(*layout.Place)
	default:
		return compose.Unsupported("layout type %q", layout.Type)
	}

	for _, style := range parentStyles {
		if err := setStyle(w, lang, parent, style[0], style[1]); err != nil {
			return err
		}
	}
	for _, style := range styles {
		if err := setStyle(w, lang, variable, style[0], style[1]); err != nil {
			return err
		}
	}
	return nil
}

func packStyles(p ir.PackOptions) (parent, child [][2]string) {
	if direction, ok := packDirections[p.Side]; ok {
		parent = append(parent, [2]string{"flex-direction", direction})
	}
	if p.Expand {
		child = append(child, [2]string{"flex", "1 1 auto"})
	}
	switch {
	case p.Fill != "" && p.Fill != "none":
		child = append(child, [2]string{"align-self", "stretch"})
	case p.Anchor != "":
		if align, ok := anchorAlignment[p.Anchor]; ok {
			child = append(child, [2]string{"align-self", align})
		}
	}
	if p.PadX > 0 || p.PadY > 0 {
		child = append(child, [2]string{"margin", px(float64(p.PadY)) + " " + px(float64(p.PadX))})
	}
	return parent, child
}

func gridStyles(g ir.GridOptions) [][2]string {
	styles := [][2]string{
		{"grid-row", gridTrack(g.Row, g.RowSpan)},
		{"grid-column", gridTrack(g.Column, g.ColSpan)},
	}
	sticky := strings.ToLower(g.Sticky)
	if sticky == "" {
		return styles
	}
	switch {
	case strings.Contains(sticky, "e") && strings.Contains(sticky, "w"):
		styles = append(styles, [2]string{"justify-self", "stretch"})
	case strings.Contains(sticky, "w"):
		styles = append(styles, [2]string{"justify-self", "start"})
	case strings.Contains(sticky, "e"):
		styles = append(styles, [2]string{"justify-self", "end"})
	}
	switch {
	case strings.Contains(sticky, "n") && strings.Contains(sticky, "s"):
		styles = append(styles, [2]string{"align-self", "stretch"})
	case strings.Contains(sticky, "n"):
		styles = append(styles, [2]string{"align-self", "start"})
	case strings.Contains(sticky, "s"):
		styles = append(styles, [2]string{"align-self", "end"})
	}
	return styles
}

// gridTrack converts a zero-based cell and span to CSS grid line syntax.
func gridTrack(index, span int) string {
	if span < 1 {
		span = 1
	}
	return strconv.Itoa(index+1) + " / span " + strconv.Itoa(span)
}

func placeStyles(p ir.PlaceOptions) [][2]string {
	styles := [][2]string{
		{"position", "absolute"},
		{"left", px(float64(p.X))},
		{"top", px(float64(p.Y))},
	}
	if p.Width > 0 {
		styles = append(styles, [2]string{"width", px(float64(p.Width))})
	}
	if p.Height > 0 {
		styles = append(styles, [2]string{"height", px(float64(p.Height))})
	}
	if p.Anchor == "center" {
		styles = append(styles, [2]string{"transform", "translate(-50%, -50%)"})
	}
	return styles
}
