package builder

import (
	"strings"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// Parent kinds with dedicated pack defaults.
const (
	parentRow    = "row"
	parentColumn = "column"
	parentCenter = "center"
)

var (
	mainAxisKeys  = []string{"mainAxisAlignment", "justifyContent", "justify", "mainAlign"}
	crossAxisKeys = []string{"crossAxisAlignment", "alignItems", "align", "crossAlign"}
)

// resolveLayout applies the layout priority chain: absolute x/y wins, then a
// grid row, then pack defaults derived from the parent kind. index and total
// describe the child's position among its siblings.
func resolveLayout(comp, parent source.Component, index, total int) *ir.Layout {
	if place, ok := resolvePlace(comp); ok {
		return ir.NewPlace(place)
	}
	if grid, ok := resolveGrid(comp); ok {
		return ir.NewGrid(grid)
	}
	return ir.NewPack(resolvePack(comp, parent, index, total))
}

func resolvePlace(comp source.Component) (ir.PlaceOptions, bool) {
	x, hasX := comp.LayoutNumber("x", "left")
	y, hasY := comp.LayoutNumber("y", "top")
	if !hasX || !hasY {
		return ir.PlaceOptions{}, false
	}

	place := ir.PlaceOptions{X: int(x), Y: int(y)}
	place.Width = pixelExtent(comp, "width")
	place.Height = pixelExtent(comp, "height")
	if anchor, ok := comp.LayoutString("anchor"); ok {
		place.Anchor = strings.ToLower(anchor)
	}
	return place, true
}

// pixelExtent reads an explicit width/height for place layouts. Only pixel
// values carry over; relative sizes are left to the widget properties.
func pixelExtent(comp source.Component, key string) int {
	value, ok := comp.LayoutValue(key)
	if !ok {
		return 0
	}
	size := normalizeSize(value)
	if size == nil || size.Unit != "px" || size.Value <= 0 {
		return 0
	}
	return int(size.Value)
}

func resolveGrid(comp source.Component) (ir.GridOptions, bool) {
	row, ok := comp.LayoutNumber("row")
	if !ok {
		return ir.GridOptions{}, false
	}

	grid := ir.GridOptions{Row: int(row), RowSpan: 1, ColSpan: 1}
	if column, ok := comp.LayoutNumber("column", "col"); ok {
		grid.Column = int(column)
	}
	if span, ok := comp.LayoutNumber("rowspan", "row_span", "rowSpan"); ok && span >= 1 {
		grid.RowSpan = int(span)
	}
	if span, ok := comp.LayoutNumber("columnspan", "col_span", "colSpan", "column_span"); ok && span >= 1 {
		grid.ColSpan = int(span)
	}
	if sticky, ok := comp.LayoutString("sticky"); ok {
		grid.Sticky = strings.ToLower(sticky)
	}
	return grid, true
}

func resolvePack(comp, parent source.Component, index, total int) ir.PackOptions {
	var pack ir.PackOptions
	parentKind := strings.ToLower(parent.Type)

	switch parentKind {
	case parentRow:
		pack.Side = "left"
	case parentColumn:
		pack.Side = "top"
	case parentCenter:
		pack.Expand = true
		pack.Anchor = "center"
		pack.Fill = "both"
	default:
		pack.Side = "top"
		pack.Fill = "both"
		pack.Expand = true
	}

	if parentKind == parentRow || parentKind == parentColumn {
		applyMainAxis(&pack, parent, parentKind)
		applyCrossAxis(&pack, parent, parentKind)
	}

	applyPadding(&pack, comp)
	if index > 0 && total > 1 {
		applyGap(&pack, comp, parent, parentKind)
	}
	return pack
}

func applyMainAxis(pack *ir.PackOptions, parent source.Component, parentKind string) {
	align, ok := parent.StringProperty(mainAxisKeys...)
	if !ok {
		return
	}
	switch normalizeAlignment(align) {
	case "center":
		pack.Expand = true
		pack.Anchor = "center"
	case "end":
		if parentKind == parentRow {
			pack.Side = "right"
		} else {
			pack.Side = "bottom"
		}
	case "spacebetween", "spacearound", "spaceevenly":
		pack.Fill = "both"
		pack.Expand = true
	}
}

func applyCrossAxis(pack *ir.PackOptions, parent source.Component, parentKind string) {
	align, ok := parent.StringProperty(crossAxisKeys...)
	if !ok {
		return
	}
	row := parentKind == parentRow
	switch normalizeAlignment(align) {
	case "center":
		pack.Anchor = "center"
	case "start":
		if row {
			pack.Anchor = "n"
		} else {
			pack.Anchor = "w"
		}
	case "end":
		if row {
			pack.Anchor = "s"
		} else {
			pack.Anchor = "e"
		}
	case "stretch":
		if row {
			pack.Fill = "y"
		} else {
			pack.Fill = "x"
		}
	}
}

// normalizeAlignment folds "space-between", "spaceBetween", "flex-start" and
// friends into a single spelling.
func normalizeAlignment(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.NewReplacer("-", "", "_", "", " ", "").Replace(value)
	value = strings.TrimPrefix(value, "flex")
	return value
}

// applyPadding reads padding as a number (both axes) or an {x, y} object.
func applyPadding(pack *ir.PackOptions, comp source.Component) {
	value, ok := comp.LayoutValue("padding")
	if !ok {
		return
	}
	if n, ok := source.Number(value); ok {
		pack.PadX = int(n)
		pack.PadY = int(n)
		return
	}
	if obj, ok := source.Object(value); ok {
		if n, ok := source.Number(obj["x"]); ok {
			pack.PadX = int(n)
		}
		if n, ok := source.Number(obj["y"]); ok {
			pack.PadY = int(n)
		}
	}
}

// applyGap spaces siblings along the parent's main axis. The gap is read from
// the parent, falling back to the child.
func applyGap(pack *ir.PackOptions, comp, parent source.Component, parentKind string) {
	gap, ok := parent.NumberProperty("gap", "spacing")
	if !ok {
		gap, ok = comp.NumberProperty("gap")
	}
	if !ok || gap <= 0 {
		return
	}
	switch parentKind {
	case parentRow:
		pack.PadX = int(gap)
	case parentColumn:
		pack.PadY = int(gap)
	}
}
