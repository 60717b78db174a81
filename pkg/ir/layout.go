package ir

import "fmt"

// LayoutType names the layout variant stored in a Layout.
type LayoutType string

const (
	LayoutPack  LayoutType = "pack"
	LayoutGrid  LayoutType = "grid"
	LayoutPlace LayoutType = "place"
)

// Layout is a tagged union: Type selects which of Pack, Grid or Place is set.
// Use NewPack, NewGrid or NewPlace to build one.
type Layout struct {
	Type  LayoutType    `json:"type" yaml:"type"`
	Pack  *PackOptions  `json:"pack,omitempty" yaml:"pack,omitempty"`
	Grid  *GridOptions  `json:"grid,omitempty" yaml:"grid,omitempty"`
	Place *PlaceOptions `json:"place,omitempty" yaml:"place,omitempty"`
}

// PackOptions stacks a widget against a side of its parent.
type PackOptions struct {
	Side   string `json:"side,omitempty" yaml:"side,omitempty"`
	Fill   string `json:"fill,omitempty" yaml:"fill,omitempty"`
	Expand bool   `json:"expand,omitempty" yaml:"expand,omitempty"`
	Anchor string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	PadX   int    `json:"pad_x,omitempty" yaml:"pad_x,omitempty"`
	PadY   int    `json:"pad_y,omitempty" yaml:"pad_y,omitempty"`
}

// GridOptions places a widget in a row/column cell.
type GridOptions struct {
	Row     int    `json:"row" yaml:"row"`
	Column  int    `json:"column" yaml:"column"`
	RowSpan int    `json:"row_span" yaml:"row_span"`
	ColSpan int    `json:"col_span" yaml:"col_span"`
	Sticky  string `json:"sticky,omitempty" yaml:"sticky,omitempty"`
}

// PlaceOptions positions a widget at absolute coordinates. Zero Width/Height
// mean "natural size".
type PlaceOptions struct {
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
	Anchor string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
}

// NewPack wraps pack options in a Layout.
func NewPack(opts PackOptions) *Layout {
	return &Layout{Type: LayoutPack, Pack: &opts}
}

// NewGrid wraps grid options in a Layout.
func NewGrid(opts GridOptions) *Layout {
	return &Layout{Type: LayoutGrid, Grid: &opts}
}

// NewPlace wraps place options in a Layout.
func NewPlace(opts PlaceOptions) *Layout {
	return &Layout{Type: LayoutPlace, Place: &opts}
}

// Validate reports whether exactly the variant named by Type is populated.
func (l Layout) Validate() error {
	set := 0
	for _, populated := range []bool{l.Pack != nil, l.Grid != nil, l.Place != nil} {
		if populated {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("layout %q has %d variants set, want exactly 1", l.Type, set)
	}

	switch l.Type {
	case LayoutPack:
		if l.Pack == nil {
			return fmt.Errorf("layout type pack without pack options")
		}
	case LayoutGrid:
		if l.Grid == nil {
			return fmt.Errorf("layout type grid without grid options")
		}
	case LayoutPlace:
		if l.Place == nil {
			return fmt.Errorf("layout type place without place options")
		}
	default:
		return fmt.Errorf("unknown layout type %q", l.Type)
	}
	return nil
}
