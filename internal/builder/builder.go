package builder

import (
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tkgen/pkg/dedup"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// DefaultMaxDepth bounds source nesting; deeper subtrees are dropped.
const DefaultMaxDepth = 256

// DefaultGenerator is written to Document.Metadata.Generator.
const DefaultGenerator = "tkgen"

// Options configures a Builder. Zero values select defaults.
type Options struct {
	Logger        *zap.Logger
	Kinds         *kinds.Registry
	ThemeSelector theme.ThemeSelector
	ThemeName     string
	ThemeVariant  string
	BuildID       func() string
	Generator     string
	SourceName    string
	MaxDepth      int
}

// Builder converts source trees into intermediate documents.
type Builder struct {
	opts Options
}

// New constructs a Builder.
func New(opts Options) *Builder {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Kinds == nil {
		opts.Kinds = kinds.NewRegistry()
	}
	if opts.BuildID == nil {
		opts.BuildID = func() string { return ulid.Make().String() }
	}
	if opts.Generator == "" {
		opts.Generator = DefaultGenerator
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Builder{opts: opts}
}

// Build normalizes tree into a Document. Only an empty tree is an error;
// malformed values degrade to defaults and are logged.
func (b *Builder) Build(tree source.Tree) (ir.Document, error) {
	if tree.Empty() {
		return ir.Document{}, errors.New("builder: source tree has no components")
	}

	work := tree.Clone()
	st := &state{
		opts:      b.opts,
		log:       b.opts.Logger,
		tree:      work,
		tracker:   dedup.New(),
		ids:       make(map[string]struct{}),
		handlerAt: make(map[string]int),
	}

	st.doc = ir.Document{
		Format:  ir.Format,
		Version: ir.Version,
		Metadata: ir.Metadata{
			Generator: b.opts.Generator,
			Source:    b.opts.SourceName,
			BuildID:   b.opts.BuildID(),
		},
		Window:       st.resolveWindow(work.Window),
		Widgets:      []ir.Widget{},
		Handlers:     []ir.Handler{},
		DataBindings: []ir.Binding{},
	}

	for _, root := range work.Roots() {
		st.transform(root, frame{background: st.doc.Window.Background})
	}

	b.opts.Logger.Debug("builder: document built",
		zap.Int("widgets", len(st.doc.Widgets)),
		zap.Int("handlers", len(st.doc.Handlers)),
		zap.Int("bindings", len(st.doc.DataBindings)),
	)
	return st.doc, nil
}

// state is the per-call working set. It is discarded when Build returns.
type state struct {
	opts      Options
	log       *zap.Logger
	tree      source.Tree
	doc       ir.Document
	tracker   *dedup.Set
	ids       map[string]struct{}
	handlerAt map[string]int
}

// frame carries what a node receives from its parent during traversal.
type frame struct {
	parent     *source.Component
	parentID   string
	index      int
	total      int
	depth      int
	background string
}

func (st *state) transform(comp source.Component, f frame) {
	if f.depth > st.opts.MaxDepth {
		st.log.Warn("builder: nesting too deep, subtree dropped",
			zap.String("type", comp.Type),
			zap.Int("max_depth", st.opts.MaxDepth),
		)
		return
	}

	if comp.For != nil || isLoopType(comp.Type) {
		comp = st.expandLoop(comp)
	}

	sourceKind := comp.Type
	if sourceKind == "" {
		sourceKind = kinds.DefaultSourceKind
		comp.Type = sourceKind
	}

	w := ir.Widget{
		ID:         st.assignID(comp.ID),
		Kind:       st.opts.Kinds.Resolve(comp),
		SourceKind: sourceKind,
		ParentID:   f.parentID,
	}
	st.applyStyle(&w, comp, f.background)
	w.Attributes = collectAttributes(comp, w.Kind)
	if f.parent != nil {
		w.Layout = resolveLayout(comp, *f.parent, f.index, f.total)
	}
	st.extractEvents(comp, &w)
	st.extractBindings(comp, w.ID)

	st.doc.Widgets = append(st.doc.Widgets, w)

	parent := comp
	for i, child := range comp.Children {
		st.transform(child, frame{
			parent:     &parent,
			parentID:   w.ID,
			index:      i,
			total:      len(comp.Children),
			depth:      f.depth + 1,
			background: w.Background,
		})
	}
}

func (st *state) nextID(prefix string, n int) string {
	for {
		candidate := fmt.Sprintf("%s%d", prefix, n)
		if _, taken := st.ids[candidate]; !taken {
			return candidate
		}
		n++
	}
}
