package compose

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
)

// Path defaults for toolkits without a PathStyle.
const (
	DefaultPathSeparator = "."
	DefaultPathPrefix    = ""
)

type pathStyle struct {
	separator      string
	prefix         string
	ancestorsFirst bool
}

func stylesOf(tk Toolkit) pathStyle {
	style := pathStyle{separator: DefaultPathSeparator, prefix: DefaultPathPrefix}
	if ps, ok := tk.(PathStyle); ok {
		if sep := ps.PathSeparator(); sep != "" {
			style.separator = sep
		}
		style.prefix = ps.PathPrefix()
		style.ancestorsFirst = ps.AncestorsFirst()
	}
	return style
}

// resolveWidgets computes every widget's path and returns the refs in
// emission order. Anomalies are reported through warn and never loop.
func (e *Emitter) resolveWidgets(doc ir.Document, warn func(msg string, fields ...zap.Field)) []WidgetRef {
	style := stylesOf(e.toolkit)

	index := make(map[string]int, len(doc.Widgets))
	for i, w := range doc.Widgets {
		if _, dup := index[w.ID]; dup {
			warn("compose: duplicate widget id, later widget ignored for lookups", zap.String("widget", w.ID))
			continue
		}
		index[w.ID] = i
	}

	refs := make([]WidgetRef, 0, len(doc.Widgets))
	for i := range doc.Widgets {
		w := doc.Widgets[i]
		segments, parent, depth, reason := e.walk(doc, index, w)

		path := style.prefix + strings.Join(segments, style.separator)
		if reason == "" && len(path) > e.opts.MaxPathLength {
			reason = "path too long"
		}
		if reason != "" {
			warn("compose: widget path unresolved, using flat id",
				zap.String("widget", w.ID),
				zap.String("reason", reason),
			)
			path = style.prefix + w.ID
			parent = nil
			depth = 0
			segments = []string{w.ID}
		}

		ref := WidgetRef{
			Path:   path,
			ID:     w.ID,
			Kind:   e.toolkit.MapWidgetKind(canonicalKind(w)),
			Depth:  depth,
			Widget: w,
		}
		if parent != nil {
			ref.Parent = parent
			ref.ParentPath = style.prefix + strings.Join(segments[:len(segments)-1], style.separator)
		}
		refs = append(refs, ref)
	}

	if style.ancestorsFirst {
		sort.SliceStable(refs, func(i, j int) bool {
			return refs[i].Depth < refs[j].Depth
		})
	}

	if e.opts.Verbose {
		for i, ref := range refs {
			e.logger.Debug("compose: emission order",
				zap.Int("position", i),
				zap.String("widget", ref.ID),
				zap.String("path", ref.Path),
				zap.Int("depth", ref.Depth),
			)
		}
	}
	return refs
}

// walk follows parent_id links from w. It returns the path segments from the
// outermost reachable ancestor down to w, w's parent (nil at the top or when
// the parent is missing), the depth, and a non-empty reason when the chain is
// malformed.
func (e *Emitter) walk(doc ir.Document, index map[string]int, w ir.Widget) ([]string, *ir.Widget, int, string) {
	segments := []string{w.ID}
	visited := map[string]struct{}{w.ID: {}}

	var parent *ir.Widget
	depth := 0
	current := w
	for current.ParentID != "" {
		pid := current.ParentID
		if pid == current.ID {
			return nil, nil, 0, "widget is its own parent"
		}
		idx, ok := index[pid]
		if !ok {
			e.logger.Debug("compose: dangling parent id", zap.String("widget", current.ID), zap.String("parent", pid))
			break
		}
		if _, seen := visited[pid]; seen {
			return nil, nil, 0, "parent cycle"
		}
		depth++
		if depth > e.opts.MaxDepth {
			return nil, nil, 0, "depth limit exceeded"
		}
		visited[pid] = struct{}{}
		segments = append(segments, pid)
		if parent == nil {
			p := doc.Widgets[idx]
			parent = &p
		}
		current = doc.Widgets[idx]
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments, parent, depth, ""
}

func canonicalKind(w ir.Widget) string {
	if w.Kind != "" {
		return w.Kind
	}
	return kinds.Canonical(w.SourceKind)
}
