package builder

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/source"
)

const (
	defaultItemName  = "item"
	defaultIndexName = "index"
)

func isLoopType(kind string) bool {
	return strings.EqualFold(kind, "For") || strings.EqualFold(kind, "ForEach")
}

// expandLoop unrolls a compile-time loop: the first child is duplicated once
// per item with item/index property bindings substituted, and the loop node
// becomes a plain container. comp is already a private copy.
func (st *state) expandLoop(comp source.Component) source.Component {
	loop := comp.For
	comp.For = nil
	comp.Type = kinds.DefaultSourceKind

	if loop == nil {
		st.log.Warn("builder: loop without a for definition", zap.String("id", comp.ID))
		return comp
	}
	itemName := strings.TrimSpace(loop.ItemName)
	if itemName == "" {
		itemName = defaultItemName
	}
	indexName := strings.TrimSpace(loop.IndexName)
	if indexName == "" {
		indexName = defaultIndexName
	}

	items, ok := st.loopItems(loop.Source)
	if !ok {
		st.log.Warn("builder: loop source could not be resolved", zap.String("item", itemName))
		comp.Children = nil
		return comp
	}
	if len(comp.Children) == 0 {
		st.log.Warn("builder: loop has no template child", zap.String("item", itemName))
		return comp
	}

	template := comp.Children[0]
	expanded := make([]source.Component, 0, len(items))
	for i, item := range items {
		clone := template.Clone()
		if clone.ID != "" {
			clone.ID = clone.ID + "_" + strconv.Itoa(i)
		}
		applyLoopBindings(&clone, itemName, indexName, item, i)
		expanded = append(expanded, clone)
	}
	comp.Children = expanded
	return comp
}

func (st *state) loopItems(src *source.ForSource) ([]any, bool) {
	if src == nil {
		return nil, false
	}
	if src.Items != nil {
		return src.Items, true
	}
	if strings.TrimSpace(src.LiteralJSON) != "" {
		return decodeItems(src.LiteralJSON)
	}
	if expr := strings.TrimSpace(src.Expression); expr != "" {
		name, path, _ := strings.Cut(expr, ".")
		decl, ok := st.tree.Constant(name)
		if !ok {
			return nil, false
		}
		var value any
		switch {
		case decl.ValueJSON != "":
			if err := json.Unmarshal([]byte(decl.ValueJSON), &value); err != nil {
				return nil, false
			}
		case decl.Value != nil:
			if s, ok := decl.Value.(string); ok {
				if err := json.Unmarshal([]byte(s), &value); err != nil {
					return nil, false
				}
			} else {
				value = source.CloneValue(decl.Value)
			}
		default:
			return nil, false
		}
		if path != "" {
			value, ok = lookupPath(value, path)
			if !ok {
				return nil, false
			}
		}
		items, ok := value.([]any)
		return items, ok
	}
	return nil, false
}

func decodeItems(raw string) ([]any, bool) {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	return items, true
}

// applyLoopBindings substitutes property bindings that reference the loop
// item or index, then recurses into children. Other bindings are kept.
func applyLoopBindings(comp *source.Component, itemName, indexName string, item any, index int) {
	for prop, binding := range comp.PropertyBindings {
		value, ok := resolveLoopExpr(binding.SourceExpr, itemName, indexName, item, index)
		if !ok {
			continue
		}
		if comp.Properties == nil {
			comp.Properties = make(map[string]any)
		}
		comp.Properties[prop] = value
		delete(comp.PropertyBindings, prop)
	}
	if len(comp.PropertyBindings) == 0 {
		comp.PropertyBindings = nil
	}
	for i := range comp.Children {
		applyLoopBindings(&comp.Children[i], itemName, indexName, item, index)
	}
}

func resolveLoopExpr(expr, itemName, indexName string, item any, index int) (any, bool) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == indexName:
		return index, true
	case expr == itemName:
		return scalar(item)
	case strings.HasPrefix(expr, itemName+"."), strings.HasPrefix(expr, itemName+"["):
		value, ok := lookupPath(item, strings.TrimPrefix(expr[len(itemName):], "."))
		if !ok {
			return nil, false
		}
		return scalar(value)
	default:
		return nil, false
	}
}

// lookupPath walks "name", "a.b", "colors[0]" or "colors.0" through decoded
// JSON values.
func lookupPath(value any, path string) (any, bool) {
	path = strings.NewReplacer("[", ".", "]", "").Replace(path)
	current := value
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}
		switch node := current.(type) {
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			obj, ok := source.Object(node)
			if !ok {
				return nil, false
			}
			next, ok := obj[segment]
			if !ok {
				return nil, false
			}
			current = next
		}
	}
	return current, true
}

func scalar(value any) (any, bool) {
	switch v := value.(type) {
	case string, bool:
		return v, true
	default:
		if n, ok := source.Number(v); ok {
			return n, true
		}
		return nil, false
	}
}
