package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// extractBindings records bindings{prop: expr} and the property_bindings left
// after loop substitution, each sorted by property name.
func (st *state) extractBindings(comp source.Component, widgetID string) {
	for _, prop := range sortedKeys(comp.Bindings) {
		st.addBinding(widgetID, prop, comp.Bindings[prop])
	}

	props := make([]string, 0, len(comp.PropertyBindings))
	for prop := range comp.PropertyBindings {
		props = append(props, prop)
	}
	sort.Strings(props)
	for _, prop := range props {
		if _, dup := comp.Bindings[prop]; dup {
			continue
		}
		st.addBinding(widgetID, prop, comp.PropertyBindings[prop].SourceExpr)
	}
}

func (st *state) addBinding(widgetID, prop, expr string) {
	expr = strings.TrimSpace(expr)
	if prop == "" || expr == "" {
		return
	}
	st.doc.DataBindings = append(st.doc.DataBindings, ir.Binding{
		ID:         fmt.Sprintf("b%d", len(st.doc.DataBindings)),
		WidgetID:   widgetID,
		Property:   prop,
		Expression: expr,
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
