package builder

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/source"
)

type eventBinding struct {
	event   string
	handler string
	impls   map[string]string
}

// extractEvents turns the component's events into handler records. The dedup
// tracker keeps one handler per logical name; later bindings point at the
// existing record and contribute any implementations it lacks.
func (st *state) extractEvents(comp source.Component, w *ir.Widget) {
	for _, binding := range collectEventBindings(comp) {
		event := strings.ToLower(strings.TrimSpace(binding.event))
		if event == "" {
			st.log.Warn("builder: event without a name ignored", zap.String("widget", w.ID))
			continue
		}
		name := strings.TrimSpace(binding.handler)
		if name == "" {
			name = w.ID + "_" + event
		}

		impls := mergeImplementations(binding.impls, st.tree.Function(name))

		if st.tracker.Contains(name) {
			idx := st.handlerAt[name]
			existing := &st.doc.Handlers[idx]
			existing.Implementations = mergeImplementations(existing.Implementations, impls)
			w.Events = append(w.Events, ir.EventRef{Event: event, HandlerID: existing.ID})
			continue
		}

		st.tracker.Mark(name)
		handler := ir.Handler{
			ID:              fmt.Sprintf("h%d", len(st.doc.Handlers)),
			Name:            name,
			EventKind:       event,
			WidgetID:        w.ID,
			Implementations: impls,
		}
		st.handlerAt[name] = len(st.doc.Handlers)
		st.doc.Handlers = append(st.doc.Handlers, handler)
		w.Events = append(w.Events, ir.EventRef{Event: event, HandlerID: handler.ID})
	}
}

// collectEventBindings gathers the events list followed by on<Event>
// property shorthands in key order.
func collectEventBindings(comp source.Component) []eventBinding {
	var out []eventBinding
	for _, ev := range comp.Events {
		out = append(out, eventBinding{event: ev.Event, handler: ev.Handler, impls: ev.Implementations})
	}

	var keys []string
	for key := range comp.Properties {
		if eventName(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		binding := eventBinding{event: eventName(key)}
		switch v := comp.Properties[key].(type) {
		case string:
			binding.handler = v
		default:
			obj, ok := source.Object(v)
			if !ok {
				continue
			}
			binding.handler, _ = source.String(obj["handler"])
			if binding.handler == "" {
				binding.handler, _ = source.String(obj["name"])
			}
			if impls, ok := source.Object(obj["implementations"]); ok {
				binding.impls = make(map[string]string, len(impls))
				for lang, body := range impls {
					if s, ok := source.String(body); ok {
						binding.impls[lang] = s
					}
				}
			}
		}
		out = append(out, binding)
	}
	return out
}

// eventName returns "click" for "onClick" and "" for keys that are not event
// shorthands.
func eventName(key string) string {
	if len(key) <= 2 || !strings.HasPrefix(key, "on") {
		return ""
	}
	rest := []rune(key[2:])
	if !unicode.IsUpper(rest[0]) {
		return ""
	}
	return strings.ToLower(string(rest))
}

// mergeImplementations returns base plus the languages only extra defines.
// The result is nil when both inputs are empty.
func mergeImplementations(base, extra map[string]string) map[string]string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(extra))
	for lang, body := range base {
		out[normalizeLanguage(lang)] = body
	}
	for lang, body := range extra {
		key := normalizeLanguage(lang)
		if _, ok := out[key]; !ok {
			out[key] = body
		}
	}
	return out
}

func normalizeLanguage(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
