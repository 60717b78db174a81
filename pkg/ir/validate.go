package ir

import (
	"errors"
	"fmt"
)

// Validate checks the structural rules a well-formed document follows: the
// format tag, unique non-empty ids, single-variant layouts and resolvable
// widget/handler references. Parent cycles are not reported here; the
// composer tolerates them. All problems are joined into one error.
func (d Document) Validate() error {
	var errs []error
	if d.Format != Format {
		errs = append(errs, fmt.Errorf("ir: format %q, want %q", d.Format, Format))
	}

	widgets := make(map[string]struct{}, len(d.Widgets))
	for i, w := range d.Widgets {
		if w.ID == "" {
			errs = append(errs, fmt.Errorf("ir: widget %d has no id", i))
			continue
		}
		if _, dup := widgets[w.ID]; dup {
			errs = append(errs, fmt.Errorf("ir: duplicate widget id %q", w.ID))
		}
		widgets[w.ID] = struct{}{}
		if w.Layout != nil {
			if err := w.Layout.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("ir: widget %q: %w", w.ID, err))
			}
		}
	}

	handlers := make(map[string]struct{}, len(d.Handlers))
	for i, h := range d.Handlers {
		if h.ID == "" {
			errs = append(errs, fmt.Errorf("ir: handler %d has no id", i))
			continue
		}
		if _, dup := handlers[h.ID]; dup {
			errs = append(errs, fmt.Errorf("ir: duplicate handler id %q", h.ID))
		}
		handlers[h.ID] = struct{}{}
		if _, ok := widgets[h.WidgetID]; h.WidgetID != "" && !ok {
			errs = append(errs, fmt.Errorf("ir: handler %q references unknown widget %q", h.ID, h.WidgetID))
		}
	}

	for _, w := range d.Widgets {
		for _, ev := range w.Events {
			if _, ok := handlers[ev.HandlerID]; !ok {
				errs = append(errs, fmt.Errorf("ir: widget %q event %q references unknown handler %q", w.ID, ev.Event, ev.HandlerID))
			}
		}
	}

	for _, b := range d.DataBindings {
		if _, ok := widgets[b.WidgetID]; !ok {
			errs = append(errs, fmt.Errorf("ir: binding %q references unknown widget %q", b.ID, b.WidgetID))
		}
	}

	return errors.Join(errs...)
}
