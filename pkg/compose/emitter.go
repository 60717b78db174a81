package compose

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-tkgen/pkg/codewriter"
	"github.com/goliatone/go-tkgen/pkg/dedup"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/templates"
)

// Result is the output of one Emit call.
type Result struct {
	Source   string
	Warnings []string
}

// Emitter is a language bound to a toolkit. It holds no per-document state
// and may be reused.
type Emitter struct {
	lang    Language
	toolkit Toolkit
	bridge  string
	opts    Options
	logger  *zap.Logger
}

func newEmitter(lang Language, tk Toolkit, opts Options) *Emitter {
	opts = opts.withDefaults(lang)
	return &Emitter{
		lang:    lang,
		toolkit: tk,
		bridge:  BridgeOf(tk),
		opts:    opts,
		logger:  opts.Logger,
	}
}

// Language returns the bound language module.
func (e *Emitter) Language() Language { return e.lang }

// Toolkit returns the bound toolkit module.
func (e *Emitter) Toolkit() Toolkit { return e.toolkit }

// Emit renders doc. Per-item failures become warnings; only bridge setup and
// teardown failures abort the call.
func (e *Emitter) Emit(doc ir.Document) (Result, error) {
	run := &emission{e: e, w: codewriter.New(e.opts.IndentUnit)}
	bridger, bridged := e.lang.(Bridger)
	bridged = bridged && e.bridge != ""

	if e.opts.IncludeComments {
		run.header(doc)
	}

	if bridged {
		if err := bridger.OpenBridge(run.w, e.bridge); err != nil {
			return Result{}, fmt.Errorf("compose: open %s bridge: %w", e.bridge, err)
		}
		run.w.Blank()
	}

	if setup, ok := e.toolkit.(WindowSetup); ok {
		run.section("Window")
		run.try("window setup", func() error {
			return setup.EmitWindow(run.w, e.lang, doc.Window)
		}, zap.String("title", doc.Window.Title))
		run.w.Blank()
	}

	refs := e.resolveWidgets(doc, run.warn)
	failed := make(map[string]bool)

	run.section("Widgets")
	for _, ref := range refs {
		ref := ref
		created := run.try("widget creation", func() error {
			return e.toolkit.EmitWidgetCreation(run.w, e.lang, ref)
		}, zap.String("widget", ref.ID), zap.String("kind", ref.Kind))
		if !created {
			failed[ref.ID] = true
			continue
		}
		for _, prop := range ref.Widget.Properties() {
			prop := prop
			run.try("property", func() error {
				return e.toolkit.EmitProperty(run.w, e.lang, ref, prop)
			}, zap.String("widget", ref.ID), zap.String("property", prop.Name))
		}
		run.try("layout", func() error {
			return e.toolkit.EmitLayout(run.w, e.lang, ref)
		}, zap.String("widget", ref.ID))
	}

	if e.opts.IncludeComments && len(doc.DataBindings) > 0 {
		run.w.Blank()
		run.section("Data Bindings")
		for _, binding := range doc.DataBindings {
			run.comment(fmt.Sprintf("%s.%s <- %s", binding.WidgetID, binding.Property, binding.Expression))
		}
	}

	if len(doc.Handlers) > 0 || hasEvents(refs) {
		run.w.Blank()
		run.section("Event Handlers")
		names := run.procedureNames(doc)
		run.procedures(doc, names)
		run.bindings(doc, refs, failed, names)
	}

	if finisher, ok := e.toolkit.(Finisher); ok {
		var roots []WidgetRef
		for _, ref := range refs {
			if ref.IsRoot() && !failed[ref.ID] {
				roots = append(roots, ref)
			}
		}
		run.w.Blank()
		run.try("finish", func() error {
			return finisher.EmitFinish(run.w, e.lang, roots)
		})
	}

	if bridged {
		if err := bridger.CloseBridge(run.w, e.bridge); err != nil {
			return Result{}, fmt.Errorf("compose: close %s bridge: %w", e.bridge, err)
		}
	}

	return Result{Source: run.w.String(), Warnings: run.warnings}, nil
}

type emission struct {
	e        *Emitter
	w        *codewriter.Writer
	warnings []string
}

func (run *emission) warn(msg string, fields ...zap.Field) {
	run.e.logger.Warn(msg, fields...)
	run.warnings = append(run.warnings, describe(msg, fields))
}

// try runs fn, discarding its partial output and recording a warning when it
// fails.
func (run *emission) try(item string, fn func() error, fields ...zap.Field) bool {
	mark := run.w.Mark()
	if err := fn(); err != nil {
		run.w.Rollback(mark)
		run.warn("compose: "+item+" skipped", append(fields, zap.Error(err))...)
		return false
	}
	return true
}

func (run *emission) comment(text string) {
	run.try("comment", func() error {
		return run.e.lang.EmitComment(run.w, text)
	})
}

func (run *emission) section(title string) {
	if run.e.opts.IncludeComments {
		run.comment(title)
	}
}

func (run *emission) header(doc ir.Document) {
	data := map[string]any{
		"title":     doc.Window.Title,
		"generator": run.e.opts.Generator,
		"language":  run.e.lang.Name(),
		"toolkit":   run.e.toolkit.Name(),
		"source":    doc.Metadata.Source,
		"build_id":  doc.Metadata.BuildID,
		"widgets":   len(doc.Widgets),
		"handlers":  len(doc.Handlers),
	}

	engine, err := templates.Default()
	if err != nil {
		run.warn("compose: header skipped", zap.Error(err))
		return
	}
	var banner string
	if run.e.opts.HeaderTemplate != "" {
		banner, err = engine.RenderString(run.e.opts.HeaderTemplate, data)
	} else {
		banner, err = engine.RenderTemplate(templates.HeaderTemplate, data)
	}
	if err != nil {
		run.warn("compose: header skipped", zap.Error(err))
		return
	}

	for _, line := range strings.Split(banner, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			run.comment(line)
		}
	}
	run.w.Blank()
}

// procedureNames assigns every handler id its procedure identifier. Handlers
// sharing a name share a procedure; distinct names that reduce to the same
// identifier get a numeric suffix.
func (run *emission) procedureNames(doc ir.Document) map[string]string {
	byHandler := make(map[string]string, len(doc.Handlers))
	byName := make(map[string]string, len(doc.Handlers))
	taken := dedup.New()
	for _, handler := range doc.Handlers {
		key := strings.TrimSpace(handler.Name)
		if key == "" {
			key = handler.ID
		}
		if proc, ok := byName[key]; ok {
			byHandler[handler.ID] = proc
			continue
		}
		base := Identifier(run.e.lang, ProcedureName(handler.Name, handler.ID))
		proc := base
		for n := 2; !taken.MarkNew(proc); n++ {
			proc = base + "_" + strconv.Itoa(n)
		}
		if proc != base {
			run.warn("compose: procedure name taken, renamed",
				zap.String("handler", key),
				zap.String("procedure", proc),
			)
		}
		byName[key] = proc
		byHandler[handler.ID] = proc
	}
	return byHandler
}

// procedures emits each handler procedure once.
func (run *emission) procedures(doc ir.Document, names map[string]string) {
	emitted := dedup.New()
	for _, handler := range doc.Handlers {
		proc := names[handler.ID]
		if !emitted.MarkNew(proc) {
			continue
		}
		body, ok := run.e.implementation(handler)
		if !ok {
			run.warn("compose: handler has no implementation, emitting stub",
				zap.String("handler", proc),
				zap.String("language", run.e.lang.Name()),
			)
		}
		run.try("procedure", func() error {
			return run.e.lang.EmitProcedure(run.w, proc, []string{"event"}, body)
		}, zap.String("handler", proc))
	}
}

func (run *emission) bindings(doc ir.Document, refs []WidgetRef, failed map[string]bool, names map[string]string) {
	for _, ref := range refs {
		if failed[ref.ID] {
			continue
		}
		for _, ev := range ref.Widget.Events {
			handler, ok := doc.Handler(ev.HandlerID)
			if !ok {
				run.warn("compose: event references unknown handler",
					zap.String("widget", ref.ID),
					zap.String("handler", ev.HandlerID),
				)
				continue
			}
			proc := names[handler.ID]
			binding := EventRef{
				Widget:    ref,
				Event:     ev.Event,
				Handler:   handler,
				Procedure: proc,
				Callback:  run.e.callback(proc),
			}
			run.try("event binding", func() error {
				return run.e.toolkit.EmitEventBinding(run.w, run.e.lang, binding)
			}, zap.String("widget", ref.ID), zap.String("event", ev.Event))
		}
	}
}

func (e *Emitter) callback(proc string) Arg {
	if bridger, ok := e.lang.(Bridger); ok && e.bridge != "" {
		return bridger.CallbackRef(e.bridge, proc)
	}
	return Expr(proc)
}

// implementation picks the handler body for the bound language, trying its
// aliases in order.
func (e *Emitter) implementation(h ir.Handler) (string, bool) {
	if len(h.Implementations) == 0 {
		return "", false
	}
	names := []string{e.lang.Name()}
	if aliased, ok := e.lang.(Aliased); ok {
		names = append(names, aliased.Aliases()...)
	}
	for _, name := range names {
		for key, body := range h.Implementations {
			if strings.EqualFold(strings.TrimSpace(key), name) {
				return body, true
			}
		}
	}
	return "", false
}

func hasEvents(refs []WidgetRef) bool {
	for _, ref := range refs {
		if len(ref.Widget.Events) > 0 {
			return true
		}
	}
	return false
}

// ProcedureName turns a handler name into an identifier every supported
// language accepts. fallback is used when name has no usable characters.
func ProcedureName(name, fallback string) string {
	clean := func(raw string) string {
		var b strings.Builder
		for _, r := range strings.TrimSpace(raw) {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				b.WriteRune(r)
			} else {
				b.WriteByte('_')
			}
		}
		out := strings.Trim(b.String(), "_")
		if out != "" && unicode.IsDigit(rune(out[0])) {
			out = "on_" + out
		}
		return out
	}
	if out := clean(name); out != "" {
		return out
	}
	if out := clean(fallback); out != "" {
		return out
	}
	return "handler"
}

func describe(msg string, fields []zap.Field) string {
	if len(fields) == 0 {
		return msg
	}
	enc := zapcore.NewMapObjectEncoder()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		field.AddTo(enc)
		parts = append(parts, fmt.Sprintf("%s=%v", field.Key, enc.Fields[field.Key]))
	}
	return msg + ": " + strings.Join(parts, " ")
}
