// Package tkgen turns loosely typed UI source trees into runnable GUI
// programs. A tree is normalized into a toolkit-agnostic intermediate
// document (tkir) and then emitted by a composed language and toolkit pair,
// for example Tcl driving Tk or JavaScript driving the browser DOM.
package tkgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/orchestrator"
	"github.com/goliatone/go-tkgen/pkg/source"
	"github.com/goliatone/go-tkgen/pkg/targets"
)

// Result is the outcome of a generation.
type Result = orchestrator.Result

// Request describes one generation; see orchestrator.Request.
type Request = orchestrator.Request

// Target names a language and toolkit pair.
type Target = targets.Target

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry returns a capability registry holding every built-in language
// and toolkit.
func NewRegistry(options ...compose.RegistryOption) *compose.Registry {
	return targets.NewRegistry(options...)
}

// ParseTarget reads "language+toolkit"; see targets.ParseTarget.
func ParseTarget(raw string) (Target, error) {
	return targets.ParseTarget(raw)
}

// Generate loads src, builds the intermediate document and emits it for
// target ("tcl+tk", "python", "js+dom", ...).
func Generate(ctx context.Context, src source.Source, target string, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source: src,
		Target: target,
	})
}

// GenerateFromTree emits an already parsed source tree.
func GenerateFromTree(ctx context.Context, tree source.Tree, target string, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Tree:   &tree,
		Target: target,
	})
}

// GenerateFromDocument emits a prebuilt intermediate document, bypassing the
// loader and builder.
func GenerateFromDocument(ctx context.Context, doc ir.Document, target string, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Document: &doc,
		Target:   target,
	})
}

// Build loads src and returns the intermediate document without emitting.
func Build(ctx context.Context, src source.Source, options ...orchestrator.Option) (ir.Document, error) {
	return orchestrator.New(options...).Build(ctx, orchestrator.Request{Source: src})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// the window background can fall back to the theme's background token.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithTheme names the theme and variant passed to the selector.
func WithTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithThemeName(name, variant)
}

// WithComposeOptions forwards emission options to every generation.
func WithComposeOptions(opts compose.Options) orchestrator.Option {
	return orchestrator.WithComposeOptions(opts)
}
