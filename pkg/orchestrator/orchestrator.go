package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-tkgen/internal/loader"
	"github.com/goliatone/go-tkgen/pkg/builder"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/source"
	"github.com/goliatone/go-tkgen/pkg/targets"
)

// DefaultTarget is used when a request names neither a target nor a
// language.
const DefaultTarget = "tcl+tk"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects the capability registry used to compose emitters.
func WithRegistry(registry *compose.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithBuilder injects a fixed builder. Without one, a builder is created per
// request so document metadata records the request's source.
func WithBuilder(b builder.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = b
	}
}

// WithComposeOptions sets the emission options applied to every request.
func WithComposeOptions(opts compose.Options) Option {
	return func(o *Orchestrator) {
		o.composeOptions = opts
	}
}

// WithLogger routes warnings from every stage to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThemeSelector supplies the theme selector handed to the default
// builder.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeName names the theme and variant handed to the default builder.
func WithThemeName(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithTreeTransformer registers a Transformer that rewrites the source tree
// before it is built.
func WithTreeTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that run against the built document
// before emission.
func WithDecorators(decorators ...builder.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithDefaultTarget overrides the target used when a request names none.
func WithDefaultTarget(target string) Option {
	return func(o *Orchestrator) {
		o.defaultTarget = target
	}
}

// Orchestrator coordinates the full pipeline from source payload to emitted
// program. Missing collaborators are filled with the built-in
// implementations.
type Orchestrator struct {
	loader         source.Loader
	registry       *compose.Registry
	builder        builder.Builder
	composeOptions compose.Options
	logger         *zap.Logger
	themeSelector  theme.ThemeSelector
	themeName      string
	themeVariant   string
	transformer    Transformer
	decorators     []builder.Decorator
	defaultTarget  string
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:        zap.NewNop(),
		defaultTarget: DefaultTarget,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = targets.NewRegistry(compose.WithRegistryLogger(o.logger))
	}
	if o.composeOptions.Logger == nil {
		o.composeOptions.Logger = o.logger
	}
	return o
}

// Registry exposes the capability registry so callers can add modules.
func (o *Orchestrator) Registry() *compose.Registry {
	return o.registry
}

// Request describes one generation. The pipeline starts from the most
// processed input supplied: Document, then Tree, then Payload, then Source.
type Request struct {
	// Source identifies where the source tree lives.
	Source source.Source

	// Payload carries raw source bytes for inline sources. Source, when set,
	// only names the payload.
	Payload []byte

	// Tree bypasses loading and parsing.
	Tree *source.Tree

	// Document bypasses building.
	Document *ir.Document

	// Target is "language+toolkit". Language and Toolkit win when set.
	Target   string
	Language string
	Toolkit  string
}

// Result is the outcome of a generation.
type Result struct {
	Target   targets.Target
	Document ir.Document
	Source   string
	Warnings []string
}

// Generate runs load, parse, build, decorate, compose and emit.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	target, err := o.resolveTarget(req)
	if err != nil {
		return Result{}, err
	}
	emitter, err := o.registry.Compose(target.Language, target.Toolkit, o.composeOptions)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: compose %s: %w", target, err)
	}

	doc, err := o.Build(ctx, req)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	out, err := emitter.Emit(doc)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: emit %s: %w", target, err)
	}

	return Result{
		Target:   target,
		Document: doc,
		Source:   out.Source,
		Warnings: out.Warnings,
	}, nil
}

// Build runs the pipeline up to the decorated intermediate document.
func (o *Orchestrator) Build(ctx context.Context, req Request) (ir.Document, error) {
	if ctx == nil {
		return ir.Document{}, errors.New("orchestrator: context is required")
	}
	if req.Document != nil {
		doc := req.Document.Clone()
		if err := o.applyDecorators(&doc); err != nil {
			return ir.Document{}, err
		}
		return doc, nil
	}

	tree, name, err := o.resolveTree(ctx, req)
	if err != nil {
		return ir.Document{}, err
	}
	if err := o.applyTransformer(ctx, &tree); err != nil {
		return ir.Document{}, err
	}

	if err := ctx.Err(); err != nil {
		return ir.Document{}, err
	}
	doc, err := o.builderFor(name).Build(tree)
	if err != nil {
		return ir.Document{}, fmt.Errorf("orchestrator: build document: %w", err)
	}
	if err := o.applyDecorators(&doc); err != nil {
		return ir.Document{}, err
	}
	return doc, nil
}

func (o *Orchestrator) resolveTree(ctx context.Context, req Request) (source.Tree, string, error) {
	name := ""
	if req.Source != nil {
		name = req.Source.Location()
	}
	if req.Tree != nil {
		return req.Tree.Clone(), name, nil
	}

	var (
		doc source.Document
		err error
	)
	switch {
	case len(req.Payload) > 0:
		origin := req.Source
		if origin == nil {
			origin = source.SourceInline("inline")
			name = origin.Location()
		}
		doc, err = source.NewDocument(origin, req.Payload)
		if err != nil {
			return source.Tree{}, "", fmt.Errorf("orchestrator: load source: %w", err)
		}
	case req.Source != nil:
		if err := ctx.Err(); err != nil {
			return source.Tree{}, "", err
		}
		doc, err = o.loader.Load(ctx, req.Source)
		if err != nil {
			return source.Tree{}, "", fmt.Errorf("orchestrator: load source: %w", err)
		}
	default:
		return source.Tree{}, "", errors.New("orchestrator: source, payload, tree or document is required")
	}

	if err := ctx.Err(); err != nil {
		return source.Tree{}, "", err
	}
	tree, _, err := doc.Parse()
	if err != nil {
		return source.Tree{}, "", fmt.Errorf("orchestrator: parse source: %w", err)
	}
	return tree, name, nil
}

func (o *Orchestrator) resolveTarget(req Request) (targets.Target, error) {
	var (
		target targets.Target
		err    error
	)
	switch {
	case req.Language != "":
		target, err = targets.Resolve(req.Language, req.Toolkit)
	case req.Target != "":
		target, err = targets.ParseTarget(req.Target)
		if err == nil && req.Toolkit != "" {
			target.Toolkit = compose.NormalizeName(req.Toolkit)
		}
	default:
		target, err = targets.ParseTarget(o.defaultTarget)
	}
	if err != nil {
		return targets.Target{}, fmt.Errorf("orchestrator: %w", err)
	}
	return target, nil
}

func (o *Orchestrator) builderFor(sourceName string) builder.Builder {
	if o.builder != nil {
		return o.builder
	}
	return builder.NewBuilder(
		builder.WithLogger(o.logger),
		builder.WithThemeSelector(o.themeSelector),
		builder.WithTheme(o.themeName, o.themeVariant),
		builder.WithSourceName(sourceName),
	)
}

func (o *Orchestrator) applyDecorators(doc *ir.Document) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(doc); err != nil {
			return fmt.Errorf("orchestrator: decorate document: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, tree *source.Tree) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, tree); err != nil {
		return fmt.Errorf("orchestrator: transform tree: %w", err)
	}
	return nil
}
