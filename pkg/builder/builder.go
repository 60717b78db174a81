package builder

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/internal/builder"
	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/kinds"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// Builder converts source trees into intermediate documents.
type Builder interface {
	Build(tree source.Tree) (ir.Document, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	logger       *zap.Logger
	kinds        *kinds.Registry
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	buildID      func() string
	sourceName   string
	maxDepth     int
}

// WithLogger routes build warnings to logger.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

// WithKinds overrides the registry used to resolve canonical widget kinds.
func WithKinds(registry *kinds.Registry) BuilderOption {
	return func(opts *builderOptions) {
		opts.kinds = registry
	}
}

// WithThemeSelector supplies the selector consulted for the window background
// when the source does not set one.
func WithThemeSelector(selector theme.ThemeSelector) BuilderOption {
	return func(opts *builderOptions) {
		opts.selector = selector
	}
}

// WithTheme names the theme and variant passed to the selector.
func WithTheme(name, variant string) BuilderOption {
	return func(opts *builderOptions) {
		opts.themeName = name
		opts.themeVariant = variant
	}
}

// WithBuildID replaces the ULID generator stamped into document metadata.
func WithBuildID(fn func() string) BuilderOption {
	return func(opts *builderOptions) {
		opts.buildID = fn
	}
}

// WithSourceName records where the tree came from in document metadata.
func WithSourceName(name string) BuilderOption {
	return func(opts *builderOptions) {
		opts.sourceName = name
	}
}

// WithMaxDepth bounds source nesting. Non-positive values keep the default.
func WithMaxDepth(depth int) BuilderOption {
	return func(opts *builderOptions) {
		opts.maxDepth = depth
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return builder.New(builder.Options{
		Logger:        cfg.logger,
		Kinds:         cfg.kinds,
		ThemeSelector: cfg.selector,
		ThemeName:     cfg.themeName,
		ThemeVariant:  cfg.themeVariant,
		BuildID:       cfg.buildID,
		SourceName:    cfg.sourceName,
		MaxDepth:      cfg.maxDepth,
	})
}
