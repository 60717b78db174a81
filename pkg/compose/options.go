package compose

import "go.uber.org/zap"

// Defaults applied by Options.withDefaults.
const (
	DefaultIndentUnit    = "    "
	DefaultMaxDepth      = 100
	DefaultMaxPathLength = 512
)

// Options tunes a single Emitter.
type Options struct {
	// IncludeComments writes the header banner and section comments.
	IncludeComments bool
	// Verbose logs resolved paths and emission order at debug level.
	Verbose bool
	// IndentUnit overrides the language's preferred indentation.
	IndentUnit string
	// HeaderTemplate is pongo2 source for the banner. Empty selects the
	// built-in template.
	HeaderTemplate string
	// MaxDepth bounds the parent walk when resolving paths.
	MaxDepth int
	// MaxPathLength bounds resolved path length in bytes.
	MaxPathLength int
	// Generator is printed in the banner.
	Generator string
	Logger    *zap.Logger
}

// IndentPreference is implemented by languages with a conventional indent
// other than four spaces.
type IndentPreference interface {
	IndentUnit() string
}

func (o Options) withDefaults(lang Language) Options {
	if o.IndentUnit == "" {
		o.IndentUnit = DefaultIndentUnit
		if pref, ok := lang.(IndentPreference); ok && pref.IndentUnit() != "" {
			o.IndentUnit = pref.IndentUnit()
		}
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxPathLength <= 0 {
		o.MaxPathLength = DefaultMaxPathLength
	}
	if o.Generator == "" {
		o.Generator = "tkgen"
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
