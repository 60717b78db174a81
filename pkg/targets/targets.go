package targets

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/languages/javascript"
	"github.com/goliatone/go-tkgen/pkg/languages/python"
	"github.com/goliatone/go-tkgen/pkg/languages/tcl"
	"github.com/goliatone/go-tkgen/pkg/toolkits/dom"
	"github.com/goliatone/go-tkgen/pkg/toolkits/tk"
)

// Target names a language and toolkit pair.
type Target struct {
	Language string
	Toolkit  string
}

// String renders the target as "language+toolkit".
func (t Target) String() string {
	return t.Language + "+" + t.Toolkit
}

// DefaultToolkits maps each built-in language to the toolkit implied when a
// target names the language alone.
var DefaultToolkits = map[string]string{
	tcl.Name:        tk.Name,
	python.Name:     tk.Name,
	javascript.Name: dom.Name,
}

var languageAliases = map[string]string{
	"py":   python.Name,
	"js":   javascript.Name,
	"wish": tcl.Name,
}

// RegisterBuiltins adds every built-in language and toolkit to reg.
func RegisterBuiltins(reg *compose.Registry) error {
	for _, lang := range []compose.Language{tcl.New(), python.New(), javascript.New()} {
		if err := reg.RegisterLanguage(lang.Name(), lang); err != nil {
			return fmt.Errorf("targets: %w", err)
		}
	}
	for _, toolkit := range []compose.Toolkit{tk.New(), dom.New()} {
		if err := reg.RegisterToolkit(toolkit.Name(), toolkit); err != nil {
			return fmt.Errorf("targets: %w", err)
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in modules.
func NewRegistry(opts ...compose.RegistryOption) *compose.Registry {
	reg := compose.NewRegistry(opts...)
	if err := RegisterBuiltins(reg); err != nil {
		panic(err)
	}
	return reg
}

// LanguageName resolves a language alias ("py", "js") to its registry name.
func LanguageName(name string) string {
	key := compose.NormalizeName(name)
	if canonical, ok := languageAliases[key]; ok {
		return canonical
	}
	return key
}

// ParseTarget reads "language+toolkit". "/" and ":" are accepted as
// separators, and a bare language selects its default toolkit.
func ParseTarget(raw string) (Target, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Target{}, fmt.Errorf("targets: empty target")
	}

	language, toolkit, found := strings.Cut(trimmed, "+")
	if !found {
		if i := strings.IndexAny(trimmed, "/:"); i >= 0 {
			language, toolkit, found = trimmed[:i], trimmed[i+1:], true
		}
	}

	target := Target{Language: LanguageName(language)}
	if target.Language == "" {
		return Target{}, fmt.Errorf("targets: target %q has no language", raw)
	}
	if !found {
		toolkit, ok := DefaultToolkits[target.Language]
		if !ok {
			return Target{}, fmt.Errorf("targets: language %q has no default toolkit, use language+toolkit", target.Language)
		}
		target.Toolkit = toolkit
		return target, nil
	}

	target.Toolkit = compose.NormalizeName(toolkit)
	if target.Toolkit == "" {
		return Target{}, fmt.Errorf("targets: target %q has no toolkit", raw)
	}
	return target, nil
}

// Resolve fills a missing toolkit from the language default. Explicit values
// win.
func Resolve(language, toolkit string) (Target, error) {
	if strings.TrimSpace(toolkit) == "" {
		return ParseTarget(language)
	}
	return ParseTarget(language + "+" + toolkit)
}

// Pair is one cell of the support matrix.
type Pair struct {
	Target
	Supported bool
}

// Matrix lists every registered language and toolkit pair in name order.
func Matrix(reg *compose.Registry) []Pair {
	var pairs []Pair
	for _, language := range reg.Languages() {
		for _, toolkit := range reg.Toolkits() {
			pairs = append(pairs, Pair{
				Target:    Target{Language: language, Toolkit: toolkit},
				Supported: reg.Supports(language, toolkit),
			})
		}
	}
	return pairs
}
