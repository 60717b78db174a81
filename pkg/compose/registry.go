package compose

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger routes registry warnings to logger.
func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry stores language and toolkit modules by normalized name. Lookups
// and Compose may run concurrently with registration.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]Language
	toolkits  map[string]Toolkit
	logger    *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		languages: make(map[string]Language),
		toolkits:  make(map[string]Toolkit),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// NormalizeName lower-cases and trims a module name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RegisterLanguage stores lang under name. A duplicate replaces the earlier
// module and logs a warning.
func (r *Registry) RegisterLanguage(name string, lang Language) error {
	if lang == nil {
		return fmt.Errorf("compose: language is required")
	}
	key := NormalizeName(name)
	if key == "" {
		return fmt.Errorf("compose: language name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.languages[key]; exists {
		r.logger.Warn("compose: replacing registered language", zap.String("language", key))
	}
	r.languages[key] = lang
	return nil
}

// MustRegisterLanguage panics on registration failure. Useful for init-time
// wiring.
func (r *Registry) MustRegisterLanguage(name string, lang Language) {
	if err := r.RegisterLanguage(name, lang); err != nil {
		panic(err)
	}
}

// UnregisterLanguage removes name and reports whether it was present.
func (r *Registry) UnregisterLanguage(name string) bool {
	key := NormalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.languages[key]
	delete(r.languages, key)
	return ok
}

// Language retrieves a language by name.
func (r *Registry) Language(name string) (Language, error) {
	key := NormalizeName(name)
	r.mu.RLock()
	lang, ok := r.languages[key]
	r.mu.RUnlock()
	if !ok {
		return nil, notFound(ErrLanguageNotFound, "language", key, r.Languages())
	}
	return lang, nil
}

// Languages returns the sorted registered language names.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedNames(r.languages)
}

// HasLanguage reports whether a language is registered.
func (r *Registry) HasLanguage(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.languages[NormalizeName(name)]
	return ok
}

// RegisterToolkit stores tk under name. A duplicate replaces the earlier
// module and logs a warning.
func (r *Registry) RegisterToolkit(name string, tk Toolkit) error {
	if tk == nil {
		return fmt.Errorf("compose: toolkit is required")
	}
	key := NormalizeName(name)
	if key == "" {
		return fmt.Errorf("compose: toolkit name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.toolkits[key]; exists {
		r.logger.Warn("compose: replacing registered toolkit", zap.String("toolkit", key))
	}
	r.toolkits[key] = tk
	return nil
}

// MustRegisterToolkit panics on registration failure.
func (r *Registry) MustRegisterToolkit(name string, tk Toolkit) {
	if err := r.RegisterToolkit(name, tk); err != nil {
		panic(err)
	}
}

// UnregisterToolkit removes name and reports whether it was present.
func (r *Registry) UnregisterToolkit(name string) bool {
	key := NormalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.toolkits[key]
	delete(r.toolkits, key)
	return ok
}

// Toolkit retrieves a toolkit by name.
func (r *Registry) Toolkit(name string) (Toolkit, error) {
	key := NormalizeName(name)
	r.mu.RLock()
	tk, ok := r.toolkits[key]
	r.mu.RUnlock()
	if !ok {
		return nil, notFound(ErrToolkitNotFound, "toolkit", key, r.Toolkits())
	}
	return tk, nil
}

// Toolkits returns the sorted registered toolkit names.
func (r *Registry) Toolkits() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedNames(r.toolkits)
}

// HasToolkit reports whether a toolkit is registered.
func (r *Registry) HasToolkit(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.toolkits[NormalizeName(name)]
	return ok
}

// Supports reports whether language can drive toolkit. Unknown names are
// unsupported.
func (r *Registry) Supports(language, toolkit string) bool {
	lang, err := r.Language(language)
	if err != nil {
		return false
	}
	tk, err := r.Toolkit(toolkit)
	if err != nil {
		return false
	}
	return compatible(lang, tk)
}

// Compose pairs the named language and toolkit into an Emitter. Misses are
// reported with the registered names as hints and leave the registry
// untouched.
func (r *Registry) Compose(language, toolkit string, opts Options) (*Emitter, error) {
	lang, err := r.Language(language)
	if err != nil {
		return nil, err
	}
	tk, err := r.Toolkit(toolkit)
	if err != nil {
		return nil, err
	}
	if !compatible(lang, tk) {
		return nil, unsupportedCombination(lang, tk)
	}
	return newEmitter(lang, tk, opts), nil
}

func compatible(lang Language, tk Toolkit) bool {
	bridge := BridgeOf(tk)
	if bridge == "" {
		return true
	}
	bridger, ok := lang.(Bridger)
	return ok && bridger.SupportsBridge(bridge)
}

func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
