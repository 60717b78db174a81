package compose

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrLanguageNotFound is returned when Compose names an unregistered
	// language.
	ErrLanguageNotFound = errors.New("compose: language not found")
	// ErrToolkitNotFound is returned when Compose names an unregistered
	// toolkit.
	ErrToolkitNotFound = errors.New("compose: toolkit not found")
	// ErrUnsupportedCombination is returned when the language cannot reach
	// the toolkit's bridge.
	ErrUnsupportedCombination = errors.New("compose: unsupported language and toolkit combination")
	// ErrUnsupported is returned by capability calls that cannot express a
	// case. The emitter degrades it to a warning.
	ErrUnsupported = errors.New("compose: unsupported")
)

func notFound(sentinel error, kind, name string, registered []string) error {
	err := errors.Wrapf(sentinel, "%s %q", kind, name)
	if len(registered) == 0 {
		return errors.WithHint(err, "no "+kind+"s are registered")
	}
	return errors.WithHintf(err, "registered %ss: %s", kind, strings.Join(registered, ", "))
}

// Unsupported wraps ErrUnsupported with a formatted reason.
func Unsupported(format string, args ...any) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}

func unsupportedCombination(lang Language, tk Toolkit) error {
	err := errors.Wrapf(ErrUnsupportedCombination, "%s cannot drive %s", lang.Name(), tk.Name())
	return errors.WithHintf(err, "toolkit %s needs the %q bridge", tk.Name(), BridgeOf(tk))
}
