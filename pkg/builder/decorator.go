package builder

import "github.com/goliatone/go-tkgen/pkg/ir"

// Decorator adjusts a built document before it reaches the composer, for
// example to inject handlers or rewrite widget text.
type Decorator interface {
	Decorate(*ir.Document) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*ir.Document) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(doc *ir.Document) error {
	return fn(doc)
}
