// Package orchestrator wires the loader, parser, builder and composer into a
// single entry point. Callers hand it a source (or an already parsed tree or
// built document) plus a target, and get the emitted program back together
// with the intermediate document and any emission warnings.
package orchestrator
