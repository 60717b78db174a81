// Package builder converts a loosely typed source tree into an ir.Document.
//
// A build walks the tree depth-first in pre-order. Each component gets a
// stable identifier, a canonical kind resolved through the kinds registry,
// normalized colors, sizes, fonts and borders, and a layout chosen by the
// priority chain place, grid, pack. Handlers are deduplicated by logical
// name so a handler referenced from several widgets is recorded once.
// Compile-time loops are expanded before their children are visited.
//
// The input tree is never mutated. Malformed values fall back to defaults
// and are reported through the configured zap logger.
package builder
