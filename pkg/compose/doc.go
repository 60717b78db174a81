// Package compose pairs a Language with a Toolkit and drives code emission
// for an ir.Document.
//
// Languages know how to write host-language statements: procedures,
// variables, comments, string literals and calls. Toolkits know which calls
// create a widget, set its properties, lay it out and bind its events, and
// express them as Call values that the language renders. A bridge names the
// command space those calls target, so a toolkit can be driven from any
// language that supports its bridge (Tcl/Tk words from Tcl or Python, the
// DOM from JavaScript or Python).
//
// The Registry maps names to modules. Registry.Compose returns an Emitter
// for one pair, rejecting unknown names with ErrLanguageNotFound or
// ErrToolkitNotFound and unreachable bridges with ErrUnsupportedCombination.
// Emitter.Emit resolves hierarchical widget paths, orders widgets so that
// ancestors precede descendants when the toolkit asks for it, and emits the
// header, window, widgets, handler procedures and event bindings in that
// order. A failing capability call is rolled back and reported as a warning
// rather than aborting the document.
package compose
