// Package normalize holds the pure color and length helpers shared by the
// builder and the toolkit modules. Nothing here keeps state, and a value that
// fails to parse is reported through a boolean rather than an error so callers
// can treat it as absent.
package normalize
