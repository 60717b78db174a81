// Package targets wires the built-in languages and toolkits into a
// compose.Registry and parses "language+toolkit" target strings.
package targets
