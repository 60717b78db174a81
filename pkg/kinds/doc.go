// Package kinds maps loosely named source component types onto the canonical
// widget kinds stored in the intermediate document.
package kinds
