// Package tcl implements the Tcl language module. Tcl drives Tk directly, so
// calls in the tk bridge are written as plain command words.
package tcl
