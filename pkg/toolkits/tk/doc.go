// Package tk renders tkir documents as Tk widget commands. Every call is
// written against the "tk" bridge, so any language that can reach the Tcl
// interpreter (Tcl itself, Python through tkinter) can host the output.
//
// Widget ids become hierarchical window paths (".w0.w1") and widgets are
// emitted parents first. Top-level widgets without a layout are packed to
// fill the window once everything else is out.
package tk
