// Package python implements the Python language module.
//
// In the tk bridge every call goes through the interpreter owned by the
// tkinter root, root.tk.call("pack", ".w0", "-side", "top"), which keeps the
// generated code a line-for-line image of the equivalent Tcl. Handlers are
// registered as Tcl commands with root.register. In the dom bridge calls are
// ordinary method calls on objects imported from Pyodide's js module.
package python
