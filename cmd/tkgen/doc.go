// Command tkgen builds tkir documents from UI source trees and emits them as
// GUI programs for a language and toolkit pair.
//
// Configuration is read from flags, TKGEN_* environment variables and an
// optional .tkgen.yaml in the working or home directory, in that order of
// precedence.
package main
