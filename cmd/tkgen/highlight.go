package main

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	defaultStyle   = "monokai"
	terminalFormat   = "terminal256"
)

var lexerNames = map[string]string{
	"tcl":        "tcl",
	"python":     "python",
	"javascript": "javascript",
}

// highlight writes src colorized for a 256-color terminal. Languages without
// a known lexer fall back to chroma's content analysis.
func highlight(w io.Writer, src, language, style string) error {
	lexer := lexerNames[language]
	if style == "" {
		style = defaultStyle
	}
	return quick.Highlight(w, src, lexer, terminalFormat, style)
}
