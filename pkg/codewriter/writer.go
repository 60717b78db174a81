package codewriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is used when New receives an empty indent unit.
const DefaultIndent = "    "

// Writer accumulates generated source line by line. Indentation is applied
// lazily at the start of each line, so Write calls may build a line in pieces.
// The zero value is not usable; call New.
type Writer struct {
	buf         bytes.Buffer
	unit        string
	level       int
	atLineStart bool
}

// Mark is a rollback point captured by Writer.Mark.
type Mark struct {
	size        int
	level       int
	atLineStart bool
}

// New returns a Writer that indents with unit.
func New(unit string) *Writer {
	if unit == "" {
		unit = DefaultIndent
	}
	return &Writer{unit: unit, atLineStart: true}
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.level++
}

// Dedent decreases the indentation level. It never goes below zero.
func (w *Writer) Dedent() {
	if w.level > 0 {
		w.level--
	}
}

// Level reports the current indentation level.
func (w *Writer) Level() int {
	return w.level
}

// Write appends s, indenting every line that starts within it. Blank lines
// are left without trailing indentation.
func (w *Writer) Write(s string) {
	for len(s) > 0 {
		line, rest, newline := strings.Cut(s, "\n")
		if line != "" {
			if w.atLineStart {
				w.buf.WriteString(strings.Repeat(w.unit, w.level))
			}
			w.buf.WriteString(line)
			w.atLineStart = false
		}
		if !newline {
			return
		}
		w.buf.WriteByte('\n')
		w.atLineStart = true
		s = rest
	}
}

// Line writes s followed by a newline.
func (w *Writer) Line(s string) {
	w.Write(s)
	w.newline()
}

// Linef formats and writes a full line.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank ends the current line if needed and writes an empty line.
func (w *Writer) Blank() {
	if !w.atLineStart {
		w.newline()
	}
	w.newline()
}

func (w *Writer) newline() {
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

// Mark captures the current state so a failed item can be discarded.
func (w *Writer) Mark() Mark {
	return Mark{size: w.buf.Len(), level: w.level, atLineStart: w.atLineStart}
}

// Rollback discards everything written since m and restores the indentation
// level and line state captured with it.
func (w *Writer) Rollback(m Mark) {
	if m.size > w.buf.Len() {
		return
	}
	w.buf.Truncate(m.size)
	w.level = m.level
	w.atLineStart = m.atLineStart
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// String returns the accumulated source.
func (w *Writer) String() string {
	return w.buf.String()
}

// WriteTo implements io.WriterTo.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	n, err := out.Write(w.buf.Bytes())
	return int64(n), err
}
