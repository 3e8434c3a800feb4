// Package writer holds the text buffers the generators append to.
package writer

import (
	"bytes"
	"fmt"
	"strings"
)

// TextWriter is a plain fprintf buffer with no indent discipline. It is
// used for assembling headers and import blocks.
type TextWriter struct {
	bytes.Buffer
}

func (w *TextWriter) Line() {
	w.W("\n")
}

func (w *TextWriter) W(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(&w.Buffer, format, args...)
}

// SourceWriter accumulates indented source lines. It owns the current
// indent level; generators push and pop levels around nested constructs
// and never embed leading whitespace in the lines themselves.
type SourceWriter struct {
	width  int
	indent int
	lines  []string
}

// NewSourceWriter returns a writer indenting by width spaces per level.
func NewSourceWriter(width int) *SourceWriter {
	if width <= 0 {
		width = 4
	}
	return &SourceWriter{width: width}
}

// Linef appends one line at the current indent level.
func (w *SourceWriter) Linef(format string, args ...interface{}) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	if line == "" {
		w.lines = append(w.lines, "")
		return
	}
	w.lines = append(w.lines, strings.Repeat(" ", w.indent*w.width)+line)
}

// Blank appends an empty line, collapsing runs of them.
func (w *SourceWriter) Blank() {
	if n := len(w.lines); n > 0 && w.lines[n-1] == "" {
		return
	}
	w.lines = append(w.lines, "")
}

// In increases the indent level.
func (w *SourceWriter) In() {
	w.indent++
}

// Out decreases the indent level; it is a bug to dedent below zero.
func (w *SourceWriter) Out() {
	if w.indent == 0 {
		panic("writer: dedent below zero")
	}
	w.indent--
}

// Indent returns the current level.
func (w *SourceWriter) Indent() int {
	return w.indent
}

// Len returns the number of buffered lines.
func (w *SourceWriter) Len() int {
	return len(w.lines)
}

// Lines returns the buffered lines as written.
func (w *SourceWriter) Lines() []string {
	return w.lines
}

// String joins the buffer into the final text with a trailing newline.
func (w *SourceWriter) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}

// Reset drops all buffered state so the writer can be reused.
func (w *SourceWriter) Reset() {
	w.indent = 0
	w.lines = w.lines[:0]
}
