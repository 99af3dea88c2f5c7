// Package errors formats translator diagnostics with source context:
// line/column information and a caret pointing at the offending
// column.
package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocky01/crust/internal/token"
)

// ANSI escapes applied when color output is requested.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCaret = "\033[1;31m"
)

// TranslationError is one translation diagnostic: a message, the
// position it points at, and optionally the original source text that
// position indexes into. Without source text, rendering degrades to a
// bare header-plus-message form.
type TranslationError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a TranslationError.
func New(pos token.Position, message, source, file string) *TranslationError {
	return &TranslationError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic: a position header, the offending
// source line with a caret under the column when source text is
// attached, and the message.
func (e *TranslationError) Format(color bool) string {
	return e.render(0, color)
}

// FormatWithContext renders like Format but shows contextLines of
// surrounding source above and below the offending line.
func (e *TranslationError) FormatWithContext(contextLines int, color bool) string {
	return e.render(contextLines, color)
}

// paint wraps s in an ANSI escape pair, or returns it untouched when
// color output is off.
func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}

func (e *TranslationError) render(contextLines int, color bool) string {
	var b strings.Builder

	if e.File != "" {
		fmt.Fprintf(&b, "error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&b, "error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	window, first := e.sourceWindow(contextLines)
	for i, line := range window {
		n := first + i
		gutter := fmt.Sprintf("%4d | ", n)
		if n != e.Pos.Line {
			b.WriteString(paint(color, ansiDim, gutter+line))
			b.WriteByte('\n')
			continue
		}
		b.WriteString(paint(color, ansiBold, gutter+line))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", len(gutter)+e.Pos.Column-1))
		b.WriteString(paint(color, ansiCaret, "^"))
		b.WriteByte('\n')
	}

	b.WriteString(paint(color, ansiBold, e.Message))
	return b.String()
}

// sourceWindow returns the source lines within contextLines of the
// error's line, along with the 1-indexed number of the first returned
// line. It returns nothing when no source text is attached or the
// position falls outside it.
func (e *TranslationError) sourceWindow(contextLines int) ([]string, int) {
	if e.Source == "" {
		return nil, 0
	}
	lines := strings.Split(e.Source, "\n")
	target := e.Pos.Line
	if target < 1 || target > len(lines) {
		return nil, 0
	}
	first := max(target-contextLines, 1)
	last := min(target+contextLines, len(lines))
	return lines[first-1 : last], first
}

// FormatErrors formats multiple translation errors.
func FormatErrors(errs []*TranslationError, color bool) string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Format(color)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "translation failed with %d error(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&b, "[error %d of %d]\n", i+1, len(errs))
		b.WriteString(err.Format(color))
		if i < len(errs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// FromTranslatorErrors converts translator.Error values (see
// internal/translator/errors.go) into TranslationError diagnostics
// carrying source context, by parsing the "<message> at <line>:<col>"
// suffix each one formats itself with.
func FromTranslatorErrors(msgs []string, source, file string) []*TranslationError {
	out := make([]*TranslationError, 0, len(msgs))
	for _, msg := range msgs {
		pos, message := parseErrorString(msg)
		out = append(out, New(pos, message, source, file))
	}
	return out
}

// parseErrorString splits a "message at LINE:COLUMN" string into its
// position and message parts. A string not of that shape comes back
// whole, with a zero position.
func parseErrorString(errStr string) (token.Position, string) {
	atIdx := strings.LastIndex(errStr, " at ")
	if atIdx < 0 {
		return token.Position{}, errStr
	}
	lineStr, colStr, ok := strings.Cut(errStr[atIdx+4:], ":")
	if !ok {
		return token.Position{}, errStr
	}
	line, lineErr := strconv.Atoi(lineStr)
	column, colErr := strconv.Atoi(colStr)
	if lineErr != nil || colErr != nil {
		return token.Position{}, errStr
	}
	return token.Position{Line: line, Column: column}, errStr[:atIdx]
}
