package translator

import (
	"fmt"

	"github.com/rocky01/crust/internal/token"
)

// Error codes for programmatic handling.
const (
	ErrUnexpectedEOF = "E_UNEXPECTED_EOF"
	ErrUnknownType   = "E_UNKNOWN_TYPE"
)

// Error is a structured translation error with position information.
// Translation never aborts on an Error: it runs best-effort over the
// accepted subset of the language, and errors are accumulated on the
// Translator and surfaced to the caller via Errors().
type Error struct {
	Message string
	Code    string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

func newEOFError(tokens []token.Token, message string) *Error {
	pos := token.Position{}
	if len(tokens) > 0 {
		pos = tokens[len(tokens)-1].Pos
	}
	return &Error{Message: message, Code: ErrUnexpectedEOF, Pos: pos}
}
