package translator

import "github.com/rocky01/crust/internal/token"

// skipStatement advances past the next SEMICOLON and returns the index
// immediately after it. The input contract guarantees a
// terminating semicolon exists; this still guards against running off
// the end of the stream so malformed input fails with a diagnostic
// instead of a slice panic.
func skipStatement(tokens []token.Token, pos int) (int, *Error) {
	for pos < len(tokens) {
		if tokens[pos].Type == token.SEMICOLON {
			return pos + 1, nil
		}
		pos++
	}
	return pos, newEOFError(tokens, "expected ';' while skipping statement")
}

// skipBlock starts from a cursor positioned just after an opening brace
// and scans forward tracking brace nesting, returning the index
// immediately after the matching closing brace.
func skipBlock(tokens []token.Token, pos int) (int, *Error) {
	depth := 1
	for pos < len(tokens) {
		switch tokens[pos].Type {
		case token.LEFT_CBRACE:
			depth++
		case token.RIGHT_CBRACE:
			depth--
			if depth == 0 {
				return pos + 1, nil
			}
		}
		pos++
	}
	return pos, newEOFError(tokens, "expected '}' while skipping block")
}
