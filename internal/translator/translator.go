// Package translator implements the recursive, syntax-directed
// translator core: it consumes a token stream produced by an external
// C/C++ lexer and emits an equivalent sequence of Rust-shaped token
// fragments. See doc.go for the package-level overview; this file
// holds the Translator type and the top-level dispatcher.
package translator

import "github.com/rocky01/crust/internal/token"

// Translator walks a token stream and emits target-language token
// fragments. It is not safe for concurrent use by multiple goroutines
// on overlapping calls, but distinct Translator values are fully
// independent: there is no package-level mutable state, so running
// several translations concurrently just means constructing one
// Translator per call.
type Translator struct {
	ctx    *Context
	errors []*Error
}

// New returns a Translator with a fresh, file-scope Context.
func New() *Translator {
	return &Translator{ctx: NewContext()}
}

// Errors returns the diagnostics accumulated across all Translate calls
// made on this Translator. Translation never stops on an Error.
func (tr *Translator) Errors() []*Error {
	return tr.errors
}

func (tr *Translator) addError(err *Error) {
	if err != nil {
		tr.errors = append(tr.errors, err)
	}
}

// inBounds reports whether index i is a valid position in tokens. Every
// dispatcher arm that looks ahead by a fixed offset (head+1, head+3, ...)
// checks this first, converting what would otherwise be a slice-bounds
// panic on malformed input into a recorded diagnostic.
func (tr *Translator) inBounds(tokens []token.Token, i int) bool {
	if i >= 0 && i < len(tokens) {
		return true
	}
	tr.addError(newEOFError(tokens, "unexpected end of token stream"))
	return false
}

// Translate is the recursive entry point. It walks tokens left to
// right, classifying each top-level construct by
// its (base type, token type) pair, carving out the construct's span,
// and recursively translating that span, concatenating every
// sub-translation's output into the returned sequence.
func (tr *Translator) Translate(tokens []token.Token) []string {
	var out []string
	head := 0

	for head < len(tokens) {
		tok := tokens[head]
		base, typ := tok.Pair()

		switch {
		case base == token.DATATYPE:
			if !tr.inBounds(tokens, head+2) {
				return out
			}
			switch tokens[head+2].Type {
			case token.LEFT_BRACKET:
				lookahead := head + 2
				for lookahead < len(tokens) && tokens[lookahead].Type != token.LEFT_CBRACE {
					lookahead++
				}
				end, err := skipBlock(tokens, lookahead+1)
				if err != nil {
					tr.addError(err)
					return out
				}
				wasInBlock := tr.ctx.InBlock
				tr.ctx.InBlock = true
				out = append(out, tr.translateFunction(tokens[head:end])...)
				tr.ctx.InBlock = wasInBlock
				head = end

			case token.LEFT_SBRACKET:
				end, err := skipStatement(tokens, head+2)
				if err != nil {
					tr.addError(err)
					return out
				}
				out = append(out, tr.translateArrayDeclaration(tokens[head:end])...)
				head = end

			case token.SEMICOLON, token.COMMA, token.OP_ASSIGN:
				end, err := skipStatement(tokens, head+2)
				if err != nil {
					tr.addError(err)
					return out
				}
				out = append(out, tr.translateDeclaration(tokens[head:end])...)
				head = end

			default:
				// Not a recognized declaration shape for the accepted
				// subset: advance one token rather than
				// spin forever on unsupported input.
				head++
			}

		case typ == token.KEYWORD_IF:
			end := tr.scanConditionalSpan(tokens, head)
			out = append(out, tr.translateIf(tokens[head:end])...)
			head = end

		case typ == token.KEYWORD_ELSE:
			head++
			if !tr.inBounds(tokens, head) {
				return out
			}
			out = append(out, "else")

			switch {
			case tokens[head].Type == token.KEYWORD_IF:
				// Chained `else if`: scan exactly the nested if's own
				// condition-plus-body span (the same shape the
				// top-level KEYWORD_IF arm scans) and let the
				// recursive Translate call render it as a nested
				// `if { ... }`, no extra brace wrap, so `else if`
				// chains don't grow a brace per link.
				end := tr.scanConditionalSpan(tokens, head)
				out = append(out, tr.Translate(tokens[head:end])...)
				head = end

			case tokens[head].Type == token.LEFT_CBRACE:
				end, err := skipBlock(tokens, head+1)
				if err != nil {
					tr.addError(err)
					return out
				}
				out = append(out, "{")
				out = append(out, tr.Translate(tokens[head+1:end-1])...)
				out = append(out, "}")
				head = end

			default:
				end, err := skipStatement(tokens, head)
				if err != nil {
					tr.addError(err)
					return out
				}
				out = append(out, "{")
				out = append(out, tr.Translate(tokens[head:end])...)
				out = append(out, "}")
				head = end
			}

		case typ == token.KEYWORD_WHILE:
			end := tr.scanConditionalSpan(tokens, head)
			out = append(out, tr.translateWhile(tokens[head:end])...)
			head = end

		case typ == token.KEYWORD_DO:
			bodyEnd, err := skipBlock(tokens, head+2)
			if err != nil {
				tr.addError(err)
				return out
			}
			end, err := skipStatement(tokens, bodyEnd)
			if err != nil {
				tr.addError(err)
				return out
			}
			out = append(out, tr.translateDoWhile(tokens[head:end])...)
			head = end

		case typ == token.KEYWORD_FOR:
			lookahead := head
			for lookahead < len(tokens) && tokens[lookahead].Type != token.LEFT_CBRACE {
				lookahead++
			}
			end, err := skipBlock(tokens, lookahead+1)
			if err != nil {
				tr.addError(err)
				return out
			}
			out = append(out, tr.translateFor(tokens[head:end])...)
			head = end

		case typ == token.KEYWORD_SWITCH:
			end, emitted := tr.translateSwitchAt(tokens, head)
			out = append(out, emitted...)
			head = end

		case base == token.COMMENT:
			out = append(out, tok.Value+"\n")
			head++

		case typ == token.IDENTIFIER:
			newHead, emitted := tr.dispatchIdentifier(tokens, head)
			out = append(out, emitted...)
			head = newHead

		case base == token.UNOP:
			if !tr.inBounds(tokens, head+1) {
				return out
			}
			out = append(out, tokens[head+1].Value, incDecDelta(tokens[head].Type))
			head += 2

		default:
			if tok.Type == token.COMMA {
				out = append(out, ";")
			} else if tok.Type != token.RIGHT_CBRACE {
				out = append(out, tok.Value)
			}
			head++
		}
	}

	return out
}

// scanConditionalSpan extracts the span for an `if`/`while` construct
// starting at a KEYWORD_IF/KEYWORD_WHILE token: past the (unbalanced,
// single-level) condition parentheses, then past either a braced block
// or a single statement.
func (tr *Translator) scanConditionalSpan(tokens []token.Token, head int) int {
	lookahead := head + 1
	for lookahead < len(tokens) && tokens[lookahead].Type != token.RIGHT_BRACKET {
		lookahead++
	}
	lookahead++

	if !tr.inBounds(tokens, lookahead) {
		return len(tokens)
	}

	var end int
	var err *Error
	if tokens[lookahead].Type == token.LEFT_CBRACE {
		end, err = skipBlock(tokens, lookahead+1)
	} else {
		end, err = skipStatement(tokens, lookahead)
	}
	if err != nil {
		tr.addError(err)
		return len(tokens)
	}
	return end
}

// dispatchIdentifier implements the `(_, IDENTIFIER)` arm of the
// dispatcher table.
func (tr *Translator) dispatchIdentifier(tokens []token.Token, head int) (int, []string) {
	if !tr.inBounds(tokens, head+1) {
		return len(tokens), nil
	}
	next := tokens[head+1]

	switch {
	case next.Type == token.OP_ASSIGN:
		if tr.inBounds(tokens, head+3) && tokens[head+3].Type == token.COMMA {
			end := head + 4
			return end, tr.translateAssignment(tokens[head:end])
		}
		end, err := skipStatement(tokens, head+1)
		if err != nil {
			tr.addError(err)
			return len(tokens), nil
		}
		return end, tr.translateAssignment(tokens[head:end])

	case next.Base == token.UNOP:
		if !tr.ctx.InExpression {
			return head + 2, []string{tokens[head].Value, incDecDelta(next.Type)}
		}
		return head + 2, nil

	case next.Base == token.BINOP:
		end, err := skipStatement(tokens, head)
		if err != nil {
			tr.addError(err)
			return len(tokens), nil
		}
		return end, tr.translateExpression(tokens[head:end])

	case next.Type == token.LEFT_BRACKET:
		var out []string
		i := head
		for i < len(tokens) && tokens[i].Type != token.RIGHT_BRACKET {
			out = append(out, tokens[i].Value)
			i++
		}
		if !tr.inBounds(tokens, i) {
			return len(tokens), out
		}
		out = append(out, tokens[i].Value)
		return i + 1, out

	default:
		if tokens[head].Type != token.RIGHT_CBRACE {
			return head + 1, []string{tokens[head].Value}
		}
		return head + 1, nil
	}
}

// incDecDelta renders the side-effect of a pre/post ++ or -- as the
// compound-assignment form Rust actually admits.
func incDecDelta(t token.TokenType) string {
	if t == token.OP_DEC {
		return "-=1"
	}
	return "+=1"
}
