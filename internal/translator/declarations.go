package translator

import "github.com/rocky01/crust/internal/token"

// declarationPrefix returns the leading storage specifier for a scalar
// declaration: "let mut" inside a block, "static" at file scope,
// reading the flag the dispatcher set before recursing into the
// enclosing function.
func (tr *Translator) declarationPrefix() []string {
	if tr.ctx.InBlock {
		return []string{"let mut"}
	}
	return []string{"static"}
}

// translateDeclaration implements the scalar declaration translator.
// The span covers one DATATYPE-led statement that may declare several
// comma-separated names, each with an optional initializer; Rust has
// no multi-declarator let, so each declarator becomes its own
// statement.
func (tr *Translator) translateDeclaration(tokens []token.Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	code, ok := token.TypeCode(tokens[0].Type)
	typeName := unknownType
	if ok {
		typeName = mapTypeOrUnknown(code)
	} else {
		tr.addError(&Error{Message: "unrecognized declaration type", Code: ErrUnknownType, Pos: tokens[0].Pos})
	}

	prefix := tr.declarationPrefix()
	var out []string
	i := 1
	for i < len(tokens) {
		if tokens[i].Type == token.COMMA {
			i++
			continue
		}
		if tokens[i].Type == token.SEMICOLON {
			break
		}

		nameTok := tokens[i]
		name := nameTok.Value
		i++

		if i < len(tokens) && tokens[i].Type == token.LEFT_SBRACKET {
			end := arrayDeclaratorEnd(tokens, i)
			sub := make([]token.Token, 0, end-i+3)
			sub = append(sub, tokens[0], nameTok)
			sub = append(sub, tokens[i:end]...)
			if end < len(tokens) {
				sub = append(sub, token.Token{Type: token.SEMICOLON, Value: ";"})
			}
			out = append(out, tr.translateArrayDeclaration(sub)...)
			if end < len(tokens) && tokens[end].Type == token.COMMA {
				i = end + 1
			} else {
				i = end
			}
			continue
		}

		if i < len(tokens) && tokens[i].Type == token.OP_ASSIGN {
			i++
			start := i
			for i < len(tokens) && tokens[i].Type != token.COMMA && tokens[i].Type != token.SEMICOLON {
				i++
			}
			exprOut, deferred := tr.translateExpressionTokens(tokens[start:i])
			out = append(out, prefix...)
			out = append(out, name, ":", typeName, "=")
			out = append(out, exprOut...)
			out = append(out, ";")
			out = append(out, deferred...)
			continue
		}

		out = append(out, prefix...)
		out = append(out, name, ":", typeName, ";")
	}
	return out
}

// arrayDeclaratorEnd scans one array declarator (`[ N ] (= { ... })?`)
// starting at its opening LEFT_SBRACKET and returns the index of the
// terminator (COMMA or SEMICOLON) that follows it, so the scalar
// declaration translator can hand the declarator off to the
// array-declaration translator without swallowing the rest of a
// comma-chained statement.
func arrayDeclaratorEnd(tokens []token.Token, pos int) int {
	for pos < len(tokens) && tokens[pos].Type != token.RIGHT_SBRACKET {
		pos++
	}
	pos++ // past RIGHT_SBRACKET

	if pos < len(tokens) && tokens[pos].Type == token.OP_ASSIGN {
		pos++
		if pos < len(tokens) && tokens[pos].Type == token.LEFT_CBRACE {
			depth := 1
			pos++
			for pos < len(tokens) && depth > 0 {
				switch tokens[pos].Type {
				case token.LEFT_CBRACE:
					depth++
				case token.RIGHT_CBRACE:
					depth--
				}
				pos++
			}
		}
	}
	return pos
}
