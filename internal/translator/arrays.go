package translator

import "github.com/rocky01/crust/internal/token"

// translateArrayDeclaration implements the array declaration
// translator: `datatype name [ size ] (= {
// values } | , more )? ;` always becomes `let mut name : [ T ; N ]`,
// regardless of the in-block flag, unlike the scalar declaration
// translator, the source never renders a bare array at file scope as
// `static`.
func (tr *Translator) translateArrayDeclaration(tokens []token.Token) []string {
	if len(tokens) < 5 {
		tr.addError(&Error{Message: "malformed array declaration", Code: ErrUnknownType})
		return nil
	}

	code, ok := token.TypeCode(tokens[0].Type)
	typeName := unknownType
	if ok {
		typeName = mapTypeOrUnknown(code)
	} else {
		tr.addError(&Error{Message: "unrecognized declaration type", Code: ErrUnknownType, Pos: tokens[0].Pos})
	}
	name := tokens[1].Value

	sbClose := 3
	for sbClose < len(tokens) && tokens[sbClose].Type != token.RIGHT_SBRACKET {
		sbClose++
	}
	sizeTokens := tokens[3:sbClose]
	sizeExpr := make([]string, 0, len(sizeTokens))
	for _, t := range sizeTokens {
		sizeExpr = append(sizeExpr, t.Value)
	}

	out := []string{"let mut", name, ":", "[", typeName, ";"}
	out = append(out, sizeExpr...)
	out = append(out, "]")

	rest := tokens[sbClose+1:]
	switch {
	case len(rest) > 0 && rest[0].Type == token.OP_ASSIGN:
		values := rest[1:]
		// strip the braces around the initializer list and any trailing
		// semicolon; values themselves are comma-separated literals.
		if len(values) > 0 && values[0].Type == token.LEFT_CBRACE {
			values = values[1:]
		}
		if len(values) > 0 && values[len(values)-1].Type == token.SEMICOLON {
			values = values[:len(values)-1]
		}
		if len(values) > 0 && values[len(values)-1].Type == token.RIGHT_CBRACE {
			values = values[:len(values)-1]
		}
		out = append(out, "=", "[")
		for _, t := range values {
			if t.Type == token.COMMA {
				out = append(out, ",")
			} else {
				out = append(out, t.Value)
			}
		}
		out = append(out, "]", ";")

	case len(rest) > 0 && rest[0].Type == token.COMMA:
		out = append(out, ";")
		out = append(out, tr.translateDeclaration(reconstructDeclaration(tokens[0], rest[1:]))...)

	default:
		out = append(out, ";")
	}
	return out
}

// reconstructDeclaration rebuilds a self-contained `TYPE rest...`
// span for a comma-chained declarator that follows an array
// declaration, so the array and scalar declaration translators can
// hand remainders back to each other.
func reconstructDeclaration(typeTok token.Token, rest []token.Token) []token.Token {
	out := make([]token.Token, 0, len(rest)+1)
	out = append(out, typeTok)
	return append(out, rest...)
}
