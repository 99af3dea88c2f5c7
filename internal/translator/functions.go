package translator

import "github.com/rocky01/crust/internal/token"

// translateFunction implements the function translator.
// The span covers a full function definition: return type, name,
// parenthesized parameter list, and braced body. `main` (tagged with
// the distinguished MAIN token type rather than plain IDENTIFIER) is
// rendered without an explicit return type, matching Rust's `fn
// main()` regardless of the source's declared `int main(...)`.
func (tr *Translator) translateFunction(tokens []token.Token) []string {
	if len(tokens) < 4 {
		tr.addError(&Error{Message: "malformed function definition", Code: ErrUnknownType})
		return nil
	}

	code, ok := token.TypeCode(tokens[0].Type)
	returnType := unknownType
	if ok {
		returnType = mapTypeOrUnknown(code)
	}
	isMain := tokens[1].Type == token.MAIN
	name := tokens[1].Value

	lp := 2
	for lp < len(tokens) && tokens[lp].Type != token.LEFT_BRACKET {
		lp++
	}
	rp := lp + 1
	depth := 1
	for rp < len(tokens) && depth > 0 {
		switch tokens[rp].Type {
		case token.LEFT_BRACKET:
			depth++
		case token.RIGHT_BRACKET:
			depth--
		}
		if depth == 0 {
			break
		}
		rp++
	}

	lb := rp + 1
	for lb < len(tokens) && tokens[lb].Type != token.LEFT_CBRACE {
		lb++
	}
	bodyEnd := len(tokens) - 1 // matching RIGHT_CBRACE, per the span contract

	out := []string{"fn", name, "("}
	if isMain {
		// main always renders with an empty Rust parameter list; a
		// non-empty original signature instead binds argv/argc from
		// std::env inside the body.
		out = append(out, ")", "{")
		if rp > lp+1 {
			out = append(out, mainArgBindings()...)
		}
	} else {
		out = append(out, translateParams(tokens[lp+1:rp])...)
		out = append(out, ")")
		if returnType != "void" {
			out = append(out, "->", returnType)
		}
		out = append(out, "{")
	}
	out = append(out, tr.Translate(tokens[lb+1:bodyEnd])...)
	out = append(out, "}")
	return out
}

// mainArgBindings renders the argv/argc bindings needed when the
// original `main` signature declared parameters: Rust's `fn main()`
// takes none, so the process's arguments are recovered from std::env
// instead.
func mainArgBindings() []string {
	return []string{
		"let", "argv", ":", "Vec", "<", "String", ">", "=", "std", "::", "env", "::", "args", "(", ")", ".", "collect", "(", ")", ";",
		"let", "argc", "=", "argv", ".", "len", "(", ")", ";",
	}
}

// translateParams renders a C-style parameter list (`int a, float b`)
// as Rust's `name: type` form.
func translateParams(tokens []token.Token) []string {
	var out []string
	i := 0
	first := true
	for i < len(tokens) {
		if tokens[i].Type == token.COMMA {
			i++
			continue
		}
		code, ok := token.TypeCode(tokens[i].Type)
		typeName := mapTypeOrUnknown(code)
		if !ok {
			typeName = unknownType
		}
		if i+1 >= len(tokens) {
			break
		}
		paramName := tokens[i+1].Value
		if !first {
			out = append(out, ",")
		}
		out = append(out, paramName, ":", typeName)
		first = false
		i += 2
	}
	return out
}
