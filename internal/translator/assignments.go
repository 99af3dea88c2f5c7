package translator

import "github.com/rocky01/crust/internal/token"

// translateAssignment implements the assignment translator. It
// handles two span shapes the dispatcher carves out:
//
//   - a 4-token comma-terminated span (`name = value ,`), used for one
//     link of a comma-separated assignment list (`a = 1, b = 2;`);
//   - the remainder of a full statement up to its terminating
//     semicolon, covering a chained assignment (`a = b = c = 5;`) or a
//     simple one (`a = v;`).
//
// A chained assignment unrolls right-associatively: the innermost link
// (closest to the literal value) is emitted first, then each
// intermediate link propagates the previous target's name forward.
// `a = b = c = d = 5;` becomes `d = 5; c = d; b = c; a = b;`.
func (tr *Translator) translateAssignment(tokens []token.Token) []string {
	if len(tokens) == 4 && tokens[3].Type == token.COMMA {
		return []string{tokens[0].Value, "=", tokens[2].Value, ";"}
	}

	type link struct{ target, source string }
	var links []link
	i := 0
	for i+3 < len(tokens)-1 && tokens[i+2].Type == token.IDENTIFIER && tokens[i+3].Type == token.OP_ASSIGN {
		links = append(links, link{tokens[i].Value, tokens[i+2].Value})
		i += 2
	}

	name := tokens[i].Value
	exprTokens := tokens[i+2 : len(tokens)-1]
	snap := tr.ctx.Snapshot()
	tr.ctx.InExpression = true
	exprOut, deferred := tr.translateExpressionTokens(exprTokens)
	tr.ctx.Restore(snap)

	out := []string{name, "="}
	out = append(out, exprOut...)
	out = append(out, ";")
	out = append(out, deferred...)

	for j := len(links) - 1; j >= 0; j-- {
		out = append(out, links[j].target, "=", links[j].source, ";")
	}
	return out
}
