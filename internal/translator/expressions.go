package translator

import "github.com/rocky01/crust/internal/token"

// translateExpressionTokens renders a bare expression span (no leading
// keyword, no trailing semicolon) into its target-language token
// sequence. It returns the inline tokens alongside any
// deferred increment/decrement statements a *postfix* operator
// produced: a trailing `i++` reads as plain `i` at its use site and its
// `i += 1` side effect is deferred to a trailing statement emitted
// right after the expression's own statement. A *prefix* `++i` has no
// such deferral, the read and the side effect happen together, so it
// is rendered inline as `( i += 1 )`.
func (tr *Translator) translateExpressionTokens(tokens []token.Token) ([]string, []string) {
	var out, deferred []string
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch {
		case t.Type == token.IDENTIFIER && i+1 < len(tokens) && tokens[i+1].Base == token.UNOP:
			// postfix: defer the side effect
			out = append(out, t.Value)
			deferred = append(deferred, t.Value, incDecDelta(tokens[i+1].Type), ";")
			i += 2

		case t.Base == token.UNOP && i+1 < len(tokens) && tokens[i+1].Type == token.IDENTIFIER:
			// prefix: inline
			name := tokens[i+1].Value
			out = append(out, "(", name, incDecDelta(t.Type), ")")
			i += 2

		default:
			out = append(out, t.Value)
			i++
		}
	}
	return out, deferred
}

// translateExpression implements the `(_, IDENTIFIER)` / BINOP-led arm
// of the dispatcher for a standalone expression statement: tokens
// spans the whole statement including its trailing semicolon.
func (tr *Translator) translateExpression(tokens []token.Token) []string {
	body := tokens
	if len(body) > 0 && body[len(body)-1].Type == token.SEMICOLON {
		body = body[:len(body)-1]
	}

	snap := tr.ctx.Snapshot()
	tr.ctx.InExpression = true
	exprOut, deferred := tr.translateExpressionTokens(body)
	tr.ctx.Restore(snap)

	out := append([]string{}, exprOut...)
	out = append(out, ";")
	out = append(out, deferred...)
	return out
}

// joinCondition renders a condition span (parenthesized boolean
// expression, minus the parens) for `if`/`while`. Conditions in the
// accepted subset are side-effect free, so no deferred-statement
// bookkeeping is needed here.
func joinCondition(tokens []token.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Value)
	}
	return out
}
