package translator

import "github.com/rocky01/crust/internal/token"

// translateSwitchAt implements the switch translator.
// Unlike the other control-flow translators it operates directly on
// the outer token stream and returns the dispatcher's next head
// position alongside the emitted tokens, because the subject span's
// length (one identifier versus a full sub-expression) determines how
// many tokens the header actually consumes.
func (tr *Translator) translateSwitchAt(tokens []token.Token, head int) (int, []string) {
	subjectStart := head + 2
	braceIdx := subjectStart
	for braceIdx < len(tokens) && tokens[braceIdx].Type != token.LEFT_CBRACE {
		braceIdx++
	}
	if !tr.inBounds(tokens, braceIdx) {
		return len(tokens), nil
	}
	subjectEnd := braceIdx - 1 // the switch's closing RIGHT_BRACKET

	out := []string{"match"}
	if subjectEnd-subjectStart == 1 {
		out = append(out, tokens[subjectStart].Value)
	} else {
		exprOut, _ := tr.translateExpressionTokens(tokens[subjectStart:subjectEnd])
		out = append(out, exprOut...)
	}

	bodyStart := braceIdx + 1
	bodyEnd, err := skipBlock(tokens, bodyStart)
	if err != nil {
		tr.addError(err)
		return len(tokens), out
	}

	out = append(out, "{")
	out = append(out, tr.translateCase(tokens[bodyStart:bodyEnd-1])...)
	out = append(out, "}")
	return bodyEnd, out
}

// translateCase walks the statements inside a switch body, grouping
// them under `case`/`default` labels into match arms.
// A missing default gets a synthetic `_ => {}` fallback arm, since
// Rust's match must be exhaustive.
func (tr *Translator) translateCase(tokens []token.Token) []string {
	var out []string
	hasDefault := false
	i := 0
	for i < len(tokens) {
		switch tokens[i].Type {
		case token.KEYWORD_CASE:
			if !tr.inBounds(tokens, i+2) {
				return out
			}
			valueTok := tokens[i+1]
			body, next := tr.caseBody(tokens, i+3)
			out = append(out, valueTok.Value, "=>", "{")
			out = append(out, tr.Translate(body)...)
			out = append(out, "}")
			i = next

		case token.KEYWORD_DEFAULT:
			hasDefault = true
			body, next := tr.caseBody(tokens, i+2)
			out = append(out, "_", "=>", "{")
			out = append(out, tr.Translate(body)...)
			out = append(out, "}")
			i = next

		default:
			i++
		}
	}
	if !hasDefault {
		out = append(out, "_", "=>", "{", "}")
	}
	return out
}

// caseBody carves out one arm's statement span, starting just past the
// label's colon. A case may wrap its body in its own braces; that
// wrapping pair belongs to the label, not the statements, so it is
// stripped here rather than re-emitted inside the arm's block. An
// unbraced body extends to the next `case`/`default` label.
func (tr *Translator) caseBody(tokens []token.Token, start int) ([]token.Token, int) {
	if start < len(tokens) && tokens[start].Type == token.LEFT_CBRACE {
		end, err := skipBlock(tokens, start+1)
		if err != nil {
			tr.addError(err)
			return tokens[start+1:], len(tokens)
		}
		return tokens[start+1 : end-1], end
	}
	j := start
	for j < len(tokens) && tokens[j].Type != token.KEYWORD_CASE && tokens[j].Type != token.KEYWORD_DEFAULT {
		j++
	}
	return tokens[start:j], j
}
