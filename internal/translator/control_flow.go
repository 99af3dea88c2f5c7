package translator

import "github.com/rocky01/crust/internal/token"

// findMatchingBracket scans forward from pos (positioned just after an
// opening LEFT_BRACKET) and returns the index of its matching
// RIGHT_BRACKET, tracking nesting depth.
func findMatchingBracket(tokens []token.Token, pos int) int {
	depth := 1
	for pos < len(tokens) {
		switch tokens[pos].Type {
		case token.LEFT_BRACKET:
			depth++
		case token.RIGHT_BRACKET:
			depth--
			if depth == 0 {
				return pos
			}
		}
		pos++
	}
	return pos
}

// translateIf implements the if/else-if translator. The
// span is `if ( cond ) <braced-block | single-stmt>`; any attached
// `else`/`else if` is rendered separately by Translate's KEYWORD_ELSE
// arm, which recurses back into Translate itself.
func (tr *Translator) translateIf(tokens []token.Token) []string {
	rParen := findMatchingBracket(tokens, 2)
	condTokens := tokens[2:rParen]

	bodyStart := rParen + 1
	bodyEnd := len(tokens)
	if bodyStart < len(tokens) && tokens[bodyStart].Type == token.LEFT_CBRACE {
		bodyStart++
		bodyEnd--
	}

	out := []string{"if"}
	out = append(out, joinCondition(condTokens)...)
	out = append(out, "{")
	out = append(out, tr.Translate(tokens[bodyStart:bodyEnd])...)
	out = append(out, "}")
	return out
}

// translateWhile implements the while translator. The
// shape mirrors translateIf; C and Rust `while` differ only in whether
// the condition is parenthesized. An empty condition, `while ()`,
// has no equivalent in Rust's `while`, so it renders as a bare `loop`
// instead.
func (tr *Translator) translateWhile(tokens []token.Token) []string {
	rParen := findMatchingBracket(tokens, 2)
	condTokens := tokens[2:rParen]

	bodyStart := rParen + 1
	bodyEnd := len(tokens)
	if bodyStart < len(tokens) && tokens[bodyStart].Type == token.LEFT_CBRACE {
		bodyStart++
		bodyEnd--
	}

	var out []string
	if len(condTokens) == 0 {
		out = append(out, "loop")
	} else {
		out = append(out, "while")
		out = append(out, joinCondition(condTokens)...)
	}
	out = append(out, "{")
	out = append(out, tr.Translate(tokens[bodyStart:bodyEnd])...)
	out = append(out, "}")
	return out
}

// translateDoWhile implements the do/while translator.
// Rust has no do-while; the idiomatic rendering is `while { body; cond
// } {}`, the body runs as statements inside the condition block, the
// loop condition is the block's trailing (semicolon-less) expression,
// and the outer while's own body is empty because the real body
// already executed as part of evaluating the condition.
func (tr *Translator) translateDoWhile(tokens []token.Token) []string {
	depth := 1
	j := 2
	for j < len(tokens) && depth > 0 {
		switch tokens[j].Type {
		case token.LEFT_CBRACE:
			depth++
		case token.RIGHT_CBRACE:
			depth--
		}
		if depth == 0 {
			break
		}
		j++
	}
	bodyTokens := tokens[2:j]

	rParen := findMatchingBracket(tokens, j+3)
	condTokens := tokens[j+3 : rParen]

	out := []string{"while", "{"}
	out = append(out, tr.Translate(bodyTokens)...)
	out = append(out, joinCondition(condTokens)...)
	out = append(out, "}", "{", "}")
	return out
}

// translateFor implements the for translator. The
// three header clauses are hoisted: init becomes a statement before the
// loop, the condition becomes a `while` (or a bare `loop` when absent),
// and the update is re-emitted as the last statement of the loop body.
// A for-loop with all three clauses empty degenerates to a bare `loop
// {}`, since `for(;;)` never terminates on its own.
func (tr *Translator) translateFor(tokens []token.Token) []string {
	idx := 2
	semi1 := idx
	for semi1 < len(tokens) && tokens[semi1].Type != token.SEMICOLON {
		semi1++
	}
	initTokens := tokens[idx:semi1]

	semi2 := semi1 + 1
	for semi2 < len(tokens) && tokens[semi2].Type != token.SEMICOLON {
		semi2++
	}
	condTokens := tokens[semi1+1 : semi2]

	rParen := findMatchingBracket(tokens, 2)
	updateTokens := tokens[semi2+1 : rParen]

	bodyStart := rParen + 1
	for bodyStart < len(tokens) && tokens[bodyStart].Type != token.LEFT_CBRACE {
		bodyStart++
	}
	bodyEnd := len(tokens) - 1
	bodyTokens := tokens[bodyStart+1 : bodyEnd]

	if len(initTokens) == 0 && len(condTokens) == 0 && len(updateTokens) == 0 {
		out := []string{"loop", "{"}
		out = append(out, tr.Translate(bodyTokens)...)
		out = append(out, "}")
		return out
	}

	var out []string
	if len(initTokens) > 0 {
		out = append(out, tr.Translate(withTrailingSemicolon(initTokens))...)
	}
	if len(condTokens) > 0 {
		out = append(out, "while")
		out = append(out, joinCondition(condTokens)...)
	} else {
		out = append(out, "loop")
	}
	out = append(out, "{")
	out = append(out, tr.Translate(bodyTokens)...)
	if len(updateTokens) > 0 {
		out = append(out, tr.Translate(withTrailingSemicolon(updateTokens))...)
	}
	out = append(out, "}")
	return out
}

// withTrailingSemicolon copies tokens and appends a synthetic SEMICOLON
// so a bare clause (a for-loop's init/update, which carries no
// semicolon of its own) can be fed back through Translate as a
// complete statement.
func withTrailingSemicolon(tokens []token.Token) []token.Token {
	out := make([]token.Token, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, token.Token{Type: token.SEMICOLON, Value: ";"})
}
