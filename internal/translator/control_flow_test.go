package translator

import (
	"testing"

	"github.com/rocky01/crust/internal/token"
)

// TestIfElseIfElseChain checks that a chained `else if` elides the
// extra brace pair the dispatcher would otherwise wrap a bare `else`
// body in.
func TestIfElseIfElseChain(t *testing.T) {
	tokens := []token.Token{
		ifKw(), lparen(), ident("a"), eq(), ident("a"), rparen(), lbrace(), semi(), rbrace(),
		elseKw(), ifKw(), lparen(), ident("a"), lt(), numInt("1"), rparen(), lbrace(), semi(), rbrace(),
		elseKw(), lbrace(), semi(), rbrace(),
	}
	got := New().Translate(tokens)
	assertTokens(t, got, []string{
		"if", "a", "==", "a", "{", ";", "}",
		"else", "if", "a", "<", "1", "{", ";", "}",
		"else", "{", ";", "}",
	})
}

// TestDoWhile checks the structurally unusual do-while rewrite: the
// condition closes the first block, after the body, and the trailing
// block is empty.
func TestDoWhile(t *testing.T) {
	tokens := []token.Token{
		doKw(), lbrace(), ident("a"), inc(), semi(), rbrace(),
		whileKw(), lparen(), ident("a"), lt(), numInt("10"), rparen(), semi(),
	}
	got := New().Translate(tokens)
	assertTokens(t, got, []string{
		"while", "{", "a", "+=1", ";", "a", "<", "10", "}", "{", "}",
	})
}

// TestForOnlyInit checks a for-loop with a populated init clause and
// empty condition/update: the condition clause being empty still
// degenerates to `loop` (not the three-clauses-empty `loop {}` fast
// path, since init is non-empty, but the same "absent condition" rule
// applies per clause).
func TestForOnlyInit(t *testing.T) {
	tokens := []token.Token{
		forKw(), lparen(),
		ident("i"), assign(), numInt("0"), semi(),
		semi(),
		rparen(), lbrace(), semi(), rbrace(),
	}
	got := New().Translate(tokens)
	assertTokens(t, got, []string{
		"i", "=", "0", ";",
		"loop", "{", ";", "}",
	})
}

// TestForDegenerateAllEmpty checks the fully degenerate `for(;;) body`
// form.
func TestForDegenerateAllEmpty(t *testing.T) {
	tokens := []token.Token{
		forKw(), lparen(), semi(), semi(), rparen(), lbrace(), ident("x"), semi(), rbrace(),
	}
	got := New().Translate(tokens)
	assertTokens(t, got, []string{"loop", "{", "x", ";", "}"})
}

// TestIfWithoutBraces checks that a single-statement if body still
// gets wrapped in braces, regardless of whether the source used braces.
func TestIfWithoutBraces(t *testing.T) {
	tokens := []token.Token{
		ifKw(), lparen(), ident("a"), eq(), ident("a"), rparen(),
		ident("b"), assign(), numInt("1"), semi(),
	}
	got := New().Translate(tokens)
	assertTokens(t, got, []string{"if", "a", "==", "a", "{", "b", "=", "1", ";", "}"})
}
