package translator

import (
	"testing"

	"github.com/rocky01/crust/internal/token"
)

// TestExpressionPostfixDeferred checks that a postfix ++/-- inside a
// composite expression reads as the plain identifier at its use site,
// with the increment deferred to a trailing statement.
func TestExpressionPostfixDeferred(t *testing.T) {
	tokens := []token.Token{ident("a"), plus(), ident("b"), dec(), semi()}
	got := New().translateExpression(tokens)
	assertTokens(t, got, []string{"a", "+", "b", ";", "b", "-=1", ";"})
}

// TestExpressionPrefixInline checks that a prefix ++/-- is rendered
// inline, wrapped in parens, rather than deferred.
func TestExpressionPrefixInline(t *testing.T) {
	tokens := []token.Token{inc(), ident("a"), plus(), ident("b"), semi()}
	got := New().translateExpression(tokens)
	assertTokens(t, got, []string{"(", "a", "+=1", ")", "+", "b", ";"})
}

// TestExpressionVerbatimPassThrough checks that an expression with no
// unary operators is passed through unchanged aside from the
// terminating semicolon.
func TestExpressionVerbatimPassThrough(t *testing.T) {
	tokens := []token.Token{ident("a"), plus(), ident("b"), semi()}
	got := New().translateExpression(tokens)
	assertTokens(t, got, []string{"a", "+", "b", ";"})
}

// TestInExpressionSuppressesStatementRendering checks that the
// in-expression flag suppresses the dispatcher's standalone
// post-increment statement rendering: inside an expression, `i++`
// advances the cursor without emitting anything by itself.
func TestInExpressionSuppressesStatementRendering(t *testing.T) {
	tr := New()
	tr.ctx.InExpression = true
	tokens := []token.Token{ident("i"), inc()}
	newHead, emitted := tr.dispatchIdentifier(tokens, 0)
	if newHead != 2 {
		t.Fatalf("newHead = %d, want 2", newHead)
	}
	if len(emitted) != 0 {
		t.Fatalf("expected no inline emission while in-expression, got %v", emitted)
	}
}
