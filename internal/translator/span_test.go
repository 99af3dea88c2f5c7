package translator

import (
	"testing"

	"github.com/rocky01/crust/internal/token"
)

func TestSkipStatement(t *testing.T) {
	tokens := []token.Token{ident("a"), assign(), numInt("1"), semi(), ident("b")}
	end, err := skipStatement(tokens, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != 4 {
		t.Fatalf("end = %d, want 4", end)
	}
}

func TestSkipStatementMissingSemicolon(t *testing.T) {
	tokens := []token.Token{ident("a"), assign(), numInt("1")}
	_, err := skipStatement(tokens, 0)
	if err == nil {
		t.Fatal("expected an error for a statement missing its terminating semicolon")
	}
	if err.Code != ErrUnexpectedEOF {
		t.Fatalf("err.Code = %q, want %q", err.Code, ErrUnexpectedEOF)
	}
}

func TestSkipBlock(t *testing.T) {
	// { a ; { b ; } c ; }  -- cursor positioned just after the opening brace.
	tokens := []token.Token{
		ident("a"), semi(),
		lbrace(), ident("b"), semi(), rbrace(),
		ident("c"), semi(),
		rbrace(),
	}
	end, err := skipBlock(tokens, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != len(tokens) {
		t.Fatalf("end = %d, want %d (the whole nested span)", end, len(tokens))
	}
}

func TestSkipBlockMissingClosingBrace(t *testing.T) {
	tokens := []token.Token{ident("a"), semi()}
	_, err := skipBlock(tokens, 0)
	if err == nil {
		t.Fatal("expected an error for a block missing its closing brace")
	}
}
