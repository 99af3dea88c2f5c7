package token

import "testing"

func TestNewAndPair(t *testing.T) {
	tok := New("x", VALUE, IDENTIFIER, 4, 9)
	if tok.Value != "x" || tok.Pos.Line != 4 || tok.Pos.Column != 9 {
		t.Fatalf("unexpected token: %+v", tok)
	}
	base, typ := tok.Pair()
	if base != VALUE || typ != IDENTIFIER {
		t.Fatalf("Pair() = (%v, %v), want (VALUE, IDENTIFIER)", base, typ)
	}
}

func TestBaseTypeString(t *testing.T) {
	cases := map[BaseType]string{
		NONE:     "NONE",
		DATATYPE: "DATATYPE",
		UNOP:     "UNOP",
		BINOP:    "BINOP",
		VALUE:    "VALUE",
		COMMENT:  "COMMENT",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("BaseType(%d).String() = %q, want %q", b, got, want)
		}
	}
}

func TestBaseTypeStringOutOfRange(t *testing.T) {
	if got := BaseType(999).String(); got != "UNKNOWN_BASE" {
		t.Fatalf("BaseType(999).String() = %q, want UNKNOWN_BASE", got)
	}
}

func TestTokenTypeStringOutOfRange(t *testing.T) {
	if got := TokenType(9999).String(); got != "UNKNOWN" {
		t.Fatalf("TokenType(9999).String() = %q, want UNKNOWN", got)
	}
}

func TestTypeCode(t *testing.T) {
	cases := map[TokenType]int{
		PRIMITIVE_INT32:   0,
		PRIMITIVE_INT16:   1,
		PRIMITIVE_INT64:   2,
		PRIMITIVE_FLOAT32: 3,
		PRIMITIVE_FLOAT64: 4,
		PRIMITIVE_CHAR:    5,
		PRIMITIVE_BOOL:    6,
		PRIMITIVE_VOID:    7,
	}
	for typ, want := range cases {
		got, ok := TypeCode(typ)
		if !ok || got != want {
			t.Errorf("TypeCode(%v) = (%d, %v), want (%d, true)", typ, got, ok, want)
		}
	}
}

func TestTypeCodeNotAPrimitive(t *testing.T) {
	if _, ok := TypeCode(IDENTIFIER); ok {
		t.Fatalf("TypeCode(IDENTIFIER) should report false")
	}
}
