package translator

import "github.com/rocky01/crust/internal/token"

// Small token constructors so table-driven tests below read close to
// the source snippets they translate; token streams are built by hand
// since the lexer lives outside this module.

func tk(value string, base token.BaseType, typ token.TokenType) token.Token {
	return token.New(value, base, typ, 1, 1)
}

func ident(name string) token.Token     { return tk(name, token.VALUE, token.IDENTIFIER) }
func mainTok(name string) token.Token   { return tk(name, token.VALUE, token.MAIN) }
func numInt(v string) token.Token       { return tk(v, token.VALUE, token.NUM_INT) }
func comment(text string) token.Token   { return tk(text, token.COMMENT, token.COMMENT_MULTI) }
func datatype(typ token.TokenType) func() token.Token {
	return func() token.Token {
		names := map[token.TokenType]string{
			token.PRIMITIVE_INT32:   "int",
			token.PRIMITIVE_INT16:   "short",
			token.PRIMITIVE_INT64:   "long",
			token.PRIMITIVE_FLOAT32: "float",
			token.PRIMITIVE_FLOAT64: "double",
			token.PRIMITIVE_CHAR:    "char",
			token.PRIMITIVE_BOOL:    "bool",
			token.PRIMITIVE_VOID:    "void",
		}
		return tk(names[typ], token.DATATYPE, typ)
	}
}

var (
	intType  = datatype(token.PRIMITIVE_INT32)()
	charType = datatype(token.PRIMITIVE_CHAR)()
	voidType = datatype(token.PRIMITIVE_VOID)()
)

func punct(value string, typ token.TokenType) token.Token { return tk(value, token.NONE, typ) }

func lparen() token.Token  { return punct("(", token.LEFT_BRACKET) }
func rparen() token.Token  { return punct(")", token.RIGHT_BRACKET) }
func lbrace() token.Token  { return punct("{", token.LEFT_CBRACE) }
func rbrace() token.Token  { return punct("}", token.RIGHT_CBRACE) }
func lsb() token.Token     { return punct("[", token.LEFT_SBRACKET) }
func colon() token.Token   { return punct(":", token.COLON) }
func rsb() token.Token     { return punct("]", token.RIGHT_SBRACKET) }
func semi() token.Token    { return punct(";", token.SEMICOLON) }
func comma() token.Token   { return punct(",", token.COMMA) }
func assign() token.Token  { return tk("=", token.NONE, token.OP_ASSIGN) }
func plus() token.Token    { return tk("+", token.BINOP, token.OP_PLUS) }
func eq() token.Token      { return tk("==", token.BINOP, token.OP_EQU) }
func lt() token.Token      { return tk("<", token.BINOP, token.OP_LT) }
func inc() token.Token     { return tk("++", token.UNOP, token.OP_INC) }
func dec() token.Token     { return tk("--", token.UNOP, token.OP_DEC) }
func kw(v string, typ token.TokenType) token.Token { return tk(v, token.NONE, typ) }

func ifKw() token.Token      { return kw("if", token.KEYWORD_IF) }
func elseKw() token.Token    { return kw("else", token.KEYWORD_ELSE) }
func whileKw() token.Token   { return kw("while", token.KEYWORD_WHILE) }
func doKw() token.Token      { return kw("do", token.KEYWORD_DO) }
func forKw() token.Token     { return kw("for", token.KEYWORD_FOR) }
func switchKw() token.Token  { return kw("switch", token.KEYWORD_SWITCH) }
func caseKw() token.Token    { return kw("case", token.KEYWORD_CASE) }
func defaultKw() token.Token { return kw("default", token.KEYWORD_DEFAULT) }

// assertTokens compares two string slices for exact equality, failing
// with the first mismatching index and both full sequences.
func assertTokens(t interface{ Fatalf(string, ...any) }, got, want []string) {
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v (%d), want %v (%d)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d mismatch: got %q, want %q (full got=%v)", i, got[i], want[i], got)
		}
	}
}
