package token

// TokenType is the fine-grained tag identifying a specific keyword,
// punctuation mark, operator, or literal kind, grouped by category.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	// Identifiers and literals
	IDENTIFIER
	MAIN // the distinguished `main` identifier
	NUM_INT
	NUM_FLOAT

	// Comments
	COMMENT_SINGLE
	COMMENT_MULTI

	// Keywords - control flow
	KEYWORD_IF
	KEYWORD_ELSE
	KEYWORD_WHILE
	KEYWORD_DO
	KEYWORD_FOR
	KEYWORD_SWITCH
	KEYWORD_CASE
	KEYWORD_DEFAULT

	// Primitive datatypes (base type DATATYPE); numeric code in [0..7]
	// follows the order MapType expects: int32, int16, int64, float32,
	// float64, char, bool, void.
	PRIMITIVE_INT32
	PRIMITIVE_INT16
	PRIMITIVE_INT64
	PRIMITIVE_FLOAT32
	PRIMITIVE_FLOAT64
	PRIMITIVE_CHAR
	PRIMITIVE_BOOL
	PRIMITIVE_VOID

	// Delimiters
	LEFT_BRACKET  // (
	RIGHT_BRACKET // )
	LEFT_SBRACKET // [
	RIGHT_SBRACKET
	LEFT_CBRACE // {
	RIGHT_CBRACE
	SEMICOLON
	COMMA
	COLON

	// Assignment
	OP_ASSIGN

	// Unary (base type UNOP)
	OP_INC
	OP_DEC

	// Binary (base type BINOP)
	OP_PLUS
	OP_MINUS
	OP_MUL
	OP_DIV
	OP_MOD
	OP_EQU
	OP_NEQ
	OP_LT
	OP_GT
	OP_LE
	OP_GE
	OP_AND
	OP_OR
)

func (t TokenType) String() string {
	if int(t) < len(tokenTypeStrings) {
		return tokenTypeStrings[t]
	}
	return "UNKNOWN"
}

var tokenTypeStrings = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENTIFIER: "IDENTIFIER",
	MAIN:       "MAIN",
	NUM_INT:    "NUM_INT",
	NUM_FLOAT:  "NUM_FLOAT",

	COMMENT_SINGLE: "COMMENT_SINGLE",
	COMMENT_MULTI:  "COMMENT_MULTI",

	KEYWORD_IF:      "KEYWORD_IF",
	KEYWORD_ELSE:    "KEYWORD_ELSE",
	KEYWORD_WHILE:   "KEYWORD_WHILE",
	KEYWORD_DO:      "KEYWORD_DO",
	KEYWORD_FOR:     "KEYWORD_FOR",
	KEYWORD_SWITCH:  "KEYWORD_SWITCH",
	KEYWORD_CASE:    "KEYWORD_CASE",
	KEYWORD_DEFAULT: "KEYWORD_DEFAULT",

	PRIMITIVE_INT32:   "PRIMITIVE_INT32",
	PRIMITIVE_INT16:   "PRIMITIVE_INT16",
	PRIMITIVE_INT64:   "PRIMITIVE_INT64",
	PRIMITIVE_FLOAT32: "PRIMITIVE_FLOAT32",
	PRIMITIVE_FLOAT64: "PRIMITIVE_FLOAT64",
	PRIMITIVE_CHAR:    "PRIMITIVE_CHAR",
	PRIMITIVE_BOOL:    "PRIMITIVE_BOOL",
	PRIMITIVE_VOID:    "PRIMITIVE_VOID",

	LEFT_BRACKET:   "LEFT_BRACKET",
	RIGHT_BRACKET:  "RIGHT_BRACKET",
	LEFT_SBRACKET:  "LEFT_SBRACKET",
	RIGHT_SBRACKET: "RIGHT_SBRACKET",
	LEFT_CBRACE:    "LEFT_CBRACE",
	RIGHT_CBRACE:   "RIGHT_CBRACE",
	SEMICOLON:      "SEMICOLON",
	COMMA:          "COMMA",
	COLON:          "COLON",

	OP_ASSIGN: "OP_ASSIGN",

	OP_INC: "OP_INC",
	OP_DEC: "OP_DEC",

	OP_PLUS:  "OP_PLUS",
	OP_MINUS: "OP_MINUS",
	OP_MUL:   "OP_MUL",
	OP_DIV:   "OP_DIV",
	OP_MOD:   "OP_MOD",
	OP_EQU:   "OP_EQU",
	OP_NEQ:   "OP_NEQ",
	OP_LT:    "OP_LT",
	OP_GT:    "OP_GT",
	OP_LE:    "OP_LE",
	OP_GE:    "OP_GE",
	OP_AND:   "OP_AND",
	OP_OR:    "OP_OR",
}

// primitiveTypeCode maps a DATATYPE token type to its numeric type code
// in [0..7], the input domain of MapType.
var primitiveTypeCode = map[TokenType]int{
	PRIMITIVE_INT32:   0,
	PRIMITIVE_INT16:   1,
	PRIMITIVE_INT64:   2,
	PRIMITIVE_FLOAT32: 3,
	PRIMITIVE_FLOAT64: 4,
	PRIMITIVE_CHAR:    5,
	PRIMITIVE_BOOL:    6,
	PRIMITIVE_VOID:    7,
}

// TypeCode returns the numeric source-type code for a DATATYPE token,
// and false if t is not a primitive type keyword.
func TypeCode(t TokenType) (int, bool) {
	code, ok := primitiveTypeCode[t]
	return code, ok
}
