package token

import "fmt"

var baseTypeByName = func() map[string]BaseType {
	m := make(map[string]BaseType, len(baseTypeStrings))
	for i, name := range baseTypeStrings {
		m[name] = BaseType(i)
	}
	return m
}()

var tokenTypeByName = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenTypeStrings))
	for i, name := range tokenTypeStrings {
		m[name] = TokenType(i)
	}
	return m
}()

// ParseBaseType looks up a BaseType by its String() name, for decoding
// a token stream handed to the translator as JSON.
func ParseBaseType(name string) (BaseType, error) {
	b, ok := baseTypeByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown base type %q", name)
	}
	return b, nil
}

// ParseTokenType looks up a TokenType by its String() name.
func ParseTokenType(name string) (TokenType, error) {
	t, ok := tokenTypeByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown token type %q", name)
	}
	return t, nil
}

// WireToken is the JSON-serializable shape a token stream arrives in
// over the external interface: the lexer that owns the
// actual grammar for identifying base/type tags lives upstream of this
// module, so this struct's Base/Type fields are plain strings rather
// than the enums themselves.
type WireToken struct {
	Base   string `json:"base"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Decode converts a WireToken into the Token the translator consumes.
func (w WireToken) Decode() (Token, error) {
	base, err := ParseBaseType(w.Base)
	if err != nil {
		return Token{}, err
	}
	typ, err := ParseTokenType(w.Type)
	if err != nil {
		return Token{}, err
	}
	return New(w.Value, base, typ, w.Line, w.Column), nil
}

// DecodeAll decodes a slice of WireToken into the Token slice the
// translator operates on, stopping at the first malformed entry.
func DecodeAll(wire []WireToken) ([]Token, error) {
	out := make([]Token, 0, len(wire))
	for i, w := range wire {
		t, err := w.Decode()
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}
