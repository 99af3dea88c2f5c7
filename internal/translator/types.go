package translator

// rustTypeNames is the fixed, bit-exact source-type-code mapping:
// 0→i32, 1→i16, 2→i64, 3→f32, 4→f64, 5→char, 6→bool, 7→void.
var rustTypeNames = [...]string{
	0: "i32",
	1: "i16",
	2: "i64",
	3: "f32",
	4: "f64",
	5: "char",
	6: "bool",
	7: "void",
}

// unknownType is rendered downstream whenever MapType reports no name
// for a source-type code outside [0..7].
const unknownType = "UNKNOWN_TYPE"

// MapType maps a numeric source-type code to its target-language type
// name. It returns false for any code outside [0..7]; callers that need
// to render an absent mapping should emit unknownType (see declarations.go
// and functions.go).
func MapType(code int) (string, bool) {
	if code < 0 || code >= len(rustTypeNames) {
		return "", false
	}
	return rustTypeNames[code], true
}

// mapTypeOrUnknown renders the UNKNOWN_TYPE fallback for out-of-range
// codes.
func mapTypeOrUnknown(code int) string {
	if name, ok := MapType(code); ok {
		return name
	}
	return unknownType
}
