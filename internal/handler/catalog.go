package handler

// Catalog is the 42-entry numbered diagnostic catalog, copied verbatim
// from original_source/src/verifier.hpp's all_errors_ vector (spec.md
// §4.4.4). Message text is the stable, test-matched contract; do not
// reword it.
var Catalog = map[int]string{
	0:  "main function is missing",
	1:  "duplicate function declaration: %",
	2:  "invalid main function signature: %",
	3:  "identifier redeclared in the same scope: %",
	4:  "identifier declared void: %",
	5:  "incompatible type for this binary operator: %",
	6:  "incompatible type for this assignment: %",
	7:  "LHS of assignment must be a variable",
	8:  "variable not declared in this scope: %",
	9:  "incompatible type for this unary operator: %",
	10: "missing return stmt: %",
	11: "incompatible type for return: %",
	12: "no such function with name: %",
	13: "main function may not call itself",
	14: "incorrect parameters for function: %",
	15: "duplicate extern declaration: %",
	16: "user functions can't utilise variatics: %",
	17: "variatic type may only be last specified type in extern declaration",
	18: "character literal can only have one character in it",
	19: "while stmt condition is not boolean: %",
	20: "cannot mutate constant variable: %",
	21: "unused variable: %",
	22: "unused function: %",
	23: "unused extern: %",
	24: "if statement condition is not boolean: %",
	25: "address-of operand can only be performed to allocated variables",
	26: "can't get address of a constant variable: %",
	27: "invalid type cast operation: %",
	28: "prefix/postfix operators may only be applied to lvalue types",
	29: "can't initialise variable without type or value: %",
	30: "duplicate global var declaration: %",
	31: "excess elements provided in array init expression: %",
	32: "array initialised with 0 elements",
	33: "incompatible type for array initialiser expression: %",
	34: "array index expression may only be performed on array or pointer types: %",
	35: "type of array index must be either a signed or unsigned integer: %",
	36: "duplicate enum declarations: %",
	37: "enum declared with no fields",
	38: "no such enum exists: %",
	39: "no such field present on enum: %",
	40: "enum declared with duplicate fields: %",
	41: "unused enum: %",
	42: "unknown type declared: %",
}

// minorCodes are the catalog entries that are minor errors by default:
// suppressible with --quiet and not counted toward the abort threshold
// (spec.md §4.4.4, SUPPLEMENTED FEATURES #2 in SPEC_FULL.md). Code 3
// (identifier redeclared) is contextual — a redeclared parameter is a
// full error, a redeclared local is minor — so the verifier picks its
// severity explicitly rather than relying on this table.
var minorCodes = map[int]bool{
	21: true,
	22: true,
	23: true,
	41: true,
}

// CatalogMessage returns the `%`-templated text for a catalog code, or a
// placeholder if the code is out of range.
func CatalogMessage(code int) string {
	if msg, ok := Catalog[code]; ok {
		return msg
	}
	return "unknown diagnostic"
}

// IsMinor reports whether code is minor by default.
func IsMinor(code int) bool { return minorCodes[code] }
