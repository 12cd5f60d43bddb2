// Package token defines the lexical token vocabulary shared by the lexer,
// parser, and diagnostics machinery.
package token

import "fmt"

// Position is a half-open span of source coordinates, 1-based on both
// axes. It is attached to every token and, transitively, every AST node.
type Position struct {
	LineStart int
	ColStart  int
	LineEnd   int
	ColEnd    int
}

// String renders a position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineStart, p.ColStart)
}

// Kind is the closed set of lexical categories a Token can belong to.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// literals
	IDENT
	INT
	UINT
	FLOAT
	STRING
	CHAR
	TRUE
	FALSE

	// keywords
	FN
	LET
	MUT
	PUB
	EXTERN
	ENUM
	CLASS
	IF
	ELSE
	ELSE_IF
	WHILE
	RETURN
	AS

	// primitive type names
	VOID
	BOOL
	I8
	I32
	I64
	U8
	U32
	U64
	F32
	F64

	// punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON
	COLONCOLON
	DOT
	ELLIPSIS

	// operators
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	OR
	AND
	EQ
	NEQ
	LT
	LTE
	GT
	GTE
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	BANG
	AMP
	INCR
	DECR
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENT: "IDENT", INT: "INT", UINT: "UINT", FLOAT: "FLOAT", STRING: "STRING", CHAR: "CHAR",
	TRUE: "true", FALSE: "false",
	FN: "fn", LET: "let", MUT: "mut", PUB: "pub", EXTERN: "extern",
	ENUM: "enum", CLASS: "class", IF: "if", ELSE: "else", ELSE_IF: "else_if",
	WHILE: "while", RETURN: "return", AS: "as",
	VOID: "void", BOOL: "bool", I8: "i8", I32: "i32", I64: "i64",
	U8: "u8", U32: "u32", U64: "u64", F32: "f32", F64: "f64",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", COMMA: ",", SEMICOLON: ";", COLON: ":",
	COLONCOLON: "::", DOT: ".", ELLIPSIS: "...",
	ASSIGN: "=", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=",
	SLASH_ASSIGN: "/=", OR: "||", AND: "&&", EQ: "==", NEQ: "!=",
	LT: "<", LTE: "<=", GT: ">", GTE: ">=",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	BANG: "!", AMP: "&", INCR: "++", DECR: "--",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k Kind) IsKeyword() bool {
	switch k {
	case FN, LET, MUT, PUB, EXTERN, ENUM, CLASS, IF, ELSE, ELSE_IF, WHILE,
		RETURN, AS, TRUE, FALSE,
		VOID, BOOL, I8, I32, I64, U8, U32, U64, F32, F64:
		return true
	default:
		return false
	}
}

var keywords = map[string]Kind{
	"fn": FN, "let": LET, "mut": MUT, "pub": PUB, "extern": EXTERN,
	"enum": ENUM, "class": CLASS, "if": IF, "else": ELSE, "else_if": ELSE_IF,
	"while": WHILE, "return": RETURN, "as": AS,
	"true": TRUE, "false": FALSE,
	"void": VOID, "bool": BOOL, "i8": I8, "i32": I32, "i64": I64,
	"u8": U8, "u32": U32, "u64": U64, "f32": F32, "f64": F64,
}

// LookupIdent returns the keyword Kind for word if it is a reserved word,
// or IDENT otherwise.
func LookupIdent(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return IDENT
}

// Token is a single lexeme produced by the lexer: its literal text, its
// position in the source, and its kind.
type Token struct {
	Lexeme string
	Pos    Position
	Kind   Kind
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Pos)
}

// IsPrimitiveTypeName reports whether k names a primitive type token.
func IsPrimitiveTypeName(k Kind) bool {
	switch k {
	case VOID, BOOL, I8, I32, I64, U8, U32, U64, F32, F64:
		return true
	default:
		return false
	}
}
