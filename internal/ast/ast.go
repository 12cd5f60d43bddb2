// Package ast defines the Abstract Syntax Tree node types for XPP: a
// tagged-variant tree of declarations, statements, and expressions built
// from interfaces plus one concrete struct per variant, following the
// same shape as the teacher's internal/ast package (Node/Expression/
// Statement interfaces, TokenLiteral/String/Pos on every node).
package ast

import (
	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
	Accept(v Visitor) any
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
	GetType() types.Type
	SetType(types.Type)
}

// Statement is any node that performs an action but does not itself
// produce a value.
type Statement interface {
	Node
	statementNode()
}

// Decl is any top-level or member declaration.
type Decl interface {
	Node
	declNode()
}

// Module is the AST for a single compiled source file: ordered lists of
// its functions, externs, enums, classes and globals, plus the file path
// they came from.
type Module struct {
	FilePath  string
	Functions []*Function
	Externs   []*Extern
	Enums     []*EnumDecl
	Classes   []*ClassDecl
	Globals   []*GlobalVarDecl
}

// AllModules aggregates every compiled module and designates the one
// containing the entry point.
type AllModules struct {
	Modules    []*Module
	MainModule *Module
}
