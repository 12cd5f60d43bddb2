package ast

import (
	"bytes"
	"strings"

	"github.com/joshuawills/xppc/pkg/token"
)

// EmptyStmt is a bare `;`.
type EmptyStmt struct {
	Tok token.Token
}

func (e *EmptyStmt) TokenLiteral() string { return e.Tok.Lexeme }
func (e *EmptyStmt) Pos() token.Position  { return e.Tok.Pos }
func (e *EmptyStmt) statementNode()       {}
func (e *EmptyStmt) String() string       { return ";" }
func (e *EmptyStmt) Accept(v Visitor) any { return v.VisitEmptyStmt(e) }

// CompoundStmt is a brace-delimited block of statements.
type CompoundStmt struct {
	Tok        token.Token
	Statements []Statement
}

func (c *CompoundStmt) TokenLiteral() string { return c.Tok.Lexeme }
func (c *CompoundStmt) Pos() token.Position  { return c.Tok.Pos }
func (c *CompoundStmt) statementNode()       {}
func (c *CompoundStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range c.Statements {
		out.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	out.WriteString("}")
	return out.String()
}
func (c *CompoundStmt) Accept(v Visitor) any { return v.VisitCompoundStmt(c) }

// LocalVarStmt wraps a LocalVarDecl in statement position.
type LocalVarStmt struct {
	Decl *LocalVarDecl
}

func (l *LocalVarStmt) TokenLiteral() string { return l.Decl.TokenLiteral() }
func (l *LocalVarStmt) Pos() token.Position  { return l.Decl.Pos() }
func (l *LocalVarStmt) statementNode()       {}
func (l *LocalVarStmt) String() string       { return l.Decl.String() }
func (l *LocalVarStmt) Accept(v Visitor) any { return v.VisitLocalVarStmt(l) }

// ReturnStmt returns from the enclosing function, optionally with a
// value expression.
type ReturnStmt struct {
	Tok  token.Token
	Expr Expression
}

func (r *ReturnStmt) TokenLiteral() string { return r.Tok.Lexeme }
func (r *ReturnStmt) Pos() token.Position  { return r.Tok.Pos }
func (r *ReturnStmt) statementNode()       {}
func (r *ReturnStmt) String() string {
	if r.Expr != nil {
		return "return " + r.Expr.String() + ";"
	}
	return "return;"
}
func (r *ReturnStmt) Accept(v Visitor) any { return v.VisitReturnStmt(r) }

// ExprStmt is a statement consisting of a bare expression, evaluated for
// its side effects.
type ExprStmt struct {
	Tok  token.Token
	Expr Expression
}

func (e *ExprStmt) TokenLiteral() string { return e.Tok.Lexeme }
func (e *ExprStmt) Pos() token.Position  { return e.Tok.Pos }
func (e *ExprStmt) statementNode()       {}
func (e *ExprStmt) String() string       { return e.Expr.String() + ";" }
func (e *ExprStmt) Accept(v Visitor) any { return v.VisitExprStmt(e) }

// WhileStmt loops while Cond evaluates to true.
type WhileStmt struct {
	Tok  token.Token
	Cond Expression
	Body *CompoundStmt
}

func (w *WhileStmt) TokenLiteral() string { return w.Tok.Lexeme }
func (w *WhileStmt) Pos() token.Position  { return w.Tok.Pos }
func (w *WhileStmt) statementNode()       {}
func (w *WhileStmt) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}
func (w *WhileStmt) Accept(v Visitor) any { return v.VisitWhileStmt(w) }

// ElseIfStmt is one `else if` arm chained off an IfStmt.
type ElseIfStmt struct {
	Tok  token.Token
	Cond Expression
	Body *CompoundStmt
}

func (e *ElseIfStmt) TokenLiteral() string { return e.Tok.Lexeme }
func (e *ElseIfStmt) Pos() token.Position  { return e.Tok.Pos }
func (e *ElseIfStmt) statementNode()       {}
func (e *ElseIfStmt) String() string {
	return "else_if (" + e.Cond.String() + ") " + e.Body.String()
}
func (e *ElseIfStmt) Accept(v Visitor) any { return v.VisitElseIfStmt(e) }

// IfStmt is a conditional with zero or more else_if arms and an optional
// trailing else block.
type IfStmt struct {
	Tok    token.Token
	Cond   Expression
	Then   *CompoundStmt
	ElseIf []*ElseIfStmt
	Else   *CompoundStmt
}

func (i *IfStmt) TokenLiteral() string { return i.Tok.Lexeme }
func (i *IfStmt) Pos() token.Position  { return i.Tok.Pos }
func (i *IfStmt) statementNode()       {}
func (i *IfStmt) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Cond.String() + ") " + i.Then.String())
	for _, ei := range i.ElseIf {
		out.WriteString(" " + ei.String())
	}
	if i.Else != nil {
		out.WriteString(" else " + i.Else.String())
	}
	return out.String()
}
func (i *IfStmt) Accept(v Visitor) any { return v.VisitIfStmt(i) }
