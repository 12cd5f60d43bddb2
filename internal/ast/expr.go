package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

// ExprBase carries the Type field every expression has (spec.md §3:
// "Every expression carries a type field, initially Unknown, set during
// verification") plus the token the node starts at.
type ExprBase struct {
	Tok  token.Token
	Type types.Type
}

func (e *ExprBase) TokenLiteral() string     { return e.Tok.Lexeme }
func (e *ExprBase) Pos() token.Position      { return e.Tok.Pos }
func (e *ExprBase) expressionNode()          {}
func (e *ExprBase) GetType() types.Type      { return e.Type }
func (e *ExprBase) SetType(t types.Type)     { e.Type = t }

func newExprBase(tok token.Token) ExprBase {
	return ExprBase{Tok: tok, Type: types.UnknownType}
}

// EmptyExpr is a placeholder expression (e.g. an omitted array size).
type EmptyExpr struct{ ExprBase }

func NewEmptyExpr(tok token.Token) *EmptyExpr { return &EmptyExpr{newExprBase(tok)} }
func (e *EmptyExpr) String() string           { return "" }
func (e *EmptyExpr) Accept(v Visitor) any     { return v.VisitEmptyExpr(e) }

// AssignmentExpr is `lhs op rhs` for op in {=, +=, -=, *=, /=}.
type AssignmentExpr struct {
	ExprBase
	Lhs Expression
	Op  token.Kind
	Rhs Expression
}

func NewAssignmentExpr(tok token.Token, lhs Expression, op token.Kind, rhs Expression) *AssignmentExpr {
	return &AssignmentExpr{newExprBase(tok), lhs, op, rhs}
}
func (a *AssignmentExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Lhs.String(), a.Op, a.Rhs.String())
}
func (a *AssignmentExpr) Accept(v Visitor) any { return v.VisitAssignmentExpr(a) }

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	ExprBase
	Left  Expression
	Op    token.Kind
	Right Expression
}

func NewBinaryExpr(tok token.Token, left Expression, op token.Kind, right Expression) *BinaryExpr {
	return &BinaryExpr{newExprBase(tok), left, op, right}
}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}
func (b *BinaryExpr) Accept(v Visitor) any { return v.VisitBinaryExpr(b) }

// UnaryExpr is a prefix or postfix unary operator application (!, +, -,
// * deref, & address-of, ++, --).
type UnaryExpr struct {
	ExprBase
	Op      token.Kind
	Operand Expression
	Postfix bool
}

func NewUnaryExpr(tok token.Token, op token.Kind, operand Expression, postfix bool) *UnaryExpr {
	return &UnaryExpr{newExprBase(tok), op, operand, postfix}
}
func (u *UnaryExpr) String() string {
	if u.Postfix {
		return fmt.Sprintf("(%s%s)", u.Operand.String(), u.Op)
	}
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand.String())
}
func (u *UnaryExpr) Accept(v Visitor) any { return v.VisitUnaryExpr(u) }

// IntLit is a signed integer literal.
type IntLit struct {
	ExprBase
	Value int64
}

func NewIntLit(tok token.Token, value int64) *IntLit {
	e := &IntLit{newExprBase(tok), value}
	e.Type = types.I64Type
	return e
}
func (i *IntLit) String() string       { return i.Tok.Lexeme }
func (i *IntLit) Accept(v Visitor) any { return v.VisitIntLit(i) }

// UIntLit is an unsigned integer literal.
type UIntLit struct {
	ExprBase
	Value uint64
}

func NewUIntLit(tok token.Token, value uint64) *UIntLit {
	e := &UIntLit{newExprBase(tok), value}
	e.Type = &types.Primitive{Spec: types.U64}
	return e
}
func (u *UIntLit) String() string       { return u.Tok.Lexeme }
func (u *UIntLit) Accept(v Visitor) any { return v.VisitUIntLit(u) }

// DecimalLit is a floating-point literal.
type DecimalLit struct {
	ExprBase
	Value float64
}

func NewDecimalLit(tok token.Token, value float64) *DecimalLit {
	e := &DecimalLit{newExprBase(tok), value}
	e.Type = &types.Primitive{Spec: types.F64}
	return e
}
func (d *DecimalLit) String() string       { return d.Tok.Lexeme }
func (d *DecimalLit) Accept(v Visitor) any { return v.VisitDecimalLit(d) }

// BoolLit is `true` or `false`.
type BoolLit struct {
	ExprBase
	Value bool
}

func NewBoolLit(tok token.Token, value bool) *BoolLit {
	e := &BoolLit{newExprBase(tok), value}
	e.Type = types.BoolType
	return e
}
func (b *BoolLit) String() string       { return b.Tok.Lexeme }
func (b *BoolLit) Accept(v Visitor) any { return v.VisitBoolLit(b) }

// CharLit is a single-character literal (spec.md diagnostic #18 enforces
// the single-character constraint during verification, not lexing).
type CharLit struct {
	ExprBase
	Raw string // decoded contents between the quotes, pre-verification
}

func NewCharLit(tok token.Token, raw string) *CharLit {
	e := &CharLit{ExprBase: newExprBase(tok), Raw: raw}
	e.Type = &types.Primitive{Spec: types.U8}
	return e
}
func (c *CharLit) String() string       { return "'" + c.Raw + "'" }
func (c *CharLit) Accept(v Visitor) any { return v.VisitCharLit(c) }

// StringLit is a double-quoted string literal.
type StringLit struct {
	ExprBase
	Value string
}

func NewStringLit(tok token.Token, value string) *StringLit {
	e := &StringLit{newExprBase(tok), value}
	e.Type = &types.Pointer{Inner: &types.Primitive{Spec: types.U8}}
	return e
}
func (s *StringLit) String() string       { return "\"" + s.Value + "\"" }
func (s *StringLit) Accept(v Visitor) any { return v.VisitStringLit(s) }

// VarExpr references a variable or parameter by name. Ref is populated by
// the verifier on successful resolution (spec.md invariant 3).
type VarExpr struct {
	ExprBase
	Name string
	Ref  Decl
}

func NewVarExpr(tok token.Token, name string) *VarExpr {
	return &VarExpr{ExprBase: newExprBase(tok), Name: name}
}
func (ve *VarExpr) String() string       { return ve.Name }
func (ve *VarExpr) Accept(v Visitor) any { return v.VisitVarExpr(ve) }

// CallExpr calls a free function by name.
type CallExpr struct {
	ExprBase
	Name string
	Args []Expression
	Ref  *Function
}

func NewCallExpr(tok token.Token, name string, args []Expression) *CallExpr {
	return &CallExpr{ExprBase: newExprBase(tok), Name: name, Args: args}
}
func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}
func (c *CallExpr) Accept(v Visitor) any { return v.VisitCallExpr(c) }

// CastExpr is `expr as Type`.
type CastExpr struct {
	ExprBase
	Expr       Expression
	TargetType types.Type
}

func NewCastExpr(tok token.Token, expr Expression, target types.Type) *CastExpr {
	e := &CastExpr{ExprBase: newExprBase(tok), Expr: expr, TargetType: target}
	return e
}
func (c *CastExpr) String() string       { return "(" + c.Expr.String() + " as " + c.TargetType.String() + ")" }
func (c *CastExpr) Accept(v Visitor) any { return v.VisitCastExpr(c) }

// ArrayInitExpr is a bracketed array literal, e.g. `[1, 2, 3]`.
type ArrayInitExpr struct {
	ExprBase
	Elements []Expression
}

func NewArrayInitExpr(tok token.Token, elements []Expression) *ArrayInitExpr {
	return &ArrayInitExpr{ExprBase: newExprBase(tok), Elements: elements}
}
func (a *ArrayInitExpr) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
func (a *ArrayInitExpr) Accept(v Visitor) any { return v.VisitArrayInitExpr(a) }

// ArrayIndexExpr is `base[index]`.
type ArrayIndexExpr struct {
	ExprBase
	Base  Expression
	Index Expression
}

func NewArrayIndexExpr(tok token.Token, base, index Expression) *ArrayIndexExpr {
	return &ArrayIndexExpr{ExprBase: newExprBase(tok), Base: base, Index: index}
}
func (a *ArrayIndexExpr) String() string {
	return a.Base.String() + "[" + a.Index.String() + "]"
}
func (a *ArrayIndexExpr) Accept(v Visitor) any { return v.VisitArrayIndexExpr(a) }

// EnumAccessExpr is `EnumName::field`.
type EnumAccessExpr struct {
	ExprBase
	EnumName string
	Field    string
	Ref      *EnumDecl
}

func NewEnumAccessExpr(tok token.Token, enumName, field string) *EnumAccessExpr {
	return &EnumAccessExpr{ExprBase: newExprBase(tok), EnumName: enumName, Field: field}
}
func (e *EnumAccessExpr) String() string       { return e.EnumName + "::" + e.Field }
func (e *EnumAccessExpr) Accept(v Visitor) any { return v.VisitEnumAccessExpr(e) }

// FieldAccessExpr is `base.field`.
type FieldAccessExpr struct {
	ExprBase
	Base  Expression
	Field string
}

func NewFieldAccessExpr(tok token.Token, base Expression, field string) *FieldAccessExpr {
	return &FieldAccessExpr{ExprBase: newExprBase(tok), Base: base, Field: field}
}
func (f *FieldAccessExpr) String() string       { return f.Base.String() + "." + f.Field }
func (f *FieldAccessExpr) Accept(v Visitor) any { return v.VisitFieldAccessExpr(f) }

// MethodAccessExpr is `base.method(args)`.
type MethodAccessExpr struct {
	ExprBase
	Base   Expression
	Method string
	Args   []Expression
}

func NewMethodAccessExpr(tok token.Token, base Expression, method string, args []Expression) *MethodAccessExpr {
	return &MethodAccessExpr{ExprBase: newExprBase(tok), Base: base, Method: method, Args: args}
}
func (m *MethodAccessExpr) String() string {
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = a.String()
	}
	var out bytes.Buffer
	out.WriteString(m.Base.String())
	out.WriteString(".")
	out.WriteString(m.Method)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
func (m *MethodAccessExpr) Accept(v Visitor) any { return v.VisitMethodAccessExpr(m) }
