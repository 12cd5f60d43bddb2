package semantic

import (
	"strconv"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

func (v *Verifier) VisitEmptyExpr(e *ast.EmptyExpr) any { return e.Type }
func (v *Verifier) VisitIntLit(i *ast.IntLit) any       { return i.Type }
func (v *Verifier) VisitUIntLit(u *ast.UIntLit) any     { return u.Type }
func (v *Verifier) VisitDecimalLit(d *ast.DecimalLit) any { return d.Type }
func (v *Verifier) VisitBoolLit(b *ast.BoolLit) any     { return b.Type }
func (v *Verifier) VisitStringLit(s *ast.StringLit) any { return s.Type }

// VisitCharLit enforces the single-character constraint the original
// lexer never checked (spec.md §9 Open Questions, SPEC_FULL.md
// Supplemented Features #4): diagnostic 18 fires when Raw decodes to
// anything but exactly one rune.
func (v *Verifier) VisitCharLit(c *ast.CharLit) any {
	if len([]rune(c.Raw)) != 1 {
		v.diag(18, c, c.Raw)
	}
	return c.Type
}

// VisitVarExpr resolves name against the current scope first, falling
// back to the module's globals map, since globals deliberately live
// outside the (non-lexically-nested) SymbolTable — inserting them at
// level 1 would make RetrieveOneLevel's scope-boundary rule hide them
// from every function body (see DESIGN.md).
func (v *Verifier) VisitVarExpr(n *ast.VarExpr) any {
	if decl, found := v.st.RetrieveOneLevel(n.Name); found {
		return v.bindVarRef(n, decl)
	}
	if g, ok := v.globals[n.Name]; ok {
		return v.bindVarRef(n, g)
	}
	v.diag(8, n, n.Name)
	return types.ErrorType
}

func (v *Verifier) bindVarRef(n *ast.VarExpr, decl any) types.Type {
	switch d := decl.(type) {
	case *ast.ParaDecl:
		n.Ref = d
		d.MarkUsed()
		return d.Type
	case *ast.LocalVarDecl:
		n.Ref = d
		d.MarkUsed()
		return d.Type
	case *ast.GlobalVarDecl:
		n.Ref = d
		d.MarkUsed()
		return d.Type
	default:
		return types.ErrorType
	}
}

// VisitAssignmentExpr checks `=`/`+=`/`-=`/`*=`/`/=`: the left side must
// be a plain variable reference (#7), its type must match the right side
// (#6, strict for `=`, numeric-and-soft for the compound forms), and the
// referenced binding must be mutable (#20).
func (v *Verifier) VisitAssignmentExpr(a *ast.AssignmentExpr) any {
	ve, ok := a.Lhs.(*ast.VarExpr)
	if !ok {
		v.diag(7, a)
		v.eval(a.Rhs)
		return types.ErrorType
	}

	lt := v.eval(a.Lhs)
	rt := v.eval(a.Rhs)

	if types.IsError(lt) || types.IsError(rt) {
		// one side already failed to resolve (e.g. an undeclared
		// variable); don't pile a second diagnostic on top of it.
	} else if a.Op == token.ASSIGN {
		if !types.Equals(lt, rt) {
			v.diag(6, a, lt.String())
		}
	} else if !types.IsNumeric(lt) || !types.EqualsSoft(lt, rt) {
		v.diag(6, a, lt.String())
	}

	if ve.Ref != nil {
		if isConstDecl(ve.Ref) {
			v.diag(20, a, ve.Name)
		}
		switch d := ve.Ref.(type) {
		case *ast.LocalVarDecl:
			d.MarkReassigned()
		case *ast.GlobalVarDecl:
			d.MarkReassigned()
		case *ast.ParaDecl:
			d.MarkReassigned()
		}
	}
	return lt
}

// VisitBinaryExpr implements the operator typing table (spec.md §4.4.3,
// diagnostic 5 on any mismatch): arithmetic requires two soft-equal
// signed integers and yields i64; relational comparison requires the
// same and yields bool; equality requires two soft-equal integers or
// two bools and yields bool; logical and/or require two bools.
func (v *Verifier) VisitBinaryExpr(b *ast.BinaryExpr) any {
	lt := v.eval(b.Left)
	rt := v.eval(b.Right)

	if types.IsError(lt) || types.IsError(rt) {
		return types.ErrorType
	}

	switch b.Op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		if !types.IsSignedInt(lt) || !types.EqualsSoft(lt, rt) {
			v.diag(5, b, lt.String())
			return types.ErrorType
		}
		return types.I64Type
	case token.LT, token.LTE, token.GT, token.GTE:
		if !types.IsSignedInt(lt) || !types.EqualsSoft(lt, rt) {
			v.diag(5, b, lt.String())
			return types.ErrorType
		}
		return types.BoolType
	case token.EQ, token.NEQ:
		if !types.EqualsSoft(lt, rt) || !(types.IsSignedInt(lt) || types.IsBool(lt)) {
			v.diag(5, b, lt.String())
			return types.ErrorType
		}
		return types.BoolType
	case token.AND, token.OR:
		if !types.IsBool(lt) || !types.IsBool(rt) {
			v.diag(5, b, lt.String())
			return types.ErrorType
		}
		return types.BoolType
	default:
		return types.ErrorType
	}
}

// VisitUnaryExpr covers `!` (#9, bool only), unary `+`/`-` (#9, signed
// int only), `++`/`--` (#28, operand must be a variable), `&`
// address-of (#25 non-lvalue operand, #26 address of a const), and `*`
// dereference (#9, operand must be a pointer).
func (v *Verifier) VisitUnaryExpr(u *ast.UnaryExpr) any {
	switch u.Op {
	case token.BANG:
		t := v.eval(u.Operand)
		if types.IsError(t) {
			return types.ErrorType
		}
		if !types.IsBool(t) {
			v.diag(9, u, t.String())
			return types.ErrorType
		}
		return types.BoolType
	case token.PLUS, token.MINUS:
		t := v.eval(u.Operand)
		if types.IsError(t) {
			return types.ErrorType
		}
		if !types.IsSignedInt(t) {
			v.diag(9, u, t.String())
			return types.ErrorType
		}
		return types.I64Type
	case token.INCR, token.DECR:
		ve, ok := u.Operand.(*ast.VarExpr)
		if !ok {
			v.diag(28, u)
			return types.ErrorType
		}
		t := v.eval(u.Operand)
		if types.IsError(t) {
			return types.ErrorType
		}
		if !types.IsNumeric(t) {
			v.diag(9, u, t.String())
			return types.ErrorType
		}
		if ve.Ref != nil {
			if isConstDecl(ve.Ref) {
				v.diag(20, u, ve.Name)
			}
		}
		return t
	case token.AMP:
		ve, ok := u.Operand.(*ast.VarExpr)
		if !ok {
			v.diag(25, u)
			return types.ErrorType
		}
		t := v.eval(u.Operand)
		if ve.Ref != nil && isConstDecl(ve.Ref) {
			v.diag(26, u, ve.Name)
		}
		return &types.Pointer{Inner: t}
	case token.STAR:
		t := v.eval(u.Operand)
		if types.IsError(t) {
			return types.ErrorType
		}
		p, ok := t.(*types.Pointer)
		if !ok {
			v.diag(9, u, t.String())
			return types.ErrorType
		}
		return p.Inner
	default:
		v.eval(u.Operand)
		return types.ErrorType
	}
}

// VisitCallExpr resolves a free-function call: no such function (#12),
// self-recursion from main (#13, Non-goal-adjacent rule carried over
// from the original verifier), and argument-count/type mismatch (#14).
func (v *Verifier) VisitCallExpr(c *ast.CallExpr) any {
	if v.inMain && c.Name == "main" {
		v.diag(13, c)
		for _, a := range c.Args {
			v.eval(a)
		}
		return types.ErrorType
	}

	fn := findFunction(v.module, c.Name)
	if fn == nil {
		v.diag(12, c, c.Name)
		for _, a := range c.Args {
			v.eval(a)
		}
		return types.ErrorType
	}

	if len(fn.Params) != len(c.Args) {
		v.diag(14, c, c.Name)
		for _, a := range c.Args {
			v.eval(a)
		}
		fn.IsUsed = true
		c.Ref = fn
		return fn.ReturnType
	}

	mismatched := false
	for i, a := range c.Args {
		at := v.eval(a)
		if !types.EqualsSoft(at, fn.Params[i].Type) {
			mismatched = true
		}
	}
	if mismatched {
		v.diag(14, c, c.Name)
	}

	fn.IsUsed = true
	c.Ref = fn
	return fn.ReturnType
}

// VisitCastExpr checks `expr as Type` against the legality table in
// SPEC_FULL.md's Supplemented Features #7: numeric-to-numeric,
// pointer-to-pointer, and enum-to-integer (both directions) casts are
// legal; anything else raises #27.
func (v *Verifier) VisitCastExpr(c *ast.CastExpr) any {
	from := v.eval(c.Expr)
	if !isLegalCast(from, c.TargetType) {
		v.diag(27, c, c.TargetType.String())
	}
	return c.TargetType
}

func isLegalCast(from, to types.Type) bool {
	if types.IsNumeric(from) && types.IsNumeric(to) {
		return true
	}
	_, fromPtr := from.(*types.Pointer)
	_, toPtr := to.(*types.Pointer)
	if fromPtr && toPtr {
		return true
	}
	u64 := &types.Primitive{Spec: types.U64}
	if _, ok := from.(*types.Enum); ok && (types.IsSignedInt(to) || types.EqualsSoft(to, u64)) {
		return true
	}
	if _, ok := to.(*types.Enum); ok && (types.IsSignedInt(from) || types.EqualsSoft(from, u64)) {
		return true
	}
	return false
}

// VisitArrayInitExpr checks a bracketed literal: it must have at least
// one element (#32), every element must be soft-equal to the first
// (#33), and if it is being assigned into a sized array declaration
// (v.arrayTarget, set by the caller), its element type must match the
// target's and it must not have more elements than the target's
// declared length (#31).
func (v *Verifier) VisitArrayInitExpr(a *ast.ArrayInitExpr) any {
	target := v.arrayTarget
	v.arrayTarget = nil

	if len(a.Elements) == 0 {
		v.diag(32, a)
		zero := 0
		return &types.Array{Inner: types.ErrorType, Length: &zero}
	}

	var elemType types.Type
	for i, e := range a.Elements {
		et := v.eval(e)
		if i == 0 {
			elemType = et
		} else if !types.EqualsSoft(et, elemType) {
			v.diag(33, a, elemType.String())
		}
	}

	if target != nil {
		if !types.EqualsSoft(elemType, target.Inner) {
			v.diag(33, a, target.Inner.String())
		}
		if target.Length != nil && len(a.Elements) > *target.Length {
			v.diag(31, a, strconv.Itoa(len(a.Elements)))
		}
	}

	length := len(a.Elements)
	return &types.Array{Inner: elemType, Length: &length}
}

// VisitArrayIndexExpr checks `base[index]`: base must be an array or
// pointer (#34), and the index must be an integer (#35).
func (v *Verifier) VisitArrayIndexExpr(a *ast.ArrayIndexExpr) any {
	bt := v.eval(a.Base)
	it := v.eval(a.Index)

	var elem types.Type
	switch b := bt.(type) {
	case *types.Array:
		elem = b.Inner
	case *types.Pointer:
		elem = b.Inner
	default:
		v.diag(34, a, bt.String())
		return types.ErrorType
	}

	if !types.IsSignedInt(it) && !types.EqualsSoft(it, &types.Primitive{Spec: types.U64}) {
		v.diag(35, a, it.String())
		return types.ErrorType
	}
	return elem
}

// VisitEnumAccessExpr checks `EnumName::field`: the enum must exist
// (#38) and the field must belong to it (#39).
func (v *Verifier) VisitEnumAccessExpr(e *ast.EnumAccessExpr) any {
	en, ok := v.enums[e.EnumName]
	if !ok {
		v.diag(38, e, e.EnumName)
		return types.ErrorType
	}
	for _, f := range en.Fields {
		if f == e.Field {
			en.IsUsed = true
			e.Ref = en
			return &types.Enum{Ref: en}
		}
	}
	v.diag(39, e, e.Field)
	return types.ErrorType
}

// VisitFieldAccessExpr resolves `base.field` against the class the
// base expression evaluates to. The catalog has no dedicated code for
// an unknown field; resolution failure simply yields the error type, as
// documented in DESIGN.md's Open Question on class-member depth.
func (v *Verifier) VisitFieldAccessExpr(f *ast.FieldAccessExpr) any {
	bt := v.eval(f.Base)
	ct, ok := bt.(*types.Class)
	if !ok {
		return types.ErrorType
	}
	cd, ok := ct.Ref.(*ast.ClassDecl)
	if !ok {
		return types.ErrorType
	}
	for _, field := range cd.Fields {
		if field.Ident == f.Field {
			return field.Type
		}
	}
	return types.ErrorType
}

// VisitMethodAccessExpr resolves `base.method(args)` against the class
// the base expression evaluates to, evaluating each argument for its
// side effects and usage tracking even when the method cannot be found.
func (v *Verifier) VisitMethodAccessExpr(m *ast.MethodAccessExpr) any {
	bt := v.eval(m.Base)
	ct, ok := bt.(*types.Class)
	if !ok {
		for _, a := range m.Args {
			v.eval(a)
		}
		return types.ErrorType
	}
	cd, ok := ct.Ref.(*ast.ClassDecl)
	if !ok {
		for _, a := range m.Args {
			v.eval(a)
		}
		return types.ErrorType
	}
	for _, method := range cd.Methods {
		if method.Ident == m.Method {
			for _, a := range m.Args {
				v.eval(a)
			}
			return method.ReturnType
		}
	}
	for _, a := range m.Args {
		v.eval(a)
	}
	return types.ErrorType
}
