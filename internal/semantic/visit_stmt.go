package semantic

import (
	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/types"
)

func (v *Verifier) VisitEmptyStmt(e *ast.EmptyStmt) any { return nil }

// VisitCompoundStmt opens a fresh scope for a nested block (an if/else_if
// /while body) so that a local declared inside it is invisible once the
// block closes. The function's own top-level body is walked directly by
// checkFunction without going through this method, so it shares the
// single scope checkFunction already opened for the parameter list —
// this is what makes "a nested block cannot see an outer local" show up
// only for blocks nested below the function body, per spec.md §9.
func (v *Verifier) VisitCompoundStmt(c *ast.CompoundStmt) any {
	v.st.OpenScope()
	for _, s := range c.Statements {
		v.visitStmt(s)
	}
	v.st.CloseScope()
	return nil
}

func (v *Verifier) VisitLocalVarStmt(l *ast.LocalVarStmt) any {
	return l.Decl.Accept(v)
}

// VisitReturnStmt records that the enclosing function has a return on at
// least one path (a simple presence check, not full path coverage) and
// checks the returned expression's type against the function's declared
// return type (#11).
func (v *Verifier) VisitReturnStmt(r *ast.ReturnStmt) any {
	v.hasReturn = true
	if v.currentFunction == nil {
		return nil
	}
	if r.Expr != nil {
		t := v.eval(r.Expr)
		if !types.IsError(t) && !types.Equals(v.currentFunction.ReturnType, t) {
			v.diag(11, r, v.currentFunction.ReturnType.String())
		}
	} else if !types.Equals(v.currentFunction.ReturnType, types.VoidType) {
		v.diag(11, r, v.currentFunction.ReturnType.String())
	}
	return nil
}

func (v *Verifier) VisitExprStmt(e *ast.ExprStmt) any {
	v.eval(e.Expr)
	return nil
}

func (v *Verifier) VisitWhileStmt(w *ast.WhileStmt) any {
	t := v.eval(w.Cond)
	if !types.IsBool(t) {
		v.diag(19, w, t.String())
	}
	v.loopDepth++
	w.Body.Accept(v)
	v.loopDepth--
	return nil
}

func (v *Verifier) VisitIfStmt(i *ast.IfStmt) any {
	t := v.eval(i.Cond)
	if !types.IsBool(t) {
		v.diag(24, i, t.String())
	}
	i.Then.Accept(v)
	for _, ei := range i.ElseIf {
		ei.Accept(v)
	}
	if i.Else != nil {
		i.Else.Accept(v)
	}
	return nil
}

func (v *Verifier) VisitElseIfStmt(e *ast.ElseIfStmt) any {
	t := v.eval(e.Cond)
	if !types.IsBool(t) {
		v.diag(24, e, t.String())
	}
	e.Body.Accept(v)
	return nil
}
