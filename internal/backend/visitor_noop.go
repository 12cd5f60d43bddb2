package backend

import "github.com/joshuawills/xppc/internal/ast"

// The methods below make NoopGenerator satisfy ast.Visitor, recursing
// into every child so a real back-end can see the full shape of what it
// must walk. Each records its own node kind in Visited before
// descending, mirroring the double-dispatch traversal
// internal/semantic.Verifier already performs during checking.

func (g *NoopGenerator) VisitParaDecl(p *ast.ParaDecl) any {
	g.record("ParaDecl")
	return nil
}

func (g *NoopGenerator) VisitLocalVarDecl(l *ast.LocalVarDecl) any {
	g.record("LocalVarDecl")
	if l.Init != nil {
		l.Init.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitGlobalVarDecl(gl *ast.GlobalVarDecl) any {
	g.record("GlobalVarDecl")
	if gl.Init != nil {
		gl.Init.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitEnumDecl(e *ast.EnumDecl) any {
	g.record("EnumDecl")
	return nil
}

func (g *NoopGenerator) VisitClassDecl(c *ast.ClassDecl) any {
	g.record("ClassDecl")
	for _, f := range c.Fields {
		f.Accept(g)
	}
	for _, ctor := range c.Constructors {
		ctor.Accept(g)
	}
	for _, dtor := range c.Destructors {
		dtor.Accept(g)
	}
	for _, m := range c.Methods {
		m.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitClassFieldDecl(c *ast.ClassFieldDecl) any {
	g.record("ClassFieldDecl")
	return nil
}

func (g *NoopGenerator) VisitFunction(f *ast.Function) any {
	g.record("Function")
	for _, p := range f.Params {
		p.Accept(g)
	}
	if f.Body != nil {
		f.Body.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitMethodDecl(m *ast.MethodDecl) any {
	g.record("MethodDecl")
	for _, p := range m.Params {
		p.Accept(g)
	}
	if m.Body != nil {
		m.Body.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitConstructorDecl(c *ast.ConstructorDecl) any {
	g.record("ConstructorDecl")
	for _, p := range c.Params {
		p.Accept(g)
	}
	if c.Body != nil {
		c.Body.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitDestructorDecl(d *ast.DestructorDecl) any {
	g.record("DestructorDecl")
	if d.Body != nil {
		d.Body.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitExtern(e *ast.Extern) any {
	g.record("Extern")
	return nil
}

func (g *NoopGenerator) VisitEmptyStmt(e *ast.EmptyStmt) any {
	g.record("EmptyStmt")
	return nil
}

func (g *NoopGenerator) VisitCompoundStmt(c *ast.CompoundStmt) any {
	g.record("CompoundStmt")
	for _, s := range c.Statements {
		s.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitLocalVarStmt(l *ast.LocalVarStmt) any {
	g.record("LocalVarStmt")
	l.Decl.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitReturnStmt(r *ast.ReturnStmt) any {
	g.record("ReturnStmt")
	if r.Expr != nil {
		r.Expr.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitExprStmt(e *ast.ExprStmt) any {
	g.record("ExprStmt")
	e.Expr.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitWhileStmt(w *ast.WhileStmt) any {
	g.record("WhileStmt")
	w.Cond.Accept(g)
	w.Body.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitIfStmt(i *ast.IfStmt) any {
	g.record("IfStmt")
	i.Cond.Accept(g)
	i.Then.Accept(g)
	for _, ei := range i.ElseIf {
		ei.Accept(g)
	}
	if i.Else != nil {
		i.Else.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitElseIfStmt(e *ast.ElseIfStmt) any {
	g.record("ElseIfStmt")
	e.Cond.Accept(g)
	e.Body.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitEmptyExpr(e *ast.EmptyExpr) any {
	g.record("EmptyExpr")
	return nil
}

func (g *NoopGenerator) VisitAssignmentExpr(a *ast.AssignmentExpr) any {
	g.record("AssignmentExpr")
	a.Lhs.Accept(g)
	a.Rhs.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitBinaryExpr(b *ast.BinaryExpr) any {
	g.record("BinaryExpr")
	b.Left.Accept(g)
	b.Right.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitUnaryExpr(u *ast.UnaryExpr) any {
	g.record("UnaryExpr")
	u.Operand.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitIntLit(i *ast.IntLit) any {
	g.record("IntLit")
	return nil
}

func (g *NoopGenerator) VisitUIntLit(u *ast.UIntLit) any {
	g.record("UIntLit")
	return nil
}

func (g *NoopGenerator) VisitDecimalLit(d *ast.DecimalLit) any {
	g.record("DecimalLit")
	return nil
}

func (g *NoopGenerator) VisitBoolLit(b *ast.BoolLit) any {
	g.record("BoolLit")
	return nil
}

func (g *NoopGenerator) VisitCharLit(c *ast.CharLit) any {
	g.record("CharLit")
	return nil
}

func (g *NoopGenerator) VisitStringLit(s *ast.StringLit) any {
	g.record("StringLit")
	return nil
}

func (g *NoopGenerator) VisitVarExpr(v *ast.VarExpr) any {
	g.record("VarExpr")
	return nil
}

func (g *NoopGenerator) VisitCallExpr(c *ast.CallExpr) any {
	g.record("CallExpr")
	for _, a := range c.Args {
		a.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitCastExpr(c *ast.CastExpr) any {
	g.record("CastExpr")
	c.Expr.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitArrayInitExpr(a *ast.ArrayInitExpr) any {
	g.record("ArrayInitExpr")
	for _, e := range a.Elements {
		e.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) VisitArrayIndexExpr(a *ast.ArrayIndexExpr) any {
	g.record("ArrayIndexExpr")
	a.Base.Accept(g)
	a.Index.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitEnumAccessExpr(e *ast.EnumAccessExpr) any {
	g.record("EnumAccessExpr")
	return nil
}

func (g *NoopGenerator) VisitFieldAccessExpr(f *ast.FieldAccessExpr) any {
	g.record("FieldAccessExpr")
	f.Base.Accept(g)
	return nil
}

func (g *NoopGenerator) VisitMethodAccessExpr(m *ast.MethodAccessExpr) any {
	g.record("MethodAccessExpr")
	m.Base.Accept(g)
	for _, a := range m.Args {
		a.Accept(g)
	}
	return nil
}

var _ ast.Visitor = (*NoopGenerator)(nil)
