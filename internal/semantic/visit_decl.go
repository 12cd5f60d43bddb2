package semantic

import (
	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/types"
)

// Most declaration kinds are fully checked directly from Check's
// module-level passes (checkGlobals, checkExterns, checkEnums,
// checkFunction) rather than through Accept dispatch, since the verifier
// walks Module.Globals/Externs/Enums/Functions by hand to control
// ordering (e.g. every global must be registered before any function
// body runs). Class declarations are not walked or checked by the
// verifier. These Visit methods exist to satisfy ast.Visitor for the
// back-end's benefit and return without re-running checks already
// performed by their caller, except VisitLocalVarDecl, which is reached
// through LocalVarStmt.Accept during a function body walk.

func (v *Verifier) VisitParaDecl(p *ast.ParaDecl) any { return p.Type }

// VisitLocalVarDecl type-checks a `let` inside a function body: it
// infers Type from Init when no annotation was given (#29 when neither
// is present), checks an explicit annotation against Init's type (#6),
// and inserts the binding into the current scope (#3, minor, on
// redeclaration).
func (v *Verifier) VisitLocalVarDecl(l *ast.LocalVarDecl) any {
	if l.Init != nil {
		if arr, ok := l.Type.(*types.Array); ok {
			v.arrayTarget = arr
		}
		initType := v.eval(l.Init)
		v.arrayTarget = nil
		if types.IsUnknown(l.Type) {
			l.Type = initType
		} else if !types.IsError(initType) && !types.Equals(l.Type, initType) {
			v.diag(6, l, l.Type.String())
		}
	} else if types.IsUnknown(l.Type) {
		v.diag(29, l, l.Ident)
	}

	if dup := v.st.Insert(l.Ident, l); dup {
		v.diagAs(3, true, l, l.Ident)
	}
	return nil
}

func (v *Verifier) VisitGlobalVarDecl(g *ast.GlobalVarDecl) any { return g.Type }
func (v *Verifier) VisitFunction(f *ast.Function) any           { return nil }
func (v *Verifier) VisitExtern(e *ast.Extern) any               { return nil }
func (v *Verifier) VisitEnumDecl(e *ast.EnumDecl) any           { return nil }
func (v *Verifier) VisitClassDecl(c *ast.ClassDecl) any         { return nil }
func (v *Verifier) VisitClassFieldDecl(c *ast.ClassFieldDecl) any {
	return c.Type
}
func (v *Verifier) VisitMethodDecl(m *ast.MethodDecl) any           { return nil }
func (v *Verifier) VisitConstructorDecl(c *ast.ConstructorDecl) any { return nil }
func (v *Verifier) VisitDestructorDecl(d *ast.DestructorDecl) any   { return nil }
