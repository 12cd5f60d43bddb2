package semantic

import (
	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/handler"
	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

// Verifier performs the single name-resolution/type-checking walk over a
// Module described in spec.md §4.4. It implements ast.Visitor; expression
// visits return a types.Type boxed as `any`, statement visits return nil,
// and declaration visits return nil except VisitParaDecl,
// VisitGlobalVarDecl and VisitClassFieldDecl, which return the declared
// type.
type Verifier struct {
	h    *handler.Handler
	file string
	st   *SymbolTable

	globals map[string]*ast.GlobalVarDecl
	externs map[string]*ast.Extern
	enums   map[string]*ast.EnumDecl
	classes map[string]*ast.ClassDecl

	module *ast.Module

	currentFunction *ast.Function
	hasReturn       bool
	inMain          bool
	loopDepth       int

	// arrayTarget, when non-nil, is the declared array type an
	// ArrayInitExpr currently being evaluated is being assigned into;
	// it lets VisitArrayInitExpr raise diagnostics 31/33 against the
	// declaration's element type and length (SPEC_FULL.md Supplemented
	// Features #5).
	arrayTarget *types.Array
}

func findFunction(m *ast.Module, name string) *ast.Function {
	for _, f := range m.Functions {
		if f.Ident == name {
			return f
		}
	}
	return nil
}

func isConstDecl(d ast.Decl) bool {
	switch dd := d.(type) {
	case *ast.LocalVarDecl:
		return !dd.IsMut
	case *ast.GlobalVarDecl:
		return !dd.IsMut
	case *ast.ParaDecl:
		return !dd.IsMut
	}
	return false
}

// NewVerifier constructs a Verifier reporting diagnostics for file
// through h.
func NewVerifier(h *handler.Handler, file string) *Verifier {
	return &Verifier{
		h:       h,
		file:    file,
		st:      NewSymbolTable(),
		globals: map[string]*ast.GlobalVarDecl{},
		externs: map[string]*ast.Extern{},
		enums:   map[string]*ast.EnumDecl{},
		classes: map[string]*ast.ClassDecl{},
	}
}

func (v *Verifier) diag(code int, n ast.Node, tokens ...string) {
	v.h.Diagnostic(v.file, code, n.Pos(), tokens...)
}

func (v *Verifier) diagAs(code int, minor bool, n ast.Node, tokens ...string) {
	v.h.DiagnosticAs(v.file, code, n.Pos(), minor, tokens...)
}

var startOfFile = token.Position{LineStart: 1, ColStart: 1, LineEnd: 1, ColEnd: 1}

// Check runs the full verification pipeline over m. isMain indicates
// whether m is the entry module, gating the main-function presence check
// (spec.md §4.4.2).
func (v *Verifier) Check(m *ast.Module, isMain bool) {
	v.module = m
	v.checkGlobals(m)
	v.checkExterns(m)
	v.checkEnums(m)
	v.checkDuplicateFunctions(m)

	for _, fn := range m.Functions {
		v.checkFunction(fn)
	}

	v.checkUnused(m)

	if isMain {
		v.checkMain(m)
	}
}

func (v *Verifier) checkGlobals(m *ast.Module) {
	for _, g := range m.Globals {
		if _, dup := v.globals[g.Ident]; dup {
			v.diag(30, g, g.Ident)
			continue
		}
		v.globals[g.Ident] = g
		if g.Init != nil {
			if arr, ok := g.Type.(*types.Array); ok {
				v.arrayTarget = arr
			}
			initType := v.eval(g.Init)
			v.arrayTarget = nil
			if types.IsUnknown(g.Type) {
				g.Type = initType
			} else if !types.IsError(initType) && !types.Equals(g.Type, initType) {
				v.diag(6, g, g.Type.String())
			}
		} else if types.IsUnknown(g.Type) {
			v.diag(29, g, g.Ident)
		}
	}
}

func (v *Verifier) checkExterns(m *ast.Module) {
	for _, e := range m.Externs {
		if _, dup := v.externs[e.Ident]; dup {
			v.diag(15, e, e.Ident)
			continue
		}
		v.externs[e.Ident] = e
		for i, pt := range e.ParamTypes {
			if pt == types.VariadicType && i != len(e.ParamTypes)-1 {
				v.diag(17, e)
			}
		}
	}
}

func (v *Verifier) checkEnums(m *ast.Module) {
	for _, en := range m.Enums {
		if _, dup := v.enums[en.Ident]; dup {
			v.diag(36, en, en.Ident)
			continue
		}
		v.enums[en.Ident] = en
		if len(en.Fields) == 0 {
			v.diag(37, en)
			continue
		}
		seen := map[string]bool{}
		for _, f := range en.Fields {
			if seen[f] {
				v.diag(40, en, en.Ident)
			}
			seen[f] = true
		}
	}
}

func (v *Verifier) checkDuplicateFunctions(m *ast.Module) {
	for i, f := range m.Functions {
		for _, g := range m.Functions[:i] {
			if f.Ident != g.Ident || len(f.Params) != len(g.Params) {
				continue
			}
			same := true
			for k := range f.Params {
				if !types.Equals(f.Params[k].Type, g.Params[k].Type) {
					same = false
					break
				}
			}
			if same {
				v.diag(1, f, f.Ident)
			}
		}
	}
}

func (v *Verifier) checkMain(m *ast.Module) {
	var main *ast.Function
	for _, f := range m.Functions {
		if f.Ident == "main" {
			main = f
			break
		}
	}
	if main == nil {
		v.h.Diagnostic(v.file, 0, startOfFile)
		return
	}
	if !types.Equals(main.ReturnType, types.VoidType) || len(main.Params) != 0 {
		v.diag(2, main, "main")
	}
}

func (v *Verifier) checkFunction(fn *ast.Function) {
	v.currentFunction = fn
	v.hasReturn = false
	v.inMain = fn.Ident == "main"

	v.st.OpenScope()
	for _, p := range fn.Params {
		if types.Equals(p.Type, types.VoidType) {
			v.diag(4, p, p.Ident)
		}
		if dup := v.st.InsertParam(p.Ident, p); dup {
			v.diagAs(3, false, p, p.Ident)
		}
	}
	for _, stmt := range fn.Body.Statements {
		v.visitStmt(stmt)
	}
	v.st.CloseScope()

	if !types.Equals(fn.ReturnType, types.VoidType) && !v.hasReturn {
		v.diag(10, fn, fn.Ident)
	}
	v.currentFunction = nil
	v.inMain = false
}

func (v *Verifier) checkUnused(m *ast.Module) {
	for _, g := range m.Globals {
		if !g.IsUsed {
			v.diag(21, g, g.Ident)
		}
	}
	for _, f := range m.Functions {
		if !f.IsUsed && f.Ident != "main" {
			v.diag(22, f, f.Ident)
		}
	}
	for _, e := range m.Externs {
		if !e.IsUsed {
			v.diag(23, e, e.Ident)
		}
	}
	for _, en := range m.Enums {
		if !en.IsUsed {
			v.diag(41, en, en.Ident)
		}
	}
}

// eval type-checks expr and returns its resolved type, the same value it
// records on the node via SetType.
func (v *Verifier) eval(expr ast.Expression) types.Type {
	result := expr.Accept(v)
	t, _ := result.(types.Type)
	if t == nil {
		t = types.ErrorType
	}
	expr.SetType(t)
	return t
}

func (v *Verifier) visitStmt(s ast.Statement) { s.Accept(v) }
