package parser

import (
	"testing"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/lexer"
)

func parse(t *testing.T, src string) *ast.Module {
	t.Helper()
	toks := lexer.All(src)
	m, err := New("test.xpp", toks).Parse()
	if err != nil {
		t.Fatalf("unexpected syntax error: %v", err)
	}
	return m
}

func TestParseMinimalFunction(t *testing.T) {
	m := parse(t, `fn main() void { return; }`)
	if len(m.Functions) != 1 {
		t.Fatalf("want 1 function, got %d", len(m.Functions))
	}
	f := m.Functions[0]
	if f.Ident != "main" || len(f.Params) != 0 {
		t.Errorf("unexpected function shape: %+v", f)
	}
	if len(f.Body.Statements) != 1 {
		t.Fatalf("want 1 statement in body, got %d", len(f.Body.Statements))
	}
	if _, ok := f.Body.Statements[0].(*ast.ReturnStmt); !ok {
		t.Errorf("want ReturnStmt, got %T", f.Body.Statements[0])
	}
}

func TestParsePubFunctionWithParams(t *testing.T) {
	m := parse(t, `pub fn add(a: i64, mut b: i64) i64 { return a + b; }`)
	f := m.Functions[0]
	if !f.IsPub {
		t.Error("want IsPub")
	}
	if len(f.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(f.Params))
	}
	if f.Params[0].IsMut {
		t.Error("first param should not be mut")
	}
	if !f.Params[1].IsMut {
		t.Error("second param should be mut")
	}
}

func TestParseExternVariadic(t *testing.T) {
	m := parse(t, `extern printf(i8*, ...) i32;`)
	if len(m.Externs) != 1 {
		t.Fatalf("want 1 extern, got %d", len(m.Externs))
	}
	e := m.Externs[0]
	if !e.IsVariadic {
		t.Error("want IsVariadic")
	}
	if len(e.ParamTypes) != 2 {
		t.Fatalf("want 2 param types (i8* and the ellipsis marker), got %d", len(e.ParamTypes))
	}
}

func TestParseEnum(t *testing.T) {
	m := parse(t, `enum Color { Red, Green, Blue }`)
	if len(m.Enums) != 1 {
		t.Fatalf("want 1 enum, got %d", len(m.Enums))
	}
	if got := m.Enums[0].Fields; len(got) != 3 || got[0] != "Red" || got[2] != "Blue" {
		t.Errorf("unexpected enum fields: %v", got)
	}
}

func TestParseGlobalLet(t *testing.T) {
	m := parse(t, `pub let mut counter: i64 = 0;`)
	if len(m.Globals) != 1 {
		t.Fatalf("want 1 global, got %d", len(m.Globals))
	}
	g := m.Globals[0]
	if !g.IsPub || !g.IsMut || g.Ident != "counter" {
		t.Errorf("unexpected global shape: %+v", g)
	}
	if _, ok := g.Init.(*ast.IntLit); !ok {
		t.Errorf("want IntLit init, got %T", g.Init)
	}
}

func TestParseClassWithFieldsConstructorDestructorAndMethod(t *testing.T) {
	m := parse(t, `
class Counter {
	mut value: i64;
	Counter(start: i64) {
		return;
	}
	!Counter() {
		return;
	}
	pub fn increment() void {
		return;
	}
}`)
	if len(m.Classes) != 1 {
		t.Fatalf("want 1 class, got %d", len(m.Classes))
	}
	c := m.Classes[0]
	if len(c.Fields) != 1 || c.Fields[0].Ident != "value" || !c.Fields[0].IsMut {
		t.Errorf("unexpected fields: %+v", c.Fields)
	}
	if len(c.Constructors) != 1 {
		t.Fatalf("want 1 constructor, got %d", len(c.Constructors))
	}
	if len(c.Destructors) != 1 {
		t.Fatalf("want 1 destructor, got %d", len(c.Destructors))
	}
	if len(c.Methods) != 1 || !c.Methods[0].IsPub {
		t.Errorf("unexpected methods: %+v", c.Methods)
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	m := parse(t, `
fn f(x: i64) void {
	if x > 0 {
		return;
	} else_if x < 0 {
		return;
	} else {
		return;
	}
}`)
	f := m.Functions[0]
	ifStmt, ok := f.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("want IfStmt, got %T", f.Body.Statements[0])
	}
	if len(ifStmt.ElseIf) != 1 {
		t.Fatalf("want 1 else_if arm, got %d", len(ifStmt.ElseIf))
	}
	if ifStmt.Else == nil {
		t.Error("want else body to be present")
	}
}

func TestParseWhileLoop(t *testing.T) {
	m := parse(t, `
fn f() void {
	let mut i: i64 = 0;
	while i < 10 {
		i += 1;
	}
}`)
	f := m.Functions[0]
	if _, ok := f.Body.Statements[1].(*ast.WhileStmt); !ok {
		t.Fatalf("want WhileStmt, got %T", f.Body.Statements[1])
	}
}

func TestParseArrayTypeAndLiteral(t *testing.T) {
	m := parse(t, `
fn f() void {
	let xs: i64[3] = [1, 2, 3];
	let y: i64 = xs[0];
}`)
	f := m.Functions[0]
	decl := f.Body.Statements[0].(*ast.LocalVarStmt).Decl
	if _, ok := decl.Init.(*ast.ArrayInitExpr); !ok {
		t.Fatalf("want ArrayInitExpr, got %T", decl.Init)
	}
	decl2 := f.Body.Statements[1].(*ast.LocalVarStmt).Decl
	if _, ok := decl2.Init.(*ast.ArrayIndexExpr); !ok {
		t.Fatalf("want ArrayIndexExpr, got %T", decl2.Init)
	}
}

func TestParsePointerTypeAndUnaryOps(t *testing.T) {
	m := parse(t, `
fn f(p: i64*) void {
	let v: i64 = *p;
	let mut x: i64 = 1;
	x++;
	--x;
}`)
	f := m.Functions[0]
	derefDecl := f.Body.Statements[0].(*ast.LocalVarStmt).Decl
	unary, ok := derefDecl.Init.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("want UnaryExpr, got %T", derefDecl.Init)
	}
	if unary.Postfix {
		t.Error("dereference is a prefix operator, not postfix")
	}
}

func TestParseCallExprAndEnumAndFieldAccess(t *testing.T) {
	m := parse(t, `
fn f(c: Counter) void {
	let a: i64 = add(1, 2);
	let b: Color = Color::Red;
	let v: i64 = c.value;
	c.increment();
}`)
	f := m.Functions[0]
	if _, ok := f.Body.Statements[0].(*ast.LocalVarStmt).Decl.Init.(*ast.CallExpr); !ok {
		t.Errorf("want CallExpr, got %T", f.Body.Statements[0].(*ast.LocalVarStmt).Decl.Init)
	}
	if _, ok := f.Body.Statements[1].(*ast.LocalVarStmt).Decl.Init.(*ast.EnumAccessExpr); !ok {
		t.Errorf("want EnumAccessExpr, got %T", f.Body.Statements[1].(*ast.LocalVarStmt).Decl.Init)
	}
	if _, ok := f.Body.Statements[2].(*ast.LocalVarStmt).Decl.Init.(*ast.FieldAccessExpr); !ok {
		t.Errorf("want FieldAccessExpr, got %T", f.Body.Statements[2].(*ast.LocalVarStmt).Decl.Init)
	}
	exprStmt, ok := f.Body.Statements[3].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("want ExprStmt, got %T", f.Body.Statements[3])
	}
	if _, ok := exprStmt.Expr.(*ast.MethodAccessExpr); !ok {
		t.Errorf("want MethodAccessExpr, got %T", exprStmt.Expr)
	}
}

func TestParseCastExpr(t *testing.T) {
	m := parse(t, `
fn f() void {
	let x: f64 = 1 as f64;
}`)
	decl := m.Functions[0].Body.Statements[0].(*ast.LocalVarStmt).Decl
	if _, ok := decl.Init.(*ast.CastExpr); !ok {
		t.Errorf("want CastExpr, got %T", decl.Init)
	}
}

func TestParseUnsignedIntLiteral(t *testing.T) {
	m := parse(t, `
fn f() void {
	let x: u64 = 42u;
}`)
	decl := m.Functions[0].Body.Statements[0].(*ast.LocalVarStmt).Decl
	lit, ok := decl.Init.(*ast.UIntLit)
	if !ok {
		t.Fatalf("want UIntLit, got %T", decl.Init)
	}
	if lit.Value != 42 {
		t.Errorf("want 42, got %d", lit.Value)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3), not (1 + 2) * 3.
	m := parse(t, `
fn f() void {
	let x: i64 = 1 + 2 * 3;
}`)
	decl := m.Functions[0].Body.Statements[0].(*ast.LocalVarStmt).Decl
	top, ok := decl.Init.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want BinaryExpr, got %T", decl.Init)
	}
	if _, ok := top.Left.(*ast.IntLit); !ok {
		t.Errorf("want left operand to be the literal 1, got %T", top.Left)
	}
	if _, ok := top.Right.(*ast.BinaryExpr); !ok {
		t.Errorf("want right operand to be the nested multiplication, got %T", top.Right)
	}
}

func TestSyntaxErrorOnMissingSemicolon(t *testing.T) {
	toks := lexer.All(`fn f() void { return }`)
	_, err := New("test.xpp", toks).Parse()
	if err == nil {
		t.Fatal("want a syntax error for a missing semicolon")
	}
}

func TestSyntaxErrorOnUnknownTopLevelDecl(t *testing.T) {
	toks := lexer.All(`123`)
	_, err := New("test.xpp", toks).Parse()
	if err == nil {
		t.Fatal("want a syntax error for an unrecognized top-level form")
	}
}

func TestSyntaxErrorIncludesFileAndPosition(t *testing.T) {
	toks := lexer.All(`fn f(`)
	_, err := New("myfile.xpp", toks).Parse()
	if err == nil {
		t.Fatal("want a syntax error on an unterminated parameter list")
	}
	if err.File != "myfile.xpp" {
		t.Errorf("want file name propagated into the error, got %q", err.File)
	}
}
