package backend

import (
	"testing"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/lexer"
	"github.com/joshuawills/xppc/internal/parser"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	toks := lexer.All(src)
	m, err := parser.New("test.xpp", toks).Parse()
	if err != nil {
		t.Fatalf("unexpected syntax error: %v", err)
	}
	return m
}

func TestNoopGeneratorWalksEveryFunctionBodyNode(t *testing.T) {
	m := parseModule(t, `
fn main() void {
	let mut x: i64 = 1;
	if x > 0 {
		x += 1;
	} else {
		x -= 1;
	}
	return;
}`)
	g := NewNoopGenerator()
	if err := g.Generate(&ast.AllModules{MainModule: m, Modules: []*ast.Module{m}}); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, want := range []string{"Function", "LocalVarDecl", "IfStmt", "AssignmentExpr", "ReturnStmt"} {
		if g.Visited[want] == 0 {
			t.Errorf("expected %s to be visited, visited map: %v", want, g.Visited)
		}
	}
}

func TestNoopGeneratorNilMainModuleIsNoop(t *testing.T) {
	g := NewNoopGenerator()
	if err := g.Generate(nil); err != nil {
		t.Fatalf("Generate(nil) returned error: %v", err)
	}
	if err := g.Generate(&ast.AllModules{}); err != nil {
		t.Fatalf("Generate with no MainModule returned error: %v", err)
	}
	if len(g.Visited) != 0 {
		t.Errorf("expected no visits, got %v", g.Visited)
	}
}
