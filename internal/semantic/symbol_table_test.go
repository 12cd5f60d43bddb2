package semantic

import (
	"testing"

	"github.com/joshuawills/xppc/internal/ast"
)

func declFor(name string) *fakeDecl { return &fakeDecl{name: name} }

type fakeDecl struct{ name string }

func (f *fakeDecl) TokenLiteral() string { return f.name }
func (f *fakeDecl) String() string       { return f.name }

func TestOpenCloseScopeReturnsToZeroDepth(t *testing.T) {
	st := NewSymbolTable()
	start := st.Level()
	st.OpenScope()
	st.OpenScope()
	st.CloseScope()
	st.CloseScope()
	if st.Level() != start {
		t.Errorf("Level() = %d after matched open/close pairs, want %d", st.Level(), start)
	}
}

func TestInsertAndRetrieveOneLevel(t *testing.T) {
	st := NewSymbolTable()
	st.OpenScope()
	st.Insert("x", nil)
	if _, found := st.RetrieveOneLevel("x"); !found {
		t.Fatal("expected to retrieve x at the level it was inserted")
	}
	if _, found := st.RetrieveOneLevel("y"); found {
		t.Fatal("y was never inserted and should not be found")
	}
}

func TestRetrieveOneLevelDoesNotCrossScopes(t *testing.T) {
	st := NewSymbolTable()
	st.OpenScope()
	st.Insert("outer", nil)
	st.OpenScope()
	if _, found := st.RetrieveOneLevel("outer"); found {
		t.Error("retrieve_one_level must not see bindings from an enclosing scope")
	}
	st.Insert("inner", nil)
	if _, found := st.RetrieveOneLevel("inner"); !found {
		t.Error("expected to retrieve inner at its own level")
	}
	st.CloseScope()
	if _, found := st.RetrieveOneLevel("outer"); !found {
		t.Error("after closing the inner scope, outer should be visible again")
	}
}

func TestCloseScopeDropsInnerBindings(t *testing.T) {
	st := NewSymbolTable()
	st.OpenScope()
	st.Insert("a", nil)
	st.OpenScope()
	st.Insert("b", nil)
	st.CloseScope()
	if _, found := st.RetrieveOneLevel("b"); found {
		t.Error("b should be gone after its scope closed")
	}
}

func TestInsertDuplicateWithinSameLevel(t *testing.T) {
	st := NewSymbolTable()
	st.OpenScope()
	if dup := st.Insert("x", declFor("first")); dup {
		t.Error("first insert of x should not be a duplicate")
	}
	if dup := st.Insert("x", declFor("second")); !dup {
		t.Error("second insert of x at the same level should report a duplicate")
	}
	d, found := st.RetrieveOneLevel("x")
	if !found {
		t.Fatal("x should still be found after the duplicate insert")
	}
	if d.(*fakeDecl).name != "second" {
		t.Error("a duplicate local variable should make the newer declaration authoritative")
	}
}

func TestInsertParamDuplicateWithinSameLevelKeepsFirst(t *testing.T) {
	st := NewSymbolTable()
	st.OpenScope()
	first := &ast.ParaDecl{DeclBase: ast.DeclBase{Ident: "a"}}
	second := &ast.ParaDecl{DeclBase: ast.DeclBase{Ident: "a"}}
	if dup := st.InsertParam("a", first); dup {
		t.Error("first insert of a should not be a duplicate")
	}
	if dup := st.InsertParam("a", second); !dup {
		t.Error("second insert of a at the same level should report a duplicate")
	}
	d, found := st.RetrieveOneLevel("a")
	if !found {
		t.Fatal("a should still be found after the duplicate insert")
	}
	if d.(*ast.ParaDecl) != first {
		t.Error("a duplicate parameter must not replace the first binding")
	}
}
