package cmd

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/handler"
	"github.com/joshuawills/xppc/internal/lexer"
	"github.com/joshuawills/xppc/internal/parser"
	"github.com/joshuawills/xppc/internal/semantic"
)

// runPipeline drives lex -> parse -> verify over src in-process, the way
// runBuild does for a real file, but without touching the filesystem:
// AddFile is skipped, so diagnostics' context windows print no source
// lines, which is irrelevant to what these scenarios assert on.
func runPipeline(t *testing.T, src string) (out string, exitNonZero bool) {
	t.Helper()

	var buf bytes.Buffer
	h := handler.New(handler.NewFlags())
	h.Out = &buf

	toks := lexer.All(src)
	p := parser.New("fixture.xpp", toks)
	module, syntaxErr := p.Parse()
	if syntaxErr != nil {
		h.ReportError(syntaxErr.File, syntaxErr.Message, syntaxErr.Pos)
		return buf.String(), true
	}

	v := semantic.NewVerifier(h, "fixture.xpp")
	v.Check(module, true)
	return buf.String(), h.ErrorCount() > 0
}

// TestEndToEndScenarios exercises the six concrete scenarios named in
// spec.md §8, grounded on the teacher's internal/interp/fixture_test.go
// table-driven snaps.MatchSnapshot usage, adapted from its external
// testdata-fixture-directory shape to inline source snippets since no
// fixture corpus exists for this front end.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name           string
		src            string
		wantClean      bool
		wantExitNonZero bool
	}{
		{
			name:      "S1_minimal_main_is_clean",
			src:       "fn main() void { return; }",
			wantClean: true,
		},
		{
			name:            "S2_missing_main_is_diagnosed",
			src:             "fn f() i64 { return 0; }",
			wantExitNonZero: true,
		},
		{
			name:            "S3_assignment_type_mismatch",
			src:             "fn main() void { let x: i64 = true; return; }",
			wantExitNonZero: true,
		},
		{
			name: "S4_duplicate_function_declaration",
			src: `fn f(a: i64) i64 { return a; }
fn f(a: i64) i64 { return a; }
fn main() void { return; }`,
			wantExitNonZero: true,
		},
		{
			name:            "S5_undeclared_variable_in_return",
			src:             "fn main() void { return x; }",
			wantExitNonZero: true,
		},
		{
			name:      "S6_constant_folding_candidate_is_clean",
			src:       "fn main() void { let x: i64 = 1 + 2 * 3; return; }",
			wantClean: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, nonZero := runPipeline(t, tt.src)

			if tt.wantClean && out != "" {
				t.Errorf("%s: expected no diagnostics, got:\n%s", tt.name, out)
			}
			if tt.wantExitNonZero != nonZero {
				t.Errorf("%s: expected exitNonZero=%v, got %v (output:\n%s)", tt.name, tt.wantExitNonZero, nonZero, out)
			}

			snaps.MatchSnapshot(t, tt.name, out)
		})
	}
}

// TestS6ProgramTypesCleanly confirms the constant-folding candidate in S6
// resolves x's declared type to i64 rather than merely producing no
// diagnostics, per spec.md §8's "x is typed i64" assertion.
func TestS6ProgramTypesCleanly(t *testing.T) {
	toks := lexer.All("fn main() void { let x: i64 = 1 + 2 * 3; return; }")
	module, syntaxErr := parser.New("fixture.xpp", toks).Parse()
	if syntaxErr != nil {
		t.Fatalf("unexpected syntax error: %v", syntaxErr)
	}

	var buf bytes.Buffer
	h := handler.New(handler.NewFlags())
	h.Out = &buf
	v := semantic.NewVerifier(h, "fixture.xpp")
	v.Check(module, true)

	if h.ErrorCount() != 0 {
		t.Fatalf("expected clean verification, got diagnostics:\n%s", buf.String())
	}

	main := findMain(module)
	if main == nil {
		t.Fatal("expected a main function in the parsed module")
	}
	local := findFirstLocal(main)
	if local == nil {
		t.Fatal("expected main's body to declare a local")
	}
	if local.Type.String() != "i64" {
		t.Errorf("expected x to be typed i64, got %s", local.Type.String())
	}
}

func findMain(m *ast.Module) *ast.Function {
	for _, f := range m.Functions {
		if f.Ident == "main" {
			return f
		}
	}
	return nil
}

func findFirstLocal(f *ast.Function) *ast.LocalVarDecl {
	for _, s := range f.Body.Statements {
		if ls, ok := s.(*ast.LocalVarStmt); ok {
			return ls.Decl
		}
	}
	return nil
}
