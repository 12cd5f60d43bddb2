// Package backend defines the contract between the verified AST and the
// out-of-scope code-generation collaborator (spec.md §1 "Out of scope":
// the native code generator and the driver's linking step). Nothing in
// this package lowers to machine code; it only describes the shape a
// real back-end plugs into, grounded on original_source/src/visitor.hpp
// (the exhaustive visit contract XPP's AST already implements) and
// spec.md §6 "Back-end interface".
package backend

import "github.com/joshuawills/xppc/internal/ast"

// CodeGenerator is implemented by whatever lowers a verified program to
// machine code, LLVM IR, or any other target. The driver calls Generate
// once per build, after the Verifier has reported a zero error count;
// it is never invoked on a module that still has outstanding
// diagnostics (spec.md §7's "pipeline stops between stages").
type CodeGenerator interface {
	// Generate lowers every module reachable from all.MainModule. An
	// implementation walks each declaration's Accept(v) entry point the
	// same way internal/semantic.Verifier does, but as an ast.Visitor of
	// its own rather than reusing the verifier's.
	Generate(all *ast.AllModules) error
}

// NoopGenerator is a reference CodeGenerator that performs no lowering.
// It exists so driver and end-to-end tests can exercise the "verified
// AST handed to a back-end" seam without depending on an actual code
// generator, and to document the minimal Visitor surface a real one
// must implement.
type NoopGenerator struct {
	// Visited counts each node kind the generator's own Visitor
	// implementation was asked to handle, for tests to assert coverage.
	Visited map[string]int
}

// NewNoopGenerator returns a NoopGenerator ready to record visits.
func NewNoopGenerator() *NoopGenerator {
	return &NoopGenerator{Visited: map[string]int{}}
}

// Generate walks every function, extern, enum, class and global in the
// main module, dispatching through Accept so the NoopGenerator's own
// ast.Visitor methods record which node kinds were reached.
func (g *NoopGenerator) Generate(all *ast.AllModules) error {
	if all == nil || all.MainModule == nil {
		return nil
	}
	m := all.MainModule
	for _, f := range m.Functions {
		f.Accept(g)
	}
	for _, e := range m.Externs {
		e.Accept(g)
	}
	for _, en := range m.Enums {
		en.Accept(g)
	}
	for _, c := range m.Classes {
		c.Accept(g)
	}
	for _, gl := range m.Globals {
		gl.Accept(g)
	}
	return nil
}

func (g *NoopGenerator) record(kind string) { g.Visited[kind]++ }
