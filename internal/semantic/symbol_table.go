// Package semantic implements the verifier: the scope-structured walk
// over the AST that resolves names, checks types, and records usage.
package semantic

import "github.com/joshuawills/xppc/internal/ast"

// tableEntry is one binding at a given scope level, grounded on
// original_source/src/verifier.hpp's TableEntry.
type tableEntry struct {
	ident string
	level int
	decl  any
}

// SymbolTable is a flat, level-tagged list of bindings. Its lookup,
// RetrieveOneLevel, is deliberately **not** lexically nested: it refuses
// to see past the current scope level into an enclosing one. This is
// ported verbatim from original_source/src/verifier.hpp per spec.md §9's
// explicit instruction to preserve the behavior even though it
// contradicts classical block scoping ("a nested block cannot see an
// outer local").
type SymbolTable struct {
	entries []tableEntry
	level   int
}

// NewSymbolTable returns a table starting at level 1, matching the
// original's `level_ = 1` initial value.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{level: 1}
}

// Level returns the current scope depth.
func (st *SymbolTable) Level() int { return st.level }

// OpenScope enters a new, deeper scope.
func (st *SymbolTable) OpenScope() { st.level++ }

// CloseScope pops every entry belonging to the current level, then
// leaves it.
func (st *SymbolTable) CloseScope() {
	for len(st.entries) > 0 && st.entries[len(st.entries)-1].level == st.level {
		st.entries = st.entries[:len(st.entries)-1]
	}
	st.level--
}

// RetrieveOneLevel scans backward through entries at the current level
// only, stopping as soon as it crosses into a lower level.
func (st *SymbolTable) RetrieveOneLevel(ident string) (any, bool) {
	for i := len(st.entries) - 1; i >= 0; i-- {
		e := st.entries[i]
		if e.level < st.level {
			return nil, false
		}
		if e.ident == ident {
			return e.decl, true
		}
	}
	return nil, false
}

// remove deletes the current-level entry for ident, if any.
func (st *SymbolTable) remove(ident string) {
	for i := len(st.entries) - 1; i >= 0; i-- {
		e := st.entries[i]
		if e.level < st.level {
			return
		}
		if e.ident == ident {
			st.entries = append(st.entries[:i], st.entries[i+1:]...)
			return
		}
	}
}

// Insert appends a binding at the current level for a local variable. If
// ident already has a binding at this level, the old one is replaced (so
// the newer declaration becomes authoritative) and isDuplicate reports
// true so the caller can raise diagnostic 3 as a minor error. This
// mirrors the local-variable arm of original_source/src/verifier.cpp's
// declare_variable (verifier.cpp:318-324), which removes the stale entry
// and falls through to insert. Parameter declarations must not go
// through this path — see InsertParam.
func (st *SymbolTable) Insert(ident string, decl any) (isDuplicate bool) {
	if _, found := st.RetrieveOneLevel(ident); found {
		st.remove(ident)
		isDuplicate = true
	}
	st.entries = append(st.entries, tableEntry{ident: ident, level: st.level, decl: decl})
	return isDuplicate
}

// InsertParam binds a parameter at the current level. Unlike Insert, a
// same-level duplicate is reported but discarded outright: the first
// parameter stays authoritative and decl is never stored. This mirrors
// declare_variable's parameter arm (verifier.cpp:320-323), which reports
// the error and returns before ever calling insert, leaving the original
// binding in the table untouched.
func (st *SymbolTable) InsertParam(ident string, decl *ast.ParaDecl) (isDuplicate bool) {
	if _, found := st.RetrieveOneLevel(ident); found {
		return true
	}
	st.entries = append(st.entries, tableEntry{ident: ident, level: st.level, decl: decl})
	return false
}
