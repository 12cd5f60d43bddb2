package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"fn", FN},
		{"let", LET},
		{"mut", MUT},
		{"i64", I64},
		{"foo", IDENT},
		{"else_if", ELSE_IF},
		{"true", TRUE},
		{"x1", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.word); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.word, got, tt.want)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !FN.IsKeyword() {
		t.Error("FN should be a keyword")
	}
	if IDENT.IsKeyword() {
		t.Error("IDENT should not be a keyword")
	}
	if !I64.IsKeyword() {
		t.Error("I64 should be a keyword (primitive type name)")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{LineStart: 3, ColStart: 7, LineEnd: 3, ColEnd: 9}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestIsPrimitiveTypeName(t *testing.T) {
	if !IsPrimitiveTypeName(VOID) {
		t.Error("VOID should be a primitive type name")
	}
	if IsPrimitiveTypeName(IDENT) {
		t.Error("IDENT should not be a primitive type name")
	}
}
