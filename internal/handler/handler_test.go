package handler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuawills/xppc/pkg/token"
)

func TestSubstitute(t *testing.T) {
	got := substitute("incompatible type for this assignment: %", []string{"i64"})
	want := "incompatible type for this assignment: i64"
	if got != want {
		t.Errorf("substitute() = %q, want %q", got, want)
	}
}

func TestAddFileDistinguishesCacheHitFromError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.xpp")
	if err := os.WriteFile(path, []byte("fn main() void { return; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := New(NewFlags())
	cached, err := h.AddFile(path)
	if cached || err != nil {
		t.Fatalf("first AddFile: cached=%v err=%v, want false, nil", cached, err)
	}
	cached, err = h.AddFile(path)
	if !cached || err != nil {
		t.Fatalf("second AddFile: cached=%v err=%v, want true, nil", cached, err)
	}

	_, err = h.AddFile(filepath.Join(dir, "missing.xpp"))
	if err == nil {
		t.Fatal("AddFile on a missing file should return a non-nil error")
	}
}

func TestReportErrorIncrementsCount(t *testing.T) {
	h := New(NewFlags())
	var buf bytes.Buffer
	h.Out = &buf
	h.Diagnostic("t.xpp", 8, token.Position{LineStart: 1, ColStart: 1}, "x")
	if h.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", h.ErrorCount())
	}
	if !strings.Contains(buf.String(), "variable not declared in this scope: x") {
		t.Errorf("output = %q, want it to contain the substituted message", buf.String())
	}
}

func TestMinorErrorDoesNotIncrementCountAndIsQuietable(t *testing.T) {
	flags := NewFlags()
	flags.Quiet = true
	h := New(flags)
	var buf bytes.Buffer
	h.Out = &buf
	h.Diagnostic("t.xpp", 21, token.Position{LineStart: 1, ColStart: 1}, "x")
	if h.ErrorCount() != 0 {
		t.Errorf("ErrorCount() = %d, want 0 for a minor error", h.ErrorCount())
	}
	if buf.Len() != 0 {
		t.Errorf("quiet mode should suppress minor error output, got %q", buf.String())
	}
}

func TestDiagnosticAsOverridesDefaultSeverity(t *testing.T) {
	h := New(NewFlags())
	var buf bytes.Buffer
	h.Out = &buf
	h.DiagnosticAs("t.xpp", 3, token.Position{LineStart: 1, ColStart: 1}, true, "x")
	if h.ErrorCount() != 0 {
		t.Errorf("ErrorCount() = %d, want 0 when severity is forced minor", h.ErrorCount())
	}
}
