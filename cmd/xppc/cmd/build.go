package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/backend"
	"github.com/joshuawills/xppc/internal/handler"
	"github.com/joshuawills/xppc/internal/lexer"
	"github.com/joshuawills/xppc/internal/parser"
	"github.com/joshuawills/xppc/internal/semantic"
	"github.com/joshuawills/xppc/pkg/token"
)

// runBuild drives the full pipeline for one source file, grounded on the
// teacher's cmd/dwscript/cmd/compile.go wiring (read → lex → parse →
// analyze → hand off to the next stage), adapted from DWScript's
// bytecode compiler to XPP's AST-to-native-codegen handoff (spec.md §6).
func runBuild(_ *cobra.Command, args []string) error {
	file := args[0]

	flags := handler.NewFlags()
	flags.TokensMode = tokensMode
	flags.ParserMode = parserMode
	flags.LLVMMode = llvmMode
	flags.AssemblyMode = asmMode
	flags.RunExe = runExe
	flags.Quiet = quiet
	if outputFile != "" {
		flags.OutputFile = outputFile
	}

	h := handler.New(flags)

	content, err := os.ReadFile(file)
	if err != nil {
		h.ReportIOError(file, err)
		return fmt.Errorf("could not read %s", file)
	}
	if _, err := h.AddFile(file); err != nil {
		h.ReportIOError(file, err)
		return fmt.Errorf("could not read %s", file)
	}

	toks := lexer.All(string(content))
	if flags.TokensMode {
		dumpTokens(h, toks)
		return nil
	}

	p := parser.New(file, toks)
	module, syntaxErr := p.Parse()
	if syntaxErr != nil {
		h.ReportError(syntaxErr.File, syntaxErr.Message, syntaxErr.Pos)
		return fmt.Errorf("parsing failed: %s", syntaxErr.Error())
	}

	if flags.ParserMode {
		fmt.Fprint(h.Out, ast.Print(module))
		return nil
	}

	v := semantic.NewVerifier(h, file)
	v.Check(module, true)
	if h.ErrorCount() > 0 {
		return fmt.Errorf("semantic analysis failed with %d error(s)", h.ErrorCount())
	}

	all := &ast.AllModules{Modules: []*ast.Module{module}, MainModule: module}
	return emit(h, all, flags)
}

func dumpTokens(h *handler.Handler, toks []token.Token) {
	for _, t := range toks {
		fmt.Fprintf(h.Out, "%s\n", t)
		if t.Kind == token.EOF {
			return
		}
	}
}

// emit hands the verified program to the code-generation collaborator.
// Native code generation is out of scope for this compiler (spec.md §1:
// "the native code generator... [is] treated as external collaborators,
// interfaces specified in §6"); xppc itself only proves out the seam
// with backend.NoopGenerator and writes a one-line placeholder listing
// naming the main module's file: to <out>.ll for --llvm, to <out>.s for
// --asm, and otherwise to the output file itself, which is then made
// executable.
func emit(h *handler.Handler, all *ast.AllModules, flags handler.Flags) error {
	gen := backend.NewNoopGenerator()
	if err := gen.Generate(all); err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	switch {
	case flags.LLVMMode:
		out := flags.OutputFile + ".ll"
		if err := os.WriteFile(out, []byte(placeholderListing(all)), 0644); err != nil {
			h.ReportIOError(out, err)
			return fmt.Errorf("could not write %s", out)
		}
		return nil
	case flags.AssemblyMode:
		out := flags.OutputFile + ".s"
		if err := os.WriteFile(out, []byte(placeholderListing(all)), 0644); err != nil {
			h.ReportIOError(out, err)
			return fmt.Errorf("could not write %s", out)
		}
		return nil
	}

	out := flags.OutputFile
	if out == "" {
		out = handler.DefaultOutputFile
	}
	if err := os.WriteFile(out, []byte(placeholderListing(all)), 0644); err != nil {
		h.ReportIOError(out, err)
		return fmt.Errorf("could not write %s", out)
	}
	if err := os.Chmod(out, 0755); err != nil {
		h.ReportIOError(out, err)
		return fmt.Errorf("could not make %s executable", out)
	}

	if flags.RunExe {
		c := exec.Command("./" + out)
		c.Stdout, c.Stderr, c.Stdin = os.Stdout, os.Stderr, os.Stdin
		if err := c.Run(); err != nil {
			return fmt.Errorf("running %s failed: %w", out, err)
		}
	}
	return nil
}

func placeholderListing(all *ast.AllModules) string {
	if all.MainModule == nil {
		return ""
	}
	return "; xppc front-end verified " + all.MainModule.FilePath +
		" — native code generation is an external collaborator (see internal/backend)\n"
}
