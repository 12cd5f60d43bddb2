package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags (teacher's
	// cmd/dwscript/cmd/root.go Version/GitCommit/BuildDate idiom).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	tokensMode   bool
	parserMode   bool
	llvmMode     bool
	asmMode      bool
	runExe       bool
	quiet        bool
	outputFile   string
)

var rootCmd = &cobra.Command{
	Use:     "xppc <source-file>",
	Short:   "XPP ahead-of-time compiler",
	Long:    `xppc compiles a single XPP source file through the lex/parse/verify pipeline and hands the result to a native code generator.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runBuild,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&tokensMode, "tokens", false, "dump lexed tokens and exit")
	rootCmd.PersistentFlags().BoolVar(&parserMode, "parser", false, "dump the parsed AST and exit")
	rootCmd.PersistentFlags().BoolVar(&llvmMode, "llvm", false, "write a placeholder listing to <out>.ll and exit (no IR is generated)")
	rootCmd.PersistentFlags().BoolVar(&asmMode, "asm", false, "write a placeholder listing to <out>.s (no assembly is generated)")
	rootCmd.PersistentFlags().BoolVar(&runExe, "run", false, "execute the built binary after compiling")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress minor-error diagnostics")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output executable name (default a.out)")
}
