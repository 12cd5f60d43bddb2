// Command xppc is the XPP ahead-of-time compiler's driver: it wires the
// Handler, Lexer, Parser and Verifier together behind a single cobra
// command surface, following the teacher's cmd/dwscript layout of a
// package-level rootCmd configured from an init() function.
package main

import (
	"fmt"
	"os"

	"github.com/joshuawills/xppc/cmd/xppc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
