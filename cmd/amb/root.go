package main

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags; unset in a plain `go build`.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "amb",
	Short: "A CPS/amb/call-cc evaluator for a small Scheme-family core language",
	Long: `amb hosts a continuation-passing-style evaluator with chronological
backtracking (amb/then/back), first-class continuations (call/cc), and a
Hindley-Milner type inferencer.

There is no parser bundled with this core: the "demo" subcommand builds
its sample programs directly with Go constructors, standing in for what
an external reader/parser would otherwise produce.`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().Bool("no-infer", false, "skip type inference before evaluating")
}
