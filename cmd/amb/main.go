// Command amb hosts the evaluator core as a small CLI: a version command
// and a demo command that builds canned programs with Go constructors
// (there is no parser in this module) and runs them through the
// trampoline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
