package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dartlet-lang/dartlet/internal/testsuite"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test [lex|parse|eval] <name>",
	Short: "Run a bundled test fixture, or every bundled fixture if no name is given",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Running all tests:")
			for _, name := range testsuite.Tests {
				if err := runFixture(cmd, "eval", testsuite.GetFilepath(name)); err != nil {
					return err
				}
			}
			return nil
		}
		action, name := splitActionAndName(args)
		return runFixture(cmd, action, testsuite.GetFilepath(name))
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}

// splitActionAndName resolves "test <name>" (action defaults to eval)
// and "test <lex|parse|eval> <name>" into their (action, name) pair,
// matching main.rs's a2-dispatch in its "test"/"testfail" branches.
func splitActionAndName(args []string) (action, name string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return "eval", args[0]
}

// runFixture dispatches action against path the same way the top-level
// lex/parse/eval subcommands do, reused here so `test`/`testfail` share
// their behavior rather than duplicating it.
func runFixture(cmd *cobra.Command, action, path string) error {
	switch action {
	case "lex":
		return runLex(cmd, []string{path})
	case "parse":
		return runParse(cmd, []string{path})
	default:
		return evalFile(filepath.Dir(path), filepath.Base(path))
	}
}
