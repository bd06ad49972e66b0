package cmd

import (
	"fmt"

	"github.com/dartlet-lang/dartlet/internal/testsuite"
	"github.com/spf13/cobra"
)

var testfailCmd = &cobra.Command{
	Use:   "testfail [lex|parse|eval] <name>",
	Short: "Run a bundled fixture expected to fail, or every one if no name is given",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Running all fail tests:")
			for _, name := range testsuite.FailTests {
				if err := runFixture(cmd, "eval", testsuite.GetFailFilepath(name)); err != nil {
					return err
				}
			}
			return nil
		}
		action, name := splitActionAndName(args)
		return runFixture(cmd, action, testsuite.GetFailFilepath(name))
	},
}

func init() {
	rootCmd.AddCommand(testfailCmd)
}
