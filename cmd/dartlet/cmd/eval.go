package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dartlet-lang/dartlet/internal/diag"
	"github.com/dartlet-lang/dartlet/internal/eval"
	"github.com/dartlet-lang/dartlet/internal/linker"
	"github.com/dartlet-lang/dartlet/internal/object"
	"github.com/spf13/cobra"
)

var trace bool

var evalCmd = &cobra.Command{
	Use:   "eval <file|dir>",
	Short: "Link and evaluate a dartlet program",
	Long: `Evaluate a dartlet program starting from its main routine.

If path is a directory, every file directly inside it is linked and
evaluated independently, one program per file.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&trace, "trace", false, "accepted and passed to the evaluator; produces no trace output")
}

func runEval(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("could not stat %q: %w", path, err)
	}

	if !info.IsDir() {
		return evalFile(filepath.Dir(path), filepath.Base(path))
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("could not read directory %q: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(strings.Repeat("-", 8), name, strings.Repeat("-", 8))
		if err := evalFile(path, name); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func evalFile(basePath, filename string) error {
	reporter := diag.NewReporter(debug)

	objsys := object.NewSystem()
	lk := linker.New(basePath, objsys)
	if err := lk.Link(filename); err != nil {
		reporter.Report(err)
		return nil
	}

	e := eval.New(lk.Globals(), lk.LookTables(), objsys, os.Stdout, trace)
	if err := e.Run(filename); err != nil {
		reporter.Report(err)
		return nil
	}
	return nil
}
