package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// debug gates diag.Reporter's print-and-exit vs panic behavior,
	// set by the persistent --debug flag on every subcommand.
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "dartlet",
	Short: "dartlet language interpreter",
	Long: `dartlet is a tree-walking interpreter for a small imperative,
class-based scripting language.

It tokenizes, parses, links imports, and evaluates dartlet source files
starting from a top-level main routine.`,
	Version: Version,
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

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "panic with a backtrace on error instead of printing and exiting")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
