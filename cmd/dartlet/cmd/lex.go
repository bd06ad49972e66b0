package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dartlet-lang/dartlet/internal/diag"
	"github.com/dartlet-lang/dartlet/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a dartlet source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show each token's kind name")
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open file %q: %w", path, err)
	}

	tokens, err := lexer.Lex(string(src))
	if err != nil {
		diag.NewReporter(debug).Report(err)
		return nil
	}

	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		s := t.Literal()
		if showType {
			s = t.Kind.String() + ":" + s
		}
		if showPos {
			s = fmt.Sprintf("%s@%d:%d", s, t.Pos.Line, t.Pos.Column)
		}
		parts = append(parts, s)
	}
	fmt.Println(strings.Join(parts, " "))
	return nil
}
