package cmd

import (
	"fmt"
	"os"

	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/diag"
	"github.com/dartlet-lang/dartlet/internal/lexer"
	"github.com/dartlet-lang/dartlet/internal/object"
	"github.com/dartlet-lang/dartlet/internal/parser"
	"github.com/spf13/cobra"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a dartlet source file and print each top-level declaration's AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "also print the file's import list before the declarations; class fields and methods are not printed")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	var globals []*ast.Node
	objsys := object.NewSystem()
	p := parser.New(tokens, path, &globals, objsys)
	imports, err := p.Parse()
	if err != nil {
		diag.NewReporter(debug).Report(err)
		return nil
	}

	if dumpAST && len(imports) > 0 {
		fmt.Println("imports:")
		for _, imp := range imports {
			fmt.Printf("  %s\n", imp)
		}
		fmt.Println()
	}

	for _, decl := range globals {
		fmt.Println(decl.String())
	}
	return nil
}
