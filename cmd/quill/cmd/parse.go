package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the parsed syntax tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	renderer, _, err := newRenderer()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	file := source.NewFile(args[0], string(data))

	prog := lexer.Lex(file.Content)
	if lexErrs := prog.Errors(); len(lexErrs) > 0 {
		fmt.Fprint(os.Stderr, renderer.RenderAll(file, diag.FromLex(lexErrs)))
		return fmt.Errorf("%d lex error(s)", len(lexErrs))
	}

	items, err := parser.Parse(prog)
	if err != nil {
		fmt.Fprint(os.Stderr, renderer.Render(file, diag.FromParse(err)))
		return fmt.Errorf("parse failed")
	}

	fmt.Print(ast.Dump(items, prog.Interner()))
	return nil
}
