package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/source"
)

var tokensOneLine bool

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Dump the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensOneLine, "one-line", false, "render all tokens on one line")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
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
	if tokensOneLine {
		fmt.Println(prog.Dump())
	} else {
		fmt.Print(prog.DumpLines())
	}

	if lexErrs := prog.Errors(); len(lexErrs) > 0 {
		fmt.Fprint(os.Stderr, renderer.RenderAll(file, diag.FromLex(lexErrs)))
		return fmt.Errorf("%d lex error(s)", len(lexErrs))
	}
	return nil
}
