package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Tokenize, parse and validate files, reporting diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	renderer, _, err := newRenderer()
	if err != nil {
		return err
	}

	failed := false
	for _, path := range args {
		if !checkFile(renderer, path) {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("check failed")
	}
	return nil
}

// checkFile runs the full pipeline on one file and prints any
// diagnostics. It reports whether the file is clean.
func checkFile(renderer *diag.Renderer, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}
	file := source.NewFile(path, string(data))

	prog := lexer.Lex(file.Content)
	if lexErrs := prog.Errors(); len(lexErrs) > 0 {
		fmt.Fprint(os.Stderr, renderer.RenderAll(file, diag.FromLex(lexErrs)))
		return false
	}

	if _, err := parser.Parse(prog); err != nil {
		fmt.Fprint(os.Stderr, renderer.Render(file, diag.FromParse(err)))
		return false
	}
	return true
}
