package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-parse loop",
	Long: `Reads Quill source from stdin and prints the parsed syntax tree.
Input is submitted with an empty line. Commands:

  :tokens   toggle the token stream dump
  :quit     exit`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	renderer, cfg, err := newRenderer()
	if err != nil {
		return err
	}
	color := cfg.Color && !noColor

	fmt.Println("Quill REPL. Submit with an empty line, :quit to exit.")

	showTokens := false
	scanner := bufio.NewScanner(os.Stdin)
	var buf strings.Builder

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":tokens":
			showTokens = !showTokens
			fmt.Printf("token dump %s\n> ", onOff(showTokens))
			continue
		}

		if line != "" {
			buf.WriteString(line)
			buf.WriteByte('\n')
			fmt.Print("| ")
			continue
		}
		text := buf.String()
		buf.Reset()
		if strings.TrimSpace(text) == "" {
			fmt.Print("> ")
			continue
		}

		evalInput(renderer, text, showTokens, color)
		fmt.Print("> ")
	}
	return scanner.Err()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func evalInput(renderer *diag.Renderer, text string, showTokens, color bool) {
	file := source.NewFile("<repl>", text)
	prog := lexer.Lex(text)

	if showTokens {
		fmt.Println(renderTokens(prog, color))
	}
	if lexErrs := prog.Errors(); len(lexErrs) > 0 {
		fmt.Print(renderer.RenderAll(file, diag.FromLex(lexErrs)))
		return
	}

	items, err := parser.Parse(prog)
	if err == nil {
		fmt.Print(ast.Dump(items, prog.Interner()))
		return
	}

	// Bare expressions are not items, but they are natural REPL input.
	if expr, exprErr := parser.ParseExpr(prog); exprErr == nil {
		fmt.Print(ast.DumpExpr(expr, prog.Interner()))
		return
	}
	fmt.Print(renderer.Render(file, diag.FromParse(err)))
}

var tokenStyles = map[token.Kind]lipgloss.Style{
	token.Punctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	token.NumberLit:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	token.StringLit:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")),
	token.Ident:       lipgloss.NewStyle().Bold(true),
	token.UpperIdent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	token.Operator:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C084FC")),
	token.Keyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8")),
	token.LexError:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	token.EOF:         lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
}

// renderTokens renders the stream on one line, one color per kind.
func renderTokens(prog *lexer.Program, color bool) string {
	var b strings.Builder
	for i, t := range prog.Tokens() {
		if i > 0 {
			b.WriteByte(' ')
		}
		text := t.Render(prog.Source())
		if color {
			text = tokenStyles[t.Kind].Render(text)
		}
		b.WriteString(text)
	}
	return b.String()
}
