package cmd

import (
	"fmt"

	"FcnLang/internal/format"
	"FcnLang/internal/repl"

	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseTokens bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a function declaration from a source file or stdin",
	Long: `Parses the source as a single function declaration and prints the tree.

Diagnostics go to stderr. The command fails when the declaration cannot be
parsed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, json or yaml")
	parseCmd.Flags().BoolVar(&parseTokens, "tokens", false, "print the token table first")
}

func runParse(cmd *cobra.Command, args []string) error {
	f, err := format.ParseFormat(parseFormat)
	if err != nil {
		return err
	}

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	result := repl.Execute(source, lexerOptions()...)
	if result.LexErr != nil {
		return result.LexErr
	}

	if parseTokens {
		if err := format.WriteTokens(cmd.OutOrStdout(), result.Tokens, f); err != nil {
			return err
		}
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "diagnostic: %v\n", d)
	}

	if result.ParseErr != nil {
		return fmt.Errorf("parse failed: %w", result.ParseErr)
	}

	return format.WriteTree(cmd.OutOrStdout(), result.Tree, f)
}
