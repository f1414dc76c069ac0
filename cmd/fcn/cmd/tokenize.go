package cmd

import (
	"FcnLang/internal/format"
	"FcnLang/internal/lexer"

	"github.com/spf13/cobra"
)

var tokenizeFormat string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Print the tokens of a source file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeFormat, "format", "f", "text", "output format: text, json or yaml")
}

func lexerOptions() []lexer.Option {
	if cfg.Lexer.Strict {
		return []lexer.Option{lexer.WithStrict()}
	}
	return nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	f, err := format.ParseFormat(tokenizeFormat)
	if err != nil {
		return err
	}

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(source, lexerOptions()...)
	if err != nil {
		return err
	}

	return format.WriteTokens(cmd.OutOrStdout(), tokens, f)
}
