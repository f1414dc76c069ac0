package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"FcnLang/internal/repl"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive line front end",
	Long: `Reads source line by line, prints its tokens and the parsed tree.

A line ending with { continues on the following lines until a blank line.
Type exit or quit to leave.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	opts := repl.Options{
		Prompt:             cfg.Repl.Prompt,
		ContinuationPrompt: cfg.Repl.ContinuationPrompt,
		Strict:             cfg.Lexer.Strict,
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts.History = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return repl.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}
