package cmd

import (
	"FcnLang/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal UI",
	Long: `Starts a terminal UI with a multi-line editor for source text.

Keys:
  Ctrl+S    - tokenize and parse the editor contents
  Ctrl+L    - clear the editor
  Ctrl+C    - quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	opts := tui.Options{Strict: cfg.Lexer.Strict}

	store, err := openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts.History = store
	}

	return tui.Run(opts)
}
