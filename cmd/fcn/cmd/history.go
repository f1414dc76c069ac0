package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently submitted REPL input",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("no history file configured (set repl.history)")
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%s  %-12s  %s\n",
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Outcome,
			strings.ReplaceAll(entry.Source, "\n", " ⏎ "),
		)
		if entry.Detail != "" {
			fmt.Fprintf(out, "    %s\n", entry.Detail)
		}
	}
	return nil
}
