package cmd

import (
	"fmt"
	"io"
	"os"

	"FcnLang/internal/config"
	"FcnLang/internal/history"
	"FcnLang/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var loggerNames = []string{"repl", "server", "tui", "history"}

var rootCmd = &cobra.Command{
	Use:   "fcn",
	Short: "fcn - tokenizer and parser for the fcn language",
	Long: `fcn turns source text into tokens and parses a single function
declaration into a syntax tree.

Commands:
  repl      - interactive line front end
  tui       - terminal UI
  serve     - HTTP API (/tokenize, /parse)
  tokenize  - print the tokens of a file or stdin
  parse     - print the tree of a file or stdin`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Resolve(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $FCN_CONFIG, ./fcn.toml or ./fcn.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr at debug level")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// setupLogging registers the named loggers used by the interactive and
// server commands.
func setupLogging() error {
	if verbose {
		for _, name := range loggerNames {
			logger.NewWriter(name, os.Stderr, logger.DEBUG)
		}
		return nil
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	for _, name := range loggerNames {
		if _, err := logger.New(name, cfg.Log.Dir, level); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
	}
	return nil
}

// openHistory returns nil when no history file is configured.
func openHistory() (*history.SQLiteStore, error) {
	if cfg.Repl.History == "" {
		return nil, nil
	}

	store, err := history.Open(cfg.Repl.History)
	if err != nil {
		logger.Get("history").Error("Failed to open %s: %v", cfg.Repl.History, err)
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	logger.Get("history").Debug("Opened %s", cfg.Repl.History)
	return store, nil
}

// readSource reads the file named by args, or the command's stdin.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	return string(data), nil
}
