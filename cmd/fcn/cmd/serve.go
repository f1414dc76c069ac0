package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FcnLang/internal/server"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the tokenizer and parser over HTTP.

Endpoints:
  GET  /health
  POST /tokenize  {"source": "..."}
  POST /parse     {"source": "..."}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
	return server.New(server.WithStrict(cfg.Lexer.Strict)).ListenAndServe(ctx, addr)
}
