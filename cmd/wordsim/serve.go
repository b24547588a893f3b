// ABOUTME: Serve command running the similarity HTTP service.
// ABOUTME: Starts listening immediately and builds the vector table in the background.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/2389-research/wordsim/internal/server"
	"github.com/2389-research/wordsim/internal/vectors"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP similarity service",
	Long: `Run the HTTP service exposing GET /, GET /health, and POST /similarity.

The listener accepts connections right away; /health reports "loading"
and /similarity returns 503 until the word vectors are built.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := globalConfig
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	scorer, err := newScorer(cfg.Model)
	if err != nil {
		return err
	}

	srv, err := server.New(vectors.NewHolder(), scorer,
		server.WithLogger(globalLogger),
		server.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
	if err != nil {
		return err
	}

	globalLogger.Info("starting Korean NLP service", "addr", addr)
	return srv.ListenAndServe(ctx, addr, tableBuilder(cfg.Model))
}
