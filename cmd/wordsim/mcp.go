// ABOUTME: MCP server command implementation for wordsim.
// ABOUTME: Starts the MCP server in stdio mode with an in-process vector table.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcppkg "github.com/2389-research/wordsim/internal/mcp"
	"github.com/2389-research/wordsim/internal/vectors"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for AI agent integration.

The MCP server communicates via stdio and scores words in-process,
without a running HTTP service.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scorer, err := newScorer(globalConfig.Model)
	if err != nil {
		return err
	}

	holder := vectors.NewHolder()
	go func() {
		elapsed := holder.Load(tableBuilder(globalConfig.Model))
		globalLogger.Info("loaded Korean word vectors", "count", holder.Size(), "duration", elapsed)
	}()

	server, err := mcppkg.NewServer(holder, scorer)
	if err != nil {
		return err
	}

	return server.Serve(ctx)
}
