// ABOUTME: Root Cobra command and global flags for the wordsim CLI.
// ABOUTME: Loads configuration and builds the shared logger before each command.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/wordsim/internal/client"
	"github.com/2389-research/wordsim/internal/config"
	"github.com/2389-research/wordsim/internal/similarity"
	"github.com/2389-research/wordsim/internal/vectors"
)

var globalConfig *config.Config
var globalLogger *slog.Logger

// Flags
var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "wordsim",
	Short: "Korean word similarity service",
	Long: `wordsim scores how close two Korean words are.

Known words are compared by cosine similarity over hand-built semantic
vectors; unknown words fall back to a character-overlap estimate.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var cfg *config.Config
		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		globalConfig = cfg

		logger, err := newLogger(os.Stderr, cfg.Log)
		if err != nil {
			return err
		}
		globalLogger = logger
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default $XDG_CONFIG_HOME/wordsim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// newScorer builds a scorer from the model config.
func newScorer(cfg config.ModelConfig) (*similarity.Scorer, error) {
	var seed uint64
	if cfg.Seed != 0 {
		seed = cfg.Seed + 1
	}
	return similarity.NewScorer(similarity.Options{
		Rand:             vectors.NewRand(seed),
		Noise:            cfg.ScoreNoise,
		OverlapCacheSize: cfg.OverlapCacheSize,
	})
}

// tableBuilder returns a build func honoring the configured seed.
func tableBuilder(cfg config.ModelConfig) func() *vectors.Table {
	return func() *vectors.Table {
		return vectors.Build(vectors.NewRand(cfg.Seed))
	}
}

// newClient builds a service client from the client config.
func newClient(cfg config.ClientConfig) *client.Client {
	return client.New(cfg.URL,
		client.WithTimeout(cfg.Timeout),
		client.WithRetries(cfg.Retries),
	)
}
