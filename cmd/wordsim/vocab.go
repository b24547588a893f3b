// ABOUTME: CLI commands for inspecting the vocabulary and managing config.
// ABOUTME: Provides vocab listing and config init subcommands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2389-research/wordsim/internal/config"
	"github.com/2389-research/wordsim/internal/vectors"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List known words",
	Long:  "List the compiled-in vocabulary grouped by semantic cluster.",
	RunE:  runVocab,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE:  runConfigInit,
}

// Flags
var (
	vocabCluster string
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	vocabCmd.Flags().StringVar(&vocabCluster, "cluster", "", "Only list this cluster")
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

func runVocab(cmd *cobra.Command, args []string) error {
	clusters := vectors.Clusters
	if vocabCluster != "" {
		c := vectors.Cluster(vocabCluster)
		if len(vectors.ClusterWords(c)) == 0 {
			return fmt.Errorf("unknown cluster %q", vocabCluster)
		}
		clusters = []vectors.Cluster{c}
	}

	for _, c := range clusters {
		fmt.Printf("%-10s %s\n", c, strings.Join(vectors.ClusterWords(c), ", "))
	}
	if vocabCluster == "" {
		fmt.Printf("\n%d words\n", vectors.VocabularySize())
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Default().SaveFile(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Config saved to %s\n", path)
	return nil
}
