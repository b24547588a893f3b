// ABOUTME: CLI commands that query a running similarity service.
// ABOUTME: Provides similarity and health subcommands with text or JSON output.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/wordsim/internal/client"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <word1> <word2>",
	Short: "Score two words against the service",
	Long:  "Ask a running wordsim service how similar two words are.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSimilarity,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service health",
	Long:  "Report whether a running wordsim service has loaded its word vectors.",
	RunE:  runHealth,
}

// Flags
var (
	serviceURL string
	jsonOutput bool
)

func init() {
	rootCmd.AddCommand(similarityCmd)
	rootCmd.AddCommand(healthCmd)

	for _, c := range []*cobra.Command{similarityCmd, healthCmd} {
		c.Flags().StringVar(&serviceURL, "url", "", "Service URL (overrides client.url)")
		c.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw JSON response")
	}
}

func serviceClient() *client.Client {
	cfg := globalConfig.Client
	if serviceURL != "" {
		cfg.URL = serviceURL
	}
	return newClient(cfg)
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	resp, err := serviceClient().Similarity(cmd.Context(), args[0], args[1])
	if err != nil {
		if client.IsUnavailable(err) {
			return fmt.Errorf("service is still loading its word vectors: %w", err)
		}
		return fmt.Errorf("failed to score words: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}
	fmt.Printf("%s / %s: %.4f\n", resp.Word1, resp.Word2, resp.Similarity)
	fmt.Printf("  found %s: %t\n", resp.Word1, resp.FoundWord1)
	fmt.Printf("  found %s: %t\n", resp.Word2, resp.FoundWord2)
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	c := serviceClient()
	health, err := c.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("service at %s is not available: %w", c.BaseURL(), err)
	}

	if jsonOutput {
		return printJSON(health)
	}
	fmt.Printf("Status: %s\n", health.Status)
	fmt.Printf("Model loaded: %t\n", health.ModelLoaded)
	fmt.Printf("Vocabulary size: %d\n", health.VocabSize)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
