// ABOUTME: MCP tool implementations for word similarity operations.
// ABOUTME: Registers word_similarity, service_health, and list_vocabulary.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/wordsim/internal/models"
	"github.com/2389-research/wordsim/internal/similarity"
	"github.com/2389-research/wordsim/internal/vectors"
)

func (s *Server) registerSimilarityTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "word_similarity",
		Description: "Score how semantically close two Korean words are, from 0 (unrelated) to 1 (identical). Words outside the vocabulary are compared by shared characters and score between 0.05 and 0.4.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"word1": {"type": "string", "description": "First word"},
				"word2": {"type": "string", "description": "Second word"}
			},
			"required": ["word1", "word2"]
		}`),
	}, s.handleWordSimilarity)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "service_health",
		Description: "Report whether the word vectors are loaded and how many words are known.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleServiceHealth)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_vocabulary",
		Description: "List the words that have semantic vectors, optionally limited to one cluster.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cluster": {"type": "string", "enum": ["fruits", "animals", "buildings", "emotions", "colors", "objects", "food", "people", "weather"], "description": "Only list words in this cluster"}
			}
		}`),
	}, s.handleListVocabulary)
}

func (s *Server) handleWordSimilarity(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args models.SimilarityRequest
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if missing := args.Missing(); len(missing) > 0 {
		return toolError("missing argument(s): %s", strings.Join(missing, ", ")), nil
	}

	table, _ := s.holder.Table()
	word1, word2 := *args.Word1, *args.Word2
	res, err := s.scorer.Score(table, word1, word2)
	if errors.Is(err, similarity.ErrNotReady) {
		return toolError("word vectors are still loading, try again shortly"), nil
	}
	if err != nil {
		return toolError("failed to score words: %v", err), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s / %s: %.4f\n", word1, word2, res.Similarity))
	for _, w := range []string{word1, word2} {
		if c, ok := table.Cluster(w); ok {
			sb.WriteString(fmt.Sprintf("Found %s: true (cluster %s)\n", w, c))
		} else {
			sb.WriteString(fmt.Sprintf("Found %s: false\n", w))
		}
	}
	sb.WriteString(fmt.Sprintf("Method: %s\n", res.Method))

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleServiceHealth(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	status := models.StatusLoading
	loaded := s.holder.Loaded()
	if loaded {
		status = models.StatusHealthy
	}

	text := fmt.Sprintf("Status: %s\nModel loaded: %t\nVocabulary size: %d", status, loaded, s.holder.Size())
	if at, ok := s.holder.LoadedAt(); ok {
		text += fmt.Sprintf("\nLoaded at: %s", at.Format(time.RFC3339))
	}
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}, nil
}

func (s *Server) handleListVocabulary(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Cluster string `json:"cluster"`
	}
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return toolError("invalid arguments: %v", err), nil
		}
	}

	clusters := vectors.Clusters
	if args.Cluster != "" {
		c := vectors.Cluster(args.Cluster)
		if len(vectors.ClusterWords(c)) == 0 {
			return toolError("unknown cluster %q", args.Cluster), nil
		}
		clusters = []vectors.Cluster{c}
	}

	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(fmt.Sprintf("%s: %s\n", c, strings.Join(vectors.ClusterWords(c), ", ")))
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
