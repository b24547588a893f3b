// ABOUTME: MCP server initialization and configuration for wordsim.
// ABOUTME: Exposes word similarity tools to AI agents over stdio.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/wordsim/internal/similarity"
	"github.com/2389-research/wordsim/internal/vectors"
)

// Server wraps the MCP server around a vector holder and scorer.
type Server struct {
	mcp     *gomcp.Server
	holder  *vectors.Holder
	scorer  *similarity.Scorer
	version string
}

// ServerOption configures optional Server settings.
type ServerOption func(*Server)

// WithVersion sets the implementation version reported to clients.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates an MCP server with similarity tools.
func NewServer(holder *vectors.Holder, scorer *similarity.Scorer, opts ...ServerOption) (*Server, error) {
	if holder == nil {
		return nil, fmt.Errorf("vector holder is required")
	}
	if scorer == nil {
		return nil, fmt.Errorf("scorer is required")
	}

	s := &Server{
		holder:  holder,
		scorer:  scorer,
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "wordsim",
			Version: s.version,
		},
		nil,
	)

	s.registerSimilarityTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
