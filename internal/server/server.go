// ABOUTME: HTTP server exposing word similarity, health, and root endpoints.
// ABOUTME: Reads load state from an injected holder and serves until the context ends.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/2389-research/wordsim/internal/similarity"
	"github.com/2389-research/wordsim/internal/vectors"
)

// Scorer scores a word pair against a published table.
type Scorer interface {
	Score(table *vectors.Table, word1, word2 string) (similarity.Result, error)
}

// Server translates HTTP requests into scorer calls.
type Server struct {
	holder *vectors.Holder
	scorer Scorer
	logger *slog.Logger

	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

// ServerOption configures optional Server settings.
type ServerOption func(*Server)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// WithTimeouts sets HTTP read, write, and graceful shutdown timeouts.
func WithTimeouts(read, write, shutdown time.Duration) ServerOption {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
		s.shutdownTimeout = shutdown
	}
}

// New creates a server over holder and scorer.
func New(holder *vectors.Holder, scorer Scorer, opts ...ServerOption) (*Server, error) {
	if holder == nil {
		return nil, fmt.Errorf("vector holder is required")
	}
	if scorer == nil {
		return nil, fmt.Errorf("scorer is required")
	}

	s := &Server{
		holder:          holder,
		scorer:          scorer,
		logger:          slog.New(slog.DiscardHandler),
		readTimeout:     10 * time.Second,
		writeTimeout:    10 * time.Second,
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /similarity", s.handleSimilarity)
	return s.withRequestID(s.withLogging(mux))
}

// LoadTable builds the vector table and publishes it to the holder.
func (s *Server) LoadTable(build func() *vectors.Table) {
	s.logger.Info("loading Korean word vectors")
	elapsed := s.holder.Load(build)
	s.logger.Info("loaded Korean word vectors", "count", s.holder.Size(), "duration", elapsed)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr, starts building the table in the
// background, and serves until ctx is done. Health reports "loading" until
// the build finishes.
func (s *Server) ListenAndServe(ctx context.Context, addr string, build func() *vectors.Table) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	go s.LoadTable(build)
	return s.Serve(ctx, ln)
}
