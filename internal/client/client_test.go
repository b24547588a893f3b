// ABOUTME: Tests for the similarity service client using httptest servers.
// ABOUTME: Covers request bodies, health decoding, retries, and error mapping.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2389-research/wordsim/internal/models"
)

func TestClientSimilarity(t *testing.T) {
	var receivedBody []byte
	var receivedContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/similarity" {
			t.Errorf("expected path /similarity, got %s", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		receivedContentType = r.Header.Get("Content-Type")
		receivedBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SimilarityResponse{
			Word1: "사과", Word2: "바나나", Similarity: 0.8, FoundWord1: true, FoundWord2: true,
		})
	}))
	defer server.Close()

	c := New(server.URL + "/")
	resp, err := c.Similarity(context.Background(), "사과", "바나나")
	if err != nil {
		t.Fatalf("Similarity error: %v", err)
	}

	if receivedContentType != "application/json" {
		t.Errorf("expected 'application/json', got %q", receivedContentType)
	}
	var payload map[string]string
	if err := json.Unmarshal(receivedBody, &payload); err != nil {
		t.Fatalf("failed to unmarshal request body: %v", err)
	}
	if payload["word1"] != "사과" || payload["word2"] != "바나나" {
		t.Errorf("unexpected payload: %v", payload)
	}
	if resp.Similarity != 0.8 || !resp.FoundWord1 || !resp.FoundWord2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestClientHealthAndReady(t *testing.T) {
	var loaded atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := models.HealthResponse{Status: "loading"}
		if loaded.Load() {
			h = models.HealthResponse{Status: "healthy", ModelLoaded: true, VocabSize: 69}
		}
		_ = json.NewEncoder(w).Encode(h)
	}))
	defer server.Close()

	c := New(server.URL)
	if c.Ready(context.Background()) {
		t.Error("expected not ready while loading")
	}

	loaded.Store(true)
	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if health.VocabSize != 69 {
		t.Errorf("expected vocab_size 69, got %d", health.VocabSize)
	}
	if !c.Ready(context.Background()) {
		t.Error("expected ready once loaded")
	}
}

func TestClientRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(models.HealthResponse{Status: "healthy", ModelLoaded: true})
	}))
	defer server.Close()

	c := New(server.URL, WithRetryDelay(time.Millisecond))
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestClientUnavailable(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "Model not loaded yet"})
	}))
	defer server.Close()

	c := New(server.URL, WithRetries(1), WithRetryDelay(time.Millisecond))
	_, err := c.Similarity(context.Background(), "a", "b")
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if !IsUnavailable(err) {
		t.Errorf("expected IsUnavailable, got %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("bad body"))
	}))
	defer server.Close()

	c := New(server.URL, WithRetryDelay(time.Millisecond))
	_, err := c.Similarity(context.Background(), "a", "b")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity || apiErr.Detail != "bad body" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 attempt, got %d", calls.Load())
	}
}

func TestClientConnectionError(t *testing.T) {
	c := New("http://localhost:1", WithRetries(0))
	if _, err := c.Health(context.Background()); err == nil {
		t.Fatal("expected error for connection failure")
	}
	if c.Ready(context.Background()) {
		t.Error("expected not ready when unreachable")
	}
}

func TestNewDefaultBaseURL(t *testing.T) {
	if got := New("").BaseURL(); got != DefaultBaseURL {
		t.Errorf("expected %q, got %q", DefaultBaseURL, got)
	}
}
