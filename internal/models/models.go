// ABOUTME: JSON request and response bodies for the similarity HTTP API.
// ABOUTME: Shared by the server, the client, and the CLI.
package models

// Service status values reported by the health and root endpoints.
const (
	StatusHealthy = "healthy"
	StatusLoading = "loading"
	StatusRunning = "running"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "Korean NLP Service"

// SimilarityRequest is the body of POST /similarity.
type SimilarityRequest struct {
	Word1 *string `json:"word1"`
	Word2 *string `json:"word2"`
}

// NewSimilarityRequest builds a request for two words.
func NewSimilarityRequest(word1, word2 string) SimilarityRequest {
	return SimilarityRequest{Word1: &word1, Word2: &word2}
}

// Missing returns the names of absent fields.
func (r SimilarityRequest) Missing() []string {
	var missing []string
	if r.Word1 == nil {
		missing = append(missing, "word1")
	}
	if r.Word2 == nil {
		missing = append(missing, "word2")
	}
	return missing
}

// SimilarityResponse is the body returned by POST /similarity.
type SimilarityResponse struct {
	Word1      string  `json:"word1"`
	Word2      string  `json:"word2"`
	Similarity float64 `json:"similarity"`
	FoundWord1 bool    `json:"found_word1"`
	FoundWord2 bool    `json:"found_word2"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	VocabSize   int    `json:"vocab_size"`
}

// Ready reports whether the service can score words.
func (h HealthResponse) Ready() bool {
	return h.Status == StatusHealthy && h.ModelLoaded
}

// RootResponse is the body returned by GET /.
type RootResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	VocabSize int    `json:"vocab_size"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
