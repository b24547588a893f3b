// ABOUTME: Route handlers for /, /health, and /similarity.
// ABOUTME: Maps not-ready and internal scoring failures to 503 and 500 responses.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2389-research/wordsim/internal/models"
	"github.com/2389-research/wordsim/internal/similarity"
)

const maxBodyBytes = 1 << 16

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.RootResponse{
		Message:   models.ServiceName,
		Status:    models.StatusRunning,
		VocabSize: s.holder.Size(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := models.StatusLoading
	loaded := s.holder.Loaded()
	if loaded {
		status = models.StatusHealthy
	}
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:      status,
		ModelLoaded: loaded,
		VocabSize:   s.holder.Size(),
	})
}

func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	var req models.SimilarityRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		writeError(w, http.StatusUnprocessableEntity, "missing field(s): "+strings.Join(missing, ", "))
		return
	}

	table, ok := s.holder.Table()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Model not loaded yet")
		return
	}

	word1, word2 := *req.Word1, *req.Word2
	res, err := s.scorer.Score(table, word1, word2)
	if err != nil {
		if errors.Is(err, similarity.ErrNotReady) {
			writeError(w, http.StatusServiceUnavailable, "Model not loaded yet")
			return
		}
		s.logger.Error("error calculating similarity",
			"error", err,
			"word1", word1,
			"word2", word2,
			"request_id", requestIDFrom(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.SimilarityResponse{
		Word1:      word1,
		Word2:      word2,
		Similarity: res.Similarity,
		FoundWord1: res.FoundWord1,
		FoundWord2: res.FoundWord2,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}
