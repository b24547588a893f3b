// ABOUTME: Tests for the word-pair scorer across identical, vector, and overlap paths.
// ABOUTME: Verifies found flags, range guarantees, not-ready handling, and caching.
package similarity

import (
	"errors"
	"math"
	"sync"
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"

	"github.com/2389-research/wordsim/internal/vectors"
)

func newTestScorer(t *testing.T, opts Options) *Scorer {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = vectors.NewRand(17)
	}
	s, err := NewScorer(opts)
	if err != nil {
		t.Fatalf("NewScorer error: %v", err)
	}
	return s
}

func TestScoreNotReady(t *testing.T) {
	s := newTestScorer(t, Options{})
	_, err := s.Score(nil, "사과", "바나나")
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}

func TestScoreRecoversPanicAsInternalError(t *testing.T) {
	s := newTestScorer(t, Options{})
	s.cosine = func(a, b []float64) float64 {
		panic("index out of range")
	}
	table := vectors.Build(vectors.NewRand(1))

	res, err := s.Score(table, "사과", "바나나")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if !strings.Contains(err.Error(), "index out of range") {
		t.Errorf("expected panic value in error, got %q", err.Error())
	}
	if res != (Result{}) {
		t.Errorf("expected zero result on failure, got %+v", res)
	}

	// Paths that never reach the vector math are unaffected.
	if res, err := s.Score(table, "사과", "사과"); err != nil || res.Similarity != 1.0 {
		t.Errorf("identical path: got %+v, %v", res, err)
	}
}

func TestScoreComparesRawText(t *testing.T) {
	s := newTestScorer(t, Options{})
	table := vectors.Build(vectors.NewRand(1))

	decomposed := norm.NFD.String("한글단어")
	res, err := s.Score(table, decomposed, "한글단어")
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if res.Method != MethodOverlap {
		t.Errorf("expected overlap for byte-different unknown words, got %s", res.Method)
	}
	if want := CharacterSimilarity(decomposed, "한글단어"); res.Similarity != want {
		t.Errorf("expected %v, got %v", want, res.Similarity)
	}

	res, err = s.Score(table, norm.NFD.String("사과"), "바나나")
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if !res.FoundWord1 || res.Method != MethodVector {
		t.Errorf("expected decomposed known word to use its vector, got %+v", res)
	}
}

func TestScoreIdenticalWords(t *testing.T) {
	table := vectors.Build(vectors.NewRand(1))
	s := newTestScorer(t, Options{})

	tests := []struct {
		word  string
		found bool
	}{
		{"사과", true},
		{"고양이", true},
		{"zzzqq", false},
		{"", false},
	}
	for _, tt := range tests {
		res, err := s.Score(table, tt.word, tt.word)
		if err != nil {
			t.Fatalf("Score(%q, %q) error: %v", tt.word, tt.word, err)
		}
		if res.Similarity != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", tt.word, tt.word, res.Similarity)
		}
		if res.FoundWord1 != tt.found || res.FoundWord2 != tt.found {
			t.Errorf("%q: found flags = %v/%v, want %v", tt.word, res.FoundWord1, res.FoundWord2, tt.found)
		}
		if res.Method != MethodIdentical {
			t.Errorf("%q: method = %s, want %s", tt.word, res.Method, MethodIdentical)
		}
	}
}

func TestScoreKnownPairsInRange(t *testing.T) {
	table := vectors.Build(vectors.NewRand(2))
	s := newTestScorer(t, Options{})
	words := table.Words()

	for i := 0; i < len(words); i++ {
		for j := 0; j < len(words); j += 7 {
			if i == j {
				continue
			}
			for k := 0; k < 3; k++ {
				res, err := s.Score(table, words[i], words[j])
				if err != nil {
					t.Fatalf("Score error: %v", err)
				}
				if res.Similarity < 0 || res.Similarity > 1 {
					t.Fatalf("Score(%q, %q) = %v out of [0,1]", words[i], words[j], res.Similarity)
				}
				if !res.FoundWord1 || !res.FoundWord2 {
					t.Fatalf("expected both words found for %q/%q", words[i], words[j])
				}
				if res.Method != MethodVector {
					t.Fatalf("expected vector method, got %s", res.Method)
				}
			}
		}
	}
}

func TestScoreUnknownPairsBounded(t *testing.T) {
	table := vectors.Build(vectors.NewRand(3))
	s := newTestScorer(t, Options{})

	pairs := []struct {
		word1, word2   string
		found1, found2 bool
	}{
		{"zzzqq", "xxpp", false, false},
		{"사과", "zzzqq", true, false},
		{"xxpp", "고양이", false, true},
		{"사과나무", "사과", false, true},
	}
	for _, p := range pairs {
		res, err := s.Score(table, p.word1, p.word2)
		if err != nil {
			t.Fatalf("Score error: %v", err)
		}
		if res.Similarity < MinUnknownScore || res.Similarity > MaxUnknownScore {
			t.Errorf("Score(%q, %q) = %v out of [%v,%v]", p.word1, p.word2, res.Similarity, MinUnknownScore, MaxUnknownScore)
		}
		if res.FoundWord1 != p.found1 || res.FoundWord2 != p.found2 {
			t.Errorf("Score(%q, %q) found = %v/%v, want %v/%v", p.word1, p.word2, res.FoundWord1, res.FoundWord2, p.found1, p.found2)
		}
		if res.Method != MethodOverlap {
			t.Errorf("expected overlap method, got %s", res.Method)
		}
		if res.Similarity != CharacterSimilarity(p.word1, p.word2) {
			t.Errorf("expected heuristic score for %q/%q", p.word1, p.word2)
		}
	}
}

func TestScoreWithoutNoiseMatchesCosine(t *testing.T) {
	table := vectors.Build(vectors.NewRand(4))
	s := newTestScorer(t, Options{Noise: -1})

	v1, _ := table.Lookup("사과")
	v2, _ := table.Lookup("바나나")
	want := UnitInterval(CosineSimilarity(v1, v2))

	for i := 0; i < 3; i++ {
		res, err := s.Score(table, "사과", "바나나")
		if err != nil {
			t.Fatalf("Score error: %v", err)
		}
		if math.Abs(res.Similarity-want) > 1e-12 {
			t.Errorf("Score = %v, want %v", res.Similarity, want)
		}
	}
}

func TestScoreSameClusterBeatsOtherCluster(t *testing.T) {
	table := vectors.Build(vectors.NewRand(5))
	s := newTestScorer(t, Options{Noise: -1})

	near, _ := s.Score(table, "사과", "바나나")
	far, _ := s.Score(table, "사과", "학교")
	if near.Similarity <= far.Similarity {
		t.Errorf("expected 사과/바나나 (%v) > 사과/학교 (%v)", near.Similarity, far.Similarity)
	}
}

func TestScoreNoiseVaries(t *testing.T) {
	table := vectors.Build(vectors.NewRand(6))
	s := newTestScorer(t, Options{Noise: 0.02})

	seen := make(map[float64]bool)
	for i := 0; i < 20; i++ {
		res, _ := s.Score(table, "강아지", "고양이")
		seen[res.Similarity] = true
	}
	if len(seen) < 2 {
		t.Error("expected repeated calls on a known pair to vary")
	}
}

func TestScoreOverlapCache(t *testing.T) {
	table := vectors.Build(vectors.NewRand(7))
	s := newTestScorer(t, Options{OverlapCacheSize: 4})

	first, _ := s.Score(table, "zzzqq", "xxpp")
	second, _ := s.Score(table, "xxpp", "zzzqq")
	if first.Similarity != second.Similarity {
		t.Errorf("cached heuristic should be symmetric: %v vs %v", first.Similarity, second.Similarity)
	}
	if s.overlap.Len() != 1 {
		t.Errorf("expected 1 cached pair, got %d", s.overlap.Len())
	}
}

func TestScoreConcurrent(t *testing.T) {
	table := vectors.Build(vectors.NewRand(8))
	s := newTestScorer(t, Options{OverlapCacheSize: 16})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				res, err := s.Score(table, "사랑", "행복")
				if err != nil || res.Similarity < 0 || res.Similarity > 1 {
					t.Errorf("unexpected result %v, %v", res, err)
					return
				}
				if _, err := s.Score(table, "사랑", "qq"); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewPairKeyOrdersWords(t *testing.T) {
	if newPairKey("b", "a") != newPairKey("a", "b") {
		t.Error("expected pair keys to be order independent")
	}
}
