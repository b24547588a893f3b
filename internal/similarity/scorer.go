// ABOUTME: Word-pair scorer combining vector cosine and the character-overlap fallback.
// ABOUTME: Adds per-call Gaussian noise on the vector path; never memoizes final scores.
package similarity

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/2389-research/wordsim/internal/vectors"
)

var (
	// ErrNotReady is returned when no vector table has been built yet.
	ErrNotReady = errors.New("model not loaded yet")

	// ErrInternal wraps unexpected failures during scoring.
	ErrInternal = errors.New("similarity computation failed")
)

// DefaultScoreNoise is the standard deviation of per-call score noise.
const DefaultScoreNoise = 0.02

// Method names the path that produced a score.
type Method string

const (
	MethodIdentical Method = "identical"
	MethodVector    Method = "vector"
	MethodOverlap   Method = "overlap"
)

// Result is the outcome of scoring one word pair.
type Result struct {
	Similarity float64
	FoundWord1 bool
	FoundWord2 bool
	Method     Method
}

// Options configures a Scorer.
type Options struct {
	// Rand supplies per-call noise. Nil uses an entropy-seeded source.
	Rand *rand.Rand

	// Noise is the standard deviation of per-call noise on the vector path.
	// Negative disables noise; zero uses DefaultScoreNoise.
	Noise float64

	// OverlapCacheSize bounds cached heuristic results. Zero disables the cache.
	OverlapCacheSize int
}

// Scorer computes word-pair similarities. It is safe for concurrent use.
type Scorer struct {
	mu      sync.Mutex
	rng     *rand.Rand
	noise   float64
	overlap *lru.Cache[pairKey, float64]

	// cosine is swapped in tests to exercise the recovery path.
	cosine func(a, b []float64) float64
}

// pairKey orders its words so (a,b) and (b,a) share a cache slot.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// NewScorer creates a scorer.
func NewScorer(opts Options) (*Scorer, error) {
	s := &Scorer{
		rng:    opts.Rand,
		noise:  opts.Noise,
		cosine: CosineSimilarity,
	}
	if s.rng == nil {
		s.rng = vectors.NewRand(0)
	}
	switch {
	case s.noise == 0:
		s.noise = DefaultScoreNoise
	case s.noise < 0:
		s.noise = 0
	}
	if opts.OverlapCacheSize > 0 {
		cache, err := lru.New[pairKey, float64](opts.OverlapCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create overlap cache: %w", err)
		}
		s.overlap = cache
	}
	return s, nil
}

// Score returns the similarity of word1 and word2 using table. A nil table
// yields ErrNotReady. Found flags always reflect the real table lookup.
// Equality and the character heuristic compare the words exactly as given.
func (s *Scorer) Score(table *vectors.Table, word1, word2 string) (res Result, err error) {
	if table == nil {
		return Result{}, ErrNotReady
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	vec1, found1 := table.Lookup(word1)
	vec2, found2 := table.Lookup(word2)
	res = Result{FoundWord1: found1, FoundWord2: found2}

	switch {
	case word1 == word2:
		res.Similarity = 1.0
		res.Method = MethodIdentical
	case !found1 || !found2:
		res.Similarity = s.characterSimilarity(word1, word2)
		res.Method = MethodOverlap
	default:
		res.Similarity = Clamp(UnitInterval(s.cosine(vec1, vec2))+s.jitter(), 0, 1)
		res.Method = MethodVector
	}
	return res, nil
}

func (s *Scorer) characterSimilarity(word1, word2 string) float64 {
	if s.overlap == nil {
		return CharacterSimilarity(word1, word2)
	}
	key := newPairKey(word1, word2)
	if v, ok := s.overlap.Get(key); ok {
		return v
	}
	v := CharacterSimilarity(word1, word2)
	s.overlap.Add(key, v)
	return v
}

// jitter draws one noise sample. rand.Rand is not safe for concurrent use.
func (s *Scorer) jitter() float64 {
	if s.noise == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.NormFloat64() * s.noise
}
