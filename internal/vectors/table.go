// ABOUTME: Immutable word-to-vector table built once from the literal vocabulary.
// ABOUTME: Pads base vectors with Gaussian noise and normalizes to unit length.
package vectors

import (
	"math"
	"math/rand/v2"
	"sort"

	"golang.org/x/text/unicode/norm"
)

const (
	// Dimension is the length of every table vector.
	Dimension = 100

	// BaseDimension is the number of hand-assigned cluster components.
	BaseDimension = 8

	// NoiseStdDev is the standard deviation of the padding noise.
	NoiseStdDev = 0.1
)

// Table maps vocabulary words to unit vectors. It is never mutated after
// Build returns, so concurrent reads need no synchronization.
type Table struct {
	vectors  map[string][]float64
	clusters map[string]Cluster
}

// NewRand returns a random source seeded from seed, or from the runtime's
// entropy source when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Build constructs a table from the literal vocabulary, drawing padding
// noise from rng.
func Build(rng *rand.Rand) *Table {
	return build(vocabulary, rng)
}

func build(entries []Entry, rng *rand.Rand) *Table {
	t := &Table{
		vectors:  make(map[string][]float64, len(entries)),
		clusters: make(map[string]Cluster, len(entries)),
	}
	for _, e := range entries {
		vec := make([]float64, Dimension)
		copy(vec, e.Base[:])
		for i := BaseDimension; i < Dimension; i++ {
			vec[i] = rng.NormFloat64() * NoiseStdDev
		}
		normalize(vec)
		t.vectors[e.Word] = vec
		t.clusters[e.Word] = e.Cluster
	}
	return t
}

// normalize scales vec to unit length in place. A zero vector is left as is.
func normalize(vec []float64) {
	n := Norm(vec)
	if n == 0 {
		return
	}
	for i := range vec {
		vec[i] /= n
	}
}

// Norm returns the Euclidean length of vec.
func Norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Lookup returns the vector for word. Canonically equivalent spellings
// (NFD Hangul, for instance) resolve to the same entry. Callers must not
// modify the returned slice.
func (t *Table) Lookup(word string) ([]float64, bool) {
	vec, ok := t.vectors[lookupKey(word)]
	return vec, ok
}

// Contains reports whether word is in the table.
func (t *Table) Contains(word string) bool {
	_, ok := t.vectors[lookupKey(word)]
	return ok
}

// Cluster returns the semantic cluster of word.
func (t *Table) Cluster(word string) (Cluster, bool) {
	c, ok := t.clusters[lookupKey(word)]
	return c, ok
}

// lookupKey maps word to the NFC form the vocabulary is stored in.
func lookupKey(word string) string {
	return norm.NFC.String(word)
}

// Size returns the number of entries.
func (t *Table) Size() int {
	return len(t.vectors)
}

// Words returns all words sorted.
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.vectors))
	for w := range t.vectors {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
