// ABOUTME: Vector similarity primitives used by the scorer.
// ABOUTME: Cosine similarity, its [0,1] remapping, and range clamping.
package similarity

import "math"

// CosineSimilarity computes the cosine similarity between two vectors.
// Mismatched, empty, or zero-norm inputs score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// UnitInterval maps a cosine in [-1,1] onto [0,1].
func UnitInterval(cos float64) float64 {
	return Clamp((cos+1)/2, 0, 1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
