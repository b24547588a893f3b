// ABOUTME: Character-overlap heuristic for words outside the vocabulary.
// ABOUTME: Blends rune-set Jaccard and length similarity into a low-confidence score.
package similarity

// Bounds of the heuristic score for distinct words.
const (
	MinUnknownScore = 0.05
	MaxUnknownScore = 0.4
)

const (
	jaccardWeight  = 0.7
	lengthWeight   = 0.3
	unknownDamping = 0.5
)

// CharacterSimilarity scores two arbitrary words by shared characters and
// length. Equal words score 1; all others land in [MinUnknownScore,
// MaxUnknownScore]. The result is symmetric in its arguments.
func CharacterSimilarity(word1, word2 string) float64 {
	if word1 == word2 {
		return 1.0
	}

	r1 := []rune(word1)
	r2 := []rune(word2)

	combined := (Jaccard(r1, r2)*jaccardWeight + LengthSimilarity(len(r1), len(r2))*lengthWeight) * unknownDamping
	return Clamp(combined, MinUnknownScore, MaxUnknownScore)
}

// Jaccard returns |A∩B| / |A∪B| over the distinct runes of a and b, or 0
// when both are empty.
func Jaccard(a, b []rune) float64 {
	set := make(map[rune]uint8, len(a)+len(b))
	for _, r := range a {
		set[r] |= 1
	}
	for _, r := range b {
		set[r] |= 2
	}
	if len(set) == 0 {
		return 0
	}

	var intersection int
	for _, mask := range set {
		if mask == 3 {
			intersection++
		}
	}
	return float64(intersection) / float64(len(set))
}

// LengthSimilarity returns 1 - |n1-n2| / max(n1,n2), or 0 when both are 0.
func LengthSimilarity(n1, n2 int) float64 {
	longest := max(n1, n2)
	if longest == 0 {
		return 0
	}
	diff := n1 - n2
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/float64(longest)
}
