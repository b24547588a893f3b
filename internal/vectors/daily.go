// ABOUTME: Deterministic daily answer selection for the guessing game.
// ABOUTME: The same calendar date always maps to the same vocabulary word.
package vectors

import (
	"hash/fnv"
	"time"
)

// DailyWord returns the answer for the calendar day of date, in date's location.
func DailyWord(date time.Time) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(date.Format("2006-01-02")))
	return vocabulary[int(h.Sum32()%uint32(len(vocabulary)))].Word
}
