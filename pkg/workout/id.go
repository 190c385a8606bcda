// Package workout holds the pure domain operations of liftsheet: identifier
// generation, sheet and exercise construction, set input parsing, and the
// progress and trend computations shown next to each exercise.
package workout

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// newRandomUUID is swapped in tests to exercise the fallback path.
var newRandomUUID = uuid.NewRandom

// NewSheetID returns a fresh sheet identifier.
func NewSheetID() string { return newID("sheet") }

// NewExerciseID returns a fresh exercise identifier.
func NewExerciseID() string { return newID("exercise") }

// newID prefers a crypto-backed random UUID. If the system randomness
// source fails it falls back to a timestamp plus random composite. No
// collision check is made.
func newID(prefix string) string {
	id, err := newRandomUUID()
	if err == nil {
		return id.String()
	}
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), rand.Uint64())
}
