package workout

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// Sheet name bounds, in characters after trimming.
const (
	MinSheetNameLen = 3
	MaxSheetNameLen = 40
)

// NormalizeSheetName trims name and checks its length.
func NormalizeSheetName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	if n < MinSheetNameLen || n > MaxSheetNameLen {
		return "", invalid("name", "name must be between %d and %d characters", MinSheetNameLen, MaxSheetNameLen)
	}
	return trimmed, nil
}

// Timestamp returns t in UTC truncated to milliseconds, the precision the
// persisted blob keeps.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NewSheet builds a sheet with a fresh ID, the default theme and
// CreatedAt == UpdatedAt == now.
func NewSheet(name, notes string, now time.Time) (model.Sheet, error) {
	trimmed, err := NormalizeSheetName(name)
	if err != nil {
		return model.Sheet{}, err
	}
	ts := Timestamp(now)
	return model.Sheet{
		ID:        NewSheetID(),
		Name:      trimmed,
		Notes:     strings.TrimSpace(notes),
		Theme:     model.DefaultTheme,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// NormalizeExerciseName trims name and rejects an empty result.
func NormalizeExerciseName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("name", "exercise name is required")
	}
	return trimmed, nil
}

// NewExercise builds an exercise attached to sheetID holding set as its
// current set. order is the number of exercises the sheet already has.
func NewExercise(sheetID, name, targetMuscle string, set model.Set, order int) (model.Exercise, error) {
	trimmed, err := NormalizeExerciseName(name)
	if err != nil {
		return model.Exercise{}, err
	}
	ex := model.Exercise{
		ID:           NewExerciseID(),
		SheetID:      sheetID,
		Name:         trimmed,
		TargetMuscle: strings.TrimSpace(targetMuscle),
		Sets:         []model.Set{set},
		Order:        order,
		Progress:     BuildProgress(set, nil),
	}
	if err := ex.Validate(); err != nil {
		return model.Exercise{}, err
	}
	return ex, nil
}
