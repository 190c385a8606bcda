package store

import (
	"reflect"
	"time"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// SheetPatch lists the sheet fields to overwrite. Nil fields are kept.
type SheetPatch struct {
	Name  *string
	Notes *string
	Theme *model.Theme
}

// ExercisePatch lists the exercise fields to overwrite. Nil fields are kept.
// ID, SheetID and Order cannot be patched.
type ExercisePatch struct {
	Name         *string
	TargetMuscle *string
	Sets         []model.Set
	Progress     *model.Progress
}

// IsZero reports whether the patch changes nothing.
func (p ExercisePatch) IsZero() bool {
	return p.Name == nil && p.TargetMuscle == nil && p.Sets == nil && p.Progress == nil
}

// The functions below are pure: they never write to the slices of the
// state they are given and always return fresh collections when the
// state changes.

func createSheet(s model.AppState, sheet model.Sheet) model.AppState {
	sheets := make([]model.Sheet, 0, len(s.Sheets)+1)
	sheets = append(sheets, s.Sheets...)
	sheets = append(sheets, sheet)
	return model.AppState{Sheets: sheets, Exercises: s.Exercises}
}

// updateSheet merges patch into sheet id and bumps UpdatedAt to now, never
// moving it backwards. found is false when id is unknown.
func updateSheet(s model.AppState, id string, patch SheetPatch, now time.Time) (next model.AppState, found, changed bool) {
	idx := sheetIndex(s, id)
	if idx < 0 {
		return s, false, false
	}
	prev := s.Sheets[idx]
	sheet := prev
	if patch.Name != nil {
		sheet.Name = *patch.Name
	}
	if patch.Notes != nil {
		sheet.Notes = *patch.Notes
	}
	if patch.Theme != nil {
		sheet.Theme = *patch.Theme
	}
	if now.After(prev.UpdatedAt) {
		sheet.UpdatedAt = now
	}
	if sheet == prev {
		return s, true, false
	}

	sheets := make([]model.Sheet, len(s.Sheets))
	copy(sheets, s.Sheets)
	sheets[idx] = sheet
	return model.AppState{Sheets: sheets, Exercises: s.Exercises}, true, true
}

// deleteSheet removes sheet id together with every exercise it owns.
func deleteSheet(s model.AppState, id string) (model.AppState, bool) {
	if sheetIndex(s, id) < 0 {
		return s, false
	}
	sheets := make([]model.Sheet, 0, len(s.Sheets)-1)
	for _, sh := range s.Sheets {
		if sh.ID != id {
			sheets = append(sheets, sh)
		}
	}
	exercises := make([]model.Exercise, 0, len(s.Exercises))
	for _, e := range s.Exercises {
		if e.SheetID != id {
			exercises = append(exercises, e)
		}
	}
	return model.AppState{Sheets: sheets, Exercises: exercises}, true
}

func createExercise(s model.AppState, ex model.Exercise) model.AppState {
	exercises := make([]model.Exercise, 0, len(s.Exercises)+1)
	exercises = append(exercises, s.Exercises...)
	exercises = append(exercises, ex.Clone())
	return model.AppState{Sheets: s.Sheets, Exercises: exercises}
}

func updateExercise(s model.AppState, id string, patch ExercisePatch) (next model.AppState, found, changed bool) {
	idx := exerciseIndex(s, id)
	if idx < 0 {
		return s, false, false
	}
	prev := s.Exercises[idx]
	ex := prev.Clone()
	if patch.Name != nil {
		ex.Name = *patch.Name
	}
	if patch.TargetMuscle != nil {
		ex.TargetMuscle = *patch.TargetMuscle
	}
	if patch.Sets != nil {
		ex.Sets = model.Exercise{Sets: patch.Sets}.Clone().Sets
	}
	if patch.Progress != nil {
		ex.Progress = patch.Progress.Clone()
	}
	if reflect.DeepEqual(ex, prev) {
		return s, true, false
	}

	exercises := make([]model.Exercise, len(s.Exercises))
	copy(exercises, s.Exercises)
	exercises[idx] = ex
	return model.AppState{Sheets: s.Sheets, Exercises: exercises}, true, true
}

func deleteExercise(s model.AppState, id string) (model.AppState, bool) {
	idx := exerciseIndex(s, id)
	if idx < 0 {
		return s, false
	}
	exercises := make([]model.Exercise, 0, len(s.Exercises)-1)
	exercises = append(exercises, s.Exercises[:idx]...)
	exercises = append(exercises, s.Exercises[idx+1:]...)
	return model.AppState{Sheets: s.Sheets, Exercises: exercises}, true
}

func sheetIndex(s model.AppState, id string) int {
	for i, sh := range s.Sheets {
		if sh.ID == id {
			return i
		}
	}
	return -1
}

func exerciseIndex(s model.AppState, id string) int {
	for i, e := range s.Exercises {
		if e.ID == id {
			return i
		}
	}
	return -1
}
