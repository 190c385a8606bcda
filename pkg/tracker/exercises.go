package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/store"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

// ExerciseForm is the raw input for a new exercise.
type ExerciseForm struct {
	Name         string
	TargetMuscle string
	Reps         string
	WeightKg     string
	RestSec      string
}

// AddExercise validates form and appends the exercise to sheetID.
func (t *Tracker) AddExercise(sheetID string, form ExerciseForm) (model.Exercise, error) {
	if _, err := t.sheet(sheetID); err != nil {
		return model.Exercise{}, err
	}
	if _, err := workout.NormalizeExerciseName(form.Name); err != nil {
		return model.Exercise{}, err
	}
	set, err := workout.ParseSetWith(t.parse, form.Reps, form.WeightKg, form.RestSec)
	if err != nil {
		return model.Exercise{}, err
	}

	order := len(t.store.ExercisesFor(sheetID))
	ex, err := workout.NewExercise(sheetID, form.Name, form.TargetMuscle, set, order)
	if err != nil {
		return model.Exercise{}, err
	}
	if !t.store.CreateExercise(ex) {
		return model.Exercise{}, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetID)
	}
	t.store.TouchSheet(sheetID)
	t.log.WithFields(logrus.Fields{"sheet": sheetID, "exercise": ex.ID}).Info("exercise added")
	return ex, nil
}

// EditExercise asks for a new name and target muscle. Cancelling either
// prompt changes nothing.
func (t *Tracker) EditExercise(id string) (bool, error) {
	ex, err := t.exercise(id)
	if err != nil {
		return false, err
	}
	p, err := t.prompter()
	if err != nil {
		return false, err
	}

	raw, ok, err := p.Text("Exercise name", ex.Name)
	if err != nil || !ok || raw == "" {
		return false, err
	}
	name, err := workout.NormalizeExerciseName(raw)
	if err != nil {
		return false, err
	}
	target, ok, err := p.Text("Target muscle (optional)", ex.TargetMuscle)
	if err != nil || !ok {
		return false, err
	}
	target = strings.TrimSpace(target)

	t.store.UpdateExercise(id, store.ExercisePatch{Name: &name, TargetMuscle: &target})
	t.store.TouchSheet(ex.SheetID)
	return true, nil
}

// EditSet asks for reps, weight and rest, replaces the current set and
// moves the previous snapshot along. Cancelling any prompt aborts.
func (t *Tracker) EditSet(id string) (bool, error) {
	ex, err := t.exercise(id)
	if err != nil {
		return false, err
	}
	p, err := t.prompter()
	if err != nil {
		return false, err
	}

	current, _ := ex.CurrentSet()
	repsDefault := ""
	if current.Reps > 0 {
		repsDefault = strconv.Itoa(current.Reps)
	}
	reps, ok, err := p.Text("Reps", repsDefault)
	if err != nil || !ok || reps == "" {
		return false, err
	}
	weight, ok, err := p.Text("Weight (kg, optional)", optionalDefault(current.WeightKg))
	if err != nil || !ok {
		return false, err
	}
	rest, ok, err := p.Text("Rest (sec, optional)", optionalDefault(current.RestSec))
	if err != nil || !ok {
		return false, err
	}

	set, err := workout.ParseSetWith(t.parse, reps, weight, rest)
	if err != nil {
		return false, err
	}
	progress := workout.NextProgress(ex, set)
	t.store.UpdateExercise(id, store.ExercisePatch{Sets: []model.Set{set}, Progress: &progress})
	t.store.TouchSheet(ex.SheetID)
	t.log.WithField("exercise", id).Info("set recorded")
	return true, nil
}

// DeleteExercise removes the exercise after confirmation.
func (t *Tracker) DeleteExercise(id string) (bool, error) {
	ex, err := t.exercise(id)
	if err != nil {
		return false, err
	}
	p, err := t.prompter()
	if err != nil {
		return false, err
	}
	yes, err := p.Confirm(fmt.Sprintf("Delete exercise %q?", ex.Name))
	if err != nil || !yes {
		return false, err
	}
	t.store.DeleteExercise(id)
	t.store.TouchSheet(ex.SheetID)
	return true, nil
}

func optionalDefault(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
