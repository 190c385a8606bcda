package tracker

import (
	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

// SheetSummary is one row of the sheet list.
type SheetSummary struct {
	Sheet     model.Sheet
	Exercises int
}

// ExerciseView is an exercise with its current set and trends.
type ExerciseView struct {
	Exercise model.Exercise
	Set      model.Set
	HasSet   bool
	Weight   workout.Trend
	Reps     workout.Trend
}

// SheetDetail is a sheet with all of its exercises.
type SheetDetail struct {
	Sheet     model.Sheet
	Exercises []ExerciseView
}

// Sheets lists every sheet in insertion order.
func (t *Tracker) Sheets() []SheetSummary {
	st := t.store.State()
	counts := make(map[string]int, len(st.Sheets))
	for _, e := range st.Exercises {
		counts[e.SheetID]++
	}
	out := make([]SheetSummary, len(st.Sheets))
	for i, s := range st.Sheets {
		out[i] = SheetSummary{Sheet: s, Exercises: counts[s.ID]}
	}
	return out
}

// Detail builds the view of sheet id.
func (t *Tracker) Detail(id string) (SheetDetail, error) {
	sheet, err := t.sheet(id)
	if err != nil {
		return SheetDetail{}, err
	}
	exercises := t.store.ExercisesFor(id)
	detail := SheetDetail{Sheet: sheet, Exercises: make([]ExerciseView, len(exercises))}
	for i, ex := range exercises {
		set, ok := ex.CurrentSet()
		detail.Exercises[i] = ExerciseView{
			Exercise: ex,
			Set:      set,
			HasSet:   ok,
			Weight:   workout.WeightTrend(ex.Progress),
			Reps:     workout.RepsTrend(ex.Progress),
		}
	}
	return detail, nil
}

// Details builds the view of every sheet.
func (t *Tracker) Details() []SheetDetail {
	sheets := t.Sheets()
	out := make([]SheetDetail, 0, len(sheets))
	for _, s := range sheets {
		if d, err := t.Detail(s.Sheet.ID); err == nil {
			out = append(out, d)
		}
	}
	return out
}
