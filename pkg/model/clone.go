package model

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	return Set{
		Reps:     s.Reps,
		WeightKg: cloneFloat(s.WeightKg),
		RestSec:  cloneFloat(s.RestSec),
	}
}

// Clone returns a deep copy of the snapshot, or nil.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{Reps: s.Reps, WeightKg: cloneFloat(s.WeightKg)}
}

// Clone returns a deep copy of the progress.
func (p Progress) Clone() Progress {
	return Progress{Last: p.Last.Clone(), Previous: p.Previous.Clone()}
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	out := e
	if e.Sets != nil {
		out.Sets = make([]Set, len(e.Sets))
		for i, s := range e.Sets {
			out.Sets[i] = s.Clone()
		}
	}
	out.Progress = e.Progress.Clone()
	return out
}

// Clone returns a deep copy of the whole state. Nil collections come back
// as empty slices.
func (s AppState) Clone() AppState {
	out := AppState{
		Sheets:    make([]Sheet, len(s.Sheets)),
		Exercises: make([]Exercise, len(s.Exercises)),
	}
	copy(out.Sheets, s.Sheets)
	for i, e := range s.Exercises {
		out.Exercises[i] = e.Clone()
	}
	return out
}

// SheetByID returns the sheet with id, if present.
func (s AppState) SheetByID(id string) (Sheet, bool) {
	for _, sh := range s.Sheets {
		if sh.ID == id {
			return sh, true
		}
	}
	return Sheet{}, false
}

// ExercisesFor returns the exercises owned by sheetID in insertion order.
func (s AppState) ExercisesFor(sheetID string) []Exercise {
	var out []Exercise
	for _, e := range s.Exercises {
		if e.SheetID == sheetID {
			out = append(out, e.Clone())
		}
	}
	return out
}
