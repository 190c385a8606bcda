package model

import (
	"reflect"
	"testing"
)

func TestEmptyState_NonNilCollections(t *testing.T) {
	s := EmptyState()
	if s.Sheets == nil || s.Exercises == nil {
		t.Fatal("expected non-nil collections")
	}
	if len(s.Sheets) != 0 || len(s.Exercises) != 0 {
		t.Errorf("expected empty state, got %+v", s)
	}
}

func TestExercise_CurrentSet(t *testing.T) {
	var e Exercise
	if _, ok := e.CurrentSet(); ok {
		t.Error("expected no set on zero exercise")
	}
	e.Sets = []Set{{Reps: 8}, {Reps: 99}}
	s, ok := e.CurrentSet()
	if !ok || s.Reps != 8 {
		t.Errorf("expected first set with 8 reps, got %+v (ok=%v)", s, ok)
	}
}

func TestAppState_CloneIsDeep(t *testing.T) {
	orig := AppState{
		Sheets: []Sheet{{ID: "a", Name: "Push"}},
		Exercises: []Exercise{{
			ID:      "e1",
			SheetID: "a",
			Name:    "Bench",
			Sets:    []Set{{Reps: 5, WeightKg: Float(80)}},
			Progress: Progress{
				Last:     &Snapshot{Reps: 5, WeightKg: Float(80)},
				Previous: &Snapshot{Reps: 5, WeightKg: Float(75)},
			},
		}},
	}

	c := orig.Clone()
	if !reflect.DeepEqual(orig, c) {
		t.Fatalf("clone differs from original:\n%+v\n%+v", orig, c)
	}

	*c.Exercises[0].Sets[0].WeightKg = 100
	c.Exercises[0].Progress.Last.Reps = 1
	c.Sheets[0].Name = "changed"

	if *orig.Exercises[0].Sets[0].WeightKg != 80 {
		t.Error("mutating clone's set weight leaked into original")
	}
	if orig.Exercises[0].Progress.Last.Reps != 5 {
		t.Error("mutating clone's progress leaked into original")
	}
	if orig.Sheets[0].Name != "Push" {
		t.Error("mutating clone's sheet leaked into original")
	}
}

func TestAppState_ExercisesFor(t *testing.T) {
	s := AppState{
		Exercises: []Exercise{
			{ID: "1", SheetID: "a"},
			{ID: "2", SheetID: "b"},
			{ID: "3", SheetID: "a"},
		},
	}
	got := s.ExercisesFor("a")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("expected exercises 1,3 in order, got %+v", got)
	}
	if got := s.ExercisesFor("missing"); len(got) != 0 {
		t.Errorf("expected none, got %d", len(got))
	}
}

func TestSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		set     Set
		wantErr bool
	}{
		{"valid", Set{Reps: 10, WeightKg: Float(50), RestSec: Float(90)}, false},
		{"bodyweight", Set{Reps: 12}, false},
		{"zero reps", Set{Reps: 0}, true},
		{"negative weight", Set{Reps: 5, WeightKg: Float(-1)}, true},
		{"negative rest", Set{Reps: 5, RestSec: Float(-1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
