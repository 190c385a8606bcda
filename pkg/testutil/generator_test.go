package testutil

import (
	"reflect"
	"testing"
)

func TestStateShape(t *testing.T) {
	tests := []struct {
		name     string
		sheets   int
		perSheet int
	}{
		{"empty", 0, 0},
		{"sheets only", 3, 0},
		{"one each", 1, 1},
		{"larger", 8, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewDefault().State(tt.sheets, tt.perSheet)
			if len(state.Sheets) != tt.sheets {
				t.Errorf("sheets = %d, want %d", len(state.Sheets), tt.sheets)
			}
			if len(state.Exercises) != tt.sheets*tt.perSheet {
				t.Errorf("exercises = %d, want %d", len(state.Exercises), tt.sheets*tt.perSheet)
			}
			if state.Sheets == nil || state.Exercises == nil {
				t.Error("collections must be non-nil")
			}
			AssertValidState(t, state)
		})
	}
}

func TestDeterministic(t *testing.T) {
	a := NewDefault().State(4, 3)
	b := NewDefault().State(4, 3)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different states")
	}

	cfg := DefaultConfig()
	cfg.Seed = 7
	c := New(cfg).State(4, 3)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical states")
	}
}

func TestExerciseOrderFollowsPosition(t *testing.T) {
	state := NewDefault().State(2, 4)
	for _, e := range state.Exercises {
		want := e.ID[len(e.ID)-2:]
		if got := e.Order; got < 0 || got > 3 || want != [...]string{"00", "01", "02", "03"}[got] {
			t.Errorf("exercise %s has order %d", e.ID, e.Order)
		}
	}
}

func TestBodyweightShare(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bodyweight = 1
	for _, e := range New(cfg).State(3, 4).Exercises {
		if e.Sets[0].WeightKg != nil {
			t.Fatalf("exercise %s has weight with Bodyweight=1", e.ID)
		}
		if p := e.Progress.Previous; p != nil && p.WeightKg != nil {
			t.Fatalf("exercise %s has previous weight with Bodyweight=1", e.ID)
		}
	}
}
