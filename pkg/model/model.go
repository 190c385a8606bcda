// Package model defines the persisted data types for liftsheet: training
// sheets, the exercises attached to them, and the single recorded set and
// progress snapshot each exercise carries.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Sheet is a named training plan.
type Sheet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	Theme     Theme     `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Set is one recorded performance. Nil WeightKg means bodyweight or
// unspecified; nil RestSec means unspecified.
type Set struct {
	Reps     int      `json:"reps"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	RestSec  *float64 `json:"restSec,omitempty"`
}

// Snapshot is the part of a Set that progress tracking compares.
type Snapshot struct {
	Reps     int      `json:"reps"`
	WeightKg *float64 `json:"weightKg,omitempty"`
}

// Progress holds the latest snapshot and the one it replaced.
type Progress struct {
	Last     *Snapshot `json:"last"`
	Previous *Snapshot `json:"previous"`
}

// Exercise is one movement inside a sheet.
type Exercise struct {
	ID           string   `json:"id"`
	SheetID      string   `json:"sheetId"`
	Name         string   `json:"name"`
	TargetMuscle string   `json:"targetMuscle"`
	Sets         []Set    `json:"sets"`
	Order        int      `json:"order"`
	Progress     Progress `json:"progress"`
}

// CurrentSet returns the exercise's working set. Only index 0 is ever
// read or written; ok is false when the exercise has no set at all.
func (e Exercise) CurrentSet() (Set, bool) {
	if len(e.Sets) == 0 {
		return Set{}, false
	}
	return e.Sets[0], true
}

// AppState is the root of everything liftsheet persists.
type AppState struct {
	Sheets    []Sheet    `json:"sheets"`
	Exercises []Exercise `json:"exercises"`
}

// EmptyState returns the canonical empty state. Both collections are
// non-nil so the state serializes as {"sheets":[],"exercises":[]}.
func EmptyState() AppState {
	return AppState{Sheets: []Sheet{}, Exercises: []Exercise{}}
}

// Float returns a pointer to v, for building optional Set fields.
func Float(v float64) *float64 {
	return &v
}

// Validate checks the structural invariants of a set.
func (s Set) Validate() error {
	if s.Reps <= 0 {
		return fmt.Errorf("reps must be positive, got %d", s.Reps)
	}
	if s.WeightKg != nil && *s.WeightKg < 0 {
		return errors.New("weight cannot be negative")
	}
	if s.RestSec != nil && *s.RestSec < 0 {
		return errors.New("rest cannot be negative")
	}
	return nil
}

// Validate checks the invariants of a single exercise.
func (e Exercise) Validate() error {
	if e.ID == "" {
		return errors.New("exercise ID cannot be empty")
	}
	if e.SheetID == "" {
		return fmt.Errorf("exercise %s has no sheet", e.ID)
	}
	if e.Name == "" {
		return fmt.Errorf("exercise %s has an empty name", e.ID)
	}
	for i, s := range e.Sets {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("exercise %s set %d: %w", e.ID, i, err)
		}
	}
	return nil
}
