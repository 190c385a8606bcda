package testutil

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// AssertValidState checks that IDs are unique, every exercise belongs to
// an existing sheet and passes validation, and no sheet was updated
// before it was created.
func AssertValidState(t testing.TB, state model.AppState) {
	t.Helper()
	sheets := make(map[string]bool, len(state.Sheets))
	for _, s := range state.Sheets {
		if sheets[s.ID] {
			t.Errorf("duplicate sheet ID %s", s.ID)
		}
		sheets[s.ID] = true
		if s.UpdatedAt.Before(s.CreatedAt) {
			t.Errorf("sheet %s updated %v before created %v", s.ID, s.UpdatedAt, s.CreatedAt)
		}
	}
	exercises := make(map[string]bool, len(state.Exercises))
	for _, e := range state.Exercises {
		if exercises[e.ID] {
			t.Errorf("duplicate exercise ID %s", e.ID)
		}
		exercises[e.ID] = true
		if !sheets[e.SheetID] {
			t.Errorf("exercise %s references missing sheet %s", e.ID, e.SheetID)
		}
		if err := e.Validate(); err != nil {
			t.Error(err)
		}
	}
}

// AssertStatesEqual fails with both states as JSON when they differ.
func AssertStatesEqual(t testing.TB, got, want model.AppState) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		return
	}
	g, _ := json.MarshalIndent(got, "", "  ")
	w, _ := json.MarshalIndent(want, "", "  ")
	t.Errorf("states differ\n got: %s\nwant: %s", g, w)
}
