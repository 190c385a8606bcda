package workout

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

func TestNewSheet(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 123456789, time.Local)
	s, err := NewSheet("  Workout A  ", "  legs day ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Workout A" {
		t.Errorf("expected trimmed name, got %q", s.Name)
	}
	if s.Notes != "legs day" {
		t.Errorf("expected trimmed notes, got %q", s.Notes)
	}
	if s.Theme != model.DefaultTheme {
		t.Errorf("expected default theme, got %+v", s.Theme)
	}
	if !s.CreatedAt.Equal(s.UpdatedAt) {
		t.Errorf("expected CreatedAt == UpdatedAt, got %v / %v", s.CreatedAt, s.UpdatedAt)
	}
	if s.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", s.CreatedAt.Location())
	}
	if s.CreatedAt.Nanosecond()%int(time.Millisecond) != 0 {
		t.Errorf("expected millisecond precision, got %d ns", s.CreatedAt.Nanosecond())
	}
	if s.ID == "" {
		t.Error("expected an ID")
	}
}

func TestNewSheet_NameBounds(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"ab", true},
		{"   ab   ", true},
		{"abc", false},
		{strings.Repeat("x", 40), false},
		{strings.Repeat("x", 41), true},
		{"àèì", false},
		{"", true},
	}
	for _, tt := range tests {
		_, err := NewSheet(tt.name, "", now)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewSheet(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		var verr *ValidationError
		if err != nil && !errors.As(err, &verr) {
			t.Errorf("NewSheet(%q): expected ValidationError, got %T", tt.name, err)
		}
	}
}

func TestNewSheet_DistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		s, err := NewSheet("Session", "", time.Now())
		if err != nil {
			t.Fatal(err)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate sheet ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestNewID_FallbackWhenRandomFails(t *testing.T) {
	orig := newRandomUUID
	newRandomUUID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }
	defer func() { newRandomUUID = orig }()

	sid := NewSheetID()
	eid := NewExerciseID()
	if !strings.HasPrefix(sid, "sheet-") {
		t.Errorf("expected sheet- fallback prefix, got %q", sid)
	}
	if !strings.HasPrefix(eid, "exercise-") {
		t.Errorf("expected exercise- fallback prefix, got %q", eid)
	}
	if NewSheetID() == sid {
		t.Error("expected fallback IDs to differ")
	}
}

func TestNewExercise(t *testing.T) {
	set := model.Set{Reps: 10, WeightKg: model.Float(60)}
	ex, err := NewExercise("sheet-1", " Squat ", " quads ", set, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Name != "Squat" || ex.TargetMuscle != "quads" {
		t.Errorf("expected trimmed fields, got %q / %q", ex.Name, ex.TargetMuscle)
	}
	if ex.SheetID != "sheet-1" || ex.Order != 2 {
		t.Errorf("unexpected sheet/order: %s / %d", ex.SheetID, ex.Order)
	}
	if len(ex.Sets) != 1 || ex.Sets[0].Reps != 10 {
		t.Errorf("expected exactly one set, got %+v", ex.Sets)
	}
	if ex.Progress.Last == nil || ex.Progress.Previous != nil {
		t.Errorf("expected first-set progress, got %+v", ex.Progress)
	}
}

func TestNewExercise_EmptyName(t *testing.T) {
	_, err := NewExercise("sheet-1", "   ", "", model.Set{Reps: 1}, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
