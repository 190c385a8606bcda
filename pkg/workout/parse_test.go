package workout

import (
	"errors"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func floatEq(p *float64, want float64) bool {
	return p != nil && *p == want
}

func TestParseSet_Valid(t *testing.T) {
	s, err := ParseSet("10", "50", "90")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Reps != 10 || !floatEq(s.WeightKg, 50) || !floatEq(s.RestSec, 90) {
		t.Errorf("expected {10 50 90}, got %+v", s)
	}
}

func TestParseSet_BlankOptionalFieldsAreAbsent(t *testing.T) {
	s, err := ParseSet("8", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Reps != 8 {
		t.Errorf("expected 8 reps, got %d", s.Reps)
	}
	if s.WeightKg != nil {
		t.Errorf("expected absent weight, got %v", *s.WeightKg)
	}
	if s.RestSec != nil {
		t.Errorf("expected absent rest, got %v", *s.RestSec)
	}
}

func TestParseSet_Errors(t *testing.T) {
	tests := []struct {
		name               string
		reps, weight, rest string
		wantField, wantMsg string
	}{
		{"zero reps", "0", "50", "90", "reps", "reps must be positive"},
		{"negative reps", "-3", "", "", "reps", "reps must be positive"},
		{"empty reps", "", "", "", "reps", "reps must be positive"},
		{"garbage reps", "abc", "", "", "reps", "reps must be positive"},
		{"reps beyond int range", "99999999999999999999", "", "", "reps", "reps too large"},
		{"signed reps beyond int range", " +99999999999999999999x", "", "", "reps", "reps too large"},
		{"negative reps beyond int range", "-99999999999999999999", "", "", "reps", "reps must be positive"},
		{"negative weight", "8", "-5", "", "weight", "weight cannot be negative"},
		{"negative rest", "8", "20", "-1", "rest", "rest cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSet(tt.reps, tt.weight, tt.rest)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, verr.Error())
			}
		})
	}
}

func TestParseSet_RepsUseLeadingInteger(t *testing.T) {
	tests := map[string]int{
		"8.5":     8,
		" 12":     12,
		"12 reps": 12,
		"+7":      7,
	}
	for in, want := range tests {
		s, err := ParseSet(in, "", "")
		if err != nil {
			t.Errorf("ParseSet(%q): unexpected error %v", in, err)
			continue
		}
		if s.Reps != want {
			t.Errorf("ParseSet(%q): expected %d reps, got %d", in, want, s.Reps)
		}
	}
}

func TestParseSet_NonNumericOptionalIsAbsent(t *testing.T) {
	s, err := ParseSet("5", "heavy", "NaN")
	if err != nil {
		t.Fatalf("lenient policy should not error, got %v", err)
	}
	if s.WeightKg != nil || s.RestSec != nil {
		t.Errorf("expected absent weight and rest, got %+v", s)
	}
}

func TestParseSetWith_StrictNumbers(t *testing.T) {
	opts := ParseOptions{StrictNumbers: true}

	_, err := ParseSetWith(opts, "5", "heavy", "")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "weight" {
		t.Fatalf("expected weight ValidationError, got %v", err)
	}

	_, err = ParseSetWith(opts, "5", "", "soon")
	if !errors.As(err, &verr) || verr.Field != "rest" {
		t.Fatalf("expected rest ValidationError, got %v", err)
	}

	s, err := ParseSetWith(opts, "5", "", "")
	if err != nil {
		t.Fatalf("blank is still absent in strict mode, got %v", err)
	}
	if s.WeightKg != nil || s.RestSec != nil {
		t.Errorf("expected absent fields, got %+v", s)
	}
}

func TestParseSet_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reps := rapid.IntRange(1, 1000).Draw(t, "reps")
		weight := rapid.Float64Range(0, 500).Draw(t, "weight")
		rest := rapid.IntRange(0, 600).Draw(t, "rest")

		rawWeight := strconv.FormatFloat(weight, 'f', -1, 64)
		s, err := ParseSet(strconv.Itoa(reps), rawWeight, strconv.Itoa(rest))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Reps != reps {
			t.Fatalf("expected %d reps, got %d", reps, s.Reps)
		}
		if !floatEq(s.WeightKg, weight) {
			t.Fatalf("expected weight %v, got %v", weight, s.WeightKg)
		}
		if !floatEq(s.RestSec, float64(rest)) {
			t.Fatalf("expected rest %d, got %v", rest, s.RestSec)
		}
	})
}

func TestParseSet_NegativeWeightAlwaysRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weight := rapid.Float64Range(-1000, -0.001).Draw(t, "weight")
		_, err := ParseSet("5", strconv.FormatFloat(weight, 'f', -1, 64), "")
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "weight" {
			t.Fatalf("expected weight ValidationError for %v, got %v", weight, err)
		}
	})
}
