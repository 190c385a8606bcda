package workout

import (
	"math"
	"strconv"
	"strings"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// ParseOptions controls how optional numeric fields are read.
type ParseOptions struct {
	// StrictNumbers rejects non-numeric weight/rest input instead of
	// treating it as absent.
	StrictNumbers bool
}

// ParseSet converts raw form input into a Set using the lenient policy:
// blank and non-numeric weight/rest both mean "unspecified".
func ParseSet(reps, weightKg, restSec string) (model.Set, error) {
	return ParseSetWith(ParseOptions{}, reps, weightKg, restSec)
}

// ParseSetWith is ParseSet with explicit options.
func ParseSetWith(opts ParseOptions, reps, weightKg, restSec string) (model.Set, error) {
	n, tooLarge, ok := leadingInt(reps)
	if tooLarge {
		return model.Set{}, invalid("reps", "reps too large")
	}
	if !ok || n <= 0 {
		return model.Set{}, invalid("reps", "reps must be positive")
	}

	weight, err := optionalNumber(opts, "weight", weightKg)
	if err != nil {
		return model.Set{}, err
	}
	if weight != nil && *weight < 0 {
		return model.Set{}, invalid("weight", "weight cannot be negative")
	}

	rest, err := optionalNumber(opts, "rest", restSec)
	if err != nil {
		return model.Set{}, err
	}
	if rest != nil && *rest < 0 {
		return model.Set{}, invalid("rest", "rest cannot be negative")
	}

	return model.Set{Reps: n, WeightKg: weight, RestSec: rest}, nil
}

// optionalNumber returns nil for blank input. Unparseable or non-finite
// input is nil too, unless opts.StrictNumbers is set.
func optionalNumber(opts ParseOptions, field, raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		if opts.StrictNumbers {
			return nil, invalid(field, "%s must be a number", field)
		}
		return nil, nil
	}
	return &v, nil
}

// leadingInt reads an optionally signed run of decimal digits at the start
// of s, ignoring leading whitespace and anything after the digits. "8.5"
// reads as 8 and "12 reps" as 12. tooLarge reports positive digits beyond
// the int range.
func leadingInt(s string) (n int, tooLarge, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s[0] != '-', false
	}
	return n, false, true
}
