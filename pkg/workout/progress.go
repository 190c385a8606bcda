package workout

import (
	"math"
	"strconv"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// BuildProgress records set as the latest snapshot. previous is passed
// through untouched; callers hand in the exercise's prior Last before
// overwriting it.
func BuildProgress(set model.Set, previous *model.Snapshot) model.Progress {
	return model.Progress{
		Last: &model.Snapshot{
			Reps:     set.Reps,
			WeightKg: set.Clone().WeightKg,
		},
		Previous: previous,
	}
}

// NextProgress is the progress an exercise gets when set replaces its
// current one.
func NextProgress(ex model.Exercise, set model.Set) model.Progress {
	return BuildProgress(set, ex.Progress.Last.Clone())
}

// TrendKind classifies a last-versus-previous comparison.
type TrendKind int

const (
	TrendNoData TrendKind = iota
	TrendFirst
	TrendIncrease
	TrendDecrease
	TrendUnchanged
)

func (k TrendKind) String() string {
	switch k {
	case TrendFirst:
		return "first"
	case TrendIncrease:
		return "increase"
	case TrendDecrease:
		return "decrease"
	case TrendUnchanged:
		return "unchanged"
	default:
		return "no_data"
	}
}

// Trend is a classified comparison. Delta is last minus previous and is
// only meaningful for TrendIncrease and TrendDecrease.
type Trend struct {
	Kind  TrendKind
	Delta float64
}

func classify(delta float64) Trend {
	switch {
	case delta > 0:
		return Trend{Kind: TrendIncrease, Delta: delta}
	case delta < 0:
		return Trend{Kind: TrendDecrease, Delta: delta}
	default:
		return Trend{Kind: TrendUnchanged}
	}
}

// WeightTrend compares the last and previous weights.
func WeightTrend(p model.Progress) Trend {
	if p.Last == nil || p.Last.WeightKg == nil {
		return Trend{Kind: TrendNoData}
	}
	if p.Previous == nil || p.Previous.WeightKg == nil {
		return Trend{Kind: TrendFirst}
	}
	return classify(*p.Last.WeightKg - *p.Previous.WeightKg)
}

// RepsTrend compares the last and previous rep counts.
func RepsTrend(p model.Progress) Trend {
	if p.Last == nil {
		return Trend{Kind: TrendNoData}
	}
	if p.Previous == nil {
		return Trend{Kind: TrendFirst}
	}
	return classify(float64(p.Last.Reps - p.Previous.Reps))
}

// Describe renders the trend as the short sentence shown under an
// exercise. unit is appended to the magnitude when non-empty.
func (t Trend) Describe(unit string) string {
	switch t.Kind {
	case TrendIncrease:
		return "▲ +" + FormatNumber(t.Delta) + suffix(unit) + " since last time"
	case TrendDecrease:
		return "▼ " + FormatNumber(t.Delta) + suffix(unit) + " since last time"
	case TrendUnchanged:
		return "unchanged"
	case TrendFirst:
		return "first recorded value"
	default:
		return "no previous data"
	}
}

func suffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}

// FormatNumber prints v with at most two decimals and no trailing zeros,
// which hides float noise like 5.299999999.
func FormatNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalizes -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
