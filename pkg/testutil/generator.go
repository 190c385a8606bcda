// Package testutil builds deterministic AppState fixtures for tests.
package testutil

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// GeneratorConfig controls fixture generation.
type GeneratorConfig struct {
	Seed       uint64    // same seed, same state
	BaseTime   time.Time // creation time of the first sheet
	Bodyweight float64   // share of sets with no weight, 0..1
	Previous   float64   // share of exercises with a previous snapshot, 0..1
}

// DefaultConfig returns the config most tests use.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:       42,
		BaseTime:   time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC),
		Bodyweight: 0.2,
		Previous:   0.5,
	}
}

// Generator creates AppState fixtures.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New returns a Generator for cfg.
func New(cfg GeneratorConfig) *Generator {
	if cfg.BaseTime.IsZero() {
		cfg.BaseTime = DefaultConfig().BaseTime
	}
	cfg.BaseTime = cfg.BaseTime.UTC().Truncate(time.Millisecond)
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// NewDefault returns a Generator with DefaultConfig.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

var (
	sheetNames = []string{"Push", "Pull", "Legs", "Upper", "Lower", "Full body"}
	movements  = []struct{ name, muscle string }{
		{"Bench press", "chest"},
		{"Overhead press", "shoulders"},
		{"Barbell row", "back"},
		{"Pull-up", "lats"},
		{"Squat", "quads"},
		{"Romanian deadlift", "hamstrings"},
		{"Calf raise", "calves"},
		{"Plank", ""},
	}
	colors = []string{"blue", "red", "green", "orange", "purple"}
)

// Sheet returns the i-th sheet of a fixture.
func (g *Generator) Sheet(i int) model.Sheet {
	created := g.cfg.BaseTime.Add(time.Duration(i) * 24 * time.Hour)
	return model.Sheet{
		ID:        fmt.Sprintf("sheet-%04d", i),
		Name:      fmt.Sprintf("%s %d", sheetNames[i%len(sheetNames)], i/len(sheetNames)+1),
		Notes:     g.notes(i),
		Theme:     model.Theme{Mode: "light", Color: colors[g.rng.IntN(len(colors))]},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Duration(g.rng.IntN(600)) * time.Minute),
	}
}

func (g *Generator) notes(i int) string {
	if i%3 == 0 {
		return ""
	}
	return fmt.Sprintf("Week %d, deload on Friday", i+1)
}

// Exercise returns the j-th exercise of sheet.
func (g *Generator) Exercise(sheet model.Sheet, j int) model.Exercise {
	mv := movements[g.rng.IntN(len(movements))]
	set := model.Set{Reps: 3 + g.rng.IntN(13), RestSec: model.Float(float64(30 * (1 + g.rng.IntN(6))))}
	if g.rng.Float64() >= g.cfg.Bodyweight {
		set.WeightKg = model.Float(g.weight())
	}
	progress := model.Progress{Last: &model.Snapshot{Reps: set.Reps, WeightKg: set.WeightKg}}
	if g.rng.Float64() < g.cfg.Previous {
		progress.Previous = &model.Snapshot{Reps: 3 + g.rng.IntN(13)}
		if set.WeightKg != nil {
			progress.Previous.WeightKg = model.Float(g.weight())
		}
	}
	return model.Exercise{
		ID:           fmt.Sprintf("exercise-%s-%02d", sheet.ID[len("sheet-"):], j),
		SheetID:      sheet.ID,
		Name:         mv.name,
		TargetMuscle: mv.muscle,
		Sets:         []model.Set{set},
		Order:        j,
		Progress:     progress,
	}
}

// weight is a plate-loadable value in 1.25 kg steps.
func (g *Generator) weight() float64 {
	return float64(8+g.rng.IntN(120)) * 1.25
}

// State returns sheets sheets with perSheet exercises each, exercises
// ordered sheet by sheet.
func (g *Generator) State(sheets, perSheet int) model.AppState {
	state := model.EmptyState()
	for i := 0; i < sheets; i++ {
		sh := g.Sheet(i)
		state.Sheets = append(state.Sheets, sh)
		for j := 0; j < perSheet; j++ {
			state.Exercises = append(state.Exercises, g.Exercise(sh, j))
		}
	}
	return state
}
