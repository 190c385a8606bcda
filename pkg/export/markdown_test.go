package export

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/prompt"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

func detail(name string, exercises ...tracker.ExerciseView) tracker.SheetDetail {
	return tracker.SheetDetail{
		Sheet: model.Sheet{
			ID:        "sheet-" + createSlug(name),
			Name:      name,
			UpdatedAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
		},
		Exercises: exercises,
	}
}

func view(name, muscle string, set model.Set, previous *model.Snapshot) tracker.ExerciseView {
	p := workout.BuildProgress(set, previous)
	return tracker.ExerciseView{
		Exercise: model.Exercise{Name: name, TargetMuscle: muscle, Sets: []model.Set{set}, Progress: p},
		Set:      set,
		HasSet:   true,
		Weight:   workout.WeightTrend(p),
		Reps:     workout.RepsTrend(p),
	}
}

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Push A", "push-a"},
		{"  Legs & Core!! ", "legs-core"},
		{"Full-Body 3x", "full-body-3x"},
		{"***", ""},
	}
	for _, tt := range tests {
		if got := createSlug(tt.input); got != tt.expected {
			t.Errorf("createSlug(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSlugs_Unique(t *testing.T) {
	got := Slugs([]tracker.SheetDetail{detail("Push"), detail("push"), detail("!!!"), detail("Push")})
	want := []string{"push", "push-1", "sheet", "push-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slugs = %q, want %q", got, want)
	}
}

func TestSheetMarkdown(t *testing.T) {
	d := detail("Push A",
		view("Bench | Flat", "Chest", model.Set{Reps: 8, WeightKg: model.Float(65), RestSec: model.Float(90)},
			&model.Snapshot{Reps: 8, WeightKg: model.Float(60)}),
		view("Dips", "", model.Set{Reps: 12}, nil),
	)
	d.Sheet.Notes = "Heavy week"

	md := SheetMarkdown(d)
	for _, want := range []string{
		"# Push A\n",
		"Heavy week\n",
		"*Updated: 2024-06-03*",
		"| Bench \\| Flat | Chest | 8 | 65 kg | 90 s |",
		"| Dips | - | 12 | bodyweight | n/a |",
		"- **Bench | Flat**: weight ▲ +5 kg since last time; reps unchanged",
		"- **Dips**: weight no previous data; reps first recorded value",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestSheetMarkdown_Empty(t *testing.T) {
	md := SheetMarkdown(detail("Rest Day"))
	if !strings.Contains(md, "No exercises yet.") || strings.Contains(md, "| Exercise |") {
		t.Errorf("unexpected markdown for empty sheet:\n%s", md)
	}
}

func TestAllMarkdown(t *testing.T) {
	md := AllMarkdown([]tracker.SheetDetail{detail("Push"), detail("Pull")})
	if strings.Count(md, "\n---\n") != 1 || !strings.Contains(md, "# Push") || !strings.Contains(md, "# Pull") {
		t.Errorf("AllMarkdown:\n%s", md)
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	details := []tracker.SheetDetail{detail("Push"), detail("Pull"), detail("Push")}

	paths, err := WriteAll(context.Background(), dir, details)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "push.md"),
		filepath.Join(dir, "pull.md"),
		filepath.Join(dir, "push-1.md"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %q, want %q", paths, want)
	}
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != SheetMarkdown(details[i]) {
			t.Errorf("%s content mismatch", p)
		}
	}
}

func TestWriteAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := WriteAll(ctx, t.TempDir(), []tracker.SheetDetail{detail("Push")}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestWizard_Run(t *testing.T) {
	sheets := []tracker.SheetSummary{{Sheet: model.Sheet{ID: "abc", Name: "Push"}}}
	script := &prompt.Script{
		Choices:  []prompt.Answer{prompt.Reply("abc")},
		Texts:    []prompt.Answer{prompt.Reply(" /tmp/out ")},
		Confirms: []bool{true},
	}
	res, ok, err := NewWizard(script).Run(sheets)
	if err != nil || !ok {
		t.Fatalf("Run = (%v, %v)", ok, err)
	}
	want := WizardResult{SheetID: "abc", OutputDir: "/tmp/out", Clipboard: true}
	if res != want {
		t.Errorf("result = %+v, want %+v", res, want)
	}
}

func TestWizard_Cancel(t *testing.T) {
	script := &prompt.Script{Choices: []prompt.Answer{prompt.Cancelled}}
	if _, ok, err := NewWizard(script).Run(nil); ok || err != nil {
		t.Errorf("cancelled Run = (%v, %v)", ok, err)
	}
}
