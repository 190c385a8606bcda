// Package export renders sheets as Markdown and writes them to disk.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vanderheijden86/liftsheet/pkg/metrics"
	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

var slugNonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// SheetMarkdown renders one sheet: heading, notes, last update, a table of
// its exercises and a progress section.
func SheetMarkdown(d tracker.SheetDetail) string {
	defer metrics.Timer(metrics.MarkdownRender)()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", d.Sheet.Name))
	if d.Sheet.Notes != "" {
		sb.WriteString(d.Sheet.Notes + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("*Updated: %s*\n\n", d.Sheet.UpdatedAt.Format("2006-01-02")))

	if len(d.Exercises) == 0 {
		sb.WriteString("No exercises yet.\n")
		return sb.String()
	}

	sb.WriteString("| Exercise | Muscle | Reps | Weight | Rest |\n")
	sb.WriteString("|----------|--------|------|--------|------|\n")
	for _, ev := range d.Exercises {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapeCell(ev.Exercise.Name),
			escapeCell(orDash(ev.Exercise.TargetMuscle)),
			RepsText(ev),
			WeightText(ev.Set.WeightKg),
			RestText(ev.Set.RestSec),
		))
	}

	sb.WriteString("\n## Progress\n\n")
	for _, ev := range d.Exercises {
		sb.WriteString(fmt.Sprintf("- **%s**: weight %s; reps %s\n",
			ev.Exercise.Name,
			ev.Weight.Describe("kg"),
			ev.Reps.Describe(""),
		))
	}
	return sb.String()
}

// AllMarkdown renders every sheet into one document.
func AllMarkdown(details []tracker.SheetDetail) string {
	parts := make([]string, len(details))
	for i, d := range details {
		parts[i] = SheetMarkdown(d)
	}
	return strings.Join(parts, "\n---\n\n")
}

// RepsText is the reps cell of an exercise.
func RepsText(ev tracker.ExerciseView) string {
	if !ev.HasSet {
		return "-"
	}
	return fmt.Sprintf("%d", ev.Set.Reps)
}

// WeightText renders an optional weight; absent means bodyweight.
func WeightText(kg *float64) string {
	if kg == nil {
		return "bodyweight"
	}
	return workout.FormatNumber(*kg) + " kg"
}

// RestText renders an optional rest period.
func RestText(sec *float64) string {
	if sec == nil {
		return "n/a"
	}
	return workout.FormatNumber(*sec) + " s"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// Slugs returns a unique file-name slug for each sheet, in order.
func Slugs(details []tracker.SheetDetail) []string {
	counts := make(map[string]int, len(details))
	out := make([]string, len(details))
	for i, d := range details {
		out[i] = uniqueSlug(createSlug(d.Sheet.Name), counts)
	}
	return out
}

func uniqueSlug(base string, counts map[string]int) string {
	if base == "" {
		base = "sheet"
	}
	if count, ok := counts[base]; ok {
		count++
		counts[base] = count
		return fmt.Sprintf("%s-%d", base, count)
	}
	counts[base] = 0
	return base
}

// createSlug lowercases text and collapses everything that is not a-z or
// 0-9 into single hyphens.
func createSlug(text string) string {
	slug := strings.ToLower(text)
	slug = slugNonAlphanumericRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// sheetTitle is used in prompts and log lines.
func sheetTitle(s model.Sheet) string {
	return fmt.Sprintf("%s (%s)", s.Name, shortID(s.ID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
