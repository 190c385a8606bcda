package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/liftsheet/pkg/export"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
)

// Column widths of the sheet list, in cells.
const (
	colID        = 8
	colName      = 28
	colExercises = 9
)

// RenderMarkdown renders md for the terminal when stdout supports styling
// and returns it unchanged otherwise.
func RenderMarkdown(md string, wordWrap int) string {
	if !Styled() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// Strip trailing whitespace/newlines that glamour adds
	return strings.TrimRight(out, " \n\r\t") + "\n"
}

// WriteSheetList prints one row per sheet.
func WriteSheetList(w io.Writer, sheets []tracker.SheetSummary) {
	if len(sheets) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("No sheets yet. Create one with: liftsheet new <name>"))
		return
	}
	fmt.Fprintln(w, HeaderStyle.Render(
		Cell("ID", colID)+"  "+Cell("NAME", colName)+"  "+Cell("EXERCISES", colExercises)+"  UPDATED"))
	for _, s := range sheets {
		sheet := s.Sheet
		sheet.Name = Cell(sheet.Name, colName)
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			MutedStyle.Render(Cell(s.Sheet.ID, colID)),
			RenderSheetName(sheet),
			Cell(fmt.Sprintf("%d", s.Exercises), colExercises),
			FormatTimeRel(s.Sheet.UpdatedAt),
		)
	}
}

// WriteSheetDetail prints a sheet with its exercises and trends.
func WriteSheetDetail(w io.Writer, d tracker.SheetDetail) {
	fmt.Fprintln(w, RenderSheetName(d.Sheet)+"  "+MutedStyle.Render(d.Sheet.ID))
	if d.Sheet.Notes != "" {
		fmt.Fprintln(w, d.Sheet.Notes)
	}
	fmt.Fprintln(w, MutedStyle.Render("Updated "+FormatTimeRel(d.Sheet.UpdatedAt)))
	fmt.Fprintln(w)

	if len(d.Exercises) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("No exercises yet."))
		return
	}
	for _, ev := range d.Exercises {
		ex := ev.Exercise
		title := HeaderStyle.Render(ex.Name)
		if ex.TargetMuscle != "" {
			title += MutedStyle.Render(" · " + ex.TargetMuscle)
		}
		fmt.Fprintf(w, "%s  %s\n", title, MutedStyle.Render(ex.ID))
		fmt.Fprintf(w, "  %s reps  %s  rest %s\n",
			export.RepsText(ev), export.WeightText(ev.Set.WeightKg), export.RestText(ev.Set.RestSec))
		fmt.Fprintf(w, "  weight: %s\n", RenderTrend(ev.Weight, "kg"))
		fmt.Fprintf(w, "  reps:   %s\n", RenderTrend(ev.Reps, ""))
	}
}
