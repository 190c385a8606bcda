package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vanderheijden86/liftsheet/pkg/prompt"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
)

// All selects every sheet in a wizard run.
const All = "all"

// WizardResult is what the export wizard collected.
type WizardResult struct {
	// SheetID is a sheet ID or All.
	SheetID   string
	OutputDir string
	Clipboard bool
}

// Wizard asks which sheets to export and where to put them.
type Wizard struct {
	p prompt.Interactive
}

// NewWizard creates an export wizard.
func NewWizard(p prompt.Interactive) *Wizard {
	return &Wizard{p: p}
}

// DefaultOutputDir is offered when the wizard asks for a directory.
func DefaultOutputDir() string {
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "liftsheet-export")
	}
	return "liftsheet-export"
}

// Run collects the export options. ok is false when the user cancelled.
func (w *Wizard) Run(sheets []tracker.SheetSummary) (WizardResult, bool, error) {
	options := make([]prompt.Option, 0, len(sheets)+1)
	options = append(options, prompt.Option{Key: All, Label: "All sheets"})
	for _, s := range sheets {
		options = append(options, prompt.Option{Key: s.Sheet.ID, Label: sheetTitle(s.Sheet)})
	}

	var res WizardResult
	key, ok, err := w.p.Choose("Export which sheets?", options)
	if err != nil || !ok {
		return res, false, err
	}
	res.SheetID = key

	dir, ok, err := w.p.Text("Output directory", DefaultOutputDir())
	if err != nil || !ok {
		return res, false, err
	}
	res.OutputDir = strings.TrimSpace(dir)
	if res.OutputDir == "" {
		res.OutputDir = DefaultOutputDir()
	}

	res.Clipboard, err = w.p.Confirm("Also copy the Markdown to the clipboard?")
	if err != nil {
		return res, false, err
	}
	return res, true, nil
}
