package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vanderheijden86/liftsheet/internal/datasource"
	"github.com/vanderheijden86/liftsheet/pkg/config"
	"github.com/vanderheijden86/liftsheet/pkg/export"
	"github.com/vanderheijden86/liftsheet/pkg/prompt"
	"github.com/vanderheijden86/liftsheet/pkg/storage"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
	"github.com/vanderheijden86/liftsheet/pkg/ui"
	"github.com/vanderheijden86/liftsheet/pkg/watcher"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

var shellMenu = []prompt.Option{
	{Key: "list", Label: "List sheets"},
	{Key: "show", Label: "Show a sheet"},
	{Key: "new", Label: "New sheet"},
	{Key: "rename", Label: "Rename a sheet"},
	{Key: "delete", Label: "Delete a sheet"},
	{Key: "add", Label: "Add an exercise"},
	{Key: "edit", Label: "Edit an exercise"},
	{Key: "set", Label: "Record a set"},
	{Key: "remove", Label: "Delete an exercise"},
	{Key: "export", Label: "Export Markdown"},
	{Key: "quit", Label: "Quit"},
}

func cmdShell(a *app, args []string) error {
	pos, err := parseArgs(a.flagSet("shell"), args)
	if err != nil {
		return err
	}
	if err := expectArgs("shell", pos, 0, 0); err != nil {
		return err
	}

	stop := a.watchDataFile()
	defer stop()

	for {
		key, ok, err := a.prompt.Choose("What do you want to do?", shellMenu)
		if err != nil {
			return err
		}
		if !ok || key == "quit" {
			return nil
		}
		if err := a.shellAction(key); err != nil {
			if !isUserError(err) {
				return err
			}
			fmt.Fprintln(a.stdout, ui.ErrorStyle.Render(err.Error()))
		}
		// Each action is persisted before the next menu.
		a.store.Flush()
	}
}

// isUserError reports errors the shell shows and recovers from.
func isUserError(err error) bool {
	var ve *workout.ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, tracker.ErrSheetNotFound) ||
		errors.Is(err, tracker.ErrExerciseNotFound) ||
		errors.Is(err, tracker.ErrAmbiguousRef)
}

func (a *app) shellAction(key string) error {
	t := a.tracker
	switch key {
	case "list":
		ui.WriteSheetList(a.stdout, t.Sheets())
	case "show":
		id, ok, err := a.pickSheet()
		if err != nil || !ok {
			return err
		}
		d, err := t.Detail(id)
		if err != nil {
			return err
		}
		ui.WriteSheetDetail(a.stdout, d)
	case "new":
		return a.shellNewSheet()
	case "rename":
		return a.onSheet(t.RenameSheet, "Sheet updated.")
	case "delete":
		return a.onSheet(t.DeleteSheet, "Sheet deleted.")
	case "add":
		return a.shellAddExercise()
	case "edit":
		return a.onExercise(t.EditExercise, "Exercise updated.")
	case "set":
		return a.onExercise(t.EditSet, "Set recorded.")
	case "remove":
		return a.onExercise(t.DeleteExercise, "Exercise deleted.")
	case "export":
		res, ok, err := export.NewWizard(a.prompt).Run(t.Sheets())
		if err != nil || !ok {
			return err
		}
		details := t.Details()
		if res.SheetID != export.All {
			d, err := t.Detail(res.SheetID)
			if err != nil {
				return err
			}
			details = []tracker.SheetDetail{d}
		}
		return a.exportDetails(details, res.OutputDir, res.Clipboard)
	}
	return nil
}

func (a *app) onSheet(fn func(id string) (bool, error), msg string) error {
	id, ok, err := a.pickSheet()
	if err != nil || !ok {
		return err
	}
	changed, err := fn(id)
	if err != nil {
		return err
	}
	a.done(changed, msg)
	return nil
}

func (a *app) onExercise(fn func(id string) (bool, error), msg string) error {
	id, ok, err := a.pickExercise()
	if err != nil || !ok {
		return err
	}
	changed, err := fn(id)
	if err != nil {
		return err
	}
	a.done(changed, msg)
	return nil
}

func (a *app) pickSheet() (string, bool, error) {
	sheets := a.tracker.Sheets()
	if len(sheets) == 0 {
		fmt.Fprintln(a.stdout, ui.MutedStyle.Render("No sheets yet."))
		return "", false, nil
	}
	options := make([]prompt.Option, len(sheets))
	for i, s := range sheets {
		options[i] = prompt.Option{Key: s.Sheet.ID, Label: fmt.Sprintf("%s (%d exercises)", s.Sheet.Name, s.Exercises)}
	}
	return a.prompt.Choose("Which sheet?", options)
}

func (a *app) pickExercise() (string, bool, error) {
	sheetID, ok, err := a.pickSheet()
	if err != nil || !ok {
		return "", false, err
	}
	exercises := a.store.ExercisesFor(sheetID)
	if len(exercises) == 0 {
		fmt.Fprintln(a.stdout, ui.MutedStyle.Render("This sheet has no exercises."))
		return "", false, nil
	}
	options := make([]prompt.Option, len(exercises))
	for i, e := range exercises {
		options[i] = prompt.Option{Key: e.ID, Label: e.Name}
	}
	return a.prompt.Choose("Which exercise?", options)
}

// shellNewSheet keeps asking until the name is valid or the user cancels.
func (a *app) shellNewSheet() error {
	name, notes := "", ""
	for {
		var ok bool
		var err error
		if name, ok, err = a.prompt.Text("Sheet name", name); err != nil || !ok {
			return err
		}
		if notes, ok, err = a.prompt.Text("Notes (optional)", notes); err != nil || !ok {
			return err
		}
		sheet, err := a.tracker.CreateSheet(name, notes)
		if err == nil {
			fmt.Fprintf(a.stdout, "%s %s\n", ui.SuccessStyle.Render("Created sheet"), ui.RenderSheetName(sheet))
			return nil
		}
		if !isUserError(err) {
			return err
		}
		fmt.Fprintln(a.stdout, ui.ErrorStyle.Render(err.Error()))
	}
}

// shellAddExercise asks for every field, re-asking with the previous
// answers as defaults after a validation error.
func (a *app) shellAddExercise() error {
	sheetID, ok, err := a.pickSheet()
	if err != nil || !ok {
		return err
	}
	var form tracker.ExerciseForm
	fields := []struct {
		title string
		value *string
	}{
		{"Exercise name", &form.Name},
		{"Target muscle (optional)", &form.TargetMuscle},
		{"Reps", &form.Reps},
		{"Weight (kg, optional)", &form.WeightKg},
		{"Rest (sec, optional)", &form.RestSec},
	}
	for {
		for _, f := range fields {
			v, ok, err := a.prompt.Text(f.title, *f.value)
			if err != nil || !ok {
				return err
			}
			*f.value = v
		}
		ex, err := a.tracker.AddExercise(sheetID, form)
		if err == nil {
			fmt.Fprintf(a.stdout, "%s %s\n", ui.SuccessStyle.Render("Added exercise"), ex.Name)
			return nil
		}
		if !isUserError(err) {
			return err
		}
		fmt.Fprintln(a.stdout, ui.ErrorStyle.Render(err.Error()))
	}
}

// watchDataFile reloads the store when another process rewrites the data
// file. Only the file driver has a file worth watching.
func (a *app) watchDataFile() (stop func()) {
	loc, ok := a.backend.(datasource.Locator)
	if !ok || a.cfg.Storage.Driver != config.DriverFile {
		return func() {}
	}
	w := watcher.NewDataFile(loc, storage.StorageKey, a.adapter, a.store,
		watcher.WithSettle(a.cfg.Debounce()),
		watcher.WithPollInterval(a.cfg.WatchPoll()),
		watcher.WithForcePoll(a.cfg.Persistence.ForcePoll),
		watcher.WithLogger(a.log),
	)
	if err := w.Start(); err != nil {
		a.log.WithError(err).Warn("cannot watch data file")
		return func() {}
	}
	a.log.WithFields(logrus.Fields{"path": w.Path(), "polling": w.Polling()}).Debug("watching data file")
	return func() {
		w.Stop()
		a.log.WithFields(logrus.Fields{
			"reloads": w.Reloads(),
			"skipped": w.Skipped(),
		}).Debug("stopped watching data file")
	}
}
