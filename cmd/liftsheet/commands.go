package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"

	"github.com/vanderheijden86/liftsheet/pkg/export"
	"github.com/vanderheijden86/liftsheet/pkg/prompt"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
	"github.com/vanderheijden86/liftsheet/pkg/ui"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

type command func(a *app, args []string) error

var commands = map[string]command{
	"list":   cmdList,
	"new":    cmdNew,
	"rename": cmdRename,
	"delete": cmdDelete,
	"show":   cmdShow,
	"add":    cmdAdd,
	"edit":   cmdEdit,
	"set":    cmdSet,
	"remove": cmdRemove,
	"export": cmdExport,
	"shell":  cmdShell,
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("liftsheet "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseArgs parses flags that may appear before, between or after
// positional arguments and returns the positionals in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, &usageError{msg: err.Error()}
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func expectArgs(name string, got []string, min, max int) error {
	if len(got) < min || len(got) > max {
		if min == max {
			return usagef("%s expects %d argument(s), got %d", name, min, len(got))
		}
		return usagef("%s expects %d to %d arguments, got %d", name, min, max, len(got))
	}
	return nil
}

// autoConfirm answers every confirmation with yes.
type autoConfirm struct{ prompt.Prompter }

func (autoConfirm) Confirm(string) (bool, error) { return true, nil }

// trackerFor returns the app's tracker, or one that skips confirmations.
func (a *app) trackerFor(yes bool) *tracker.Tracker {
	if !yes {
		return a.tracker
	}
	return tracker.New(a.store, autoConfirm{a.prompt},
		tracker.WithParseOptions(workout.ParseOptions{StrictNumbers: a.cfg.Input.StrictNumbers}),
		tracker.WithLogger(a.log),
	)
}

func (a *app) done(changed bool, msg string) {
	if changed {
		fmt.Fprintln(a.stdout, ui.SuccessStyle.Render(msg))
		return
	}
	fmt.Fprintln(a.stdout, ui.MutedStyle.Render("Cancelled, nothing changed."))
}

func cmdList(a *app, args []string) error {
	pos, err := parseArgs(a.flagSet("list"), args)
	if err != nil {
		return err
	}
	if err := expectArgs("list", pos, 0, 0); err != nil {
		return err
	}
	ui.WriteSheetList(a.stdout, a.tracker.Sheets())
	return nil
}

func cmdNew(a *app, args []string) error {
	pos, err := parseArgs(a.flagSet("new"), args)
	if err != nil {
		return err
	}
	if err := expectArgs("new", pos, 1, 2); err != nil {
		return err
	}
	notes := ""
	if len(pos) == 2 {
		notes = pos[1]
	}
	sheet, err := a.tracker.CreateSheet(pos[0], notes)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s %s (%s)\n", ui.SuccessStyle.Render("Created sheet"), ui.RenderSheetName(sheet), sheet.ID)
	return nil
}

func cmdRename(a *app, args []string) error {
	pos, err := parseArgs(a.flagSet("rename"), args)
	if err != nil {
		return err
	}
	if err := expectArgs("rename", pos, 1, 1); err != nil {
		return err
	}
	id, err := a.tracker.ResolveSheet(pos[0])
	if err != nil {
		return err
	}
	changed, err := a.tracker.RenameSheet(id)
	if err != nil {
		return err
	}
	a.done(changed, "Sheet updated.")
	return nil
}

func cmdDelete(a *app, args []string) error {
	fs := a.flagSet("delete")
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("delete", pos, 1, 1); err != nil {
		return err
	}
	id, err := a.tracker.ResolveSheet(pos[0])
	if err != nil {
		return err
	}
	changed, err := a.trackerFor(*yes).DeleteSheet(id)
	if err != nil {
		return err
	}
	a.done(changed, "Sheet deleted.")
	return nil
}

func cmdShow(a *app, args []string) error {
	fs := a.flagSet("show")
	markdown := fs.Bool("markdown", false, "Render as Markdown")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("show", pos, 1, 1); err != nil {
		return err
	}
	id, err := a.tracker.ResolveSheet(pos[0])
	if err != nil {
		return err
	}
	d, err := a.tracker.Detail(id)
	if err != nil {
		return err
	}
	if *markdown {
		fmt.Fprint(a.stdout, ui.RenderMarkdown(export.SheetMarkdown(d), a.cfg.UI.WordWrap))
		return nil
	}
	ui.WriteSheetDetail(a.stdout, d)
	return nil
}

func cmdAdd(a *app, args []string) error {
	fs := a.flagSet("add")
	var form tracker.ExerciseForm
	fs.StringVar(&form.Name, "name", "", "Exercise name (required)")
	fs.StringVar(&form.TargetMuscle, "muscle", "", "Target muscle")
	fs.StringVar(&form.Reps, "reps", "", "Reps (required, > 0)")
	fs.StringVar(&form.WeightKg, "weight", "", "Weight in kg (empty for bodyweight)")
	fs.StringVar(&form.RestSec, "rest", "", "Rest in seconds")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("add", pos, 1, 1); err != nil {
		return err
	}
	id, err := a.tracker.ResolveSheet(pos[0])
	if err != nil {
		return err
	}
	ex, err := a.tracker.AddExercise(id, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s %s (%s)\n", ui.SuccessStyle.Render("Added exercise"), ex.Name, ex.ID)
	return nil
}

func exerciseCommand(name string, run func(t *tracker.Tracker, id string) (bool, error), msg string) command {
	return func(a *app, args []string) error {
		fs := a.flagSet(name)
		var yes *bool
		if name == "remove" {
			yes = fs.Bool("yes", false, "Do not ask for confirmation")
		}
		pos, err := parseArgs(fs, args)
		if err != nil {
			return err
		}
		if err := expectArgs(name, pos, 1, 1); err != nil {
			return err
		}
		id, err := a.tracker.ResolveExercise(pos[0])
		if err != nil {
			return err
		}
		t := a.tracker
		if yes != nil {
			t = a.trackerFor(*yes)
		}
		changed, err := run(t, id)
		if err != nil {
			return err
		}
		a.done(changed, msg)
		return nil
	}
}

var (
	cmdEdit   = exerciseCommand("edit", (*tracker.Tracker).EditExercise, "Exercise updated.")
	cmdSet    = exerciseCommand("set", (*tracker.Tracker).EditSet, "Set recorded.")
	cmdRemove = exerciseCommand("remove", (*tracker.Tracker).DeleteExercise, "Exercise deleted.")
)

func cmdExport(a *app, args []string) error {
	fs := a.flagSet("export")
	out := fs.String("out", "", "Write one <sheet>.md per sheet into this directory")
	toClipboard := fs.Bool("clipboard", false, "Copy the Markdown to the clipboard")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("export", pos, 0, 1); err != nil {
		return err
	}

	var details []tracker.SheetDetail
	if len(pos) == 1 {
		id, err := a.tracker.ResolveSheet(pos[0])
		if err != nil {
			return err
		}
		d, err := a.tracker.Detail(id)
		if err != nil {
			return err
		}
		details = []tracker.SheetDetail{d}
	} else {
		details = a.tracker.Details()
	}
	return a.exportDetails(details, *out, *toClipboard)
}

func (a *app) exportDetails(details []tracker.SheetDetail, out string, toClipboard bool) error {
	if len(details) == 0 {
		fmt.Fprintln(a.stdout, ui.MutedStyle.Render("Nothing to export."))
		return nil
	}
	md := export.AllMarkdown(details)

	if out != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		paths, err := export.WriteAll(ctx, out, details)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(a.stdout, "Wrote "+p)
		}
	}
	if toClipboard {
		if err := clipboard.WriteAll(md); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(a.stdout, ui.SuccessStyle.Render("Copied to clipboard."))
	}
	if out == "" && !toClipboard {
		fmt.Fprint(a.stdout, ui.RenderMarkdown(md, a.cfg.UI.WordWrap))
	}
	return nil
}
