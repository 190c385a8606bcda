package tracker

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/store"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

// CreateSheet validates name and stores a new sheet.
func (t *Tracker) CreateSheet(name, notes string) (model.Sheet, error) {
	sheet, err := workout.NewSheet(name, notes, t.now())
	if err != nil {
		return model.Sheet{}, err
	}
	t.store.CreateSheet(sheet)
	t.log.WithField("sheet", sheet.ID).Info("sheet created")
	return sheet, nil
}

// RenameSheet asks for a new name and notes. It reports whether anything
// was changed; a cancelled or empty name leaves the sheet alone, and a
// cancelled notes prompt keeps the current notes.
func (t *Tracker) RenameSheet(id string) (bool, error) {
	sheet, err := t.sheet(id)
	if err != nil {
		return false, err
	}
	p, err := t.prompter()
	if err != nil {
		return false, err
	}

	raw, ok, err := p.Text("Sheet name", sheet.Name)
	if err != nil || !ok || raw == "" {
		return false, err
	}
	name, err := workout.NormalizeSheetName(raw)
	if err != nil {
		return false, err
	}

	patch := store.SheetPatch{Name: &name}
	notes, ok, err := p.Text("Notes (optional)", sheet.Notes)
	if err != nil {
		return false, err
	}
	if ok {
		notes = strings.TrimSpace(notes)
		patch.Notes = &notes
	}

	t.store.UpdateSheet(id, patch)
	t.log.WithField("sheet", id).Info("sheet renamed")
	return true, nil
}

// DeleteSheet removes the sheet and its exercises after confirmation.
func (t *Tracker) DeleteSheet(id string) (bool, error) {
	sheet, err := t.sheet(id)
	if err != nil {
		return false, err
	}
	p, err := t.prompter()
	if err != nil {
		return false, err
	}
	yes, err := p.Confirm(fmt.Sprintf("Delete sheet %q and all its exercises?", sheet.Name))
	if err != nil || !yes {
		return false, err
	}
	t.store.DeleteSheet(id)
	t.log.WithField("sheet", id).Info("sheet deleted")
	return true, nil
}
