package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Huh prompts through charmbracelet/huh forms.
type Huh struct {
	// Accessible forces huh's plain-text mode. It is also used whenever
	// stdin is not a terminal.
	Accessible bool
}

// NewHuh returns a huh-backed prompter.
func NewHuh(accessible bool) *Huh {
	return &Huh{Accessible: accessible}
}

func (h *Huh) form(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if h.Accessible || !term.IsTerminal(int(os.Stdin.Fd())) {
		form = form.WithAccessible(true)
	}
	return form
}

// run maps huh's abort to a cancellation.
func run(form *huh.Form) (bool, error) {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (h *Huh) Text(title, defaultValue string) (string, bool, error) {
	value := defaultValue
	ok, err := run(h.form(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&value),
	)))
	if !ok || err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (h *Huh) Confirm(message string) (bool, error) {
	var yes bool
	ok, err := run(h.form(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Value(&yes).
			Affirmative("Yes").
			Negative("No"),
	)))
	if !ok || err != nil {
		return false, err
	}
	return yes, nil
}

func (h *Huh) Choose(title string, options []Option) (string, bool, error) {
	if len(options) == 0 {
		return "", false, ErrNoOptions
	}
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Key)
	}
	key := options[0].Key
	ok, err := run(h.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(&key),
	)))
	if !ok || err != nil {
		return "", false, err
	}
	return key, true, nil
}
