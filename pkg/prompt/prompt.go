// Package prompt is liftsheet's interaction capability: asking the user for
// a line of text with a default, for a yes/no confirmation, or to pick one
// of a few options. Callers treat a cancelled prompt as "change nothing".
package prompt

import "errors"

// Prompter asks for text and confirmations.
type Prompter interface {
	// Text asks for a value, offering defaultValue. ok is false when the
	// user cancelled.
	Text(title, defaultValue string) (value string, ok bool, err error)
	// Confirm asks a yes/no question. Cancelling counts as no.
	Confirm(message string) (bool, error)
}

// Option is one entry of a menu.
type Option struct {
	Key   string
	Label string
}

// Chooser asks the user to pick one option. ok is false when the user
// cancelled.
type Chooser interface {
	Choose(title string, options []Option) (key string, ok bool, err error)
}

// Interactive is what the shell needs from a front end.
type Interactive interface {
	Prompter
	Chooser
}

// ErrNoOptions is returned by Choose when there is nothing to pick.
var ErrNoOptions = errors.New("no options to choose from")
