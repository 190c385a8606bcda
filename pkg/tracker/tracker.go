// Package tracker implements liftsheet's user-facing actions on top of the
// store: it validates raw input, asks follow-up questions through a
// Prompter, applies the mutation and keeps the owning sheet's UpdatedAt
// current.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/prompt"
	"github.com/vanderheijden86/liftsheet/pkg/store"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

var (
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrAmbiguousRef     = errors.New("reference matches more than one item")
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithParseOptions sets how numeric input is parsed.
func WithParseOptions(opts workout.ParseOptions) Option {
	return func(t *Tracker) { t.parse = opts }
}

// WithClock replaces time.Now for new sheets.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger for user actions.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) { t.log = log }
}

// Tracker runs sheet and exercise actions against a store.
type Tracker struct {
	store  *store.Store
	prompt prompt.Prompter
	parse  workout.ParseOptions
	now    func() time.Time
	log    logrus.FieldLogger
}

// New creates a tracker. p may be nil when only non-interactive actions
// are used.
func New(s *store.Store, p prompt.Prompter, opts ...Option) *Tracker {
	t := &Tracker{
		store:  s,
		prompt: p,
		now:    time.Now,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Store returns the underlying store.
func (t *Tracker) Store() *store.Store {
	return t.store
}

func (t *Tracker) prompter() (prompt.Prompter, error) {
	if t.prompt == nil {
		return nil, errors.New("this action needs an interactive prompt")
	}
	return t.prompt, nil
}

func (t *Tracker) sheet(id string) (model.Sheet, error) {
	sh, ok := t.store.Sheet(id)
	if !ok {
		return model.Sheet{}, fmt.Errorf("%w: %s", ErrSheetNotFound, id)
	}
	return sh, nil
}

func (t *Tracker) exercise(id string) (model.Exercise, error) {
	ex, ok := t.store.Exercise(id)
	if !ok {
		return model.Exercise{}, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	return ex, nil
}

// ResolveSheet maps a full sheet ID or a unique ID prefix to the sheet ID.
func (t *Tracker) ResolveSheet(ref string) (string, error) {
	st := t.store.State()
	ids := make([]string, len(st.Sheets))
	for i, s := range st.Sheets {
		ids[i] = s.ID
	}
	id, err := resolve(ref, ids)
	if errors.Is(err, errNoMatch) {
		return "", fmt.Errorf("%w: %s", ErrSheetNotFound, ref)
	}
	return id, err
}

// ResolveExercise maps a full exercise ID or a unique ID prefix to the
// exercise ID.
func (t *Tracker) ResolveExercise(ref string) (string, error) {
	st := t.store.State()
	ids := make([]string, len(st.Exercises))
	for i, e := range st.Exercises {
		ids[i] = e.ID
	}
	id, err := resolve(ref, ids)
	if errors.Is(err, errNoMatch) {
		return "", fmt.Errorf("%w: %s", ErrExerciseNotFound, ref)
	}
	return id, err
}

var errNoMatch = errors.New("no match")

func resolve(ref string, ids []string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errNoMatch
	}
	var match string
	matches := 0
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			match = id
			matches++
		}
	}
	switch matches {
	case 0:
		return "", errNoMatch
	case 1:
		return match, nil
	default:
		return "", fmt.Errorf("%w: %q (%d matches)", ErrAmbiguousRef, ref, matches)
	}
}
