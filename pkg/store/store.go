// Package store owns the canonical AppState. Every mutation is applied as
// a pure transition and followed by a debounced write-back through a
// Persister, so bursts of edits reach storage as a single save.
package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vanderheijden86/liftsheet/pkg/debug"
	"github.com/vanderheijden86/liftsheet/pkg/metrics"
	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/watcher"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

// Persister loads the initial state and saves snapshots of it.
// *storage.Adapter satisfies it.
type Persister interface {
	Load() model.AppState
	Save(model.AppState)
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce sets the quiet period before a write-back.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithClock replaces time.Now for UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for write-back events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// Store is safe for use from one logical actor plus the timer goroutine
// that performs write-back.
type Store struct {
	persister Persister
	debounce  time.Duration
	now       func() time.Time
	log       logrus.FieldLogger
	debouncer *watcher.Debouncer

	// saveMu serializes snapshot+save so an older snapshot can never
	// overwrite a newer one.
	saveMu sync.Mutex

	mu      sync.Mutex
	state   model.AppState
	dirty   bool
	closed  bool
	subs    map[int]func(model.AppState)
	nextSub int
}

// New creates a store seeded from p.Load(). p may be nil for a store that
// never persists.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		debounce:  watcher.DefaultDebounceDuration,
		now:       time.Now,
		log:       logrus.StandardLogger(),
		subs:      make(map[int]func(model.AppState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.debouncer = watcher.NewDebouncer(s.debounce)

	if p != nil {
		s.state = p.Load().Clone()
	} else {
		s.state = model.EmptyState()
	}
	return s
}

// apply runs a transition under the lock. When the state changed it marks
// the store dirty, restarts the write-back window and notifies
// subscribers.
func (s *Store) apply(op string, fn func(model.AppState) (model.AppState, bool, bool)) bool {
	s.mu.Lock()
	next, found, changed := fn(s.state)
	if !found {
		s.mu.Unlock()
		debug.Log("store: %s: target not found", op)
		return false
	}
	if !changed {
		s.mu.Unlock()
		return true
	}
	s.state = next
	s.dirty = true
	if !s.closed {
		s.debouncer.Trigger(s.writeBack)
	}
	subs := s.subscribers()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return true
}

func (s *Store) subscribers() []func(model.AppState) {
	out := make([]func(model.AppState), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func (s *Store) stamp() time.Time {
	return workout.Timestamp(s.now())
}

// CreateSheet appends sheet.
func (s *Store) CreateSheet(sheet model.Sheet) {
	s.apply("CreateSheet", func(st model.AppState) (model.AppState, bool, bool) {
		return createSheet(st, sheet), true, true
	})
}

// UpdateSheet merges patch into sheet id and advances its UpdatedAt. It
// returns false and changes nothing when id is unknown.
func (s *Store) UpdateSheet(id string, patch SheetPatch) bool {
	now := s.stamp()
	return s.apply("UpdateSheet "+id, func(st model.AppState) (model.AppState, bool, bool) {
		return updateSheet(st, id, patch, now)
	})
}

// TouchSheet advances the UpdatedAt of sheet id.
func (s *Store) TouchSheet(id string) bool {
	return s.UpdateSheet(id, SheetPatch{})
}

// DeleteSheet removes sheet id and all of its exercises in one step.
func (s *Store) DeleteSheet(id string) bool {
	return s.apply("DeleteSheet "+id, func(st model.AppState) (model.AppState, bool, bool) {
		next, ok := deleteSheet(st, id)
		return next, ok, ok
	})
}

// CreateExercise appends ex. An exercise whose sheet does not exist is
// refused so that every exercise keeps a live owner.
func (s *Store) CreateExercise(ex model.Exercise) bool {
	return s.apply("CreateExercise for sheet "+ex.SheetID, func(st model.AppState) (model.AppState, bool, bool) {
		if sheetIndex(st, ex.SheetID) < 0 {
			return st, false, false
		}
		return createExercise(st, ex), true, true
	})
}

// UpdateExercise merges patch into exercise id. The owning sheet's
// UpdatedAt is left alone; callers touch it explicitly.
func (s *Store) UpdateExercise(id string, patch ExercisePatch) bool {
	return s.apply("UpdateExercise "+id, func(st model.AppState) (model.AppState, bool, bool) {
		return updateExercise(st, id, patch)
	})
}

// DeleteExercise removes exercise id.
func (s *Store) DeleteExercise(id string) bool {
	return s.apply("DeleteExercise "+id, func(st model.AppState) (model.AppState, bool, bool) {
		next, ok := deleteExercise(st, id)
		return next, ok, ok
	})
}

// State returns a deep copy of the current state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Sheet returns sheet id.
func (s *Store) Sheet(id string) (model.Sheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SheetByID(id)
}

// Exercise returns a copy of exercise id.
func (s *Store) Exercise(id string) (model.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := exerciseIndex(s.state, id); i >= 0 {
		return s.state.Exercises[i].Clone(), true
	}
	return model.Exercise{}, false
}

// ExercisesFor returns copies of the exercises of sheetID in insertion
// order.
func (s *Store) ExercisesFor(sheetID string) []model.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ExercisesFor(sheetID)
}

// Subscribe registers fn to be called with a copy of the state after each
// change. The returned func unregisters it.
func (s *Store) Subscribe(fn func(model.AppState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Pending reports whether there are changes not yet handed to the
// persister.
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// ReloadIfClean replaces the state with one loaded from outside, for
// example after the data file was edited by another process. It refuses
// while local changes are unsaved and reports whether the swap happened.
func (s *Store) ReloadIfClean(state model.AppState) bool {
	s.mu.Lock()
	if s.dirty || s.debouncer.Pending() {
		s.mu.Unlock()
		debug.Log("store: reload skipped, local changes pending")
		return false
	}
	s.state = state.Clone()
	subs := s.subscribers()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return true
}

// Flush cancels the pending write-back and saves immediately if anything
// is unsaved.
func (s *Store) Flush() {
	defer metrics.Timer(metrics.StoreFlush)()
	s.debouncer.Cancel()
	s.writeBack()
}

// Close flushes pending changes. Later mutations still apply in memory but
// are only written by an explicit Flush.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.Flush()
	return nil
}

func (s *Store) writeBack() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	snapshot := s.state.Clone()
	s.dirty = false
	s.mu.Unlock()

	if s.persister == nil {
		return
	}
	defer debug.LogEnterExit("store.save")()
	s.persister.Save(snapshot)
	s.log.WithFields(logrus.Fields{
		"sheets":    len(snapshot.Sheets),
		"exercises": len(snapshot.Exercises),
	}).Debug("state saved")
}
