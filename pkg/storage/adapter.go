// Package storage persists the whole AppState as one versioned JSON blob
// inside a durable key-value backend.
package storage

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/vanderheijden86/liftsheet/internal/datasource"
	"github.com/vanderheijden86/liftsheet/pkg/metrics"
	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// StorageKey is the single key the state lives under. The schema version
// is part of the key; there is no migration.
const StorageKey = "scheda-palestra:v1"

// ErrUnavailable marks a backend that cannot be used at all.
var ErrUnavailable = datasource.ErrUnavailable

// Backend is the durable key-value store the adapter writes through.
type Backend = datasource.Backend

// Adapter loads and saves AppState. A nil backend puts it in memory-only
// mode: Load returns the empty state and Save does nothing.
type Adapter struct {
	backend Backend
	key     string
	log     logrus.FieldLogger
}

// NewAdapter wraps backend. log may be nil.
func NewAdapter(backend Backend, log logrus.FieldLogger) *Adapter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &Adapter{backend: backend, key: StorageKey, log: log.WithField("key", StorageKey)}
	if backend == nil {
		a.log.Info("durable storage unavailable, changes will not be saved")
	}
	return a
}

// Available reports whether saves reach durable storage.
func (a *Adapter) Available() bool {
	return a.backend != nil
}

// Load reads the persisted state. Missing, unreadable or malformed data
// yields the empty state; Load never fails.
func (a *Adapter) Load() model.AppState {
	if a.backend == nil {
		return model.EmptyState()
	}
	defer metrics.Timer(metrics.StateLoad)()
	raw, ok, err := a.backend.Get(a.key)
	if err != nil {
		a.log.WithError(err).Warn("reading persisted state failed, starting empty")
		return model.EmptyState()
	}
	if !ok {
		return model.EmptyState()
	}

	state, err := decode([]byte(raw))
	if err != nil {
		a.log.WithError(err).Warn("persisted state is corrupt, starting empty")
		return model.EmptyState()
	}
	return a.dropOrphans(state)
}

// Save serializes state and overwrites the stored blob. Failures are
// logged and swallowed.
func (a *Adapter) Save(state model.AppState) {
	if a.backend == nil {
		return
	}
	defer metrics.Timer(metrics.StateSave)()
	data, err := json.Marshal(state.Clone())
	if err != nil {
		a.log.WithError(err).Warn("encoding state failed")
		return
	}
	if err := a.backend.Set(a.key, string(data)); err != nil {
		a.log.WithError(err).Warn("saving state failed")
	}
}

func decode(raw []byte) (model.AppState, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.AppState{}, fmt.Errorf("expected a JSON object")
	}
	var state model.AppState
	if err := json.Unmarshal(trimmed, &state); err != nil {
		return model.AppState{}, fmt.Errorf("decoding state: %w", err)
	}
	return state.Clone(), nil
}

// dropOrphans removes exercises whose sheet no longer exists.
func (a *Adapter) dropOrphans(state model.AppState) model.AppState {
	sheets := make(map[string]struct{}, len(state.Sheets))
	for _, s := range state.Sheets {
		sheets[s.ID] = struct{}{}
	}
	kept := state.Exercises[:0]
	for _, e := range state.Exercises {
		if _, ok := sheets[e.SheetID]; !ok {
			a.log.WithFields(logrus.Fields{
				"exercise": e.ID,
				"sheet":    e.SheetID,
			}).Warn("dropping exercise that references a missing sheet")
			continue
		}
		kept = append(kept, e)
	}
	state.Exercises = kept
	return state
}
