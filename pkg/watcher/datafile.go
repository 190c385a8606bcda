package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/vanderheijden86/liftsheet/internal/datasource"
	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// DefaultPollInterval applies when polling and no interval is configured.
const DefaultPollInterval = 2 * time.Second

// ForcePollEnvVar forces polling when truthy, for filesystems where
// inotify events never arrive.
const ForcePollEnvVar = "LIFTSHEET_FORCE_POLL"

// ErrAlreadyStarted is returned by a second Start.
var ErrAlreadyStarted = errors.New("data file watcher already started")

// Source reads the persisted state. *storage.Adapter satisfies it.
type Source interface {
	Load() model.AppState
}

// Target takes state written by another process. *store.Store satisfies it.
type Target interface {
	ReloadIfClean(state model.AppState) bool
}

// Option configures a DataFile.
type Option func(*DataFile)

// WithPollInterval sets the stat interval used in polling mode.
func WithPollInterval(d time.Duration) Option {
	return func(f *DataFile) {
		if d > 0 {
			f.poll = d
		}
	}
}

// WithForcePoll skips fsnotify.
func WithForcePoll(force bool) Option {
	return func(f *DataFile) { f.forcePoll = force }
}

// WithSettle sets how long the file must stay quiet before it is reloaded.
func WithSettle(d time.Duration) Option {
	return func(f *DataFile) { f.settle = d }
}

// WithLogger sets the logger for reloads and watch errors.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *DataFile) {
		if log != nil {
			f.log = log
		}
	}
}

type stamp struct {
	mtime time.Time
	size  int64
	ok    bool
}

func statFile(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{mtime: info.ModTime(), size: info.Size(), ok: true}
}

// DataFile follows the file holding one storage key and hands every
// settled external edit to its Target. The file may not exist yet; it
// appears with the first save.
type DataFile struct {
	path      string
	src       Source
	dst       Target
	log       logrus.FieldLogger
	poll      time.Duration
	settle    time.Duration
	forcePoll bool

	debouncer *Debouncer
	reloads   atomic.Int64
	skipped   atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	fsw     *fsnotify.Watcher
	polling bool
	last    stamp
}

// NewDataFile watches the file loc stores key in. Changes are read through
// src and offered to dst.
func NewDataFile(loc datasource.Locator, key string, src Source, dst Target, opts ...Option) *DataFile {
	path := loc.Path(key)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	f := &DataFile{
		path:   path,
		src:    src,
		dst:    dst,
		log:    logrus.StandardLogger(),
		poll:   DefaultPollInterval,
		settle: DefaultDebounceDuration,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.debouncer = NewDebouncer(f.settle)
	return f
}

// Path returns the watched file.
func (f *DataFile) Path() string { return f.path }

// Polling reports whether the watcher fell back to stat polling.
func (f *DataFile) Polling() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polling
}

// Reloads returns how many external edits were swapped into the Target.
func (f *DataFile) Reloads() int64 { return f.reloads.Load() }

// Skipped returns how many external edits were refused because local
// changes were pending.
func (f *DataFile) Skipped() int64 { return f.skipped.Load() }

// Start begins watching. fsnotify watches the parent directory so atomic
// rename-over saves are seen; polling is used when that is unavailable.
func (f *DataFile) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return ErrAlreadyStarted
	}

	f.last = statFile(f.path)
	f.polling = true
	if !f.forcePoll && !envBool(ForcePollEnvVar) {
		if fsw, err := fsnotify.NewWatcher(); err == nil {
			if err := fsw.Add(filepath.Dir(f.path)); err == nil {
				f.fsw = fsw
				f.polling = false
			} else {
				f.log.WithError(err).Debug("fsnotify unavailable, polling data file")
				_ = fsw.Close()
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.done = make(chan struct{})
	go f.loop(ctx, f.fsw, f.done)
	return nil
}

// Stop ends watching and drops a reload that has not fired yet.
func (f *DataFile) Stop() {
	f.mu.Lock()
	if f.cancel == nil {
		f.mu.Unlock()
		return
	}
	f.cancel()
	f.cancel = nil
	done := f.done
	fsw := f.fsw
	f.fsw = nil
	f.mu.Unlock()

	<-done
	if fsw != nil {
		_ = fsw.Close()
	}
	f.debouncer.Cancel()
}

func (f *DataFile) loop(ctx context.Context, fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
		tick   <-chan time.Time
	)
	if fsw != nil {
		events, errs = fsw.Events, fsw.Errors
	} else {
		t := time.NewTicker(f.poll)
		defer t.Stop()
		tick = t.C
	}
	target := filepath.Base(f.path)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&fsnotify.Remove != 0 {
				f.log.WithField("path", f.path).Warn("data file removed")
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				f.debouncer.Trigger(f.reload)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			f.log.WithError(err).Warn("watching data file")
		case <-tick:
			f.checkStamp()
		}
	}
}

func (f *DataFile) checkStamp() {
	now := statFile(f.path)
	f.mu.Lock()
	prev := f.last
	f.last = now
	f.mu.Unlock()

	switch {
	case prev.ok && !now.ok:
		f.log.WithField("path", f.path).Warn("data file removed")
	case now.ok && (!prev.ok || now.mtime.After(prev.mtime) || now.size != prev.size):
		f.debouncer.Trigger(f.reload)
	}
}

// reload reads the file once it has settled. The Target decides whether
// the state may replace its own.
func (f *DataFile) reload() {
	f.mu.Lock()
	running := f.cancel != nil
	f.mu.Unlock()
	if !running {
		return
	}

	state := f.src.Load()
	entry := f.log.WithFields(logrus.Fields{
		"path":      f.path,
		"sheets":    len(state.Sheets),
		"exercises": len(state.Exercises),
	})
	if f.dst.ReloadIfClean(state) {
		f.reloads.Add(1)
		entry.Debug("reloaded data file")
		return
	}
	f.skipped.Add(1)
	entry.Debug("kept local changes over data file edit")
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
