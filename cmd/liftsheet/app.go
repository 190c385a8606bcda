package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/term"

	"github.com/vanderheijden86/liftsheet/internal/datasource"
	"github.com/vanderheijden86/liftsheet/pkg/config"
	"github.com/vanderheijden86/liftsheet/pkg/metrics"
	"github.com/vanderheijden86/liftsheet/pkg/prompt"
	"github.com/vanderheijden86/liftsheet/pkg/storage"
	"github.com/vanderheijden86/liftsheet/pkg/store"
	"github.com/vanderheijden86/liftsheet/pkg/tracker"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

// app wires one CLI invocation together.
type app struct {
	cfg     config.Config
	log     *logrus.Logger
	logSink io.Closer
	backend datasource.Backend
	adapter *storage.Adapter
	store   *store.Store
	prompt  prompt.Interactive
	tracker *tracker.Tracker
	stdout  io.Writer
	stderr  io.Writer
}

func openApp(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) *app {
	log, sink := setupLogging(cfg.Log, cfg.LogPath())
	a := &app{cfg: cfg, log: log, logSink: sink, stdout: stdout, stderr: stderr}

	backend, err := datasource.Open(cfg.Storage)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Storage.Driver).Error("opening storage failed")
		fmt.Fprintf(stderr, "Warning: %v; changes will not be saved\n", err)
	} else {
		a.backend = backend
	}

	// a.backend stays a nil interface on failure, which puts the adapter
	// in memory-only mode.
	a.adapter = storage.NewAdapter(a.backend, log)
	a.store = store.New(a.adapter, store.WithDebounce(cfg.Debounce()), store.WithLogger(log))
	a.prompt = newPrompter(cfg, stdin, stdout)
	a.tracker = tracker.New(a.store, a.prompt,
		tracker.WithParseOptions(workout.ParseOptions{StrictNumbers: cfg.Input.StrictNumbers}),
		tracker.WithLogger(log),
	)
	return a
}

// newPrompter uses huh forms on a terminal and plain lines otherwise.
func newPrompter(cfg config.Config, stdin io.Reader, stdout io.Writer) prompt.Interactive {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return prompt.NewHuh(cfg.UI.Accessible)
	}
	return prompt.NewLine(stdin, stdout)
}

// Close flushes pending edits and releases storage and the log file.
func (a *app) Close() error {
	var err error
	if a.store != nil {
		err = multierr.Append(err, a.store.Close())
	}
	if a.backend != nil {
		err = multierr.Append(err, a.backend.Close())
	}
	for _, st := range metrics.Snapshot() {
		a.log.WithFields(logrus.Fields{
			"count":  st.Count,
			"avg_ms": st.AvgMs,
			"max_ms": st.MaxMs,
		}).Debug("timing " + st.Name)
	}
	if a.logSink != nil {
		err = multierr.Append(err, a.logSink.Close())
	}
	return err
}
