// Package debug provides conditional debug logging for liftsheet.
//
// Debug logging is enabled by setting the LIFTSHEET_DEBUG environment variable:
//
//	LIFTSHEET_DEBUG=1 liftsheet list
//
// When enabled, debug messages are written to stderr with timestamps.
// When disabled (default), all debug functions are no-ops.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
	"time"
)

var (
	mu sync.RWMutex
	// enabled is true when LIFTSHEET_DEBUG env var is set
	enabled bool
	// logger writes to stderr with [LIFTSHEET_DEBUG] prefix
	logger *log.Logger
)

func init() {
	if os.Getenv("LIFTSHEET_DEBUG") != "" {
		enabled = true
		logger = newLogger(os.Stderr)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[LIFTSHEET_DEBUG] ", log.Ltime|log.Lmicroseconds)
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e && logger == nil {
		logger = newLogger(os.Stderr)
	}
}

// SetOutput redirects debug output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	Log("%s took %v", name, d)
}

// LogEnterExit logs function entry and exit with timing.
// Usage:
//
//	func myFunc() {
//	    defer debug.LogEnterExit("myFunc")()
//	    // ...
//	}
func LogEnterExit(name string) func() {
	if !Enabled() {
		return func() {}
	}
	Log("-> %s", name)
	start := time.Now()
	return func() {
		Log("<- %s (%v)", name, time.Since(start))
	}
}
