// Package datasource provides the durable key-value backends liftsheet
// persists its state blob into: one file per key, a SQLite table, or an
// in-memory map for sessions that must not touch disk.
package datasource

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vanderheijden86/liftsheet/pkg/config"
)

// ErrUnavailable is returned when the backing store cannot be used at all,
// for example a read-only or missing data directory.
var ErrUnavailable = errors.New("durable store unavailable")

// Backend is a minimal durable key-value store.
type Backend interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value under key. Implementations never leave a
	// partially written value behind.
	Set(key, value string) error
	Close() error
}

// Locator is implemented by backends whose values live in a watchable file.
type Locator interface {
	Path(key string) string
}

// Open returns the backend selected by cfg.Driver.
func Open(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryBackend(), nil
	case config.DriverFile, "":
		if err := ensureDir(cfg.Dir); err != nil {
			return nil, err
		}
		return NewFileBackend(cfg.Dir), nil
	case config.DriverSQLite:
		if err := ensureDir(cfg.Dir); err != nil {
			return nil, err
		}
		b, err := OpenSQLite(SQLitePath(cfg.Dir))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: no data directory", ErrUnavailable)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", ErrUnavailable, err)
	}
	return nil
}
