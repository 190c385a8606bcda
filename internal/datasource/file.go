package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// FileBackend stores each key in its own file inside dir.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a backend rooted at dir. The directory must exist.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Path returns the file that holds key.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, fileName(key))
}

// Get reads the file for key.
func (b *FileBackend) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(b.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value to a temp file in the same directory, syncs it and
// renames it over the target, so readers see either the old or the new
// value.
func (b *FileBackend) Set(key, value string) error {
	target := b.Path(key)
	tmp, err := os.CreateTemp(b.dir, "."+fileName(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (b *FileBackend) Close() error {
	return nil
}

// fileName maps a key such as "scheda-palestra:v1" to a portable file name
// ("scheda-palestra_v1.json").
func fileName(key string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, key)
	if name == "" {
		name = "state"
	}
	return name + ".json"
}
