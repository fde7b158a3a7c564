package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Store persists one JSON document per named file under dir.
//
// Writes replace the whole file; there is no partial update. A per-file
// mutex serializes read-modify-write cycles inside this process. Across
// processes the store is last-writer-wins: no file lock, no version token.
type Store struct {
	dir string

	mu    sync.Mutex
	files map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir, files: make(map[string]*sync.Mutex)}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) fileLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.files[name]
	if !ok {
		l = &sync.Mutex{}
		s.files[name] = l
	}
	return l
}

// EnsureSeeded writes seed to the named file unless it already exists.
// Called once at startup for every entity file; safe to call again.
func (s *Store) EnsureSeeded(name string, seed any) error {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()

	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", name)
	}
	return s.write(name, seed)
}

// Read parses the named file into out. Malformed JSON surfaces as an
// error to the caller; it is not recovered or reset.
func (s *Store) Read(name string, out any) error {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	return nil
}

// Write replaces the named file with the serialized value.
func (s *Store) Write(name string, v any) error {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()
	return s.write(name, v)
}

func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", s.dir)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshal %s", name)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}
