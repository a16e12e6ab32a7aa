package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/arthur-debert/pathvar/pkg/logging"
	"github.com/arthur-debert/pathvar/pkg/scope"
	toml "github.com/pelletier/go-toml/v2"
)

// FormatVersion is written to every session file
const FormatVersion = 1

// file is the on-disk form of a session
type file struct {
	Version int               `toml:"version"`
	ID      string            `toml:"id"`
	Updated time.Time         `toml:"updated"`
	Vars    map[string]string `toml:"vars"`
}

// Session is a scope.Store backed by a session file
type Session struct {
	id   string
	path string
	base scope.Store

	mu        sync.RWMutex
	overrides map[string]string

	locks scope.KeyedMutex
}

// Open loads the session file at path, creating an empty session when the
// file does not exist yet. base may be nil.
func Open(path, id string, base scope.Store) (*Session, error) {
	logger := logging.GetLogger("session").With().Str("id", id).Str("path", path).Logger()

	s := &Session{
		id:        id,
		path:      path,
		base:      base,
		overrides: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("no session file, starting a new session")
			return s, nil
		}
		return nil, errors.Wrapf(err, errors.ErrSessionLoad, "failed to read session %s", id).
			WithDetail("path", path)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSessionLoad, "failed to parse session %s", id).
			WithDetail("path", path)
	}
	if f.Version > FormatVersion {
		return nil, errors.Newf(errors.ErrSessionLoad, "session %s has unsupported version %d", id, f.Version).
			WithDetail("path", path)
	}
	for k, v := range f.Vars {
		s.overrides[k] = v
	}

	logger.Debug().Int("vars", len(s.overrides)).Msg("session loaded")
	return s, nil
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Path returns the session file location
func (s *Session) Path() string {
	return s.path
}

// Get implements scope.Store. Session writes shadow the base store.
func (s *Session) Get(name string) (string, bool) {
	s.mu.RLock()
	v, ok := s.overrides[name]
	s.mu.RUnlock()
	if ok {
		return v, true
	}
	if s.base == nil {
		return "", false
	}
	return s.base.Get(name)
}

// Set implements scope.Store. The session file is rewritten before Set
// returns; on failure the in-memory value is left as it was.
func (s *Session) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.overrides[name]
	s.overrides[name] = value
	if err := s.save(); err != nil {
		if had {
			s.overrides[name] = prev
		} else {
			delete(s.overrides, name)
		}
		return err
	}
	return nil
}

// Lock implements scope.Locker
func (s *Session) Lock(name string) func() {
	return s.locks.Lock(name)
}

// Overrides returns a copy of the variables written in this session
func (s *Session) Overrides() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out
}

// Names returns the names written in this session, sorted
func (s *Session) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.overrides))
	for k := range s.overrides {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Reset forgets every session write and removes the session file
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrSessionSave, "failed to remove session %s", s.id).
			WithDetail("path", s.path)
	}
	s.overrides = make(map[string]string)
	return nil
}

// save writes the session file; callers hold s.mu
func (s *Session) save() error {
	data, err := toml.Marshal(file{
		Version: FormatVersion,
		ID:      s.id,
		Updated: time.Now().UTC().Truncate(time.Second),
		Vars:    s.overrides,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrSessionSave, "failed to encode session %s", s.id)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return errors.Wrapf(err, errors.ErrSessionSave, "failed to save session %s", s.id).
			WithDetail("path", s.path)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move session file into place: %w", err)
	}
	return nil
}
