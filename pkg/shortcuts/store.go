package shortcuts

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/arthur-debert/waypoint/pkg/filesystem"
	"github.com/arthur-debert/waypoint/pkg/logging"
)

// DefaultFileMode is used when a Store is built without an explicit mode.
const DefaultFileMode fs.FileMode = 0644

// Store binds the load/add/remove/rewrite operations to one backing file.
// It holds no mapping of its own; callers thread the Mapping through.
type Store struct {
	fs   filesystem.FS
	path string
	mode fs.FileMode
}

// Option configures a Store.
type Option func(*Store)

// WithFileMode sets the permissions used when the backing file is written.
func WithFileMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}

// New creates a Store backed by the file at path.
func New(fsys filesystem.FS, path string, opts ...Option) *Store {
	s := &Store{
		fs:   fsys,
		path: path,
		mode: DefaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole backing file. A missing file is created empty; only
// filesystem failures are reported, never malformed content.
func (s *Store) Load() (Mapping, error) {
	logger := logging.GetLogger("shortcuts").With().Str("path", s.path).Logger()

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.IO(err, s.path, "read")
		}
		logger.Info().Msg("Shortcut file not found, creating an empty one")
		if err := s.create(); err != nil {
			return nil, err
		}
		return Mapping{}, nil
	}

	m := Parse(data)
	logger.Debug().Int("shortcuts", len(m)).Msg("Shortcuts loaded")
	return m, nil
}

func (s *Store) create() error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.IO(err, filepath.Dir(s.path), "create directory")
	}
	if err := s.fs.WriteFile(s.path, nil, s.mode); err != nil {
		return errors.IO(err, s.path, "create")
	}
	return nil
}

// Add returns m with key set to value and persists it. When key is already
// defined m is returned unchanged and nothing is written.
func (s *Store) Add(m Mapping, key, value string) (Mapping, error) {
	logger := logging.GetLogger("shortcuts").With().Str("key", key).Logger()

	if key == "" {
		return m, errors.MissingArgument("key")
	}
	if !ValidKey(key) {
		return m, errors.InvalidKey(key)
	}
	if !ValidValue(value) {
		return m, errors.InvalidValue(key)
	}
	if m.Has(key) {
		logger.Info().Str("existing", m[key]).Msg("Shortcut already defined, leaving it unchanged")
		return m, nil
	}

	next := m.Clone()
	next[key] = value
	if err := s.Rewrite(next); err != nil {
		return m, err
	}

	logger.Info().Str("value", value).Msg("Shortcut added")
	return next, nil
}

// Remove returns m without key and persists the result, whether or not key
// was defined.
func (s *Store) Remove(m Mapping, key string) (Mapping, error) {
	logger := logging.GetLogger("shortcuts").With().Str("key", key).Logger()

	if key == "" {
		return m, errors.MissingArgument("key")
	}

	next := m.Clone()
	existed := next.Has(key)
	delete(next, key)
	if err := s.Rewrite(next); err != nil {
		return m, err
	}

	logger.Info().Bool("existed", existed).Msg("Shortcut removed")
	return next, nil
}

// Rewrite replaces the backing file with the canonical form of m.
func (s *Store) Rewrite(m Mapping) error {
	done := logging.LogOperationStart(logging.GetLogger("shortcuts"), "rewrite")
	defer done()

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.IO(err, filepath.Dir(s.path), "create directory")
	}
	if err := filesystem.WriteFileAtomic(s.fs, s.path, Serialize(m), s.mode); err != nil {
		return errors.IO(err, s.path, "write")
	}
	return nil
}
