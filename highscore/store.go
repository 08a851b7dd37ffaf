// Package highscore persists the best score between runs
package highscore

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Store is the highscore collaborator of the engine
// Implementations never fail visibly: Load falls back to 0, Save is best-effort
type Store interface {
	Load() int
	Save(score int)
}

// record is the serialized file content
type record struct {
	Highscore int       `toml:"highscore"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// FileStore keeps the highscore in a TOML file
type FileStore struct {
	path string
	log  logrus.FieldLogger
}

// NewFileStore creates a store for the file at path
func NewFileStore(path string, log logrus.FieldLogger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.WithField("highscore_file", path),
	}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored highscore, 0 if absent or unparsable
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("no highscore file")
		} else {
			s.log.WithError(err).Warn("highscore read failed")
		}
		return 0
	}

	var rec record
	if err := toml.Unmarshal(data, &rec); err != nil {
		s.log.WithError(err).Warn("highscore file corrupt")
		return 0
	}
	if rec.Highscore < 0 {
		s.log.WithField("value", rec.Highscore).Warn("negative highscore ignored")
		return 0
	}
	return rec.Highscore
}

// Save writes score, replacing the file atomically; failures are logged and dropped
func (s *FileStore) Save(score int) {
	if err := s.write(score); err != nil {
		s.log.WithError(err).WithField("score", score).Warn("highscore write failed")
		return
	}
	s.log.WithField("score", score).Info("highscore saved")
}

func (s *FileStore) write(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(record{Highscore: score, UpdatedAt: time.Now().UTC()}); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// MemoryStore keeps the highscore in memory
type MemoryStore struct {
	Value int
	Saves int
}

// Load returns the held value
func (m *MemoryStore) Load() int {
	return m.Value
}

// Save replaces the held value and counts the write
func (m *MemoryStore) Save(score int) {
	m.Value = score
	m.Saves++
}
