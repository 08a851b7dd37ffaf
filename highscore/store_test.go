package highscore

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// TestFileStoreMissing verifies an absent file loads as 0
func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore.toml"), quietLogger())
	if got := s.Load(); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

// TestFileStoreRoundTrip verifies a saved score loads back, creating parent dirs
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "highscore.toml")
	s := NewFileStore(path, quietLogger())

	s.Save(17)
	if got := s.Load(); got != 17 {
		t.Errorf("Expected 17, got %d", got)
	}

	s.Save(23)
	if got := NewFileStore(path, quietLogger()).Load(); got != 23 {
		t.Errorf("Expected 23 from a fresh store, got %d", got)
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the highscore file, got %d entries", len(entries))
	}
}

// TestFileStoreCorrupt verifies unparsable or negative content loads as 0
func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not = = toml"},
		{"wrong type", `highscore = "lots"`},
		{"negative", "highscore = -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if got := NewFileStore(path, quietLogger()).Load(); got != 0 {
				t.Errorf("Expected 0, got %d", got)
			}
		})
	}
}

// TestFileStoreUnwritable verifies a failed save is swallowed
func TestFileStoreUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Parent is a regular file, MkdirAll fails
	s := NewFileStore(filepath.Join(blocker, "highscore.toml"), quietLogger())
	s.Save(5)
	if got := s.Load(); got != 0 {
		t.Errorf("Expected 0 after failed save, got %d", got)
	}
}

// TestMemoryStore verifies saves are recorded
func TestMemoryStore(t *testing.T) {
	m := &MemoryStore{Value: 3}
	if m.Load() != 3 {
		t.Errorf("Expected 3, got %d", m.Load())
	}
	m.Save(9)
	if m.Value != 9 || m.Saves != 1 {
		t.Errorf("Expected value 9 and 1 save, got %d and %d", m.Value, m.Saves)
	}
}
