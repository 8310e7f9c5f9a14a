package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/models"
)

const documentFile = "dashboard.json"

// DocumentStore persists one JSON document per user under a user-scoped
// directory. It is the sole write path for all entity mutations.
type DocumentStore struct {
	baseDir  string
	logger   *zap.Logger
	observer func(op string, d time.Duration)
}

// NewDocumentStore ensures the base directory exists and returns a handle.
func NewDocumentStore(baseDir string, logger *zap.Logger) (*DocumentStore, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &DocumentStore{baseDir: baseDir, logger: logger}, nil
}

// SetObserver installs a duration callback for read/write operations.
func (s *DocumentStore) SetObserver(fn func(op string, d time.Duration)) {
	s.observer = fn
}

// Path returns the document location for a user.
func (s *DocumentStore) Path(user string) string {
	return filepath.Join(s.baseDir, filepath.Base(user), documentFile)
}

// Load reads and normalizes the user's document. A missing or malformed file
// yields the empty default document; only real I/O failures surface.
func (s *DocumentStore) Load(user string) (*models.Document, error) {
	start := time.Now()
	defer s.observe("read", start)

	data, err := os.ReadFile(s.Path(user))
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("read document for %s: %w", user, err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("document not valid JSON, starting empty",
			zap.String("user", user), zap.Error(err))
		return models.NewDocument(), nil
	}

	return Normalize(raw), nil
}

// Save writes the document atomically: encode to a temp file in the target
// directory, then rename over the document path. A reader never observes a
// partially written file; on failure the prior version remains intact.
func (s *DocumentStore) Save(user string, doc *models.Document) error {
	start := time.Now()
	defer s.observe("write", start)

	if doc == nil {
		doc = models.NewDocument()
	}

	dir := filepath.Dir(s.Path(user))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create user directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dashboard-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp document: %w", err)
	}

	if err := os.Rename(tmpName, s.Path(user)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace document: %w", err)
	}

	return nil
}

func (s *DocumentStore) observe(op string, start time.Time) {
	if s.observer != nil {
		s.observer(op, time.Since(start))
	}
}
