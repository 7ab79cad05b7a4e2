package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore keeps records in a JSON object {"username": "hexdigest"}.
// The whole file is rewritten on every insert.
type FileStore struct {
	path   string
	logger *log.Logger

	mu      sync.Mutex
	records map[string]string
}

// OpenFileStore loads the file at path. A missing, unreadable or corrupt file
// yields an empty store; the latter two are logged as warnings. The next
// insert replaces a corrupt file.
func OpenFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.Default()
	}
	s := &FileStore{path: path, logger: logger, records: make(map[string]string)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s
	case err != nil:
		logger.Warn("cannot read user file, starting empty", "path", path, "error", err)
		return s
	}

	var records map[string]string
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("user file is corrupt, starting empty", "path", path, "error", err)
		return s
	}
	if records != nil {
		s.records = records
	}
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Lookup(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	digest, ok := s.records[username]
	if !ok {
		return "", ErrNotFound
	}
	return digest, nil
}

func (s *FileStore) Insert(_ context.Context, username, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[username]; ok {
		return ErrAlreadyExists
	}

	s.records[username] = digest
	if err := s.save(); err != nil {
		delete(s.records, username)
		return err
	}
	return nil
}

// save writes the records to a temp file and renames it over the target.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("auth: encode users: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("auth: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("auth: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("auth: write users: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("auth: write users: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("auth: replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
