package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	maxRetries     = 3
	initialBackoff = 1 * time.Second
)

// Service persists synth artifacts under one output directory.
type Service interface {
	Load(name string, result any) error
	Save(name string, v any) error
	SaveWithRetry(name string, v any) error
	WriteFile(name string, data []byte) error
	Path(name string) string
}

// DirService writes files into a local directory. Every write goes to a
// temporary file first and is renamed into place.
type DirService struct {
	root    string
	backoff time.Duration
}

func NewDirService(root string) *DirService {
	return &DirService{
		root:    root,
		backoff: initialBackoff,
	}
}

// WithBackoff overrides the initial retry backoff.
func (s *DirService) WithBackoff(backoff time.Duration) *DirService {
	s.backoff = backoff
	return s
}

// Path returns the location of name inside the output directory.
func (s *DirService) Path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *DirService) Load(name string, result any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}

	return nil
}

// Save writes v as indented JSON.
func (s *DirService) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return s.WriteFile(name, append(data, '\n'))
}

// WriteFile writes data to name atomically, creating parent directories.
func (s *DirService) WriteFile(name string, data []byte) error {
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// SaveWithRetry is Save with exponential backoff between write attempts.
// Values that cannot be marshaled fail at once.
func (s *DirService) SaveWithRetry(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.backoff
	b.Multiplier = 2
	b.RandomizationFactor = 0

	attempt := 0
	write := func() error {
		attempt++
		return s.WriteFile(name, data)
	}
	notify := func(err error, next time.Duration) {
		slog.Warn("⚠️ failed to persist file, retrying",
			"file", name,
			"attempt", attempt,
			"maxRetries", maxRetries,
			"backoff", next,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(write, backoff.WithMaxRetries(b, maxRetries-1), notify); err != nil {
		return fmt.Errorf("failed to persist %s after %d retries: %w", name, attempt, err)
	}
	return nil
}
