package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/flowsketch/flowsketch/pkg/errors"
)

// FileStore is a file-based diagram store for CLI and single-instance use.
// Diagrams are stored as JSON files in a base directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based diagram store.
// If baseDir is empty, defaults to ~/.local/share/flowsketch/diagrams/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "flowsketch", "diagrams")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create diagram dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) diagramPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get retrieves a diagram by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*Diagram, error) {
	if err := errors.ValidateDiagramID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.diagramPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read diagram file: %w", err)
	}

	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse diagram %s: %w", id, err)
	}
	return &d, nil
}

// Put stores a diagram, replacing any existing record with the same ID.
func (s *FileStore) Put(ctx context.Context, d *Diagram) error {
	if err := errors.ValidateDiagramID(d.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal diagram: %w", err)
	}

	if err := os.WriteFile(s.diagramPath(d.ID), data, 0644); err != nil {
		return fmt.Errorf("write diagram file: %w", err)
	}
	return nil
}

// Delete removes a diagram. Missing diagrams are not an error.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateDiagramID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.diagramPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove diagram file: %w", err)
	}
	return nil
}

// List returns the IDs of all stored diagrams.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read diagram dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close(ctx context.Context) error { return nil }

// Path returns the base directory for diagram files.
func (s *FileStore) Path() string { return s.baseDir }

var _ Store = (*FileStore)(nil)
