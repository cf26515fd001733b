// Package jsonfile stores the aggregate as a single JSON document on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/dto"
)

// Store implements buddy.Repository on a JSON file.
type Store struct {
	path string
}

// New returns a store writing to path. The file and its directory are created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// Load implements buddy.Repository.
func (s *Store) Load(ctx context.Context) (*buddy.Buddy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, buddy.ErrNoData
		}
		return nil, fmt.Errorf("jsonfile: read %s: %w", s.path, err)
	}

	var doc dto.Buddy
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", s.path, err)
	}
	b, err := doc.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %s: %w", s.path, err)
	}
	return b, nil
}

// Save implements buddy.Repository. The file is replaced atomically.
func (s *Store) Save(ctx context.Context, b *buddy.Buddy) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(dto.FromDomain(b), "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("jsonfile: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("jsonfile: replace %s: %w", s.path, err)
	}
	return nil
}
