package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
)

// localFileStorage implements adapter.FileStorage on the local filesystem.
// Files are stored under baseDir/<category>/ with a random name; the
// original filename only contributes its extension.
type localFileStorage struct {
	baseDir string
}

// NewLocalFileStorage creates a new local file storage instance.
func NewLocalFileStorage(baseDir string) (adapter.FileStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localFileStorage{baseDir: baseDir}, nil
}

// Save stores the file content under the category and returns the stored
// filename.
func (s *localFileStorage) Save(ctx context.Context, category, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	stored := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return stored, nil
}

// Read returns the content of a stored file.
func (s *localFileStorage) Read(ctx context.Context, category, filename string) ([]byte, error) {
	// The stored name is always generated here, but reject anything that
	// could climb out of the category directory.
	if strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return nil, fmt.Errorf("invalid filename %q", filename)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, category, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Delete removes a stored file. Deleting a missing file is not an error.
func (s *localFileStorage) Delete(ctx context.Context, category, filename string) error {
	if strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return fmt.Errorf("invalid filename %q", filename)
	}
	err := os.Remove(filepath.Join(s.baseDir, category, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
