// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// FileStorage defines the interface for storing uploaded files. Category is
// a storage subdirectory such as "expenses" or "meter_photos"; Save returns
// the stored filename, which may differ from the requested one to avoid
// collisions.
type FileStorage interface {
	// Save stores the file content under the category and returns the
	// stored filename.
	Save(ctx context.Context, category, filename string, data []byte) (string, error)

	// Read returns the content of a stored file.
	Read(ctx context.Context, category, filename string) ([]byte, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, category, filename string) error
}
