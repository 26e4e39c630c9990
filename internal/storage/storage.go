package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded credential documents live. Only a local
// filesystem backend exists today; the application records paths, never
// file bytes.
type Storage interface {
	// Save stores a file at the given path relative to the storage root.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // Filesystem root for stored files
	BaseURL  string // Public URL base
}
