package storage

import (
	"context"
	"io"
)

// FileStorage keeps rendered report files.
type FileStorage interface {
	// Upload writes the file and returns its cleaned relative path
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// Location returns where path is stored, for display
	Location(path string) string
}
