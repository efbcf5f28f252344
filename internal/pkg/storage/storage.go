package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// PublicURL returns the path the frontend can fetch the file from
	PublicURL(path string) string

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
