package storage

import (
	"context"
	"io"
)

// FileStorage keeps uploaded images (organization logos, profile
// photos) behind a path key and resolves them to URLs the uploads
// route serves.
type FileStorage interface {
	// Upload stores a file and returns the path key it was stored under.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an
	// error.
	Delete(ctx context.Context, path string) error

	// PublicURL resolves a stored path key to the URL clients fetch it
	// from.
	PublicURL(path string) string
}
