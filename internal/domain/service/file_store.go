package service

import (
	"context"
	"io"
)

// FileStore keeps uploaded file contents outside the relational store.
type FileStore interface {
	// Save writes the content under key and returns the number of bytes written.
	Save(ctx context.Context, key string, content io.Reader, contentType string) (int64, error)

	// Open returns a reader over the content stored under key. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the content stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
