// Package storage keeps uploaded file contents in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"inventory/config"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the file store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl and closes it on shutdown.
func New(params Params) (service.FileStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Logger.Info("Document bucket opened", slog.String("bucket_url", params.Config.Storage.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStore(bucket), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket) service.FileStore {
	return &blobStore{bucket: bucket}
}

// Save streams content into the bucket under key.
func (s *blobStore) Save(ctx context.Context, key string, content io.Reader, contentType string) (int64, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrap(err, "failed to open blob writer")
	}

	written, err := io.Copy(w, content)
	if err != nil {
		_ = w.Close()

		return 0, errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return 0, errors.Wrap(err, "failed to commit blob")
	}

	return written, nil
}

// Open returns a reader over the blob stored under key.
func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(ErrNotFound, "blob %s", key)
		}

		return nil, errors.Wrap(err, "failed to open blob")
	}

	return r, nil
}

// Delete removes the blob stored under key. Missing blobs are ignored.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

// ErrNotFound is returned by Open when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")
