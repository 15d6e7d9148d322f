package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"inventory/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewBlobStore(bucket)

	n, err := store.Save(ctx, "documents/u/1", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	r, err := store.Open(ctx, "documents/u/1")
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "hello", string(content))

	attrs, err := bucket.Attributes(ctx, "documents/u/1")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "documents/u/1"))
	require.NoError(t, store.Delete(ctx, "documents/u/1"), "deleting a missing blob is not an error")

	_, err = store.Open(ctx, "documents/u/1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNew_RequiresBucketURL(t *testing.T) {
	_, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestNew_OpensFileBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	store, err := New(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "file://" + t.TempDir()}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "documents/a/b", strings.NewReader("x"), "")
	require.NoError(t, err)

	lc.RequireStart().RequireStop()
}
