package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/infra/persistence/postgres"
	"inventory/internal/infra/storage"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestDocumentService(t *testing.T, fx *inventoryFixtures) usecase.DocumentUsecase {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewDocumentService(DocumentServiceParams{
		DocumentRepo: postgres.NewDocumentRepository(fx.db),
		FileStore:    storage.NewBlobStore(bucket),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
}

func TestDocumentService_UploadAndOpen(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestDocumentService(t, fx)
	ctx := context.Background()
	content := "%PDF-1.4\n% fake invoice body"

	document, err := svc.Upload(ctx, fx.user.ID, &usecase.UploadDocumentInput{
		Filename:    "../../invoice.pdf",
		ContentType: "application/octet-stream",
		Content:     strings.NewReader(content),
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", document.Filename)
	assert.Equal(t, "application/pdf", document.MediaType)
	assert.Equal(t, int64(len(content)), document.Size)
	assert.True(t, strings.HasPrefix(document.StorageKey, "documents/"+fx.user.ID.String()+"/"))

	expectedSum, err := util.CalculateChecksum(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, expectedSum, document.Checksum)

	meta, reader, err := svc.Open(ctx, fx.user.ID, document.ID)
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(body))
	assert.Equal(t, document.ID, meta.ID)

	documents, err := svc.List(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Len(t, documents, 1)
}

func TestDocumentService_DeclaredTypeWins(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestDocumentService(t, fx)

	document, err := svc.Upload(context.Background(), fx.user.ID, &usecase.UploadDocumentInput{
		Filename:    "data.csv",
		ContentType: "text/csv",
		Content:     strings.NewReader("a,b\n1,2\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", document.MediaType)
}

func TestDocumentService_Errors(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestDocumentService(t, fx)
	ctx := context.Background()

	_, err := svc.Upload(ctx, fx.user.ID, &usecase.UploadDocumentInput{
		Filename: "big.bin",
		Content:  strings.NewReader(strings.Repeat("x", 2048)),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))

	documents, err := svc.List(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Empty(t, documents, "rejected uploads leave no metadata")

	_, err = svc.Upload(ctx, fx.user.ID, &usecase.UploadDocumentInput{Filename: "", Content: strings.NewReader("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	document, err := svc.Upload(ctx, fx.user.ID, &usecase.UploadDocumentInput{Filename: "a.txt", Content: strings.NewReader("hi")})
	require.NoError(t, err)

	_, _, err = svc.Open(ctx, uuid.New(), document.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, _, err = svc.Open(ctx, fx.user.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentNotFound))
}
