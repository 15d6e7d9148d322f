package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	documentKeyPrefix = "documents"
	sniffLength       = 3072
	genericMediaType  = "application/octet-stream"
)

type documentService struct {
	documentRepo  repository.DocumentRepository
	fileStore     service.FileStore
	maxUploadSize int64
	logger        *slog.Logger
	now           func() time.Time
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	DocumentRepo repository.DocumentRepository
	FileStore    service.FileStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &documentService{
		documentRepo:  params.DocumentRepo,
		fileStore:     params.FileStore,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload streams the content into the file store and records its metadata.
func (srv *documentService) Upload(ctx context.Context, userID uuid.UUID, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	if input == nil || input.Content == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "file content is required")
	}

	filename := path.Base(strings.ReplaceAll(strings.TrimSpace(input.Filename), "\\", "/"))
	if filename == "" || filename == "." || filename == "/" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "filename is required")
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(input.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "failed to read upload")
	}
	head = head[:n]

	mediaType := resolveMediaType(input.ContentType, head)

	documentID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate document ID")
	}
	key := path.Join(documentKeyPrefix, userID.String(), documentID.String())

	content := io.MultiReader(bytes.NewReader(head), input.Content)
	if srv.maxUploadSize > 0 {
		// One byte past the limit is enough to tell the upload is too large.
		content = io.LimitReader(content, srv.maxUploadSize+1)
	}
	checksum := util.NewChecksumReader(content)

	size, err := srv.fileStore.Save(ctx, key, checksum, mediaType)
	if err != nil {
		srv.log(ctx).Error("Failed to store document", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	if srv.maxUploadSize > 0 && size > srv.maxUploadSize {
		srv.discard(ctx, key)

		return nil, errors.Wrapf(domainerrors.ErrUploadTooLarge, "limit is %s", util.FormatBytes(srv.maxUploadSize))
	}

	document := &entity.Document{
		ID:         documentID,
		UserID:     userID,
		Filename:   filename,
		MediaType:  mediaType,
		StorageKey: key,
		Size:       size,
		Checksum:   checksum.Sum(),
		UploadedAt: srv.now(),
	}
	if err := srv.documentRepo.Create(ctx, document); err != nil {
		srv.discard(ctx, key)

		return nil, errors.Wrap(err, "failed to record document")
	}

	srv.log(ctx).Info("Document uploaded",
		slog.String("document_id", document.ID.String()),
		slog.String("media_type", mediaType),
		slog.String("size", util.FormatBytes(size)),
	)

	return document, nil
}

// List returns the user's documents, newest first.
func (srv *documentService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	documents, err := srv.documentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return documents, nil
}

// Open returns an owned document and a reader over its content.
func (srv *documentService) Open(ctx context.Context, userID, documentID uuid.UUID) (*entity.Document, io.ReadCloser, error) {
	document, err := srv.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find document")
	}

	if document.UserID != userID {
		return nil, nil, errors.Wrap(domainerrors.ErrForbidden, "document belongs to another user")
	}

	content, err := srv.fileStore.Open(ctx, document.StorageKey)
	if err != nil {
		srv.log(ctx).Error("Stored document unreadable", slog.String("key", document.StorageKey), slog.Any("error", err))

		return nil, nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return document, content, nil
}

func (srv *documentService) discard(ctx context.Context, key string) {
	if err := srv.fileStore.Delete(ctx, key); err != nil {
		srv.log(ctx).Error("Failed to remove discarded upload", slog.String("key", key), slog.Any("error", err))
	}
}

// resolveMediaType keeps a specific declared type and sniffs the content otherwise.
func resolveMediaType(declared string, head []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != genericMediaType {
		return declared
	}

	return mimetype.Detect(head).String()
}
