package usecase

import (
	"context"
	"io"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadDocumentInput describes one uploaded file.
type UploadDocumentInput struct {
	Filename    string
	ContentType string // Declared by the client; sniffed when empty or generic.
	Content     io.Reader
}

// DocumentUsecase stores and serves a user's documents.
type DocumentUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, input *UploadDocumentInput) (*entity.Document, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error)
	// Open returns the metadata and content of a document owned by userID. The caller closes the reader.
	Open(ctx context.Context, userID, documentID uuid.UUID) (*entity.Document, io.ReadCloser, error)
}
