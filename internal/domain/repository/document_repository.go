package repository

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentRepository defines persistence operations for uploaded document metadata.
type DocumentRepository interface {
	// Create persists a new document record.
	Create(ctx context.Context, document *entity.Document) error

	// FindByID retrieves a document by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)

	// ListByUser returns every document owned by a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error)
}
