package repository

import (
	"context"
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products and their unit counts.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByCode retrieves a product by its unique product code.
	FindByCode(ctx context.Context, code string) (*entity.Product, error)

	// ListByUser returns a page of products owned by a user, ordered by creation time.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Product, error)

	// UpdateDetails writes the descriptive fields of a product. Units and the dead-stock flag are left untouched.
	UpdateDetails(ctx context.Context, product *entity.Product) error

	// Delete removes a product and every delivery referencing it.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementUnits subtracts quantity only if at least quantity units are available.
	// It reports false when the guard rejected the update or the product does not exist.
	DecrementUnits(ctx context.Context, id uuid.UUID, quantity int) (bool, error)

	// IncrementUnits adds quantity back to a product.
	IncrementUnits(ctx context.Context, id uuid.UUID, quantity int) error

	// MarkDeadStock flags every unflagged product purchased before cutoff and returns how many were flagged.
	MarkDeadStock(ctx context.Context, cutoff time.Time) (int64, error)
}
