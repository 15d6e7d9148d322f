package repository

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// StockMovementRepository records and lists changes to product units.
type StockMovementRepository interface {
	// Create appends a movement.
	Create(ctx context.Context, movement *entity.StockMovement) error

	// ListByProduct returns the movements of a product, oldest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.StockMovement, error)
}
