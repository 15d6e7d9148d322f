package usecase

import (
	"context"

	"github.com/google/uuid"
)

// StockLedger adjusts product units inside the transaction it was created for.
type StockLedger interface {
	// Reserve takes quantity units from the product, failing with ErrInsufficientStock
	// when fewer are available and ErrProductNotFound when the product does not exist.
	Reserve(ctx context.Context, productID uuid.UUID, quantity int, deliveryID *uuid.UUID) error
	// Release gives quantity units back to the product. Callers release at most once per reservation.
	Release(ctx context.Context, productID uuid.UUID, quantity int, deliveryID *uuid.UUID) error
}
