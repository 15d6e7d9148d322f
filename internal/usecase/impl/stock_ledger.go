// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// stockLedger implements usecase.StockLedger on top of transaction-bound repositories.
type stockLedger struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	now       func() time.Time
}

// NewStockLedger returns a ledger whose writes join the transaction behind repoFactory.
func NewStockLedger(repoFactory repository.RepositoryFactory) usecase.StockLedger {
	return &stockLedger{
		products:  repoFactory.NewProductRepository(),
		movements: repoFactory.NewStockMovementRepository(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Reserve subtracts quantity with a guarded update, then records the movement.
func (l *stockLedger) Reserve(ctx context.Context, productID uuid.UUID, quantity int, deliveryID *uuid.UUID) error {
	if quantity <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	ok, err := l.products.DecrementUnits(ctx, productID, quantity)
	if err != nil {
		return errors.Wrap(err, "failed to reserve stock")
	}

	// The guard matched nothing: either the product is gone or it has too few units.
	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to load product after reservation")
	}
	if !ok {
		return errors.Wrapf(domainerrors.ErrInsufficientStock, "requested %d, available %d", quantity, product.Units)
	}

	return l.record(ctx, product, -quantity, entity.StockMovementReserve, deliveryID)
}

// Release adds quantity back and records the movement.
func (l *stockLedger) Release(ctx context.Context, productID uuid.UUID, quantity int, deliveryID *uuid.UUID) error {
	if quantity <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	if err := l.products.IncrementUnits(ctx, productID, quantity); err != nil {
		return errors.Wrap(err, "failed to release stock")
	}

	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to load product after release")
	}

	return l.record(ctx, product, quantity, entity.StockMovementRelease, deliveryID)
}

func (l *stockLedger) record(ctx context.Context, product *entity.Product, delta int, reason entity.StockMovementReason, deliveryID *uuid.UUID) error {
	movement := &entity.StockMovement{
		ProductID:  product.ID,
		DeliveryID: deliveryID,
		Delta:      delta,
		UnitsAfter: product.Units,
		Reason:     reason,
		CreatedAt:  l.now(),
	}

	if err := l.movements.Create(ctx, movement); err != nil {
		return errors.Wrap(err, "failed to record stock movement")
	}

	return nil
}
