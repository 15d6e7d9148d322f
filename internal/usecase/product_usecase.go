package usecase

import (
	"context"
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the descriptive fields of a product.
type ProductInput struct {
	SupplierCode   string
	BatchNumber    string
	Name           string
	ProductCode    string
	Category       string
	Brand          string
	PurchasePrice  decimal.Decimal
	ListingPrice   decimal.Decimal
	DateOfPurchase *time.Time
}

// CreateProductInput adds the opening unit count to the descriptive fields.
type CreateProductInput struct {
	ProductInput
	Units int
}

// ProductUsecase manages a user's products. Every operation on an existing product checks ownership.
type ProductUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	Get(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Product, error)
	// Update rewrites the descriptive fields. Units and the dead-stock flag are not caller-writable.
	Update(ctx context.Context, userID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Label(ctx context.Context, userID, productID uuid.UUID) ([]byte, error)
	Movements(ctx context.Context, userID, productID uuid.UUID) ([]*entity.StockMovement, error)
}
