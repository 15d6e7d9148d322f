package usecase

import (
	"context"

	"inventory/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateDeliveryInput references the product and partner by their human-readable keys.
type CreateDeliveryInput struct {
	ProductCode string
	PartnerName string
	Quantity    int
	Address     string
}

// DeliveryUsecase is the delivery workflow: intransit -> delivered | cancelled.
type DeliveryUsecase interface {
	// Create reserves stock and records the delivery in one transaction.
	Create(ctx context.Context, input *CreateDeliveryInput) (*repository.DeliveryView, error)
	// MarkDelivered completes an in-transit delivery. Stock stays consumed.
	MarkDelivered(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error)
	// Cancel aborts an in-transit delivery and releases its stock in the same transaction.
	Cancel(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error)
	Get(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error)
	ListAll(ctx context.Context) ([]*repository.DeliveryView, error)
}
