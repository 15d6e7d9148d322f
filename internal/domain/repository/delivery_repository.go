package repository

import (
	"context"
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryView is the read projection of a delivery joined with its product and partner.
type DeliveryView struct {
	ID          uuid.UUID             `json:"id"`
	ProductID   uuid.UUID             `json:"product_id"`
	ProductCode string                `json:"product_code"`
	PartnerID   uuid.UUID             `json:"partner_id"`
	PartnerName string                `json:"partner_name"`
	Quantity    int                   `json:"quantity"`
	Address     string                `json:"address"`
	Status      entity.DeliveryStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// DeliveryRepository defines persistence operations for deliveries.
type DeliveryRepository interface {
	// Create persists a new delivery.
	Create(ctx context.Context, delivery *entity.Delivery) error

	// FindByID retrieves a delivery by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// CompareAndSetStatus moves a delivery from one status to another.
	// It reports false, without error, when the delivery is no longer in the from status.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to entity.DeliveryStatus) (bool, error)

	// FindView returns the read projection of a single delivery.
	FindView(ctx context.Context, id uuid.UUID) (*DeliveryView, error)

	// ListViews returns the read projection of every delivery, newest first.
	ListViews(ctx context.Context) ([]*DeliveryView, error)

	// FindStale returns non-terminal deliveries created before cutoff, oldest first.
	FindStale(ctx context.Context, cutoff time.Time) ([]*entity.Delivery, error)
}
