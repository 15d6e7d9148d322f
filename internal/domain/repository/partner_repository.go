package repository

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// PartnerRepository defines persistence operations for delivery partners.
type PartnerRepository interface {
	// Create persists a new partner.
	Create(ctx context.Context, partner *entity.DeliveryPartner) error

	// FindByID retrieves a partner by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryPartner, error)

	// FindByName retrieves a partner by its unique name.
	FindByName(ctx context.Context, name string) (*entity.DeliveryPartner, error)

	// List returns all partners ordered by name.
	List(ctx context.Context) ([]*entity.DeliveryPartner, error)
}
