package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePartnerInput defines the data required to register a delivery partner.
type CreatePartnerInput struct {
	Name        string
	ContactInfo string
}

// PartnerUsecase manages delivery partners. Partners cannot be changed once created.
type PartnerUsecase interface {
	Create(ctx context.Context, input *CreatePartnerInput) (*entity.DeliveryPartner, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.DeliveryPartner, error)
	List(ctx context.Context) ([]*entity.DeliveryPartner, error)
}
