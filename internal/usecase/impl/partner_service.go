package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(partnerRepo repository.PartnerRepository, logger *slog.Logger) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: partnerRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a partner under a unique name.
func (srv *partnerService) Create(ctx context.Context, input *usecase.CreatePartnerInput) (*entity.DeliveryPartner, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "partner name is required")
	}

	partner := &entity.DeliveryPartner{
		Name:        strings.TrimSpace(input.Name),
		ContactInfo: input.ContactInfo,
		CreatedAt:   srv.now(),
	}
	if err := srv.partnerRepo.Create(ctx, partner); err != nil {
		return nil, errors.Wrap(err, "failed to create partner")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Partner created",
		slog.String("partner_id", partner.ID.String()),
		slog.String("name", partner.Name),
	)

	return partner, nil
}

// Get returns a partner by ID.
func (srv *partnerService) Get(ctx context.Context, id uuid.UUID) (*entity.DeliveryPartner, error) {
	partner, err := srv.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get partner")
	}

	return partner, nil
}

// List returns every partner.
func (srv *partnerService) List(ctx context.Context) ([]*entity.DeliveryPartner, error) {
	partners, err := srv.partnerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return partners, nil
}
