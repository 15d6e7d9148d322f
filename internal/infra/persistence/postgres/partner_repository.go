package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// Create persists a new partner.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.DeliveryPartner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPartnerNameExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.ID = partnerM.ID
	partner.CreatedAt = partnerM.CreatedAt

	return nil
}

// FindByID retrieves a partner by its ID.
func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryPartner, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByName retrieves a partner by its unique name.
func (repo *partnerRepository) FindByName(ctx context.Context, name string) (*entity.DeliveryPartner, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *partnerRepository) findOne(ctx context.Context, query string, arg any) (*entity.DeliveryPartner, error) {
	var partnerM model.DeliveryPartnerModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find partner")
	}

	return toPartnerDomain(&partnerM), nil
}

// List returns every partner ordered by name.
func (repo *partnerRepository) List(ctx context.Context) ([]*entity.DeliveryPartner, error) {
	var partnerModels []*model.DeliveryPartnerModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&partnerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list partners")
	}

	partners := make([]*entity.DeliveryPartner, 0, len(partnerModels))
	for _, partnerM := range partnerModels {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners, nil
}

// --- Mapper Functions ---

func toPartnerDomain(data *model.DeliveryPartnerModel) *entity.DeliveryPartner {
	if data == nil {
		return nil
	}

	return &entity.DeliveryPartner{
		ID:          data.ID,
		Name:        data.Name,
		ContactInfo: data.ContactInfo,
		CreatedAt:   data.CreatedAt.UTC(),
	}
}

func fromPartnerDomain(data *entity.DeliveryPartner) *model.DeliveryPartnerModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryPartnerModel{
		ID:          data.ID,
		Name:        data.Name,
		ContactInfo: data.ContactInfo,
		CreatedAt:   data.CreatedAt,
	}
}
