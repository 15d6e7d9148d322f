package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stockMovementRepository implements the repository.StockMovementRepository interface.
type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository is the constructor for stockMovementRepository.
func NewStockMovementRepository(db *gorm.DB) repository.StockMovementRepository {
	return &stockMovementRepository{
		db: db,
	}
}

// Create appends a stock movement.
func (repo *stockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	movementM := &model.StockMovementModel{
		ID:         movement.ID,
		ProductID:  movement.ProductID,
		DeliveryID: movement.DeliveryID,
		Delta:      movement.Delta,
		UnitsAfter: movement.UnitsAfter,
		Reason:     string(movement.Reason),
		CreatedAt:  movement.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(movementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record stock movement")
	}

	movement.ID = movementM.ID
	movement.CreatedAt = movementM.CreatedAt

	return nil
}

// ListByProduct returns a product's movements, oldest first.
func (repo *stockMovementRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.StockMovement, error) {
	var movementModels []*model.StockMovementModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&movementModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stock movements")
	}

	movements := make([]*entity.StockMovement, 0, len(movementModels))
	for _, m := range movementModels {
		movements = append(movements, &entity.StockMovement{
			ID:         m.ID,
			ProductID:  m.ProductID,
			DeliveryID: m.DeliveryID,
			Delta:      m.Delta,
			UnitsAfter: m.UnitsAfter,
			Reason:     entity.StockMovementReason(m.Reason),
			CreatedAt:  m.CreatedAt.UTC(),
		})
	}

	return movements, nil
}
