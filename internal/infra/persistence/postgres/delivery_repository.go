package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const deliveryViewColumns = "d.id, d.product_id, p.product_code, d.partner_id, dp.name AS partner_name, " +
	"d.quantity, d.address, d.status, d.created_at, d.updated_at"

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// Create persists a new delivery.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("delivery references an unknown product or partner")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindByID retrieves a delivery by its ID.
func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// CompareAndSetStatus updates the status only while the row still holds from.
// Two racing transitions cannot both succeed because only one of them matches the predicate.
func (repo *deliveryRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to entity.DeliveryStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery status")
	}

	return result.RowsAffected == 1, nil
}

// FindView returns a delivery joined with its product code and partner name.
func (repo *deliveryRepository) FindView(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error) {
	var rows []*model.DeliveryViewRow

	if err := repo.viewQuery(ctx).
		Where("d.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find delivery view")
	}

	if len(rows) == 0 {
		return nil, domainerrors.ErrDeliveryNotFound
	}

	return toDeliveryView(rows[0]), nil
}

// ListViews returns every delivery joined with its product code and partner name, newest first.
func (repo *deliveryRepository) ListViews(ctx context.Context) ([]*repository.DeliveryView, error) {
	var rows []*model.DeliveryViewRow

	if err := repo.viewQuery(ctx).
		Order("d.created_at DESC, d.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list delivery views")
	}

	views := make([]*repository.DeliveryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toDeliveryView(row))
	}

	return views, nil
}

// FindStale returns in-transit deliveries created strictly before cutoff.
func (repo *deliveryRepository) FindStale(ctx context.Context, cutoff time.Time) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("status NOT IN ? AND created_at < ?", terminalStatusValues(), cutoff).
		Order("created_at ASC, id ASC").
		Find(&deliveryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stale deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

func (repo *deliveryRepository) viewQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("deliveries AS d").
		Select(deliveryViewColumns).
		Joins("JOIN products AS p ON p.id = d.product_id").
		Joins("JOIN delivery_partners AS dp ON dp.id = d.partner_id")
}

func terminalStatusValues() []string {
	statuses := entity.TerminalDeliveryStatuses()
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	return values
}

// --- Mapper Functions ---

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:        data.ID,
		ProductID: data.ProductID,
		PartnerID: data.PartnerID,
		Quantity:  data.Quantity,
		Address:   data.Address,
		Status:    entity.DeliveryStatus(data.Status),
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.DeliveryStatusInTransit
	}

	return &model.DeliveryModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		PartnerID: data.PartnerID,
		Quantity:  data.Quantity,
		Address:   data.Address,
		Status:    status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDeliveryView(row *model.DeliveryViewRow) *repository.DeliveryView {
	return &repository.DeliveryView{
		ID:          row.ID,
		ProductID:   row.ProductID,
		ProductCode: row.ProductCode,
		PartnerID:   row.PartnerID,
		PartnerName: row.PartnerName,
		Quantity:    row.Quantity,
		Address:     row.Address,
		Status:      entity.DeliveryStatus(row.Status),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
