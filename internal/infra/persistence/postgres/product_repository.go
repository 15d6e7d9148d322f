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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductCodeExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("units must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByCode retrieves a product by its product code.
func (repo *productRepository) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("product_code = ?", code).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by code")
	}

	return toProductDomain(&productM), nil
}

// ListByUser returns a page of a user's products.
func (repo *productRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateDetails writes the descriptive columns of a product.
func (repo *productRepository) UpdateDetails(ctx context.Context, product *entity.Product) error {
	updatedAt := product.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"supplier_code":    product.SupplierCode,
			"batch_number":     product.BatchNumber,
			"product_name":     product.Name,
			"product_code":     product.ProductCode,
			"category":         product.Category,
			"brand":            product.Brand,
			"purchase_price":   product.PurchasePrice,
			"listing_price":    product.ListingPrice,
			"date_of_purchase": product.DateOfPurchase,
			"updated_at":       updatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductCodeExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	product.UpdatedAt = updatedAt

	return nil
}

// Delete removes a product and its dependent rows.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", id).Delete(&model.DeliveryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product deliveries")
	}
	if err := db.Where("product_id = ?", id).Delete(&model.StockMovementModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product stock movements")
	}

	result := db.Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// DecrementUnits performs the guarded subtraction in a single statement, so concurrent reservations
// can never drive units below zero.
func (repo *productRepository) DecrementUnits(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND units >= ?", id, quantity).
		Updates(map[string]any{
			"units":      gorm.Expr("units - ?", quantity),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement product units")
	}

	return result.RowsAffected == 1, nil
}

// IncrementUnits adds quantity back to a product.
func (repo *productRepository) IncrementUnits(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"units":      gorm.Expr("units + ?", quantity),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment product units")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// MarkDeadStock flags products purchased strictly before cutoff. Products without a purchase date never match.
func (repo *productRepository) MarkDeadStock(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("dead_stock = ? AND date_of_purchase IS NOT NULL AND date_of_purchase < ?", false, cutoff).
		Updates(map[string]any{
			"dead_stock": true,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark dead stock")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		UserID:         data.UserID,
		SupplierCode:   data.SupplierCode,
		BatchNumber:    data.BatchNumber,
		Name:           data.ProductName,
		ProductCode:    data.ProductCode,
		Category:       data.Category,
		Brand:          data.Brand,
		PurchasePrice:  data.PurchasePrice,
		ListingPrice:   data.ListingPrice,
		Units:          data.Units,
		DateOfPurchase: utcPtr(data.DateOfPurchase),
		DeadStock:      data.DeadStock,
		CreatedAt:      data.CreatedAt.UTC(),
		UpdatedAt:      data.UpdatedAt.UTC(),
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		UserID:         data.UserID,
		SupplierCode:   data.SupplierCode,
		BatchNumber:    data.BatchNumber,
		ProductName:    data.Name,
		ProductCode:    data.ProductCode,
		Category:       data.Category,
		Brand:          data.Brand,
		PurchasePrice:  data.PurchasePrice,
		ListingPrice:   data.ListingPrice,
		Units:          data.Units,
		DateOfPurchase: utcPtr(data.DateOfPurchase),
		DeadStock:      data.DeadStock,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()

	return &v
}
