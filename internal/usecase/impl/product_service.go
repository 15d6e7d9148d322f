package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	labels       service.LabelService
	logger       *slog.Logger
	now          func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	MovementRepo repository.StockMovementRepository
	Labels       service.LabelService
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		movementRepo: params.MovementRepo,
		labels:       params.Labels,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new product with its opening unit count.
func (srv *productService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product input is required")
	}
	if err := validateProductInput(&input.ProductInput); err != nil {
		return nil, err
	}
	if input.Units < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "units must not be negative")
	}

	now := srv.now()
	product := &entity.Product{UserID: userID, Units: input.Units, CreatedAt: now, UpdatedAt: now}
	applyProductInput(product, &input.ProductInput)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("product_code", product.ProductCode),
		slog.Int("units", product.Units),
	)

	return product, nil
}

// Get returns a product owned by userID.
func (srv *productService) Get(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	return srv.findOwned(ctx, srv.productRepo, userID, productID)
}

// List returns a page of the user's products.
func (srv *productService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Product, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}

	products, err := srv.productRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Update rewrites the descriptive fields of an owned product.
func (srv *productService) Update(ctx context.Context, userID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product input is required")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products := repoFactory.NewProductRepository()

		product, err := srv.findOwned(ctx, products, userID, productID)
		if err != nil {
			return err
		}

		applyProductInput(product, input)
		product.UpdatedAt = srv.now()
		if err := products.UpdateDetails(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated, err = products.FindByID(ctx, productID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

// Delete removes an owned product together with its deliveries.
func (srv *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products := repoFactory.NewProductRepository()
		if _, err := srv.findOwned(ctx, products, userID, productID); err != nil {
			return err
		}

		return products.Delete(ctx, productID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", productID.String()))

	return nil
}

// Label renders the QR label of any product. Labels carry no owner data, so no ownership check applies.
func (srv *productService) Label(ctx context.Context, _ uuid.UUID, productID uuid.UUID) ([]byte, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product for label")
	}

	png, err := srv.labels.GenerateProductLabel(product)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// Movements returns the stock audit trail of an owned product.
func (srv *productService) Movements(ctx context.Context, userID, productID uuid.UUID) ([]*entity.StockMovement, error) {
	if _, err := srv.findOwned(ctx, srv.productRepo, userID, productID); err != nil {
		return nil, err
	}

	movements, err := srv.movementRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock movements")
	}

	return movements, nil
}

func (srv *productService) findOwned(ctx context.Context, products repository.ProductRepository, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := products.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "product belongs to another user")
	}

	return product, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "product_name is required")
	case strings.TrimSpace(input.ProductCode) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "product_code is required")
	case input.PurchasePrice.IsNegative() || input.ListingPrice.IsNegative():
		return errors.Wrap(domainerrors.ErrValidationFailed, "prices must not be negative")
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.SupplierCode = input.SupplierCode
	product.BatchNumber = input.BatchNumber
	product.Name = strings.TrimSpace(input.Name)
	product.ProductCode = strings.TrimSpace(input.ProductCode)
	product.Category = input.Category
	product.Brand = input.Brand
	product.PurchasePrice = input.PurchasePrice
	product.ListingPrice = input.ListingPrice
	if input.DateOfPurchase != nil {
		purchased := input.DateOfPurchase.UTC()
		product.DateOfPurchase = &purchased
	} else {
		product.DateOfPurchase = nil
	}
}
