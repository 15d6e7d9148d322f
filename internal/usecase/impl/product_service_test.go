package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/infra/qrcode"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductService(fx *inventoryFixtures) usecase.ProductUsecase {
	return NewProductService(ProductServiceParams{
		TxManager:    fx.txManager,
		ProductRepo:  fx.productRepo,
		MovementRepo: fx.movementRepo,
		Labels:       qrcode.NewLabelService(nil),
		Logger:       newDiscardLogger(),
	})
}

func productInput(code string) usecase.ProductInput {
	purchased := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	return usecase.ProductInput{
		SupplierCode:   "SUP-1",
		BatchNumber:    "B-1",
		Name:           "Crate",
		ProductCode:    code,
		Category:       "storage",
		Brand:          "Acme",
		PurchasePrice:  decimal.RequireFromString("12.30"),
		ListingPrice:   decimal.RequireFromString("20.00"),
		DateOfPurchase: &purchased,
	}
}

func TestProductService_CreateGetUpdate(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestProductService(fx)
	ctx := context.Background()

	created, err := svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput("CR-1"), Units: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, created.Units)
	assert.False(t, created.DeadStock)

	got, err := svc.Get(ctx, fx.user.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("12.3")))

	update := productInput("CR-1")
	update.Name = "Large crate"
	update.DateOfPurchase = nil
	updated, err := svc.Update(ctx, fx.user.ID, created.ID, &update)
	require.NoError(t, err)
	assert.Equal(t, "Large crate", updated.Name)
	assert.Nil(t, updated.DateOfPurchase)
	assert.Equal(t, 12, updated.Units)
}

func TestProductService_Validation(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestProductService(fx)
	ctx := context.Background()

	negativeUnits := &usecase.CreateProductInput{ProductInput: productInput("X"), Units: -1}
	_, err := svc.Create(ctx, fx.user.ID, negativeUnits)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	missingCode := &usecase.CreateProductInput{ProductInput: productInput("")}
	_, err = svc.Create(ctx, fx.user.ID, missingCode)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	negativePrice := &usecase.CreateProductInput{ProductInput: productInput("Y")}
	negativePrice.ListingPrice = decimal.NewFromInt(-1)
	_, err = svc.Create(ctx, fx.user.ID, negativePrice)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput("DUP")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput("DUP")})
	assert.True(t, errors.Is(err, domainerrors.ErrProductCodeExists))
}

func TestProductService_OwnershipIsEnforced(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestProductService(fx)
	ctx := context.Background()
	stranger := uuid.New()

	created, err := svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput("OWN"), Units: 1})
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	update := productInput("OWN")
	_, err = svc.Update(ctx, stranger, created.ID, &update)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	assert.True(t, errors.Is(svc.Delete(ctx, stranger, created.ID), domainerrors.ErrForbidden))

	_, err = svc.Movements(ctx, stranger, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = svc.Get(ctx, fx.user.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteRemovesDeliveries(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestProductService(fx)
	ctx := context.Background()
	fx.addPartner(t, "swift")

	created, err := svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput("DEL"), Units: 5})
	require.NoError(t, err)
	_, err = fx.deliveries.Create(ctx, deliveryInput("DEL", "swift", 2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, fx.user.ID, created.ID))
	assert.Zero(t, fx.deliveryCount(t))

	_, err = svc.Get(ctx, fx.user.ID, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ListPaginates(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestProductService(fx)
	ctx := context.Background()

	for _, code := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput(code)})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, fx.user.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := svc.List(ctx, fx.user.ID, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	others, err := svc.List(ctx, uuid.New(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestProductService_LabelAndMovements(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := newTestProductService(fx)
	ctx := context.Background()
	fx.addPartner(t, "swift")

	created, err := svc.Create(ctx, fx.user.ID, &usecase.CreateProductInput{ProductInput: productInput("LBL"), Units: 5})
	require.NoError(t, err)

	png, err := svc.Label(ctx, uuid.New(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	_, err = fx.deliveries.Create(ctx, deliveryInput("LBL", "swift", 2))
	require.NoError(t, err)

	movements, err := svc.Movements(ctx, fx.user.ID, created.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, -2, movements[0].Delta)
}

func TestPartnerService(t *testing.T) {
	fx := createInventoryFixtures(t)
	svc := NewPartnerService(fx.partnerRepo, newDiscardLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreatePartnerInput{Name: " swift ", ContactInfo: "ops@swift.example"})
	require.NoError(t, err)
	assert.Equal(t, "swift", created.Name)

	_, err = svc.Create(ctx, &usecase.CreatePartnerInput{Name: "swift"})
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerNameExists))

	_, err = svc.Create(ctx, &usecase.CreatePartnerInput{Name: "  "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ops@swift.example", got.ContactInfo)

	partners, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, 1)

	_, err = svc.Get(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerNotFound))
}
