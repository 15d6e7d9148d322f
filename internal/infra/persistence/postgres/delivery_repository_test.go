package postgres

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRepository_CompareAndSetStatus(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	product := seedProduct(t, db, user.ID, "P", 10, nil)
	partner := seedPartner(t, db, "swift")
	delivery := seedDelivery(t, db, product.ID, partner.ID, 2, time.Now().UTC())
	repo := NewDeliveryRepository(db)

	ok, err := repo.CompareAndSetStatus(ctx, delivery.ID, entity.DeliveryStatusInTransit, entity.DeliveryStatusDelivered)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompareAndSetStatus(ctx, delivery.ID, entity.DeliveryStatusInTransit, entity.DeliveryStatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok, "a terminal delivery must not transition again")

	reloaded, err := repo.FindByID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDelivered, reloaded.Status)

	ok, err = repo.CompareAndSetStatus(ctx, uuid.New(), entity.DeliveryStatusInTransit, entity.DeliveryStatusDelivered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeliveryRepository_Views(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	product := seedProduct(t, db, user.ID, "CODE-7", 10, nil)
	partner := seedPartner(t, db, "swift")
	now := time.Now().UTC()
	older := seedDelivery(t, db, product.ID, partner.ID, 1, now.Add(-time.Hour))
	newer := seedDelivery(t, db, product.ID, partner.ID, 2, now)
	repo := NewDeliveryRepository(db)

	view, err := repo.FindView(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "CODE-7", view.ProductCode)
	assert.Equal(t, "swift", view.PartnerName)
	assert.Equal(t, 1, view.Quantity)
	assert.Equal(t, entity.DeliveryStatusInTransit, view.Status)

	views, err := repo.ListViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer.ID, views[0].ID)
	assert.Equal(t, older.ID, views[1].ID)

	_, err = repo.FindView(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
}

func TestDeliveryRepository_FindStale(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	product := seedProduct(t, db, user.ID, "P", 10, nil)
	partner := seedPartner(t, db, "swift")
	asOf := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	cutoff := asOf.Add(-6 * 24 * time.Hour)

	stale := seedDelivery(t, db, product.ID, partner.ID, 1, cutoff.Add(-time.Minute))
	seedDelivery(t, db, product.ID, partner.ID, 1, cutoff)
	seedDelivery(t, db, product.ID, partner.ID, 1, asOf.Add(-time.Hour))
	delivered := seedDelivery(t, db, product.ID, partner.ID, 1, cutoff.Add(-48*time.Hour))

	repo := NewDeliveryRepository(db)
	_, err := repo.CompareAndSetStatus(ctx, delivered.ID, entity.DeliveryStatusInTransit, entity.DeliveryStatusDelivered)
	require.NoError(t, err)

	found, err := repo.FindStale(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, stale.ID, found[0].ID)
}

func TestDeliveryRepository_Create_UnknownReferences(t *testing.T) {
	db := openTestDB(t)

	err := NewDeliveryRepository(db).Create(context.Background(), &entity.Delivery{
		ProductID: uuid.New(),
		PartnerID: uuid.New(),
		Quantity:  1,
		Address:   "nowhere",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}
