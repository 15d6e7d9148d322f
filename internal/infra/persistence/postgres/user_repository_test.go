package postgres

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateFindDuplicate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	user := seedUser(t, db)

	found, err := repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	err = repo.Create(ctx, &entity.User{Username: "again", Email: user.Email, PasswordHash: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserRepository_DeleteRemovesOwnedRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	product := seedProduct(t, db, user.ID, "OWNED", 4, nil)
	partner := seedPartner(t, db, "swift")
	delivery := seedDelivery(t, db, product.ID, partner.ID, 1, time.Now().UTC())
	require.NoError(t, NewDocumentRepository(db).Create(ctx, &entity.Document{
		UserID:     user.ID,
		Filename:   "invoice.pdf",
		MediaType:  "application/pdf",
		StorageKey: "documents/" + user.ID.String() + "/invoice",
		Size:       3,
		Checksum:   "abc",
		UploadedAt: time.Now().UTC(),
	}))

	require.NoError(t, NewUserRepository(db).Delete(ctx, user.ID))

	_, err := NewProductRepository(db).FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	_, err = NewDeliveryRepository(db).FindByID(ctx, delivery.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
	docs, err := NewDocumentRepository(db).ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = NewPartnerRepository(db).FindByName(ctx, "swift")
	assert.NoError(t, err, "partners are shared and survive account deletion")

	assert.ErrorIs(t, NewUserRepository(db).Delete(ctx, user.ID), domainerrors.ErrUserNotFound)
}

func TestPartnerRepository_UniqueName(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedPartner(t, db, "bravo")
	seedPartner(t, db, "alpha")
	repo := NewPartnerRepository(db)

	err := repo.Create(ctx, &entity.DeliveryPartner{Name: "alpha"})
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNameExists)

	partners, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "alpha", partners[0].Name)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	product := seedProduct(t, db, user.ID, "TX", 5, nil)
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ok, err := factory.NewProductRepository().DecrementUnits(ctx, product.ID, 5)
		require.NoError(t, err)
		require.True(t, ok)

		return domainerrors.ErrInsufficientStock
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	reloaded, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Units)
}
