package postgres

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     "keeper",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, userID uuid.UUID, code string, units int, purchased *time.Time) *entity.Product {
	t.Helper()

	product := seedProductTemplate(userID, code)
	product.Units = units
	product.DateOfPurchase = purchased
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func seedProductTemplate(userID uuid.UUID, code string) *entity.Product {
	return &entity.Product{
		UserID:        userID,
		Name:          "Widget " + code,
		ProductCode:   code,
		PurchasePrice: decimal.RequireFromString("10.50"),
		ListingPrice:  decimal.RequireFromString("19.99"),
	}
}

func seedPartner(t *testing.T, db *gorm.DB, name string) *entity.DeliveryPartner {
	t.Helper()

	partner := &entity.DeliveryPartner{Name: name, ContactInfo: "dispatch@" + name + ".example"}
	require.NoError(t, NewPartnerRepository(db).Create(context.Background(), partner))

	return partner
}

func seedDelivery(t *testing.T, db *gorm.DB, productID, partnerID uuid.UUID, quantity int, createdAt time.Time) *entity.Delivery {
	t.Helper()

	delivery := &entity.Delivery{
		ProductID: productID,
		PartnerID: partnerID,
		Quantity:  quantity,
		Address:   "1 Harbour Road",
		Status:    entity.DeliveryStatusInTransit,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, NewDeliveryRepository(db).Create(context.Background(), delivery))

	return delivery
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return sqlitetest.Open(t)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
