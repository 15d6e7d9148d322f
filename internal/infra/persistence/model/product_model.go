package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. The units check keeps stock non-negative even for writes
// that bypass the guarded decrement.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierCode   string          `gorm:"type:varchar(100)"`
	BatchNumber    string          `gorm:"type:varchar(100)"`
	ProductName    string          `gorm:"type:varchar(255);not null"`
	ProductCode    string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Category       string          `gorm:"type:varchar(100)"`
	Brand          string          `gorm:"type:varchar(100)"`
	PurchasePrice  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ListingPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Units          int             `gorm:"not null;default:0;check:chk_products_units_non_negative,units >= 0"`
	DateOfPurchase *time.Time      `gorm:"index"`
	DeadStock      bool            `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Deliveries     []DeliveryModel      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	StockMovements []StockMovementModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
