package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovementModel mirrors the 'stock_movements' table.
type StockMovementModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryID *uuid.UUID `gorm:"type:uuid;index"`
	Delta      int        `gorm:"not null"`
	UnitsAfter int        `gorm:"not null"`
	Reason     string     `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *StockMovementModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every persistence model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&DeliveryPartnerModel{},
		&DeliveryModel{},
		&DocumentModel{},
		&StockMovementModel{},
	}
}
