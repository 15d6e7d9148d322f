package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryModel mirrors the 'deliveries' table.
type DeliveryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:chk_deliveries_quantity_positive,quantity > 0"`
	Address   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:intransit;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *DeliveryModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// DeliveryViewRow is the scan target of the delivery/product/partner join.
type DeliveryViewRow struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductCode string
	PartnerID   uuid.UUID
	PartnerName string
	Quantity    int
	Address     string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
