package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryPartnerModel mirrors the 'delivery_partners' table.
// A partner that still has deliveries cannot be removed.
type DeliveryPartnerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ContactInfo string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time

	Deliveries []DeliveryModel `gorm:"foreignKey:PartnerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPartnerModel) TableName() string {
	return "delivery_partners"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *DeliveryPartnerModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
