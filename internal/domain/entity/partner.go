package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPartner is a carrier that deliveries are handed to. Partners are immutable once created.
type DeliveryPartner struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // Unique, human-readable key used by deliveries.
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
}
