package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery moves Quantity units of a product to an address through a partner.
// Creating it reserves the units; cancelling it releases them.
type Delivery struct {
	ID        uuid.UUID      `json:"id"`
	ProductID uuid.UUID      `json:"product_id"`
	PartnerID uuid.UUID      `json:"partner_id"`
	Quantity  int            `json:"quantity"`
	Address   string         `json:"address"`
	Status    DeliveryStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// IsStaleAt reports whether the delivery would be cancelled by a stale-delivery sweep at asOf.
func (d *Delivery) IsStaleAt(asOf time.Time, maxAgeDays int) bool {
	return !d.Status.IsTerminal() && d.CreatedAt.Before(DaysBefore(asOf, maxAgeDays))
}
