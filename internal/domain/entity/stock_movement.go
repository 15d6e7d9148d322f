package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockMovementReason tells why a product's units changed.
type StockMovementReason string

const (
	StockMovementReserve StockMovementReason = "reserve"
	StockMovementRelease StockMovementReason = "release"
)

// StockMovement is one audited change of a product's units. Delta is negative for reservations.
type StockMovement struct {
	ID         uuid.UUID           `json:"id"`
	ProductID  uuid.UUID           `json:"product_id"`
	DeliveryID *uuid.UUID          `json:"delivery_id,omitempty"`
	Delta      int                 `json:"delta"`
	UnitsAfter int                 `json:"units_after"`
	Reason     StockMovementReason `json:"reason"`
	CreatedAt  time.Time           `json:"created_at"`
}
