package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a stocked item. Units is the number of units currently available for delivery.
type Product struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"` // Owning user.
	SupplierCode   string          `json:"supplier_code"`
	BatchNumber    string          `json:"batch_number"`
	Name           string          `json:"product_name"`
	ProductCode    string          `json:"product_code"` // Unique, human-readable key used by deliveries.
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	ListingPrice   decimal.Decimal `json:"listing_price"`
	Units          int             `json:"units"`
	DateOfPurchase *time.Time      `json:"date_of_purchase,omitempty"`
	DeadStock      bool            `json:"dead_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsDeadStockAt reports whether the product would be flagged by a dead-stock sweep at asOf.
// Products without a purchase date are never dead stock.
func (p *Product) IsDeadStockAt(asOf time.Time, thresholdDays int) bool {
	if p.DateOfPurchase == nil {
		return false
	}

	return p.DateOfPurchase.Before(DaysBefore(asOf, thresholdDays))
}

// DaysBefore returns the instant exactly days*24h before t.
func DaysBefore(t time.Time, days int) time.Time {
	return t.Add(-time.Duration(days) * 24 * time.Hour)
}
