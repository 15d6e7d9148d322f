package service

import "inventory/internal/domain/entity"

// LabelPayload is the content encoded in a product label.
type LabelPayload struct {
	Type        string `json:"type"`
	ProductCode string `json:"product_code"`
	BatchNumber string `json:"batch_number,omitempty"`
}

// LabelService renders scannable product labels.
type LabelService interface {
	// GenerateProductLabel returns a PNG QR code identifying the product.
	GenerateProductLabel(product *entity.Product) ([]byte, error)

	// ParseProductLabel decodes the text read from a label back into its payload.
	ParseProductLabel(data string) (*LabelPayload, error)
}
