// Package qrcode renders product labels as QR code images.
package qrcode

import (
	"encoding/json"

	"inventory/config"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const productLabelType = "product"

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewLabelService creates a label service from the qrcode configuration section.
func NewLabelService(cfg *config.Config) service.LabelService {
	size, level := 0, ""
	if cfg != nil && cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newLabelService(size, level)
}

func newLabelService(size int, errorCorrectionLevel string) *labelService {
	if size <= 0 {
		size = 256
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProductLabel encodes the product code and batch number as a PNG QR code.
func (s *labelService) GenerateProductLabel(product *entity.Product) ([]byte, error) {
	if product == nil || product.ProductCode == "" {
		return nil, errors.New("product code is required for a label")
	}

	jsonData, err := json.Marshal(service.LabelPayload{
		Type:        productLabelType,
		ProductCode: product.ProductCode,
		BatchNumber: product.BatchNumber,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductLabel decodes scanned label text.
func (s *labelService) ParseProductLabel(data string) (*service.LabelPayload, error) {
	var payload service.LabelPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal label data")
	}

	if payload.Type != productLabelType {
		return nil, errors.Errorf("invalid label type: %s", payload.Type)
	}
	if payload.ProductCode == "" {
		return nil, errors.New("label has no product code")
	}

	return &payload, nil
}
