package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from DeliveryStatus
		to   DeliveryStatus
		want bool
	}{
		{DeliveryStatusInTransit, DeliveryStatusDelivered, true},
		{DeliveryStatusInTransit, DeliveryStatusCancelled, true},
		{DeliveryStatusInTransit, DeliveryStatusInTransit, false},
		{DeliveryStatusDelivered, DeliveryStatusCancelled, false},
		{DeliveryStatusCancelled, DeliveryStatusDelivered, false},
		{DeliveryStatusCancelled, DeliveryStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDeliveryStatus_IsValid(t *testing.T) {
	assert.True(t, DeliveryStatusInTransit.IsValid())
	assert.True(t, DeliveryStatusDelivered.IsValid())
	assert.True(t, DeliveryStatusCancelled.IsValid())
	assert.False(t, DeliveryStatus("lost").IsValid())
}

func TestDelivery_IsStaleAt(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	delivery := &Delivery{Status: DeliveryStatusInTransit, CreatedAt: createdAt}

	assert.True(t, delivery.IsStaleAt(createdAt.AddDate(0, 0, 7), 6))
	assert.False(t, delivery.IsStaleAt(createdAt.AddDate(0, 0, 5), 6))

	delivery.Status = DeliveryStatusDelivered
	assert.False(t, delivery.IsStaleAt(createdAt.AddDate(0, 0, 30), 6))
}

func TestProduct_IsDeadStockAt(t *testing.T) {
	purchased := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	product := &Product{DateOfPurchase: &purchased}

	assert.True(t, product.IsDeadStockAt(purchased.AddDate(0, 0, 181), 180))
	assert.False(t, product.IsDeadStockAt(purchased.AddDate(0, 0, 179), 180))

	product.DateOfPurchase = nil
	assert.False(t, product.IsDeadStockAt(purchased.AddDate(10, 0, 0), 180))
}
