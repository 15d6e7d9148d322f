package usecase

import (
	"context"
	"time"
)

// DeadStockSweepInput parameterises a dead-stock sweep. Zero values fall back to now and the configured threshold.
type DeadStockSweepInput struct {
	AsOf          time.Time
	ThresholdDays *int
}

// StaleDeliverySweepInput parameterises a stale-delivery sweep. Zero values fall back to now and the configured age.
type StaleDeliverySweepInput struct {
	AsOf       time.Time
	MaxAgeDays *int
}

// SweepResult reports what a sweep changed.
type SweepResult struct {
	Count  int64     `json:"count"`
	AsOf   time.Time `json:"as_of"`
	Cutoff time.Time `json:"cutoff"`
}

// DeadStockSweeper flags products purchased longer ago than the threshold.
type DeadStockSweeper interface {
	Run(ctx context.Context, input *DeadStockSweepInput) (*SweepResult, error)
}

// StaleDeliverySweeper cancels in-transit deliveries older than the maximum age and releases their stock.
type StaleDeliverySweeper interface {
	Run(ctx context.Context, input *StaleDeliverySweepInput) (*SweepResult, error)
}
