// Package scheduler runs the inventory sweeps periodically inside the service.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"inventory/config"
	"inventory/internal/delivery"
	"inventory/internal/domain/lifecycle"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"github.com/juju/clock"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the sweep scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	DeadStock     usecase.DeadStockSweeper
	StaleDelivery usecase.StaleDeliverySweeper
	Clock         clock.Clock `optional:"true"`
}

type sweepScheduler struct {
	enabled       bool
	interval      time.Duration
	clock         clock.Clock
	deadStock     usecase.DeadStockSweeper
	staleDelivery usecase.StaleDeliverySweeper
	logger        *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewScheduler creates the scheduler and registers its shutdown with the lifecycle.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s := newScheduler(params)
	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(params Params) *sweepScheduler {
	clk := params.Clock
	if clk == nil {
		clk = clock.WallClock
	}

	s := &sweepScheduler{
		clock:         clk,
		deadStock:     params.DeadStock,
		staleDelivery: params.StaleDelivery,
		logger:        params.Logger.With(slog.String("component", "sweep_scheduler")),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	if params.Cfg != nil && params.Cfg.Sweeper != nil {
		s.enabled = params.Cfg.Sweeper.Enabled && params.Cfg.Sweeper.Interval > 0
		s.interval = params.Cfg.Sweeper.Interval
	}

	return s
}

// Serve runs both sweeps every interval until the scheduler is stopped.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	if !s.enabled {
		s.logger.Info("Sweep scheduler disabled")

		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.logger.Info("Starting sweep scheduler", slog.String("interval", util.FormatDuration(s.interval)))
	timer := s.clock.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-runCtx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-timer.Chan():
			s.runOnce(runCtx)
			timer.Reset(s.interval)
		}
	}
}

func (s *sweepScheduler) runOnce(ctx context.Context) {
	started := s.clock.Now()
	asOf := started.UTC()
	defer func() {
		s.logger.Debug("Scheduled sweeps took", slog.String("elapsed", util.FormatDuration(s.clock.Now().Sub(started))))
	}()

	deadStock, err := s.deadStock.Run(ctx, &usecase.DeadStockSweepInput{AsOf: asOf})
	if err != nil {
		s.logger.Error("Scheduled dead-stock sweep failed", slog.Any("error", err))
	} else {
		s.logger.Info("Scheduled dead-stock sweep finished",
			slog.Int64("flagged", deadStock.Count),
			slog.Time("cutoff", deadStock.Cutoff),
		)
	}

	stale, err := s.staleDelivery.Run(ctx, &usecase.StaleDeliverySweepInput{AsOf: asOf})
	if err != nil {
		s.logger.Error("Scheduled stale-delivery sweep failed", slog.Any("error", err))
	} else {
		s.logger.Info("Scheduled stale-delivery sweep finished",
			slog.Int64("cancelled", stale.Count),
			slog.Time("cutoff", stale.Cutoff),
		)
	}
}

// stop signals the loop and waits for a running sweep to finish.
func (s *sweepScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	if !s.enabled {
		return nil
	}

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down sweep scheduler")
	select {
	case <-s.doneCh:
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "sweep scheduler did not stop in time")
	}
}
