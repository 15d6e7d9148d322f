package impl

import (
	"context"
	"log/slog"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deadStockSweeper struct {
	txManager     repository.TransactionManager
	thresholdDays int
	logger        *slog.Logger
	now           func() time.Time
}

// DeadStockSweeperParams holds dependencies for the dead-stock sweeper, injected by Fx.
type DeadStockSweeperParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDeadStockSweeper is the constructor for deadStockSweeper.
func NewDeadStockSweeper(params DeadStockSweeperParams) usecase.DeadStockSweeper {
	thresholdDays := constants.DefaultDeadStockDays
	if params.Config != nil && params.Config.Sweeper != nil && params.Config.Sweeper.DeadStockDays > 0 {
		thresholdDays = params.Config.Sweeper.DeadStockDays
	}

	return &deadStockSweeper{
		txManager:     params.TxManager,
		thresholdDays: thresholdDays,
		logger:        params.Logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Run flags every unflagged product purchased before asOf minus the threshold with one update.
func (s *deadStockSweeper) Run(ctx context.Context, input *usecase.DeadStockSweepInput) (*usecase.SweepResult, error) {
	if input == nil {
		input = &usecase.DeadStockSweepInput{}
	}

	asOf, days, err := resolveSweepWindow(s.now, input.AsOf, input.ThresholdDays, s.thresholdDays)
	if err != nil {
		return nil, err
	}
	cutoff := entity.DaysBefore(asOf, days)

	var flagged int64
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		flagged, err = repoFactory.NewProductRepository().MarkDeadStock(ctx, cutoff)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to run dead-stock sweep")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Dead-stock sweep finished",
		slog.Time("as_of", asOf),
		slog.Int("threshold_days", days),
		slog.Int64("flagged", flagged),
	)

	return &usecase.SweepResult{Count: flagged, AsOf: asOf, Cutoff: cutoff}, nil
}

// resolveSweepWindow applies the defaults shared by both sweeps.
func resolveSweepWindow(now func() time.Time, asOf time.Time, days *int, defaultDays int) (time.Time, int, error) {
	if asOf.IsZero() {
		asOf = now()
	}

	resolved := defaultDays
	if days != nil {
		if *days < 0 {
			return time.Time{}, 0, errors.Wrap(domainerrors.ErrValidationFailed, "day threshold must not be negative")
		}
		resolved = *days
	}

	return asOf.UTC(), resolved, nil
}
