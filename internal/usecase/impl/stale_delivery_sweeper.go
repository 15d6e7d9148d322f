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
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const staleCancellationReason = "stale"

type staleDeliverySweeper struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	publisher    service.EventPublisher
	maxAgeDays   int
	logger       *slog.Logger
	now          func() time.Time
}

// StaleDeliverySweeperParams holds dependencies for the stale-delivery sweeper, injected by Fx.
type StaleDeliverySweeperParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DeliveryRepo repository.DeliveryRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStaleDeliverySweeper is the constructor for staleDeliverySweeper.
func NewStaleDeliverySweeper(params StaleDeliverySweeperParams) usecase.StaleDeliverySweeper {
	maxAgeDays := constants.DefaultStaleDeliveryDays
	if params.Config != nil && params.Config.Sweeper != nil && params.Config.Sweeper.StaleDeliveryDays > 0 {
		maxAgeDays = params.Config.Sweeper.StaleDeliveryDays
	}

	return &staleDeliverySweeper{
		txManager:    params.TxManager,
		deliveryRepo: params.DeliveryRepo,
		publisher:    params.Publisher,
		maxAgeDays:   maxAgeDays,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Run cancels each stale delivery in its own transaction. A delivery that changed status after
// it was selected is skipped, so re-running never releases stock twice.
func (s *staleDeliverySweeper) Run(ctx context.Context, input *usecase.StaleDeliverySweepInput) (*usecase.SweepResult, error) {
	if input == nil {
		input = &usecase.StaleDeliverySweepInput{}
	}

	asOf, days, err := resolveSweepWindow(s.now, input.AsOf, input.MaxAgeDays, s.maxAgeDays)
	if err != nil {
		return nil, err
	}
	cutoff := entity.DaysBefore(asOf, days)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	candidates, err := s.deliveryRepo.FindStale(ctx, cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select stale deliveries")
	}

	var cancelled int64
	for _, candidate := range candidates {
		view, err := s.cancelOne(ctx, candidate.ID)
		if errors.IsAny(err, domainerrors.ErrInvalidTransition, domainerrors.ErrDeliveryNotFound) {
			logger.Debug("Stale delivery no longer in transit, skipping", slog.String("delivery_id", candidate.ID.String()))

			continue
		}
		if err != nil {
			logger.Error("Stale-delivery sweep aborted",
				slog.String("delivery_id", candidate.ID.String()),
				slog.Int64("cancelled", cancelled),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(err, "failed to cancel stale delivery")
		}

		cancelled++
		publishDeliveryEvent(ctx, logger, s.publisher, view, service.DeliveryEventCancelled, staleCancellationReason)
	}

	logger.Info("Stale-delivery sweep finished",
		slog.Time("as_of", asOf),
		slog.Int("max_age_days", days),
		slog.Int("candidates", len(candidates)),
		slog.Int64("cancelled", cancelled),
	)

	return &usecase.SweepResult{Count: cancelled, AsOf: asOf, Cutoff: cutoff}, nil
}

func (s *staleDeliverySweeper) cancelOne(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error) {
	var view *repository.DeliveryView
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveries := repoFactory.NewDeliveryRepository()

		delivery, err := deliveries.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := cancelOrComplete(ctx, repoFactory, delivery, entity.DeliveryStatusCancelled); err != nil {
			return err
		}

		view, err = deliveries.FindView(ctx, id)

		return err
	})

	return view, err
}
