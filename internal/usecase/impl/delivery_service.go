package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DeliveryRepo repository.DeliveryRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    params.TxManager,
		deliveryRepo: params.DeliveryRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create resolves the product and partner, reserves stock and inserts the delivery in one transaction.
func (srv *deliveryService) Create(ctx context.Context, input *usecase.CreateDeliveryInput) (*repository.DeliveryView, error) {
	if err := validateCreateDelivery(input); err != nil {
		return nil, err
	}

	deliveryID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate delivery ID")
	}

	var view *repository.DeliveryView
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.NewProductRepository().FindByCode(ctx, input.ProductCode)
		if err != nil {
			return errors.Wrap(err, "failed to resolve product")
		}

		partner, err := repoFactory.NewPartnerRepository().FindByName(ctx, input.PartnerName)
		if err != nil {
			return errors.Wrap(err, "failed to resolve partner")
		}

		if err := NewStockLedger(repoFactory).Reserve(ctx, product.ID, input.Quantity, &deliveryID); err != nil {
			return err
		}

		now := srv.now()
		deliveries := repoFactory.NewDeliveryRepository()
		if err := deliveries.Create(ctx, &entity.Delivery{
			ID:        deliveryID,
			ProductID: product.ID,
			PartnerID: partner.ID,
			Quantity:  input.Quantity,
			Address:   input.Address,
			Status:    entity.DeliveryStatusInTransit,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return errors.Wrap(err, "failed to create delivery")
		}

		view, err = deliveries.FindView(ctx, deliveryID)

		return errors.Wrap(err, "failed to load created delivery")
	})
	if err != nil {
		srv.log(ctx).Warn("Delivery creation failed",
			slog.String("product_code", input.ProductCode),
			slog.String("partner_name", input.PartnerName),
			slog.Int("quantity", input.Quantity),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create delivery")
	}

	srv.log(ctx).Info("Delivery created",
		slog.String("delivery_id", view.ID.String()),
		slog.String("product_code", view.ProductCode),
		slog.Int("quantity", view.Quantity),
	)
	publishDeliveryEvent(ctx, srv.log(ctx), srv.publisher, view, service.DeliveryEventCreated, "")

	return view, nil
}

// MarkDelivered moves an in-transit delivery to delivered.
func (srv *deliveryService) MarkDelivered(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error) {
	view, err := srv.transition(ctx, id, entity.DeliveryStatusDelivered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark delivery as delivered")
	}

	publishDeliveryEvent(ctx, srv.log(ctx), srv.publisher, view, service.DeliveryEventDelivered, "")

	return view, nil
}

// Cancel moves an in-transit delivery to cancelled and releases its units.
func (srv *deliveryService) Cancel(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error) {
	view, err := srv.transition(ctx, id, entity.DeliveryStatusCancelled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel delivery")
	}

	publishDeliveryEvent(ctx, srv.log(ctx), srv.publisher, view, service.DeliveryEventCancelled, "")

	return view, nil
}

func (srv *deliveryService) transition(ctx context.Context, id uuid.UUID, to entity.DeliveryStatus) (*repository.DeliveryView, error) {
	var view *repository.DeliveryView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveries := repoFactory.NewDeliveryRepository()

		delivery, err := deliveries.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load delivery")
		}

		if err := cancelOrComplete(ctx, repoFactory, delivery, to); err != nil {
			return err
		}

		view, err = deliveries.FindView(ctx, id)

		return errors.Wrap(err, "failed to load delivery view")
	})
	if err != nil {
		srv.log(ctx).Warn("Delivery transition rejected",
			slog.String("delivery_id", id.String()),
			slog.String("to", to.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Delivery status changed",
		slog.String("delivery_id", id.String()),
		slog.String("status", to.String()),
	)

	return view, nil
}

// Get returns the read view of a delivery.
func (srv *deliveryService) Get(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error) {
	view, err := srv.deliveryRepo.FindView(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get delivery")
	}

	return view, nil
}

// ListAll returns every delivery, newest first.
func (srv *deliveryService) ListAll(ctx context.Context) ([]*repository.DeliveryView, error) {
	views, err := srv.deliveryRepo.ListViews(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return views, nil
}

// cancelOrComplete applies a terminal transition with a status compare-and-set.
// Cancellation releases the reserved units in the same transaction.
func cancelOrComplete(ctx context.Context, repoFactory repository.RepositoryFactory, delivery *entity.Delivery, to entity.DeliveryStatus) error {
	if !delivery.Status.CanTransitionTo(to) {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "delivery is %s", delivery.Status)
	}

	swapped, err := repoFactory.NewDeliveryRepository().CompareAndSetStatus(ctx, delivery.ID, delivery.Status, to)
	if err != nil {
		return errors.Wrap(err, "failed to update delivery status")
	}
	if !swapped {
		return errors.Wrap(domainerrors.ErrInvalidTransition, "delivery status changed concurrently")
	}

	if to == entity.DeliveryStatusCancelled {
		if err := NewStockLedger(repoFactory).Release(ctx, delivery.ProductID, delivery.Quantity, &delivery.ID); err != nil {
			return err
		}
	}

	return nil
}

func validateCreateDelivery(input *usecase.CreateDeliveryInput) error {
	switch {
	case input == nil:
		return errors.Wrap(domainerrors.ErrValidationFailed, "delivery input is required")
	case strings.TrimSpace(input.ProductCode) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "product_code is required")
	case strings.TrimSpace(input.PartnerName) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "partner_name is required")
	case strings.TrimSpace(input.Address) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "address is required")
	case input.Quantity <= 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	return nil
}

// publishDeliveryEvent emits an event for a committed transition. Failures are logged only.
func publishDeliveryEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, view *repository.DeliveryView, eventType, reason string) {
	if publisher == nil || view == nil {
		return
	}

	event := &service.DeliveryEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   eventType,
		DeliveryID:  view.ID.String(),
		ProductCode: view.ProductCode,
		PartnerName: view.PartnerName,
		Quantity:    view.Quantity,
		Status:      view.Status.String(),
		Reason:      reason,
		OccurredAt:  view.UpdatedAt,
	}

	if err := publisher.PublishDeliveryEvent(ctx, event); err != nil {
		logger.Error("Failed to publish delivery event",
			slog.String("event_type", eventType),
			slog.String("delivery_id", event.DeliveryID),
			slog.Any("error", err),
		)
	}
}
