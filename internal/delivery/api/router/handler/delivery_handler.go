package handler

import (
	"context"
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler serves the delivery workflow endpoints.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// CreateDeliveryRequest represents the request body for starting a delivery.
type CreateDeliveryRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	PartnerName string `json:"partner_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Address     string `json:"address" validate:"required,max=512"`
}

// Create reserves stock and starts a delivery.
func (h *DeliveryHandler) Create(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.deliveryUC.Create(c.Request().Context(), &usecase.CreateDeliveryInput{
		ProductCode: req.ProductCode,
		PartnerName: req.PartnerName,
		Quantity:    req.Quantity,
		Address:     req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// List returns every delivery, newest first.
func (h *DeliveryHandler) List(c echo.Context) error {
	views, err := h.deliveryUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views)
}

// Get returns one delivery.
func (h *DeliveryHandler) Get(c echo.Context) error {
	return h.withDelivery(c, http.StatusOK, h.deliveryUC.Get)
}

// MarkDelivered completes an in-transit delivery.
func (h *DeliveryHandler) MarkDelivered(c echo.Context) error {
	return h.withDelivery(c, http.StatusOK, h.deliveryUC.MarkDelivered)
}

// Cancel aborts an in-transit delivery and returns its units to stock.
func (h *DeliveryHandler) Cancel(c echo.Context) error {
	return h.withDelivery(c, http.StatusOK, h.deliveryUC.Cancel)
}

type deliveryOperation func(ctx context.Context, id uuid.UUID) (*repository.DeliveryView, error)

func (h *DeliveryHandler) withDelivery(c echo.Context, status int, op deliveryOperation) error {
	deliveryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := op(c.Request().Context(), deliveryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, status, view)
}
