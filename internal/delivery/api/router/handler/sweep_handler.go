package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SweepHandlerParams holds dependencies for SweepHandler, injected by Fx.
type SweepHandlerParams struct {
	fx.In

	DeadStock     usecase.DeadStockSweeper
	StaleDelivery usecase.StaleDeliverySweeper
	Logger        *slog.Logger
}

// SweepHandler triggers the batch sweeps on demand.
type SweepHandler struct {
	deadStock     usecase.DeadStockSweeper
	staleDelivery usecase.StaleDeliverySweeper
	logger        *slog.Logger
}

// NewSweepHandler is the constructor for SweepHandler.
func NewSweepHandler(params SweepHandlerParams) *SweepHandler {
	return &SweepHandler{
		deadStock:     params.DeadStock,
		staleDelivery: params.StaleDelivery,
		logger:        params.Logger,
	}
}

// DeadStockSweepRequest optionally overrides the sweep's reference time and threshold.
type DeadStockSweepRequest struct {
	AsOf          *Date `json:"as_of"`
	ThresholdDays *int  `json:"threshold_days" validate:"omitempty,gte=0"`
}

// StaleDeliverySweepRequest optionally overrides the sweep's reference time and maximum age.
type StaleDeliverySweepRequest struct {
	AsOf       *Date `json:"as_of"`
	MaxAgeDays *int  `json:"max_age_days" validate:"omitempty,gte=0"`
}

// RunDeadStock flags every product purchased before the cutoff.
func (h *SweepHandler) RunDeadStock(c echo.Context) error {
	var req DeadStockSweepRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.DeadStockSweepInput{ThresholdDays: req.ThresholdDays}
	if asOf := req.AsOf.Ptr(); asOf != nil {
		input.AsOf = *asOf
	}

	result, err := h.deadStock.Run(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RunStaleDeliveries cancels every in-transit delivery created before the cutoff.
func (h *SweepHandler) RunStaleDeliveries(c echo.Context) error {
	var req StaleDeliverySweepRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.StaleDeliverySweepInput{MaxAgeDays: req.MaxAgeDays}
	if asOf := req.AsOf.Ptr(); asOf != nil {
		input.AsOf = *asOf
	}

	result, err := h.staleDelivery.Run(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}
