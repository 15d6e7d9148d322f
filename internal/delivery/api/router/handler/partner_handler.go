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

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerUsecase
	Logger    *slog.Logger
}

// PartnerHandler serves the delivery partner endpoints.
type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler.
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// CreatePartnerRequest represents the request body for registering a partner.
type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	ContactInfo string `json:"contact_info" validate:"max=255"`
}

// Create registers a delivery partner.
func (h *PartnerHandler) Create(c echo.Context) error {
	var req CreatePartnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	partner, err := h.partnerUC.Create(c.Request().Context(), &usecase.CreatePartnerInput{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, partner)
}

// List returns every partner.
func (h *PartnerHandler) List(c echo.Context) error {
	partners, err := h.partnerUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// Get returns one partner.
func (h *PartnerHandler) Get(c echo.Context) error {
	partnerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	partner, err := h.partnerUC.Get(c.Request().Context(), partnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner)
}
