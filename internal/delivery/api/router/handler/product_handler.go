package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/response"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest carries the descriptive product fields.
type ProductRequest struct {
	SupplierCode   string          `json:"supplier_code" validate:"max=64"`
	BatchNumber    string          `json:"batch_number" validate:"max=64"`
	Name           string          `json:"product_name" validate:"required,max=255"`
	ProductCode    string          `json:"product_code" validate:"required,max=64"`
	Category       string          `json:"category" validate:"max=64"`
	Brand          string          `json:"brand" validate:"max=64"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	ListingPrice   decimal.Decimal `json:"listing_price"`
	DateOfPurchase *Date           `json:"date_of_purchase"`
}

// CreateProductRequest adds the opening unit count.
type CreateProductRequest struct {
	ProductRequest
	Units int `json:"units" validate:"gte=0"`
}

func (r *ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		SupplierCode:   r.SupplierCode,
		BatchNumber:    r.BatchNumber,
		Name:           r.Name,
		ProductCode:    r.ProductCode,
		Category:       r.Category,
		Brand:          r.Brand,
		PurchasePrice:  r.PurchasePrice,
		ListingPrice:   r.ListingPrice,
		DateOfPurchase: r.DateOfPurchase.Ptr(),
	}
}

// Create handles product creation for the authenticated user.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), userID, &usecase.CreateProductInput{
		ProductInput: req.toInput(),
		Units:        req.Units,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// List returns one page of the authenticated user's products.
func (h *ProductHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	offset, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.List(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, products, &response.PageInfo{Offset: offset, Limit: limit, Count: len(products)})
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.Get(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Update rewrites the descriptive fields of a product. Units cannot be changed here.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.toInput()
	product, err := h.productUC.Update(c.Request().Context(), userID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Delete removes a product together with its deliveries.
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Label renders the product's QR label as PNG.
func (h *ProductHandler) Label(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.productUC.Label(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Movements lists the stock movements recorded for a product.
func (h *ProductHandler) Movements(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	movements, err := h.productUC.Movements(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movements)
}
