package handler

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/response"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// DocumentHandler serves document upload and download.
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler.
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// Upload stores the multipart "file" field for the authenticated user.
func (h *DocumentHandler) Upload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	document, err := h.documentUC.Upload(c.Request().Context(), userID, &usecase.UploadDocumentInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, document)
}

// List returns the authenticated user's documents.
func (h *DocumentHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	documents, err := h.documentUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, documents)
}

// Download streams a document's content back to its owner.
func (h *DocumentHandler) Download(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	documentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	document, content, err := h.documentUC.Open(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer content.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": document.Filename}))
	header.Set(echo.HeaderContentLength, strconv.FormatInt(document.Size, 10))
	header.Set("X-Content-Checksum", "sha256="+document.Checksum)

	return c.Stream(http.StatusOK, document.MediaType, content)
}
