package address

import (
	"errors"
	"net/http"

	"customer-management/internal/models"
	"customer-management/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new address handler.
func NewHandler(service ServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Add handles POST /api/customers/:id/addresses.
func (h *Handler) Add(c echo.Context) error {
	customerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid customer id"})
	}

	var req models.AddAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields are required: " + err.Error()})
	}

	id, err := h.service.Add(c.Request().Context(), customerID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Customer not found"})
		}
		h.logger.Error("addresses.Add", zap.Error(err), zap.Int64("customer_id", customerID))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, models.CreatedResponse{Message: "Address created", ID: id})
}

// ListByCustomer handles GET /api/customers/:id/addresses. An unknown
// customer yields an empty list, not a 404.
func (h *Handler) ListByCustomer(c echo.Context) error {
	customerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid customer id"})
	}

	addresses, err := h.service.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		h.logger.Error("addresses.ListByCustomer", zap.Error(err), zap.Int64("customer_id", customerID))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.DataResponse{Message: "success", Data: addresses})
}

// Update handles PUT /api/addresses/:id.
func (h *Handler) Update(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid address id"})
	}

	var req models.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields are required: " + err.Error()})
	}

	changes, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Address not found"})
		}
		h.logger.Error("addresses.Update", zap.Error(err), zap.Int64("id", id))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.ChangesResponse{Message: "Address updated", Changes: changes})
}

// Delete handles DELETE /api/addresses/:id.
func (h *Handler) Delete(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid address id"})
	}

	changes, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Address not found"})
		}
		h.logger.Error("addresses.Delete", zap.Error(err), zap.Int64("id", id))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.ChangesResponse{Message: "Address deleted", Changes: changes})
}
