package customer

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
	validate *validator.Validate // For request body validation
	logger   *zap.Logger
}

// NewHandler creates a new customer handler.
func NewHandler(service ServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// List handles GET /api/customers. All query parameters are optional;
// invalid sort parameters fall back to defaults instead of erroring.
func (h *Handler) List(c echo.Context) error {
	page := utils.AtoiDefault(c.QueryParam("page"), 1)
	limit := utils.AtoiDefault(c.QueryParam("limit"), 10)

	customers, err := h.service.List(
		c.Request().Context(),
		c.QueryParam("search"),
		c.QueryParam("sortField"),
		c.QueryParam("sortOrder"),
		page,
		limit,
	)
	if err != nil {
		h.logger.Error("customers.List", zap.Error(err), zap.String("route", c.Path()))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.ListResponse{Data: customers})
}

// Get handles GET /api/customers/:id.
func (h *Handler) Get(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid customer id"})
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Customer not found"})
		}
		h.logger.Error("customers.Get", zap.Error(err), zap.Int64("id", id))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.DataResponse{Message: "success", Data: detail})
}

// Create handles POST /api/customers.
func (h *Handler) Create(c echo.Context) error {
	var req models.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields are required: " + err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Phone number is already in use"})
		}
		h.logger.Error("customers.Create", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, models.CreatedResponse{Message: "Customer created", ID: id})
}

// Update handles PUT /api/customers/:id.
func (h *Handler) Update(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid customer id"})
	}

	var req models.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields are required: " + err.Error()})
	}

	changes, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Customer not found"})
		}
		if errors.Is(err, models.ErrConflict) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Phone number is already in use"})
		}
		h.logger.Error("customers.Update", zap.Error(err), zap.Int64("id", id))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.ChangesResponse{Message: "Customer updated", Changes: changes})
}

// Delete handles DELETE /api/customers/:id. Addresses owned by the customer
// are removed in the same transaction.
func (h *Handler) Delete(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid customer id"})
	}

	changes, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Customer not found"})
		}
		h.logger.Error("customers.Delete", zap.Error(err), zap.Int64("id", id))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, models.ChangesResponse{Message: "Customer deleted", Changes: changes})
}
