package api

import (
	"net/http"

	"customer-management/internal/modules/address"
	"customer-management/internal/modules/customer"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	customerHandler *customer.Handler,
	addressHandler *address.Handler,
) {
	// Liveness / default route
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend is running. Use /api/* endpoints")
	})

	apiGroup := e.Group("/api")
	{
		// Customers
		apiGroup.GET("/customers", customerHandler.List)
		apiGroup.GET("/customers/:id", customerHandler.Get)
		apiGroup.POST("/customers", customerHandler.Create)
		apiGroup.PUT("/customers/:id", customerHandler.Update)
		apiGroup.DELETE("/customers/:id", customerHandler.Delete)

		// Addresses, nested under their customer for create/list
		apiGroup.POST("/customers/:id/addresses", addressHandler.Add)
		apiGroup.GET("/customers/:id/addresses", addressHandler.ListByCustomer)
		apiGroup.PUT("/addresses/:id", addressHandler.Update)
		apiGroup.DELETE("/addresses/:id", addressHandler.Delete)
	}
}
