package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/readyiolab/GDL-BACKEND/internal/service"
)

type errorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// respondError maps service errors to the JSON error envelope. Unknown
// errors become a 500 carrying fallback and the raw error text.
func respondError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidCountry):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid country"})
	case errors.Is(err, service.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: "Product not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: fallback, Error: err.Error()})
	}
}
