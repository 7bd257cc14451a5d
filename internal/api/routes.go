package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the catalog API under /api. detectCountry runs only
// in front of the product routes.
func RegisterRoutes(e *echo.Echo, h *CatalogHandler, detectCountry echo.MiddlewareFunc) {
	g := e.Group("/api")
	g.GET("/categories", h.GetCategories)
	g.GET("/products", h.GetProducts, detectCountry)
	g.GET("/product/:id", h.GetProductDetail, detectCountry)
	g.GET("/countries", h.GetCountries)

	g.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "catalog-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
}
