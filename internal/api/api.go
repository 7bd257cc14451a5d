package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/readyiolab/GDL-BACKEND/internal/entity"
	"github.com/readyiolab/GDL-BACKEND/internal/middleware"
)

type catalogService interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListProducts(ctx context.Context, country, categoryName string) ([]entity.Product, error)
	GetProductDetail(ctx context.Context, id, country string) (*entity.ProductDetail, error)
	ListCountries(ctx context.Context) ([]string, error)
}

type dataResponse struct {
	Status  bool        `json:"status"`
	Data    interface{} `json:"data"`
	Country string      `json:"country,omitempty"`
}

type CatalogHandler struct {
	catalogService       catalogService
	honorDetectedCountry bool
}

// NewCatalogHandler creates a new instance of CatalogHandler. When
// honorDetectedCountry is set, product routes without a country parameter
// use the detected country instead of DefaultCountry.
func NewCatalogHandler(catalogService catalogService, honorDetectedCountry bool) *CatalogHandler {
	return &CatalogHandler{
		catalogService:       catalogService,
		honorDetectedCountry: honorDetectedCountry,
	}
}

// GetCategories lists every category --> /api/categories
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Error fetching categories")
	}
	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: categories})
}

// GetProducts lists products priced in a country --> /api/products?country=&categoryName=
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	country := h.country(c)
	products, err := h.catalogService.ListProducts(c.Request().Context(), country, c.QueryParam("categoryName"))
	if err != nil {
		return respondError(c, err, "Error fetching products")
	}
	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: products, Country: country})
}

// GetProductDetail returns one product priced in a country --> /api/product/:id?country=
func (h *CatalogHandler) GetProductDetail(c echo.Context) error {
	country := h.country(c)
	product, err := h.catalogService.GetProductDetail(c.Request().Context(), c.Param("id"), country)
	if err != nil {
		return respondError(c, err, "Error fetching product")
	}
	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: product, Country: country})
}

// GetCountries lists the countries that have pricing --> /api/countries
func (h *CatalogHandler) GetCountries(c echo.Context) error {
	countries, err := h.catalogService.ListCountries(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Error fetching countries")
	}
	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: countries})
}

func (h *CatalogHandler) country(c echo.Context) string {
	if country := c.QueryParam("country"); country != "" {
		return country
	}
	if h.honorDetectedCountry {
		if detected, ok := middleware.DetectedCountry(c); ok {
			return detected
		}
	}
	return middleware.DefaultCountry
}
