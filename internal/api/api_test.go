package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/readyiolab/GDL-BACKEND/internal/entity"
	"github.com/readyiolab/GDL-BACKEND/internal/middleware"
	"github.com/readyiolab/GDL-BACKEND/internal/service"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]entity.Category)
	return categories, args.Error(1)
}

func (m *mockCatalogService) ListProducts(ctx context.Context, country, categoryName string) ([]entity.Product, error) {
	args := m.Called(ctx, country, categoryName)
	products, _ := args.Get(0).([]entity.Product)
	return products, args.Error(1)
}

func (m *mockCatalogService) GetProductDetail(ctx context.Context, id, country string) (*entity.ProductDetail, error) {
	args := m.Called(ctx, id, country)
	product, _ := args.Get(0).(*entity.ProductDetail)
	return product, args.Error(1)
}

func (m *mockCatalogService) ListCountries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	countries, _ := args.Get(0).([]string)
	return countries, args.Error(1)
}

type stubLocator struct {
	country string
	calls   int
}

func (l *stubLocator) Lookup(context.Context, string) (string, error) {
	l.calls++
	return l.country, nil
}

func newServer(svc *mockCatalogService, honorDetected bool) (*echo.Echo, *stubLocator) {
	locator := &stubLocator{country: "India"}
	detector := middleware.NewCountryDetector(locator, nil, nil)

	e := echo.New()
	RegisterRoutes(e, NewCatalogHandler(svc, honorDetected), detector.Middleware())
	return e, locator
}

func serve(e *echo.Echo, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestGetCategories(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mockCatalogService{}
		svc.On("ListCategories", mock.Anything).Return([]entity.Category{{ID: 1, Name: "Vitamins"}}, nil)
		e, locator := newServer(svc, false)

		rec, body := serve(e, "/api/categories")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["status"])
		assert.NotContains(t, body, "country")
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "Vitamins", data[0].(map[string]interface{})["categoryName"])
		assert.Zero(t, locator.calls, "categories never trigger detection")
	})

	t.Run("store_error", func(t *testing.T) {
		svc := &mockCatalogService{}
		svc.On("ListCategories", mock.Anything).Return(nil, errors.New("connection refused"))
		e, _ := newServer(svc, false)

		rec, body := serve(e, "/api/categories")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["status"])
		assert.Equal(t, "Error fetching categories", body["message"])
		assert.Equal(t, "connection refused", body["error"])
	})
}

func TestGetProducts(t *testing.T) {
	testCases := []struct {
		name            string
		target          string
		honorDetected   bool
		serviceCountry  string
		serviceCategory string
		serviceProducts []entity.Product
		serviceErr      error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "defaults_to_us",
			target:          "/api/products",
			serviceCountry:  "US",
			serviceProducts: []entity.Product{{ID: 1, Pricing: entity.Pricing{Country: "US"}}},
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "country_and_category",
			target:          "/api/products?country=UK&categoryName=Vitamins",
			serviceCountry:  "UK",
			serviceCategory: "Vitamins",
			serviceProducts: []entity.Product{{ID: 2, CategoryName: "Vitamins", Pricing: entity.Pricing{Country: "UK"}}},
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "detected_country_ignored_by_default",
			target:          "/api/products",
			serviceCountry:  "US",
			serviceProducts: []entity.Product{},
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "detected_country_honored",
			target:          "/api/products",
			honorDetected:   true,
			serviceCountry:  "India",
			serviceProducts: []entity.Product{},
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "explicit_country_wins_over_detection",
			target:          "/api/products?country=Japan",
			honorDetected:   true,
			serviceCountry:  "Japan",
			serviceProducts: []entity.Product{},
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "invalid_country",
			target:          "/api/products?country=Atlantis",
			serviceCountry:  "Atlantis",
			serviceErr:      service.ErrInvalidCountry,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid country",
		},
		{
			name:            "store_error",
			target:          "/api/products",
			serviceCountry:  "US",
			serviceErr:      errors.New("too many connections"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Error fetching products",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockCatalogService{}
			svc.On("ListProducts", mock.Anything, tc.serviceCountry, tc.serviceCategory).Return(tc.serviceProducts, tc.serviceErr)
			e, _ := newServer(svc, tc.honorDetected)

			rec, body := serve(e, tc.target)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedMessage != "" {
				assert.Equal(t, false, body["status"])
				assert.Equal(t, tc.expectedMessage, body["message"])
				assert.NotContains(t, body, "data")
			} else {
				assert.Equal(t, true, body["status"])
				assert.Equal(t, tc.serviceCountry, body["country"])
				assert.Len(t, body["data"], len(tc.serviceProducts))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetProductsEmptyListIsArray(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("ListProducts", mock.Anything, "US", "").Return([]entity.Product{}, nil)
	e, _ := newServer(svc, false)

	rec, _ := serve(e, "/api/products?country=US")
	assert.JSONEq(t, `{"status":true,"data":[],"country":"US"}`, rec.Body.String())
}

func TestGetProductsJSONShape(t *testing.T) {
	desc := "Fish oil"
	svc := &mockCatalogService{}
	svc.On("ListProducts", mock.Anything, "India", "").Return([]entity.Product{{
		ID:           1,
		Name:         "Omega 3",
		CategoryName: "Vitamins",
		Description:  &desc,
		Pricing:      entity.Pricing{Country: "India", YourPrice: 1999, BasePrice: 2499, PreferredCustomerPrice: 1799},
		Currency:     entity.Currency{Code: "INR", Symbol: "₹"},
	}}, nil)
	e, _ := newServer(svc, false)

	rec, _ := serve(e, "/api/products?country=India")
	assert.JSONEq(t, `{
		"status": true,
		"country": "India",
		"data": [{
			"id": 1,
			"productName": "Omega 3",
			"categoryName": "Vitamins",
			"description": "Fish oil",
			"productImage": null,
			"country": "India",
			"yourPrice": 1999,
			"basePrice": 2499,
			"preferredCustomerPrice": 1799,
			"currency": "INR",
			"currencySymbol": "₹"
		}]
	}`, rec.Body.String())
}

func TestGetProductDetail(t *testing.T) {
	testCases := []struct {
		name            string
		target          string
		id              string
		country         string
		product         *entity.ProductDetail
		serviceErr      error
		expectedStatus  int
		expectedMessage string
		expectErrorText bool
	}{
		{
			name:           "found",
			target:         "/api/product/7?country=UK",
			id:             "7",
			country:        "UK",
			product:        &entity.ProductDetail{ID: 7, Pricing: entity.Pricing{Country: "UK"}, Currency: entity.Currency{Code: "GBP", Symbol: "£"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "not_found",
			target:          "/api/product/999",
			id:              "999",
			country:         "US",
			serviceErr:      service.ErrProductNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Product not found",
		},
		{
			name:            "invalid_country",
			target:          "/api/product/7?country=Narnia",
			id:              "7",
			country:         "Narnia",
			serviceErr:      service.ErrInvalidCountry,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid country",
		},
		{
			name:            "store_error",
			target:          "/api/product/7",
			id:              "7",
			country:         "US",
			serviceErr:      errors.New("bad connection"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Error fetching product",
			expectErrorText: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockCatalogService{}
			svc.On("GetProductDetail", mock.Anything, tc.id, tc.country).Return(tc.product, tc.serviceErr)
			e, _ := newServer(svc, false)

			rec, body := serve(e, tc.target)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedMessage == "" {
				assert.Equal(t, true, body["status"])
				assert.Equal(t, tc.country, body["country"])
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "£", data["currencySymbol"])
				return
			}
			assert.Equal(t, false, body["status"])
			assert.Equal(t, tc.expectedMessage, body["message"])
			if tc.expectErrorText {
				assert.Equal(t, "bad connection", body["error"])
			} else {
				assert.NotContains(t, body, "error")
			}
		})
	}
}

func TestGetCountries(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("ListCountries", mock.Anything).Return([]string{"US", "India"}, nil)
	e, locator := newServer(svc, false)

	rec, _ := serve(e, "/api/countries")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":true,"data":["US","India"]}`, rec.Body.String())
	assert.Zero(t, locator.calls)
}

func TestGetCountriesError(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("ListCountries", mock.Anything).Return(nil, errors.New("boom"))
	e, _ := newServer(svc, false)

	rec, body := serve(e, "/api/countries")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching countries", body["message"])
}

func TestHealth(t *testing.T) {
	e, _ := newServer(&mockCatalogService{}, false)
	rec, body := serve(e, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}
