package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/readyiolab/GDL-BACKEND/internal/currency"
	"github.com/readyiolab/GDL-BACKEND/internal/entity"
	"github.com/readyiolab/GDL-BACKEND/internal/repository"
)

type catalogRepository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListCountries(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, country, categoryName string) ([]entity.Product, error)
	GetProductDetail(ctx context.Context, id, country string) (*entity.ProductDetail, error)
}

// CatalogService answers storefront catalog queries.
type CatalogService struct {
	repo catalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(repo catalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListCategories returns every category.
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error listing categories")
		return nil, err
	}
	return categories, nil
}

// ListCountries returns the countries that have pricing. This set is the
// only source of truth for which countries are valid.
func (s *CatalogService) ListCountries(ctx context.Context) ([]string, error) {
	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error listing countries")
		return nil, err
	}
	return countries, nil
}

// ListProducts returns the products priced in country, filtered to
// categoryName when it is not empty, with the country's currency attached.
func (s *CatalogService) ListProducts(ctx context.Context, country, categoryName string) ([]entity.Product, error) {
	if err := s.validateCountry(ctx, country); err != nil {
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx, country, categoryName)
	if err != nil {
		log.Error().Err(err).Msgf("Error listing products for country %s", country)
		return nil, err
	}

	cur := currency.Resolve(country)
	for i := range products {
		products[i].Currency = cur
	}
	return products, nil
}

// GetProductDetail returns one product priced in country.
func (s *CatalogService) GetProductDetail(ctx context.Context, id, country string) (*entity.ProductDetail, error) {
	if err := s.validateCountry(ctx, country); err != nil {
		return nil, err
	}

	product, err := s.repo.GetProductDetail(ctx, id, country)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		log.Error().Err(err).Msgf("Error getting product %s for country %s", id, country)
		return nil, err
	}

	product.Currency = currency.Resolve(country)
	return product, nil
}

func (s *CatalogService) validateCountry(ctx context.Context, country string) error {
	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error loading valid countries")
		return fmt.Errorf("validate country: %w", err)
	}
	for _, c := range countries {
		if c == country {
			return nil
		}
	}
	return ErrInvalidCountry
}
