package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/readyiolab/GDL-BACKEND/internal/entity"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("record not found")

const (
	listCategoriesQuery = `SELECT categoryId, categoryName, description, categoryBanner FROM tbl_categories`

	listCountriesQuery = `SELECT DISTINCT country FROM tbl_productpricing`

	listProductsQuery = `SELECT DISTINCT p.id, p.productName, c.categoryName, p.description, p.productImage,
		pp.country, pp.yourPrice, pp.basePrice, pp.preferredCustomerPrice
		FROM tbl_products p
		JOIN tbl_categories c ON p.categoryId = c.categoryId
		JOIN tbl_productpricing pp ON p.id = pp.productId
		WHERE pp.country = ?`

	categoryFilter = ` AND c.categoryName = ?`

	productDetailQuery = `SELECT p.id, p.productName, c.categoryName, p.description, p.fullDescription,
		p.keyIngredients, p.keyBenefits, p.patentsAndCertifications,
		p.directionsForUse, p.cautions, p.fdaDisclaimer, p.productImage,
		p.productBanners, pp.country, pp.yourPrice, pp.basePrice,
		pp.preferredCustomerPrice
		FROM tbl_products p
		JOIN tbl_categories c ON p.categoryId = c.categoryId
		JOIN tbl_productpricing pp ON p.id = pp.productId
		WHERE p.id = ? AND pp.country = ?
		LIMIT 1`
)

// CatalogRepository reads categories, products and pricing from MySQL.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db}
}

// ListCategories returns every category.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.Banner)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// ListCountries returns the distinct countries that have at least one
// pricing row.
func (r *CatalogRepository) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listCountriesQuery)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	countries := make([]string, 0)
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}

	return countries, nil
}

// ListProducts returns the products priced in country, optionally limited
// to one category. Each product id appears at most once.
func (r *CatalogRepository) ListProducts(ctx context.Context, country, categoryName string) ([]entity.Product, error) {
	query := listProductsQuery
	args := []interface{}{country}
	if categoryName != "" {
		query += categoryFilter
		args = append(args, categoryName)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	seen := make(map[int64]struct{})
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID, &product.Name, &product.CategoryName, &product.Description, &product.Image,
			&product.Country, &product.YourPrice, &product.BasePrice, &product.PreferredCustomerPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if _, dup := seen[product.ID]; dup {
			continue
		}
		seen[product.ID] = struct{}{}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// GetProductDetail fetches one product with its pricing for country.
func (r *CatalogRepository) GetProductDetail(ctx context.Context, id, country string) (*entity.ProductDetail, error) {
	var p entity.ProductDetail
	err := r.db.QueryRowContext(ctx, productDetailQuery, id, country).Scan(
		&p.ID, &p.Name, &p.CategoryName, &p.Description, &p.FullDescription,
		&p.KeyIngredients, &p.KeyBenefits, &p.PatentsAndCertifications,
		&p.DirectionsForUse, &p.Cautions, &p.FDADisclaimer, &p.Image,
		&p.Banners, &p.Country, &p.YourPrice, &p.BasePrice,
		&p.PreferredCustomerPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query product %s: %w", id, err)
	}

	return &p, nil
}
