package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// Sort keys accepted by the catalog evaluator. Anything else falls back to
// SortNewest (the catalog's insertion order).
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// Evaluate narrows and orders a product list by category, free-text query and
// sort key. Pure: the input slice is never modified and the result is always
// a fresh slice. Category and text filters compose with AND; equal sort keys
// retain their relative input order.
func Evaluate(products []models.Product, categoryID, query, sortKey string) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	q := strings.ToLower(strings.TrimSpace(query))
	for i := range products {
		p := &products[i]
		if categoryID != "" && categoryID != models.CategoryAll && !p.HasCategory(categoryID) {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		filtered = append(filtered, *p)
	}

	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceSuggested < filtered[j].PriceSuggested
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceSuggested > filtered[j].PriceSuggested
		})
	case SortNameAsc:
		col := collate.New(language.Spanish)
		sort.SliceStable(filtered, func(i, j int) bool {
			return col.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	case SortNameDesc:
		col := collate.New(language.Spanish)
		sort.SliceStable(filtered, func(i, j int) bool {
			return col.CompareString(filtered[i].Title, filtered[j].Title) > 0
		})
	default:
		// newest: keep insertion order.
	}

	return filtered
}

// matchesQuery reports whether the lower-cased query is a substring of the
// product's title, short description, or any tag.
func matchesQuery(p *models.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.DescriptionShort), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CatalogService handles business logic related to catalog browsing.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts returns the filtered and sorted catalog view.
func (s *CatalogService) ListProducts(categoryID, query, sortKey string) ([]models.Product, error) {
	products, err := s.repo.GetAllProducts()
	if err != nil {
		return nil, err
	}
	return Evaluate(products, categoryID, query, sortKey), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetProductByID(id)
}

// ListCategories returns the category reference list with per-category
// product counts filled in. The "all" sentinel gets the catalog total.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	products, err := s.repo.GetAllProducts()
	if err != nil {
		return nil, err
	}

	for i := range categories {
		if categories[i].ID == models.CategoryAll {
			categories[i].ProductCount = len(products)
			continue
		}
		count := 0
		for j := range products {
			if products[j].HasCategory(categories[i].ID) {
				count++
			}
		}
		categories[i].ProductCount = count
	}
	return categories, nil
}
