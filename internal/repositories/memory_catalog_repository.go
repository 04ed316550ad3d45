package repositories

import (
	"fmt"
	"sync"

	"tienda/internal/models"
)

// MemoryCatalogRepository is an in-memory implementation of CatalogRepository.
// Products and categories are kept in slices so insertion order survives,
// which is what the catalog's default ("newest") ordering relies on.
type MemoryCatalogRepository struct {
	products   []models.Product
	productIdx map[string]int
	categories []models.Category
	mu         sync.RWMutex
}

// NewMemoryCatalogRepository creates an empty in-memory catalog.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		productIdx: make(map[string]int),
	}
}

// GetAllProducts returns every product in insertion order.
func (r *MemoryCatalogRepository) GetAllProducts() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetProductByID returns a product by its ID.
func (r *MemoryCatalogRepository) GetProductByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.productIdx[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	product := r.products[idx]
	return &product, nil
}

// GetCategories returns every category in insertion order.
func (r *MemoryCatalogRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// CreateProduct appends a product. Product IDs are unique within a catalog.
func (r *MemoryCatalogRepository) CreateProduct(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		return fmt.Errorf("product ID is required")
	}
	if _, exists := r.productIdx[product.ID]; exists {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	product.Position = len(r.products) + 1
	r.productIdx[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

// CreateCategory appends a category.
func (r *MemoryCatalogRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == category.ID {
			return fmt.Errorf("category with ID %s already exists", category.ID)
		}
	}
	category.Position = len(r.categories) + 1
	r.categories = append(r.categories, *category)
	return nil
}
