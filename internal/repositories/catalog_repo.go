package repositories

import (
	"tienda/internal/models"
)

// CatalogRepository defines data access for the product catalog and its
// category reference data. The catalog has no write path beyond seeding, so
// the Create methods exist for startup population only.
type CatalogRepository interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	GetCategories() ([]models.Category, error)
	CreateProduct(product *models.Product) error
	CreateCategory(category *models.Category) error
}
