package repositories

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"tienda/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository. It
// backs the catalog with SQLite or PostgreSQL depending on how the *gorm.DB
// was opened. Rows carry an explicit position column so listing preserves
// the seed order the way the in-memory repository does.
type GORMCatalogRepository struct {
	db *gorm.DB

	mu          sync.Mutex
	nextProduct int
	nextCat     int
}

// NewGORMCatalogRepository migrates the catalog tables and returns the
// repository.
func NewGORMCatalogRepository(db *gorm.DB) (*GORMCatalogRepository, error) {
	if err := db.AutoMigrate(&models.Product{}, &models.Category{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return &GORMCatalogRepository{db: db}, nil
}

// GetAllProducts retrieves all products ordered by seed position.
func (r *GORMCatalogRepository) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("position asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (r *GORMCatalogRepository) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetCategories retrieves all categories ordered by seed position.
func (r *GORMCatalogRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("position asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// CreateProduct inserts a product with the next seed position.
func (r *GORMCatalogRepository) CreateProduct(product *models.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product ID is required")
	}
	r.mu.Lock()
	r.nextProduct++
	product.Position = r.nextProduct
	r.mu.Unlock()

	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateCategory inserts a category with the next seed position.
func (r *GORMCatalogRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	r.nextCat++
	category.Position = r.nextCat
	r.mu.Unlock()

	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
