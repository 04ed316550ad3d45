package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

func TestMemoryCatalogRepository_PreservesInsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()

	ids := []string{"sku-1", "sku-2", "sku-3"}
	for _, id := range ids {
		err := repo.CreateProduct(&models.Product{ID: id, Title: "Item " + id})
		assert.NoError(t, err)
	}

	products, err := repo.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, ids[i], p.ID)
	}
}

func TestMemoryCatalogRepository_RejectsDuplicateIDs(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()

	assert.NoError(t, repo.CreateProduct(&models.Product{ID: "sku-1", Title: "First"}))
	err := repo.CreateProduct(&models.Product{ID: "sku-1", Title: "Second"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	products, _ := repo.GetAllProducts()
	assert.Len(t, products, 1)
	assert.Equal(t, "First", products[0].Title)
}

func TestMemoryCatalogRepository_GetProductByID(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	assert.NoError(t, repo.CreateProduct(&models.Product{ID: "sku-1", Title: "Item"}))

	product, err := repo.GetProductByID("sku-1")
	assert.NoError(t, err)
	assert.Equal(t, "Item", product.Title)

	_, err = repo.GetProductByID("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMemoryCatalogRepository_Categories(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()

	assert.NoError(t, repo.CreateCategory(&models.Category{ID: "figures", Name: "Figures", Slug: "figures"}))
	assert.NoError(t, repo.CreateCategory(&models.Category{ID: "cards", Name: "Cards", Slug: "cards"}))
	assert.Error(t, repo.CreateCategory(&models.Category{ID: "figures", Name: "Dup", Slug: "dup"}))

	categories, err := repo.GetCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "figures", categories[0].ID)
	assert.Equal(t, "cards", categories[1].ID)
}
