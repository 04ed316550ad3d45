package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"tienda/internal/services"
)

// ProductHandler handles HTTP requests for catalog browsing.
type ProductHandler struct {
	service *services.CatalogService
	log     *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)

	router.Get("/categories", h.HandleListCategories)
}

// HandleListProducts returns the catalog filtered by the category, q and sort
// query parameters. All parameters are optional; an unknown sort key falls
// back to insertion order and an empty result is a normal 200.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	categoryID := c.Query("category")
	query := c.Query("q")
	sortKey := c.Query("sort", services.SortNewest)

	products, err := h.service.ListProducts(categoryID, query, sortKey)
	if err != nil {
		h.log.WithError(err).Error("failed to list products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID returns a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		h.log.WithError(err).WithField("product_id", productID).Error("failed to get product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleListCategories returns the category reference list.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		h.log.WithError(err).Error("failed to list categories")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve categories",
		})
	}
	return c.JSON(categories)
}
