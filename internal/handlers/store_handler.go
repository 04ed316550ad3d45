package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tienda/internal/models"
)

// StoreHandler serves the static storefront profile and news pages.
type StoreHandler struct {
	store models.StoreInfo
	news  []models.NewsArticle
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(store models.StoreInfo, news []models.NewsArticle) *StoreHandler {
	return &StoreHandler{
		store: store,
		news:  news,
	}
}

// RegisterRoutes registers the store and news routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/store", h.HandleGetStore)

	newsRoutes := router.Group("/news")
	newsRoutes.Get("/", h.HandleListNews)
	newsRoutes.Get("/:slug", h.HandleGetNewsBySlug)
}

// HandleGetStore returns the storefront profile.
func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	return c.JSON(h.store)
}

// HandleListNews returns all news articles.
func (h *StoreHandler) HandleListNews(c *fiber.Ctx) error {
	return c.JSON(h.news)
}

// HandleGetNewsBySlug returns a single article.
func (h *StoreHandler) HandleGetNewsBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	for i := range h.news {
		if h.news[i].Slug == slug {
			return c.JSON(h.news[i])
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Article not found",
	})
}
