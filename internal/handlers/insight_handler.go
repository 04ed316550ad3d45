package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/internal/services"
)

// InsightHandler handles HTTP requests for AI product analysis.
type InsightHandler struct {
	service  *services.InsightService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(service *services.InsightService, log *logrus.Logger) *InsightHandler {
	return &InsightHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the insight route with the Fiber app.
func (h *InsightHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products/insight", h.HandleAnalyzeProduct)
}

// HandleAnalyzeProduct forwards the posted product to the text-generation
// provider and returns the structured insight. Error statuses follow the
// gateway's taxonomy: 400 bad request, 402 credits, 429 rate limit, 500 for
// everything upstream or internal.
func (h *InsightHandler) HandleAnalyzeProduct(c *fiber.Ctx) error {
	var req models.InsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product data is required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product data is required",
		})
	}

	result, err := h.service.Analyze(c.Context(), req.Product)
	if err != nil {
		return h.renderAnalyzeError(c, req.Product.ID, err)
	}
	return c.JSON(result)
}

func (h *InsightHandler) renderAnalyzeError(c *fiber.Ctx, productID string, err error) error {
	entry := h.log.WithError(err).WithField("product_id", productID)

	switch {
	case errors.Is(err, services.ErrMissingProduct):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product data is required",
		})
	case errors.Is(err, services.ErrProviderCredits):
		entry.Warn("insight provider out of credits")
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error": "The AI provider has run out of credits. Please try again later.",
		})
	case errors.Is(err, services.ErrProviderRateLimited):
		entry.Warn("insight provider rate limited")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "The AI provider is receiving too many requests. Please wait a moment and retry.",
		})
	case errors.Is(err, services.ErrBadProviderResponse):
		entry.Error("insight provider returned unusable content")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Invalid AI response",
		})
	case errors.Is(err, services.ErrProviderFailure):
		entry.Error("insight provider call failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze product",
		})
	}
	entry.Error("unexpected error analyzing product")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
