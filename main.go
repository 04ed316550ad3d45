package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"tienda/internal/config"
	"tienda/internal/data"
	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/llm"
	"tienda/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	// --- Logger ---
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// --- Catalog repository ---
	catalogRepo, err := buildCatalogRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize catalog repository: %v", err)
	}
	seedCatalog(catalogRepo)

	// --- Insight provider ---
	provider, err := buildProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	logger.WithField("provider", provider.Name()).Info("AI provider configured")

	// --- Optional RabbitMQ client for insight diagnostics ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			// The broker is diagnostics-only; catalog browsing and insight
			// requests must keep working without it.
			logger.WithError(err).Warn("RabbitMQ unavailable, insight events disabled")
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	// --- Services ---
	catalogService := services.NewCatalogService(catalogRepo)
	insightService := services.NewInsightService(provider, events, logger, cfg.AITimeout)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(catalogService, logger)
	insightHandler := handlers.NewInsightHandler(insightService, logger)
	storeHandler := handlers.NewStoreHandler(data.Store(), data.News())

	// --- Fiber app ---
	app := fiber.New()

	app.Use(fiberlogger.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	insightHandler.RegisterRoutes(apiV1)
	storeHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Insight event consumer (diagnostics) ---
	if mqClient != nil {
		go func() {
			messageHandler := func(msg amqp.Delivery) error {
				logger.WithField("event", string(msg.Body)).Info("insight event")
				return nil
			}
			if consumerErr := mqClient.ConsumeInsightEvents(messageHandler); consumerErr != nil {
				logger.WithError(consumerErr).Warn("failed to start insight event consumer")
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildCatalogRepository selects the catalog backend. The in-memory backend
// is the default; sqlite and postgres go through GORM.
func buildCatalogRepository(cfg *config.Config) (repositories.CatalogRepository, error) {
	if cfg.CatalogDB == "memory" || cfg.CatalogDB == "" {
		return repositories.NewMemoryCatalogRepository(), nil
	}
	db, err := config.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	return repositories.NewGORMCatalogRepository(db)
}

// buildProvider selects the configured text-generation binding. All bindings
// are equivalent from the gateway's perspective.
func buildProvider(cfg *config.Config) (llm.Client, error) {
	switch cfg.AIProvider {
	case "openrouter":
		return llm.NewOpenRouter(cfg.OpenRouterURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel), nil
	case "gemini":
		return llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return llm.NewOllama(cfg.OllamaURL, cfg.OllamaModel), nil
	}
}

// seedCatalog populates the repository with the sample catalog.
func seedCatalog(repo repositories.CatalogRepository) {
	products := data.Products()
	for i := range products {
		if err := repo.CreateProduct(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].ID, err)
		}
	}
	categories := data.Categories()
	for i := range categories {
		if err := repo.CreateCategory(&categories[i]); err != nil {
			log.Printf("Error seeding category %s: %v", categories[i].ID, err)
		}
	}
}
