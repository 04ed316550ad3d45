package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds every runtime setting. Values come from environment variables
// (or a .env file loaded before Load is called), with sensible defaults for
// local development.
type Config struct {
	AppPort     string
	Environment string

	// Catalog backend: memory (default), sqlite, or postgres.
	CatalogDB   string
	DatabaseDSN string

	// Insight provider: ollama (default), openrouter, or gemini.
	AIProvider       string
	AITimeout        time.Duration
	OpenRouterAPIKey string
	OpenRouterModel  string
	OpenRouterURL    string
	OllamaURL        string
	OllamaModel      string
	GeminiAPIKey     string
	GeminiModel      string

	// Optional broker for insight diagnostic events; empty disables it.
	RabbitMQURL string
}

// Load reads configuration from the environment via Viper.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("CATALOG_DB", "memory")
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	viper.SetDefault("AI_PROVIDER", "ollama")
	viper.SetDefault("AI_TIMEOUT", "30s")
	viper.SetDefault("OPENROUTER_MODEL", "meta-llama/llama-3.1-8b-instruct")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3.1:8b")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:          viper.GetString("APP_PORT"),
		Environment:      viper.GetString("ENVIRONMENT"),
		CatalogDB:        viper.GetString("CATALOG_DB"),
		DatabaseDSN:      viper.GetString("DATABASE_DSN"),
		AIProvider:       viper.GetString("AI_PROVIDER"),
		AITimeout:        viper.GetDuration("AI_TIMEOUT"),
		OpenRouterAPIKey: viper.GetString("OPENROUTER_API_KEY"),
		OpenRouterModel:  viper.GetString("OPENROUTER_MODEL"),
		OpenRouterURL:    viper.GetString("OPENROUTER_URL"),
		OllamaURL:        viper.GetString("OLLAMA_URL"),
		OllamaModel:      viper.GetString("OLLAMA_MODEL"),
		GeminiAPIKey:     viper.GetString("GEMINI_API_KEY"),
		GeminiModel:      viper.GetString("GEMINI_MODEL"),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
	}
}

// OpenDatabase opens the GORM connection for the configured catalog backend.
// Only called when CatalogDB is sqlite or postgres.
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	switch cfg.CatalogDB {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DatabaseDSN), gormCfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), gormCfg)
	}
	return nil, fmt.Errorf("unsupported catalog backend: %s", cfg.CatalogDB)
}
