package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default endpoints of the public lookup APIs
const (
	DefaultTranslateAPIURL  = "https://api.mymemory.translated.net/get"
	DefaultSynonymAPIURL    = "https://api.datamuse.com/words"
	DefaultRandomFactAPIURL = "https://uselessfacts.jsph.pl/api/v2/facts/random"
	DefaultNumberFactAPIURL = "http://numbersapi.com/random/trivia"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	APIPort     string
	FactsCount  int
	Database    DatabaseConfig
	Lookup      LookupConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// LookupConfig holds the base URLs of the remote lookup APIs
type LookupConfig struct {
	TranslateURL  string
	SynonymURL    string
	RandomFactURL string
	NumberFactURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	factsCount, err := getEnvInt("FACTS_COUNT", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		APIPort:     os.Getenv("API_PORT"),
		FactsCount:  factsCount,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "englex"),
			User:     getEnv("DB_USER", "englex"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Lookup: LookupConfig{
			TranslateURL:  getEnv("TRANSLATE_API_URL", DefaultTranslateAPIURL),
			SynonymURL:    getEnv("SYNONYM_API_URL", DefaultSynonymAPIURL),
			RandomFactURL: getEnv("RANDOM_FACT_API_URL", DefaultRandomFactAPIURL),
			NumberFactURL: getEnv("NUMBER_FACT_API_URL", DefaultNumberFactAPIURL),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.FactsCount < 1 {
		return nil, fmt.Errorf("FACTS_COUNT must be positive, got %d", cfg.FactsCount)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// APIEnabled reports whether the JSON API should be served
func (c *Config) APIEnabled() bool {
	return c.APIPort != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
