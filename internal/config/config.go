package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	HTTPPort    string
	CORSOrigins []string
	Database    DatabaseConfig
	TTS         TTSConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TTSConfig holds Azure speech synthesis settings
type TTSConfig struct {
	Key      string
	Region   string
	CacheDir string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "5000"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "english_learning"),
			User:     getEnv("DB_USER", "english_learning"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		TTS: TTSConfig{
			Key:      os.Getenv("AZURE_TTS_KEY"),
			Region:   getEnv("AZURE_TTS_REGION", "eastus"),
			CacheDir: getEnv("AUDIO_CACHE_DIR", "audio_cache"),
		},
	}

	// Validate required fields
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
