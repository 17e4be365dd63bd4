// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Seed        SeedConfig
	Inquiry     InquiryConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	// URL is the document store connection string. Empty means the store is
	// not configured and the service runs in degraded mode.
	URL            string
	Name           string
	ConnectTimeout int // in seconds
}

type SeedConfig struct {
	SampleData bool
}

type InquiryConfig struct {
	// StrictPersistence surfaces inquiry persistence failures to callers
	// instead of returning the best-effort success shape.
	StrictPersistence bool
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			Name:           getEnv("DATABASE_NAME", "forgepeptides"),
			ConnectTimeout: getEnvAsInt("DATABASE_CONNECT_TIMEOUT", 10),
		},
		Seed: SeedConfig{
			SampleData: getEnvAsBool("SEED_SAMPLE_DATA", true),
		},
		Inquiry: InquiryConfig{
			StrictPersistence: getEnvAsBool("INQUIRY_STRICT_PERSISTENCE", false),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("database connect timeout must be positive")
	}

	return nil
}

// Configured reports whether a document store connection string is present.
func (d DatabaseConfig) Configured() bool {
	return d.URL != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
