package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	AnalysisTimeout    time.Duration
	MaxRequestBodySize int64
	LogLevel           string

	RetryThreshold         float64
	DefaultResponseVersion string
	StrictRange            bool
	MaxBatchSize           int
	BatchConcurrency       int
	AnalysisWorkers        int

	PaletteSource                string
	PaletteLocation              string
	PaletteFetchTimeout          time.Duration
	AzureStorageAccount          string
	AzureStorageKey              string
	AzureStorageContainer        string
	AzureStorageConnectionString string
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return LoadFromEnv()
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		AnalysisTimeout:    parseDurationOrDefault("ANALYSIS_TIMEOUT", 5*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 1024*1024), // 1MB
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),

		RetryThreshold:         parseFloatOrDefault("RETRY_THRESHOLD", 0.70),
		DefaultResponseVersion: getEnvOrDefault("DEFAULT_RESPONSE_VERSION", "2.0"),
		StrictRange:            parseBoolOrDefault("STRICT_RANGE", false),
		MaxBatchSize:           int(parseIntOrDefault("MAX_BATCH_SIZE", 50)),
		BatchConcurrency:       int(parseIntOrDefault("BATCH_CONCURRENCY", 0)),
		AnalysisWorkers:        int(parseIntOrDefault("ANALYSIS_WORKERS", 0)),

		PaletteSource:                strings.ToLower(getEnvOrDefault("PALETTE_SOURCE", "embedded")),
		PaletteLocation:              os.Getenv("PALETTE_LOCATION"),
		PaletteFetchTimeout:          parseDurationOrDefault("PALETTE_FETCH_TIMEOUT", 15*time.Second),
		AzureStorageAccount:          os.Getenv("AZURE_STORAGE_ACCOUNT"),
		AzureStorageKey:              os.Getenv("AZURE_STORAGE_KEY"),
		AzureStorageContainer:        getEnvOrDefault("AZURE_STORAGE_CONTAINER", "palettes"),
		AzureStorageConnectionString: os.Getenv("AZURE_STORAGE_CONNECTION_STRING"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and cross-field requirements
func (c *Config) Validate() error {
	p, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Port)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", c.MaxRequestBodySize)
	}
	if c.RequestTimeout <= 0 || c.AnalysisTimeout <= 0 || c.PaletteFetchTimeout <= 0 {
		return fmt.Errorf("timeouts must be > 0 (got request=%s, analysis=%s, palette=%s)",
			c.RequestTimeout, c.AnalysisTimeout, c.PaletteFetchTimeout)
	}
	if c.RetryThreshold < 0 || c.RetryThreshold > 1 {
		return fmt.Errorf("RETRY_THRESHOLD must be within [0,1] (got %g)", c.RetryThreshold)
	}
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.DefaultResponseVersion)), "v") {
	case "1", "1.0", "2", "2.0":
	default:
		return fmt.Errorf("DEFAULT_RESPONSE_VERSION must be 1.0 or 2.0 (got %q)", c.DefaultResponseVersion)
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("MAX_BATCH_SIZE must be > 0 (got %d)", c.MaxBatchSize)
	}
	if c.BatchConcurrency < 0 || c.AnalysisWorkers < 0 {
		return fmt.Errorf("BATCH_CONCURRENCY and ANALYSIS_WORKERS must be >= 0")
	}

	switch c.PaletteSource {
	case "embedded":
	case "file", "http":
		if c.PaletteLocation == "" {
			return fmt.Errorf("PALETTE_LOCATION is required for PALETTE_SOURCE=%s", c.PaletteSource)
		}
	case "azure":
		if c.AzureStorageAccount == "" && c.AzureStorageConnectionString == "" {
			return fmt.Errorf("AZURE_STORAGE_ACCOUNT or AZURE_STORAGE_CONNECTION_STRING is required for PALETTE_SOURCE=azure")
		}
	default:
		return fmt.Errorf("unsupported PALETTE_SOURCE: %q", c.PaletteSource)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseFloatOrDefault keeps unparsable values so Validate can reject them
// rather than silently using the default.
func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return -1
		}
		return f
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
