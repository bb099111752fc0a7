package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`
}

// CatalogConfig selects the product catalog source
type CatalogConfig struct {
	Path          string `mapstructure:"path"` // empty uses the embedded catalog
	DefaultLocale string `mapstructure:"default_locale"`
}

// MatchingConfig holds recommendation engine configuration
type MatchingConfig struct {
	DefaultLimit      int  `mapstructure:"default_limit"`
	MaxLimit          int  `mapstructure:"max_limit"`
	DebugLogging      bool `mapstructure:"debug_logging"`
	ReportConcurrency int  `mapstructure:"report_concurrency"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Environments accepted in server.environment
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// .env values never override variables already set in the environment
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/skinlens/")

	// Environment variable settings (server.port -> SKINLENS_SERVER_PORT)
	v.SetEnvPrefix("SKINLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory if one exists
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*", "http://localhost:3000"})
	v.SetDefault("server.max_body_bytes", 1<<20)

	// Catalog defaults
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.default_locale", "en")

	// Matching defaults
	v.SetDefault("matching.default_limit", 1)
	v.SetDefault("matching.max_limit", 50)
	v.SetDefault("matching.debug_logging", false)
	v.SetDefault("matching.report_concurrency", 4)

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)

	// Log defaults
	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("server environment must be one of development, production, test, got: %s", config.Server.Environment)
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set SKINLENS_SERVER_PORT)")
	}

	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max body bytes must be positive, got: %d", config.Server.MaxBodyBytes)
	}

	if path := config.Catalog.Path; path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".xlsx":
		default:
			return fmt.Errorf("catalog path must be a .yaml, .yml or .xlsx file, got: %s", path)
		}
	}

	if _, err := language.Parse(config.Catalog.DefaultLocale); err != nil {
		return fmt.Errorf("catalog default locale %q is not a valid language tag: %w", config.Catalog.DefaultLocale, err)
	}

	if config.Matching.DefaultLimit < 1 {
		return fmt.Errorf("matching default limit must be at least 1, got: %d", config.Matching.DefaultLimit)
	}

	if config.Matching.MaxLimit < config.Matching.DefaultLimit {
		return fmt.Errorf("matching max limit (%d) must not be below default limit (%d)",
			config.Matching.MaxLimit, config.Matching.DefaultLimit)
	}

	if config.Matching.ReportConcurrency < 1 {
		return fmt.Errorf("matching report concurrency must be at least 1, got: %d", config.Matching.ReportConcurrency)
	}

	if config.Cache.Enabled && config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive when the cache is enabled, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}

	if config.RateLimit.PerIP > 0 && config.RateLimit.Burst == 0 {
		return fmt.Errorf("rate limit burst must be at least 1 when per_ip is set")
	}

	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}
