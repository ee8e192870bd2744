package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Bring    BringConfig
	Matching MatchingConfig
	Catalog  CatalogConfig
	Recipe   RecipeConfig
	Log      LogConfig
}

// ServerConfig holds webhook server configuration
type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

// BringConfig holds Bring account and API configuration
type BringConfig struct {
	Username  string        `mapstructure:"username"`
	Password  string        `mapstructure:"password"`
	ListName  string        `mapstructure:"list_name"`
	BaseURL   string        `mapstructure:"base_url"`
	WebURL    string        `mapstructure:"web_url"`
	APIKey    string        `mapstructure:"api_key"`
	Country   string        `mapstructure:"country"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"` // requests per second
}

// MatchingConfig holds fuzzy matching configuration
type MatchingConfig struct {
	FuzzyMatching string `mapstructure:"fuzzy_matching"` // only "true" enables matching
	Threshold     int    `mapstructure:"threshold"`
}

// CatalogConfig holds product catalog cache configuration
type CatalogConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RecipeConfig controls how recipe ingredients become list items
type RecipeConfig struct {
	IgnoredIngredients string `mapstructure:"ignored_ingredients"` // comma separated
	UseAbbreviation    bool   `mapstructure:"use_abbreviation"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// FuzzyEnabled reports whether ingredient names are fuzzy matched before upload
func (m MatchingConfig) FuzzyEnabled() bool {
	return m.FuzzyMatching == "true"
}

// IgnoredList returns the lower-cased ignored ingredient names
func (r RecipeConfig) IgnoredList() []string {
	var ignored []string
	for _, name := range strings.Split(r.IgnoredIngredients, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			ignored = append(ignored, name)
		}
	}
	return ignored
}

// Address returns host:port for the HTTP listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"server.host":                "HTTP_HOST",
	"server.port":                "HTTP_PORT",
	"server.environment":         "ENVIRONMENT",
	"bring.username":             "BRING_USERNAME",
	"bring.password":             "BRING_PASSWORD",
	"bring.list_name":            "BRING_LIST_NAME",
	"bring.base_url":             "BRING_BASE_URL",
	"bring.web_url":              "BRING_WEB_URL",
	"bring.api_key":              "BRING_API_KEY",
	"bring.country":              "BRING_COUNTRY",
	"bring.timeout":              "BRING_TIMEOUT",
	"bring.rate_limit":           "BRING_RATE_LIMIT",
	"matching.fuzzy_matching":    "USE_FUZZY_MATCHING",
	"matching.threshold":         "MATCHING_THRESHOLD",
	"catalog.ttl":                "CATALOG_TTL",
	"recipe.ignored_ingredients": "IGNORED_INGREDIENTS",
	"recipe.use_abbreviation":    "USE_ABBREVIATION",
	"log.level":                  "LOG_LEVEL",
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/basketsync/")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory if present.
// Variables already set in the environment win.
func loadEnvFile() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading .env file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8742")
	v.SetDefault("server.environment", "development")

	v.SetDefault("bring.base_url", "https://api.getbring.com/rest")
	v.SetDefault("bring.web_url", "https://web.getbring.com")
	v.SetDefault("bring.api_key", "cof4Nc6D8saplXjE3h3HXqHH8m7VU2i1Gs0g85Sp")
	v.SetDefault("bring.country", "DE")
	v.SetDefault("bring.timeout", "30s")
	v.SetDefault("bring.rate_limit", 5.0)

	v.SetDefault("matching.fuzzy_matching", "true")
	v.SetDefault("matching.threshold", 85)

	v.SetDefault("catalog.ttl", "24h")

	v.SetDefault("recipe.ignored_ingredients", "")
	v.SetDefault("recipe.use_abbreviation", false)

	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Bring.Username == "" {
		return fmt.Errorf("Bring username is required (set BRING_USERNAME)")
	}

	if config.Bring.Password == "" {
		return fmt.Errorf("Bring password is required (set BRING_PASSWORD)")
	}

	if config.Bring.ListName == "" {
		return fmt.Errorf("Bring list name is required (set BRING_LIST_NAME)")
	}

	if config.Matching.Threshold < 1 || config.Matching.Threshold > 100 {
		return fmt.Errorf("matching threshold must be between 1 and 100, got: %d", config.Matching.Threshold)
	}

	if config.Bring.RateLimit <= 0 {
		return fmt.Errorf("Bring rate limit must be positive, got: %v", config.Bring.RateLimit)
	}

	return nil
}
