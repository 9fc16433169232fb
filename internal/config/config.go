package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Proxy    ProxyConfig    `mapstructure:"proxy"`
	Scraper  ScraperConfig  `mapstructure:"scraper" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
}

type ProxyConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type ScraperConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" validate:"required,min=1s,max=5m"`
	UserAgent string        `mapstructure:"user_agent" validate:"omitempty,min=10"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required,min=1"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=json yaml"`
}

// setDefaults configures default values for viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("proxy.api_key", "")

	v.SetDefault("scraper.timeout", "30s")
	v.SetDefault("scraper.user_agent", "")

	v.SetDefault("database.path", "./data/scrapekit.db")

	v.SetDefault("output.format", "json")
}

// LoadConfig loads configuration from the config file, .env and SCRAPEKIT_* variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/scrapekit")

	v.SetEnvPrefix("SCRAPEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Existing environment variables win over .env entries.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: Failed to load .env file: %v", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// SaveConfigTemplate writes the default configuration to path. It refuses to
// overwrite an existing file.
func SaveConfigTemplate(path string) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}

	return nil
}

// PrintConfig displays the current configuration (for debugging)
func PrintConfig(config *Config) {
	log.Printf("Configuration loaded:")
	if config.Proxy.APIKey != "" {
		log.Printf("  Proxy API Key: [SET] (length: %d)", len(config.Proxy.APIKey))
	} else {
		log.Printf("  Proxy API Key: [NOT SET]")
	}
	log.Printf("  Scraper: timeout %v, user agent %q", config.Scraper.Timeout, config.Scraper.UserAgent)
	log.Printf("  Database: %s", config.Database.Path)
	log.Printf("  Output: %s", config.Output.Format)
}
