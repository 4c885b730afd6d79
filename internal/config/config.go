// Package config provides configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	qerrors "premium-quote/internal/errors"
	"premium-quote/internal/logging"
)

// EnvPrefix prefixes every environment override (PREMIUM_WEBHOOK_ENDPOINT, ...)
const EnvPrefix = "PREMIUM"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `mapstructure:"version"`

	// Tariff selects the rule set used for pricing
	Tariff TariffConfig `mapstructure:"tariff"`

	// Output contains output configuration
	Output OutputConfig `mapstructure:"output"`

	// Webhook configures lead submission
	Webhook WebhookConfig `mapstructure:"webhook"`

	// Logging contains logging configuration
	Logging logging.Config `mapstructure:"logging"`
}

// TariffConfig contains pricing-related settings
type TariffConfig struct {
	// Path is an HCL tariff file. Empty selects the built-in grid.
	Path string `mapstructure:"path"`

	// Currency is the display currency
	Currency string `mapstructure:"currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (cli, json, markdown)
	Format string `mapstructure:"format"`

	// ShowDetails prints the calculation audit trail
	ShowDetails bool `mapstructure:"show_details"`

	// Language is the preferred label language (fr, en, nl or an Accept-Language value)
	Language string `mapstructure:"language"`
}

// WebhookConfig contains lead submission settings
type WebhookConfig struct {
	// Provider selects the payload shape (custom, slack)
	Provider string `mapstructure:"provider"`

	// Endpoint is the URL leads are POSTed to
	Endpoint string `mapstructure:"endpoint"`

	// Secret signs the payload when set
	Secret string `mapstructure:"secret"`

	// Headers are added to every request
	Headers map[string]string `mapstructure:"headers"`

	// Timeout bounds a single attempt
	Timeout time.Duration `mapstructure:"timeout"`

	// RetryCount is the number of extra attempts. Zero means the user retries by hand.
	RetryCount int `mapstructure:"retry_count"`

	// RetryDelay separates attempts
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Tariff: TariffConfig{
			Currency: "EUR",
		},
		Output: OutputConfig{
			Format:      "cli",
			ShowDetails: false,
			Language:    "fr",
		},
		Webhook: WebhookConfig{
			Provider:   "custom",
			Timeout:    15 * time.Second,
			RetryCount: 0,
			RetryDelay: time.Second,
			Headers:    map[string]string{},
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from path, or from the standard locations when
// path is empty. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "premium-quote"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, qerrors.Config("failed to read config", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, qerrors.Config("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that viper cannot express
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "cli", "json", "markdown":
	default:
		return qerrors.Newf(qerrors.TypeConfig, "unsupported output format %q", c.Output.Format)
	}
	switch c.Webhook.Provider {
	case "custom", "slack":
	default:
		return qerrors.Newf(qerrors.TypeConfig, "unsupported webhook provider %q", c.Webhook.Provider)
	}
	if c.Webhook.RetryCount < 0 {
		return qerrors.Newf(qerrors.TypeConfig, "webhook.retry_count must not be negative, got %d", c.Webhook.RetryCount)
	}
	if c.Webhook.Timeout <= 0 {
		return qerrors.Newf(qerrors.TypeConfig, "webhook.timeout must be positive, got %s", c.Webhook.Timeout)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("tariff.path", d.Tariff.Path)
	v.SetDefault("tariff.currency", d.Tariff.Currency)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.show_details", d.Output.ShowDetails)
	v.SetDefault("output.language", d.Output.Language)
	v.SetDefault("webhook.provider", d.Webhook.Provider)
	v.SetDefault("webhook.endpoint", d.Webhook.Endpoint)
	v.SetDefault("webhook.secret", d.Webhook.Secret)
	v.SetDefault("webhook.headers", d.Webhook.Headers)
	v.SetDefault("webhook.timeout", d.Webhook.Timeout)
	v.SetDefault("webhook.retry_count", d.Webhook.RetryCount)
	v.SetDefault("webhook.retry_delay", d.Webhook.RetryDelay)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)
}

// String renders the effective configuration without secrets
func (c *Config) String() string {
	secret := ""
	if c.Webhook.Secret != "" {
		secret = "(set)"
	}
	return fmt.Sprintf("tariff=%q format=%s lang=%s webhook=%q secret=%s timeout=%s retries=%d log=%s",
		c.Tariff.Path, c.Output.Format, c.Output.Language, c.Webhook.Endpoint, secret,
		c.Webhook.Timeout, c.Webhook.RetryCount, c.Logging.Level)
}
