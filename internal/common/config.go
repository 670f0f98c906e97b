// Package common provides configuration and logging shared by trk components.
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/etnz/tracker"
)

// Config holds all configuration for trk
type Config struct {
	Portfolio PortfolioConfig `toml:"portfolio"`
	Logging   LoggingConfig   `toml:"logging"`
	Refresh   RefreshConfig   `toml:"refresh"`
	Charts    ChartsConfig    `toml:"charts"`
	Yahoo     YahooConfig     `toml:"yahoo"`
	EODHD     EODHDConfig     `toml:"eodhd"`
	Assist    AssistConfig    `toml:"assist"`
}

// PortfolioConfig holds the session portfolio settings.
type PortfolioConfig struct {
	Name          string `toml:"name"`
	Currency      string `toml:"currency"`       // all prices are in this currency, no conversion is done
	DefaultPeriod string `toml:"default_period"` // history period used when none is given
	Provider      string `toml:"provider"`       // yahoo or eodhd
}

// Quote providers.
const (
	ProviderYahoo = "yahoo"
	ProviderEODHD = "eodhd"
)

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// RefreshConfig holds price refresh configuration.
type RefreshConfig struct {
	Workers int `toml:"workers"` // 1 refreshes sequentially
}

// ChartsConfig holds where and how charts are rendered.
type ChartsConfig struct {
	Dir    string `toml:"dir"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// YahooConfig holds Yahoo Finance client configuration
type YahooConfig struct {
	ProfileURL string `toml:"profile_url"`
	RateLimit  int    `toml:"rate_limit"` // requests per second
	Timeout    string `toml:"timeout"`
	CacheDir   string `toml:"cache_dir"` // empty disables the profile cache
}

// GetTimeout parses and returns the timeout duration
func (c *YahooConfig) GetTimeout() time.Duration { return timeout(c.Timeout) }

// timeout parses a duration, 30s when invalid.
func timeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// EODHDConfig holds EODHD client configuration
type EODHDConfig struct {
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	Exchange  string `toml:"exchange"` // appended to tickers without exchange
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	CacheDir  string `toml:"cache_dir"` // empty disables the cache, real-time prices are never cached
}

// GetTimeout parses and returns the timeout duration
func (c *EODHDConfig) GetTimeout() time.Duration { return timeout(c.Timeout) }

// AssistConfig holds Gemini configuration for the assist command.
type AssistConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// Enabled returns true if the assistant can be used.
func (c *AssistConfig) Enabled() bool { return c.APIKey != "" }

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Portfolio: PortfolioConfig{
			Name:          "My Portfolio",
			Currency:      "USD",
			DefaultPeriod: tracker.DefaultPeriod.String(),
			Provider:      ProviderYahoo,
		},
		Logging: LoggingConfig{Level: "info"},
		Refresh: RefreshConfig{Workers: 1},
		Charts: ChartsConfig{
			Dir:    ".",
			Width:  900,
			Height: 400,
		},
		Yahoo: YahooConfig{
			ProfileURL: "https://query2.finance.yahoo.com/v10/finance/quoteSummary",
			RateLimit:  5,
			Timeout:    "30s",
			CacheDir:   os.TempDir(),
		},
		EODHD: EODHDConfig{
			BaseURL:   "https://eodhd.com/api",
			Exchange:  "US",
			RateLimit: 10,
			Timeout:   "30s",
			CacheDir:  os.TempDir(),
		},
		Assist: AssistConfig{Model: "gemini-2.5-flash"},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("TRK_PORTFOLIO_NAME"); v != "" {
		config.Portfolio.Name = v
	}
	if v := os.Getenv("TRK_CURRENCY"); v != "" {
		config.Portfolio.Currency = v
	}
	if v := os.Getenv("TRK_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("TRK_CHART_DIR"); v != "" {
		config.Charts.Dir = v
	}
	if v := os.Getenv("TRK_REFRESH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Refresh.Workers = n
		}
	}
	if v := os.Getenv("TRK_PROVIDER"); v != "" {
		config.Portfolio.Provider = v
	}
	if v := os.Getenv("EODHD_API_KEY"); v != "" {
		config.EODHD.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.Assist.APIKey = v
	}
}

// Validate normalizes the configuration and checks it is usable.
func (c *Config) Validate() error {
	c.Portfolio.Currency = strings.ToUpper(strings.TrimSpace(c.Portfolio.Currency))
	if len(c.Portfolio.Currency) != 3 {
		return fmt.Errorf("invalid currency %q: want a 3 letters ISO code", c.Portfolio.Currency)
	}
	if _, err := tracker.ParsePeriod(c.Portfolio.DefaultPeriod); err != nil {
		return fmt.Errorf("invalid default_period: %w", err)
	}
	c.Portfolio.Provider = strings.ToLower(strings.TrimSpace(c.Portfolio.Provider))
	switch c.Portfolio.Provider {
	case ProviderYahoo:
	case ProviderEODHD:
		if c.EODHD.APIKey == "" {
			return fmt.Errorf("provider %s requires an api_key (or EODHD_API_KEY)", ProviderEODHD)
		}
	default:
		return fmt.Errorf("unknown provider %q (valid: %s, %s)", c.Portfolio.Provider, ProviderYahoo, ProviderEODHD)
	}
	if c.Refresh.Workers < 1 {
		c.Refresh.Workers = 1
	}
	if c.Yahoo.RateLimit < 1 {
		c.Yahoo.RateLimit = 1
	}
	if c.EODHD.RateLimit < 1 {
		c.EODHD.RateLimit = 1
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Charts.Width, c.Charts.Height)
	}
	return nil
}

// Period returns the configured default history period.
func (c *PortfolioConfig) Period() tracker.Period {
	p, err := tracker.ParsePeriod(c.DefaultPeriod)
	if err != nil {
		return tracker.DefaultPeriod
	}
	return p
}
