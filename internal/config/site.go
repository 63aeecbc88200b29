package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/allisson/go-env"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// SiteConfig holds configuration for the site under test and the browser driving it
type SiteConfig struct {
	BaseURL           string
	Headless          bool
	Browser           string
	ActionTimeout     time.Duration
	NavigationTimeout time.Duration
	Seed              int64
	LogLevel          string

	ExistingEmail    string
	ExistingPassword string

	LedgerEnabled    bool
	SweepConcurrency int
	SweepRatePerSec  float64
	SweepMinAge      time.Duration
}

// LoadSiteConfig loads site configuration from environment variables
func LoadSiteConfig() (*SiteConfig, error) {
	config := &SiteConfig{
		BaseURL:           env.GetString("BASE_URL", "https://automationexercise.com"),
		Headless:          env.GetBool("HEADLESS", true),
		Browser:           env.GetString("BROWSER", BrowserChromium),
		ActionTimeout:     env.GetDuration("ACTION_TIMEOUT_MS", 10000, time.Millisecond),
		NavigationTimeout: env.GetDuration("NAVIGATION_TIMEOUT_MS", 30000, time.Millisecond),
		Seed:              env.GetInt64("SEED", 0),
		LogLevel:          env.GetString("LOG_LEVEL", "info"),
		ExistingEmail:     env.GetString("EXISTING_EMAIL", "brtest@test.com"),
		ExistingPassword:  env.GetString("EXISTING_PASSWORD", "123456"),
		LedgerEnabled:     env.GetBool("LEDGER_ENABLED", false),
		SweepConcurrency:  env.GetInt("SWEEP_CONCURRENCY", 4),
		SweepRatePerSec:   env.GetFloat64("SWEEP_RATE_PER_SEC", 2),
		SweepMinAge:       env.GetDuration("SWEEP_MIN_AGE_MINUTES", 120, time.Minute),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable
func (c *SiteConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("BASE_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}

	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return fmt.Errorf("BROWSER must be one of chromium, firefox, webkit, got %q", c.Browser)
	}

	if c.ActionTimeout <= 0 {
		return fmt.Errorf("ACTION_TIMEOUT_MS must be positive")
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("NAVIGATION_TIMEOUT_MS must be positive")
	}
	if c.SweepConcurrency <= 0 {
		return fmt.Errorf("SWEEP_CONCURRENCY must be positive")
	}
	if c.SweepRatePerSec <= 0 {
		return fmt.Errorf("SWEEP_RATE_PER_SEC must be positive")
	}
	if c.SweepMinAge < 0 {
		return fmt.Errorf("SWEEP_MIN_AGE_MINUTES cannot be negative")
	}

	return nil
}

// ActionTimeoutMillis returns the action timeout in the unit playwright expects
func (c *SiteConfig) ActionTimeoutMillis() float64 {
	return float64(c.ActionTimeout.Milliseconds())
}

// NavigationTimeoutMillis returns the navigation timeout in the unit playwright expects
func (c *SiteConfig) NavigationTimeoutMillis() float64 {
	return float64(c.NavigationTimeout.Milliseconds())
}
