package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Auth      AuthConfig      `yaml:"auth"`
	Email     EmailConfig     `yaml:"email"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// UpstreamConfig contains rental API (Navotar) connection settings
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	ClientID       string `yaml:"client_id"`
	UserID         string `yaml:"user_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AuthConfig contains bearer-token verification settings plus the
// service credentials background jobs authenticate with
type AuthConfig struct {
	Issuer       string `yaml:"issuer"`
	JWKSURL      string `yaml:"jwks_url"`
	Audience     string `yaml:"audience"`
	LoginURL     string `yaml:"login_url"`
	TokenURL     string `yaml:"token_url"`
	ClientSecret string `yaml:"client_secret"`
	Scope        string `yaml:"scope"`
}

// EmailConfig contains SendGrid settings for confirmation mail
type EmailConfig struct {
	Enabled  bool   `yaml:"enabled"`
	APIKey   string `yaml:"api_key"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

// CacheConfig contains lookup-cache TTL settings
type CacheConfig struct {
	LookupTTLMinutes    int `yaml:"lookup_ttl_minutes"`
	DashboardTTLMinutes int `yaml:"dashboard_ttl_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SweepWizardSessions string `yaml:"sweep_wizard_sessions"`
	RefreshDashboard    string `yaml:"refresh_dashboard"`
	SessionIdleMinutes  int    `yaml:"session_idle_minutes"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Upstream
	if val := os.Getenv("UPSTREAM_BASE_URL"); val != "" {
		c.Upstream.BaseURL = val
	}
	if val := os.Getenv("UPSTREAM_CLIENT_ID"); val != "" {
		c.Upstream.ClientID = val
	}
	if val := os.Getenv("UPSTREAM_USER_ID"); val != "" {
		c.Upstream.UserID = val
	}

	// Auth
	if val := os.Getenv("AUTH_ISSUER"); val != "" {
		c.Auth.Issuer = val
	}
	if val := os.Getenv("AUTH_JWKS_URL"); val != "" {
		c.Auth.JWKSURL = val
	}
	if val := os.Getenv("AUTH_AUDIENCE"); val != "" {
		c.Auth.Audience = val
	}
	if val := os.Getenv("AUTH_TOKEN_URL"); val != "" {
		c.Auth.TokenURL = val
	}
	if val := os.Getenv("AUTH_CLIENT_SECRET"); val != "" {
		c.Auth.ClientSecret = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.From = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Upstream validation
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required")
	}
	if c.Upstream.ClientID == "" {
		return fmt.Errorf("upstream client id is required")
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		c.Upstream.TimeoutSeconds = 30
	}

	// Auth validation
	if c.Auth.JWKSURL == "" {
		return fmt.Errorf("auth JWKS URL is required")
	}
	if c.Auth.LoginURL == "" {
		return fmt.Errorf("auth login URL is required")
	}

	// Email validation
	if c.Email.Enabled {
		if c.Email.APIKey == "" {
			return fmt.Errorf("SendGrid API key is required when email is enabled")
		}
		if c.Email.From == "" {
			return fmt.Errorf("email from address is required when email is enabled")
		}
	}

	// Cache defaults
	if c.Cache.LookupTTLMinutes == 0 {
		c.Cache.LookupTTLMinutes = 10
	}
	if c.Cache.DashboardTTLMinutes == 0 {
		c.Cache.DashboardTTLMinutes = 5
	}

	// Scheduler defaults
	if c.Scheduler.SweepWizardSessions == "" {
		c.Scheduler.SweepWizardSessions = "0 */5 * * * *" // every 5 minutes
	}
	if c.Scheduler.RefreshDashboard == "" {
		c.Scheduler.RefreshDashboard = "0 */10 * * * *" // every 10 minutes
	}
	if c.Scheduler.SessionIdleMinutes == 0 {
		c.Scheduler.SessionIdleMinutes = 60
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// UpstreamTimeout returns the upstream request timeout as a duration
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

// HasServiceCredentials reports whether background jobs can authenticate
// on their own; without these the dashboard refresh job stays disabled
func (c *Config) HasServiceCredentials() bool {
	return c.Auth.TokenURL != "" && c.Auth.ClientSecret != ""
}

// SessionIdle returns the wizard session idle expiry as a duration
func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.Scheduler.SessionIdleMinutes) * time.Minute
}
