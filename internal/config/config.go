package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                   string   `mapstructure:"PORT"`
	Env                    string   `mapstructure:"ENV"`
	FHIRServerURL          string   `mapstructure:"FHIR_SERVER_URL"`
	FHIRAPIKey             string   `mapstructure:"FHIR_API_KEY"`
	FHIRTimeoutSeconds     int      `mapstructure:"FHIR_TIMEOUT_SECONDS"`
	UseMockData            bool     `mapstructure:"USE_MOCK_DATA"`
	SearchFallbackDefaults bool     `mapstructure:"SEARCH_FALLBACK_DEFAULTS"`
	AuthSecret             string   `mapstructure:"AUTH_SECRET"`
	CORSOrigins            []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS           float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst         int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("FHIR_SERVER_URL", "https://hapi.fhir.org/baseR4")
	v.SetDefault("FHIR_TIMEOUT_SECONDS", 30)
	v.SetDefault("USE_MOCK_DATA", true)
	v.SetDefault("SEARCH_FALLBACK_DEFAULTS", true)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("FHIR_SERVER_URL")
	v.BindEnv("FHIR_API_KEY")
	v.BindEnv("FHIR_TIMEOUT_SECONDS")
	v.BindEnv("USE_MOCK_DATA")
	v.BindEnv("SEARCH_FALLBACK_DEFAULTS")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// FHIRTimeout returns the upstream request timeout as a duration.
func (c *Config) FHIRTimeout() time.Duration {
	return time.Duration(c.FHIRTimeoutSeconds) * time.Second
}

// Validate checks that the configuration is safe to run. Live mode needs a
// well-formed upstream URL, and production refuses to start without an
// AUTH_SECRET so the API is never exposed unauthenticated by accident.
func (c *Config) Validate() error {
	if !c.UseMockData {
		if c.FHIRServerURL == "" {
			return fmt.Errorf("FHIR_SERVER_URL is required when USE_MOCK_DATA is false")
		}
		u, err := url.Parse(c.FHIRServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("FHIR_SERVER_URL %q is not a valid absolute URL", c.FHIRServerURL)
		}
	}
	if c.FHIRTimeoutSeconds <= 0 {
		return fmt.Errorf("FHIR_TIMEOUT_SECONDS must be positive, got %d", c.FHIRTimeoutSeconds)
	}
	if c.IsProduction() && c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required in production")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	return nil
}
