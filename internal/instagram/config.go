package instagram

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config validation errors
var (
	// ErrMissingAccessToken is returned when AccessToken is empty
	ErrMissingAccessToken = errors.New("AccessToken is required")
	// ErrMissingBaseURL is returned when BaseURL is empty
	ErrMissingBaseURL = errors.New("BaseURL is required")
	// ErrInvalidTimeout is returned when Timeout is not positive
	ErrInvalidTimeout = errors.New("Timeout must be positive")
)

// Config holds the configuration for the Instagram Graph API client.
// It is passed to NewClient explicitly; the client never reads ambient
// process state once constructed.
type Config struct {
	// AccessToken is the long-lived Graph API access token sent with every call.
	AccessToken string

	// BaseURL is the Graph API root (e.g., "https://graph.facebook.com/v18.0").
	BaseURL string

	// Timeout bounds every HTTP call to the Graph API.
	Timeout time.Duration
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTimeout, c.Timeout)
	}
	return nil
}

// DefaultConfig returns a Config with sensible default values.
// AccessToken has no default and must be supplied.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://graph.facebook.com/v18.0",
		Timeout: 10 * time.Second,
	}
}

// ConfigFromEnv creates a Config from environment variables.
// Uses defaults for any missing environment variables.
//
// Environment variables:
//   - INSTAGRAM_ACCESS_TOKEN: Graph API access token (required for a valid config)
//   - INSTAGRAM_API_BASE_URL: Graph API root (default: "https://graph.facebook.com/v18.0")
//   - INSTAGRAM_TIMEOUT_SECONDS: per-call timeout in seconds (default: 10)
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.AccessToken = os.Getenv("INSTAGRAM_ACCESS_TOKEN")

	if v := os.Getenv("INSTAGRAM_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv("INSTAGRAM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		} else {
			slog.Warn("[INSTAGRAM] invalid INSTAGRAM_TIMEOUT_SECONDS value, using default",
				"value", v,
				"default_seconds", int(cfg.Timeout.Seconds()),
				"error", err,
			)
		}
	}

	return cfg
}
