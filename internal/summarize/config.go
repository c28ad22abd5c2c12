package summarize

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// DefaultBaseURL is the local-development backend.
const DefaultBaseURL = "http://localhost:8000"

// Config holds backend connection settings.
type Config struct {
	// BaseURL is the summarization backend root, without a trailing slash.
	BaseURL string

	// Timeout is the maximum duration for a single request. Default: 60s.
	// Summarization of a large PDF is slow, so this is deliberately generous.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("STUDYPAL_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if d := os.Getenv("STUDYPAL_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the base URL is parseable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid STUDYPAL_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid STUDYPAL_API_URL scheme: %q", u.Scheme)
	}
	return nil
}
