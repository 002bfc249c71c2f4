package forum

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pleasure1234/linux-do-mcp/internal/config"
)

var (
	ErrMissingAPIKey   = errors.New("LINUX_DO_API_KEY environment variable is not set")
	ErrMissingUsername = errors.New("LINUX_DO_USERNAME environment variable is not set")
)

// Config is built once at startup and shared read-only by every handler.
type Config struct {
	BaseURL           string
	APIKey            string
	Username          string
	UserAgent         string
	RequestTimeout    time.Duration // 0 disables the per-request timeout
	RequestsPerSecond float64       // 0 disables rate limiting
}

func LoadConfig() (Config, error) {
	cfg := Config{
		BaseURL:           strings.TrimRight(strings.TrimSpace(config.BaseURL()), "/"),
		APIKey:            strings.TrimSpace(config.APIKey()),
		Username:          strings.TrimSpace(config.Username()),
		UserAgent:         config.UserAgent(),
		RequestsPerSecond: config.RequestsPerSecond(),
	}

	timeout, err := parseDuration(config.RequestTimeout(), 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid request_timeout: %w", err)
	}
	cfg.RequestTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first missing or malformed setting.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Username == "" {
		return ErrMissingUsername
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid linux_do_base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid linux_do_base_url %q: scheme and host are required", c.BaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	return nil
}

// TopicURL returns the public URL of a topic.
func (c Config) TopicURL(topicID int) string {
	return fmt.Sprintf("%s/t/%d", c.BaseURL, topicID)
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
