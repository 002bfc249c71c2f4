package forum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pleasure1234/linux-do-mcp/internal/logging"
)

const apiKeyHeader = "User-Api-Key"

// Client performs single GET requests against the forum API.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l.WithName("forum") }
}

// WithLimiter overrides the limiter derived from Config.RequestsPerSecond.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  logging.Discard(),
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Config() Config { return c.cfg }

// Fetch issues GET <base>/<endpoint>?<params> and returns the raw body. When
// auth is set the API key header is attached.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values, auth bool) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit %s: %w", endpoint, err)
		}
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	target := c.cfg.BaseURL + "/" + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if auth {
		req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	}

	start := time.Now()
	c.log.Debug("fetching", "endpoint", endpoint, "auth", auth)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.annotateError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := newStatusError(endpoint, resp)
		c.log.Info("forum returned an error status", "endpoint", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))
		return nil, serr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", endpoint, err)
	}
	c.log.Debug("fetched", "endpoint", endpoint, "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

// GetJSON fetches endpoint and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values, auth bool, out any) error {
	body, err := c.Fetch(ctx, endpoint, params, auth)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.RequestTimeout)
}

func (c *Client) annotateError(endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request to %s timed out after %s: %w", endpoint, c.cfg.RequestTimeout, err)
	}
	return fmt.Errorf("request to %s failed: %w", endpoint, err)
}
