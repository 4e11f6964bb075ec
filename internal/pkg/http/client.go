package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/coffeeshop/internal/pkg/circuitbreaker"
	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/requestcontext"
	"github.com/piresc/coffeeshop/internal/pkg/retry"
)

// Config holds outbound client configuration
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int
}

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// Client is a JSON client with retry and circuit breaker protection.
// The breaker wraps the whole retry sequence, so one exhausted sequence counts
// as one failure.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
	logger    *logger.ZapLogger
}

// NewClient creates a new client for one upstream service
func NewClient(cfg Config, log *logger.ZapLogger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.Retryable = IsRetryable

	breakerCfg := circuitbreaker.DefaultConfig(cfg.BaseURL)
	breakerCfg.IsFailure = IsRetryable

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		retrier:   retry.New(retryCfg, log),
		breaker:   circuitbreaker.New(breakerCfg, log),
		logger:    log,
	}
}

// GetJSON performs GET baseURL+path?query and decodes the body into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, u, out)
		})
	})
}

func (c *Client) do(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// IsRetryable reports whether err is a transport failure or a 5xx/429 answer.
// Decode errors and 4xx answers will not change on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == http.StatusTooManyRequests
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
