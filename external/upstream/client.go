// Package upstream is the shared JSON-over-HTTP transport for provider clients.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/metrics"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/euroleague-dashboard/internal/usecase"
	"golang.org/x/sync/singleflight"
)

const maxBodyBytes = 6 << 20

var errTransient = crerr.New("upstream transient failure")

type Config struct {
	Name           string
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Headers        map[string]string
	Retry          resilience.RetryConfig
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
}

type Client struct {
	name       string
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	retry      resilience.RetryConfig
	breaker    *resilience.Breaker
	flight     singleflight.Group
	logger     *logging.Logger
	metrics    *metrics.Recorder
}

func New(cfg Config, defaultBaseURL string) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named(cfg.Name)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		name:       cfg.Name,
		httpClient: httpClient,
		baseURL:    baseURL,
		headers:    cfg.Headers,
		retry:      resilience.NormalizeRetryConfig(cfg.Retry),
		breaker: resilience.NewBreaker(cfg.Name, cfg.CircuitBreaker,
			resilience.WithFailurePredicate(IsTransient),
			resilience.WithStateLogger(logger),
		),
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// BaseURL reports the resolved provider root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON fetches path with query and decodes the body into target.
// Concurrent identical requests share one upstream call.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		started := time.Now()
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = resilience.Retry(ctx, c.retry, func() ([]byte, error) {
				return c.execute(ctx, fullURL)
			})
			return reqErr
		})
		c.metrics.ObserveUpstream(c.name, time.Since(started), execErr)
		return raw, execErr
	})
	if err != nil {
		c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", err)
		return c.classify(err)
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s payload: %w", usecase.ErrDependencyUnavailable, c.name, err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, resilience.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, resilience.Permanent(ctx.Err())
		}
		return nil, crerr.Wrapf(errTransient, "send request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Wrapf(errTransient, "read response body: %v", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
	if isRetryableStatus(resp.StatusCode) {
		return nil, crerr.WithSecondaryError(crerr.Wrap(errTransient, statusErr.Error()), statusErr)
	}
	return nil, resilience.Permanent(statusErr)
}

func (c *Client) classify(err error) error {
	var statusErr *StatusError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, resilience.ErrCircuitOpen):
		return fmt.Errorf("%w: %s is temporarily unavailable", usecase.ErrDependencyUnavailable, c.name)
	case IsTransient(err):
		return fmt.Errorf("%w: %s: %v", usecase.ErrDependencyUnavailable, c.name, err)
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s: %w", usecase.ErrNotFound, c.name, err)
	default:
		return fmt.Errorf("%s: %w", c.name, err)
	}
}

// StatusError is a non-2xx provider response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider status=%d body=%s", e.StatusCode, e.Body)
}

// IsTransient reports whether err is worth retrying and counts against the breaker.
func IsTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func abbreviateBody(body []byte) string {
	const limit = 240
	text := strings.TrimSpace(string(body))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
