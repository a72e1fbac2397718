// Package http builds the retrying HTTP client used for JSON-RPC calls to the node.
// Retried attempts are reported through the application logger.
package http

import (
	"net/http"
	"time"

	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option customizes the client built by NewClient.
type Option func(*config)

// logRetry is installed as the RequestLogHook. The first attempt is silent.
func logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	logger.Warn(req.Context(), "retrying request",
		"http.method", req.Method,
		"http.url", req.URL.Redacted(),
		"attempt", attempt,
	)
}

func defaultConfig() config {
	return config{
		timeout:      5 * time.Second,
		retryWaitMin: time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
}

// NewClient returns a retrying client for node RPC calls. Defaults are a 5s request
// timeout and 2 retries waiting between 1s and 5s. Pass StandardClient() of the
// result to code expecting a *http.Client.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RequestLogHook = logRetry
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin, client.RetryWaitMax = cfg.retryWaitMin, cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	return client
}

// WithTimeout bounds a single request attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithRetryWaitMin sets the shortest backoff between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) { c.retryWaitMin = d }
}

// WithRetryWaitMax caps the backoff between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) { c.retryWaitMax = d }
}

// WithRetryMax sets how many times a failed request is retried. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *config) { c.retryMax = n }
}
