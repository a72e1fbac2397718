// Package retry runs operations that may fail temporarily with bounded,
// exponentially growing delays between attempts. It wraps the retry-go package
// from Avast behind a small interface so callers can be tested with a mock.
//
//	r := retry.New(retry.WithAttempts(3), retry.WithOperationName("eth_getTransactionByHash"))
//	err := r.Execute(ctx, func() error {
//	    return lookup(ctx)
//	})
package retry

import (
	"context"
	"time"

	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds or the retry budget is spent.
type Retry interface {
	// Execute calls operation, retrying on error. The first attempt is immediate.
	//
	// It returns nil on success, the operation error once the attempts are exhausted or
	// the error was marked with Unrecoverable, or the context error when ctx is done.
	// operation must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, including the first one
	delay       time.Duration // base delay between retry attempts
	maxDelay    time.Duration // maximum delay between retry attempts
	lastErrOnly bool          // whether to return only the last error
	name        string        // operation name used in retry logs
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry configured with opts.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second, doubled on every retry
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - name:        "operation"
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		name:        "operation",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
// Every failed attempt that will be retried is logged at debug level.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Debug(ctx, "retrying after failed attempt",
				"retry.operation", r.cfg.name,
				"retry.attempt", attempt+1,
				"error", err,
			)
		}),
	)
}

// Unrecoverable marks err so that Execute stops retrying and returns it immediately.
// The returned error still matches err with errors.Is.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry. Later delays double up to the
// maximum delay.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether Execute returns only the error of the final attempt
// instead of the errors of every attempt.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOperationName sets the name that identifies the operation in retry logs.
// Default: "operation".
func WithOperationName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
