package txtrack

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"
	"github.com/gabapcia/mempoolwatch/internal/pkg/resilience/retry"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// DefaultSampleSize is the number of matching transactions collected per run.
	DefaultSampleSize = 5

	// DefaultResolverWorkers resolves one hash at a time.
	DefaultResolverWorkers = 1
)

// Service watches the pending transaction pool for transactions sent to a target contract.
type Service interface {
	// Run subscribes to pending transactions and collects matching ones until the sample
	// is full, the feed ends or ctx is canceled. The subscription is closed before Run
	// returns.
	//
	// The returned Report is always usable, even when an error is returned:
	//   - an error wrapping ErrConnection means the subscription could not be opened and
	//     no transaction was resolved (StateStoppedFatal, empty report);
	//   - an error wrapping ErrSourceEnded means the feed stopped early and the report
	//     holds the partial sample (StateStoppedSourceEnded).
	Run(ctx context.Context) (Report, error)
}

// service is the default implementation of Service.
type service struct {
	source   Source
	resolver Resolver
	target   common.Address

	sampleSize int
	workers    int
	retry      retry.Retry
	guard      SeenGuard
}

// Compile-time assertion that service implements Service.
var _ Service = (*service)(nil)

// Run implements Service.
func (s *service) Run(ctx context.Context) (Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub, err := s.source.SubscribePendingTransactions(ctx)
	if err != nil {
		logger.Error(ctx, "failed to subscribe to pending transactions", "error", err)
		return BuildReport(s.target, Result{State: StateStoppedFatal}), fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer sub.Unsubscribe()

	logger.Info(ctx, "listening for pending transactions",
		"target", s.target.Hex(),
		"sample.size", s.sampleSize,
		"resolver.workers", s.workers,
	)

	p := &pipeline{
		target:      s.target,
		resolver:    s.resolver,
		guard:       s.guard,
		retry:       s.retry,
		workers:     s.workers,
		instruments: newInstruments(),
	}
	result := p.run(ctx, sub.Hashes(), NewCollector(s.sampleSize))

	logger.Info(ctx, "stopped listening for pending transactions",
		"state", result.State.String(),
		"sample.collected", len(result.Sample),
		"stats.seen", result.Stats.Seen,
		"stats.resolved", result.Stats.Resolved,
		"stats.failed", result.Stats.Failed,
	)

	report := BuildReport(s.target, result)
	if result.State == StateStoppedSourceEnded {
		return report, errors.Join(ErrSourceEnded, sub.Err(), result.Err)
	}

	return report, nil
}

// config holds the optional settings of the service.
type config struct {
	sampleSize int
	workers    int
	retry      retry.Retry
	guard      SeenGuard
}

// Option configures the service created by New.
type Option func(*config)

// WithSampleSize sets how many matching transactions a run collects.
// Values below one are ignored. Default: DefaultSampleSize.
func WithSampleSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.sampleSize = n
		}
	}
}

// WithResolverWorkers sets how many hashes are resolved concurrently.
// Collection order always follows the order the node announced the hashes.
// Values below one are ignored. Default: DefaultResolverWorkers.
func WithResolverWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithRetry retries failed resolutions with the given policy. Not-found answers are
// never retried. By default a failed resolution is logged and skipped.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithSeenGuard sets the guard used to skip hashes announced more than once.
// By default every hash is processed.
func WithSeenGuard(g SeenGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// New creates a Service that reads hashes from source, resolves them with resolver and
// collects the transactions sent to target.
func New(source Source, resolver Resolver, target common.Address, opts ...Option) *service {
	cfg := config{
		sampleSize: DefaultSampleSize,
		workers:    DefaultResolverWorkers,
		retry:      nil,
		guard:      nopSeenGuard{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:     source,
		resolver:   resolver,
		target:     target,
		sampleSize: cfg.sampleSize,
		workers:    cfg.workers,
		retry:      cfg.retry,
		guard:      cfg.guard,
	}
}
