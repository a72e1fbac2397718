package txtrack

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"
	"github.com/gabapcia/mempoolwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/mempoolwatch/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// State is the lifecycle state of a tracking run.
type State int

const (
	StateRunning            State = iota // Hashes are being consumed
	StateStoppedFull                     // The sample reached its capacity
	StateStoppedSourceEnded              // The subscription ended or the context was canceled
	StateStoppedFatal                    // The subscription could not be established
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStoppedFull:
		return "stopped: sample full"
	case StateStoppedSourceEnded:
		return "stopped: source ended"
	case StateStoppedFatal:
		return "stopped: fatal error"
	default:
		return "unknown"
	}
}

// Result is what a pipeline run produced.
type Result struct {
	State  State         // Terminal state of the run
	Sample []Transaction // Collected transactions in acceptance order
	Stats  Stats         // Counters for every hash the run received
	Err    error         // Context error when the run was canceled
}

// resolution is the answer of the resolver for one hash.
type resolution struct {
	tx  Transaction
	err error
}

// job pairs a hash with the channel its resolution must be delivered on.
type job struct {
	hash   common.Hash
	result chan<- resolution
}

// pending is an admitted hash waiting for its resolution, in announcement order.
type pending struct {
	hash   common.Hash
	result <-chan resolution
}

// pipeline consumes pending transaction hashes, resolves them and offers the ones
// addressed to the target to a collector. A pipeline is used for a single run.
type pipeline struct {
	target   common.Address
	resolver Resolver
	guard    SeenGuard
	retry    retry.Retry
	workers  int

	stats       counters
	instruments instruments
}

// run drives the pipeline until the collector is full, the hash channel is closed or
// ctx is canceled. The calling goroutine is the only one touching collector.
func (p *pipeline) run(ctx context.Context, hashes <-chan common.Hash, collector *Collector) Result {
	var state State
	if p.workers > 1 {
		state = p.runConcurrent(ctx, hashes, collector)
	} else {
		state = p.runSequential(ctx, hashes, collector)
	}

	return Result{
		State:  state,
		Sample: collector.Transactions(),
		Stats:  p.stats.snapshot(),
		Err:    ctx.Err(),
	}
}

func (p *pipeline) runSequential(ctx context.Context, hashes <-chan common.Hash, collector *Collector) State {
	for {
		hash, ok := chflow.Receive(ctx, hashes)
		if !ok {
			return StateStoppedSourceEnded
		}

		if !p.admit(ctx, hash) {
			continue
		}

		tx, err := p.resolve(ctx, hash)
		tx, matched := p.settle(ctx, hash, tx, err)
		if !matched {
			continue
		}

		if !collector.Offer(tx) {
			return StateStoppedFull
		}
	}
}

// runConcurrent resolves up to p.workers hashes at once. Admission and settlement both
// happen in the order the hashes were received, so the collected sample is the same as
// in a sequential run over the same feed.
func (p *pipeline) runConcurrent(ctx context.Context, hashes <-chan common.Hash, collector *Collector) State {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		jobs    = make(chan job, p.workers)
		ordered = make(chan pending, p.workers)
	)

	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// Jobs still queued when the run stops are dropped unresolved.
				if err := ctx.Err(); err != nil {
					j.result <- resolution{err: err}
					continue
				}

				tx, err := p.resolve(ctx, j.hash)
				j.result <- resolution{tx: tx, err: err}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(ordered)
		defer close(jobs)

		for {
			hash, ok := chflow.Receive(ctx, hashes)
			if !ok {
				return
			}

			if !p.admit(ctx, hash) {
				continue
			}

			result := make(chan resolution, 1)
			if !chflow.Send(ctx, ordered, pending{hash: hash, result: result}) {
				return
			}

			if !chflow.Send(ctx, jobs, job{hash: hash, result: result}) {
				return
			}
		}
	}()

	for {
		next, ok := chflow.Receive(ctx, ordered)
		if !ok {
			return StateStoppedSourceEnded
		}

		res, ok := chflow.Receive(ctx, next.result)
		if !ok {
			return StateStoppedSourceEnded
		}

		tx, matched := p.settle(ctx, next.hash, res.tx, res.err)
		if !matched {
			continue
		}

		if !collector.Offer(tx) {
			return StateStoppedFull
		}
	}
}

// admit counts hash and reports whether it should be resolved. Hashes already marked by
// an earlier resolution are skipped. Guard failures are logged and the hash is admitted.
func (p *pipeline) admit(ctx context.Context, hash common.Hash) bool {
	p.stats.seen.Add(1)

	seen, err := p.guard.Seen(ctx, hash)
	switch {
	case err != nil:
		logger.Warn(ctx, "failed to check transaction hash against seen set",
			"tx.hash", hash.Hex(),
			"error", err,
		)
	case seen:
		p.skipDuplicate(ctx, hash)
		return false
	}

	return true
}

func (p *pipeline) skipDuplicate(ctx context.Context, hash common.Hash) {
	p.stats.duplicates.Add(1)
	p.instruments.record(ctx, outcomeDuplicate)
	logger.Debug(ctx, "skipping duplicate transaction", "tx.hash", hash.Hex())
}

// settle accounts for the resolution of hash and reports whether tx goes to the
// collector. Only resolved hashes are marked seen, so a hash the node did not know yet
// is processed again when re-announced. Two in-flight copies of a hash both resolve;
// the first one settled wins.
func (p *pipeline) settle(ctx context.Context, hash common.Hash, tx Transaction, err error) (Transaction, bool) {
	switch {
	case errors.Is(err, ErrTransactionNotFound):
		p.stats.notFound.Add(1)
		p.instruments.record(ctx, outcomeNotFound)
		logger.Debug(ctx, "transaction not found", "tx.hash", hash.Hex())
		return Transaction{}, false
	case err != nil:
		if ctx.Err() != nil {
			return Transaction{}, false
		}

		p.stats.failed.Add(1)
		p.instruments.record(ctx, outcomeFailed)
		logger.Warn(ctx, "failed to resolve transaction",
			"tx.hash", hash.Hex(),
			"error", err,
		)
		return Transaction{}, false
	}

	first, err := p.guard.MarkSeen(ctx, hash)
	switch {
	case err != nil:
		logger.Warn(ctx, "failed to mark transaction hash as seen",
			"tx.hash", hash.Hex(),
			"error", err,
		)
	case !first:
		p.skipDuplicate(ctx, hash)
		return Transaction{}, false
	}

	p.stats.resolved.Add(1)
	if tx.To != nil {
		logger.Debug(ctx, "analyzing transaction",
			"tx.hash", tx.Hash.Hex(),
			"tx.to", tx.To.Hex(),
		)
	}

	if !MatchesTarget(tx, p.target) {
		p.instruments.record(ctx, outcomeIgnored)
		return Transaction{}, false
	}

	p.stats.matched.Add(1)
	p.instruments.record(ctx, outcomeMatched)
	logger.Info(ctx, "transaction matched target",
		"tx.hash", tx.Hash.Hex(),
		"tx.from", tx.From.Hex(),
	)

	return tx, true
}

// resolve fetches the transaction for hash, retrying failures when a retry policy is set.
// Not-found answers are final and never retried.
func (p *pipeline) resolve(ctx context.Context, hash common.Hash) (Transaction, error) {
	ctx, span := p.instruments.tracer.Start(ctx, "txtrack.resolve",
		trace.WithAttributes(attribute.String("tx.hash", hash.Hex())),
	)
	defer span.End()

	var (
		tx  Transaction
		err error
	)
	if p.retry == nil {
		tx, err = p.resolver.TransactionByHash(ctx, hash)
	} else {
		err = p.retry.Execute(ctx, func() error {
			var fetchErr error
			tx, fetchErr = p.resolver.TransactionByHash(ctx, hash)
			if errors.Is(fetchErr, ErrTransactionNotFound) {
				return retry.Unrecoverable(fetchErr)
			}
			return fetchErr
		})
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Transaction{}, err
	}

	return tx, nil
}
