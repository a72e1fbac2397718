package txtrack

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/mempoolwatch/internal/txtrack"

// outcome labels how a single hash left the pipeline.
type outcome string

const (
	outcomeDuplicate outcome = "duplicate"
	outcomeNotFound  outcome = "not_found"
	outcomeFailed    outcome = "failed"
	outcomeIgnored   outcome = "ignored"
	outcomeMatched   outcome = "matched"
)

// Stats summarizes what happened to the hashes a run received.
type Stats struct {
	Seen       uint64 // Hashes received from the subscription
	Duplicates uint64 // Hashes skipped because they were already processed
	NotFound   uint64 // Hashes the node no longer knew about
	Failed     uint64 // Hashes whose resolution failed
	Resolved   uint64 // Hashes resolved into a transaction
	Matched    uint64 // Resolved transactions addressed to the target
}

// counters is the concurrent-safe backing store of Stats.
type counters struct {
	seen       atomic.Uint64
	duplicates atomic.Uint64
	notFound   atomic.Uint64
	failed     atomic.Uint64
	resolved   atomic.Uint64
	matched    atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Seen:       c.seen.Load(),
		Duplicates: c.duplicates.Load(),
		NotFound:   c.notFound.Load(),
		Failed:     c.failed.Load(),
		Resolved:   c.resolved.Load(),
		Matched:    c.matched.Load(),
	}
}

// instruments bundles the OpenTelemetry tracer and meters used by the pipeline.
// Without a configured provider the global no-op implementations are used.
type instruments struct {
	tracer    trace.Tracer
	processed metric.Int64Counter
}

func newInstruments() instruments {
	processed, err := otel.Meter(instrumentationName).Int64Counter(
		"mempoolwatch.transactions.processed",
		metric.WithDescription("Pending transaction hashes handled by the pipeline, by outcome."),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		otel.Handle(err)
		processed = noop.Int64Counter{}
	}

	return instruments{
		tracer:    otel.Tracer(instrumentationName),
		processed: processed,
	}
}

func (i instruments) record(ctx context.Context, o outcome) {
	i.processed.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(o))))
}
