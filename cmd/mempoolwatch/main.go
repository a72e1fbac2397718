// Command mempoolwatch collects pending transactions sent to a contract and prints
// them ordered by value.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/mempoolwatch/internal/config"
	"github.com/gabapcia/mempoolwatch/internal/handlers/cli"
	"github.com/gabapcia/mempoolwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/mempoolwatch/internal/infra/storage/redis"
	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"
	"github.com/gabapcia/mempoolwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/mempoolwatch/internal/pkg/transport/http"
	"github.com/gabapcia/mempoolwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/mempoolwatch/internal/pkg/transport/websocket"
	"github.com/gabapcia/mempoolwatch/internal/txtrack"
)

// newTracker wires the node client, the duplicate guard and the retry policy into a
// tracking service.
func newTracker(ctx context.Context, cfg config.Config) (txtrack.Service, func(), error) {
	httpClient := http.NewClient(
		http.WithTimeout(cfg.HTTPTimeout),
		http.WithRetryMax(cfg.HTTPRetryMax),
	)

	node := ethereum.NewClient(
		jsonrpc.NewClient(httpClient.StandardClient(), cfg.NodeHTTPEndpoint),
		websocket.NewSubscriber(cfg.NodeWebsocketEndpoint),
	)

	opts := []txtrack.Option{
		txtrack.WithSampleSize(cfg.SampleSize),
		txtrack.WithResolverWorkers(cfg.ResolverWorkers),
	}

	if cfg.ResolveAttempts > 1 {
		opts = append(opts, txtrack.WithRetry(retry.New(
			retry.WithAttempts(cfg.ResolveAttempts),
			retry.WithDelay(cfg.ResolveRetryDelay),
			retry.WithOperationName("eth_getTransactionByHash"),
		)))
	}

	cleanup := func() {}
	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.RedisSeenTTL)
		if err != nil {
			return nil, nil, err
		}

		opts = append(opts, txtrack.WithSeenGuard(store))
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "failed to close redis connection", "error", err)
			}
		}
	} else {
		opts = append(opts, txtrack.WithSeenGuard(txtrack.NewMemorySeenGuard()))
	}

	return txtrack.New(node, node, cfg.TargetAddress(), opts...), cleanup, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Run(ctx, config.Load, newTracker)
	stop()

	if err != nil {
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, "mempoolwatch:", err)
		os.Exit(1)
	}
}
