package ethereum

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"
	"github.com/gabapcia/mempoolwatch/internal/pkg/transport/websocket"
	"github.com/gabapcia/mempoolwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/ethereum/go-ethereum/common"
)

// pendingTransactionsTopic is the eth_subscribe topic that announces hashes entering
// the node's transaction pool.
const pendingTransactionsTopic = "newPendingTransactions"

// subscription adapts a websocket.Stream of hash notifications to txtrack.Subscription.
type subscription struct {
	stream websocket.Stream
	hashes chan common.Hash
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Compile-time assertion that subscription implements the txtrack.Subscription interface.
var _ txtrack.Subscription = (*subscription)(nil)

// Hashes implements the txtrack.Subscription interface.
func (s *subscription) Hashes() <-chan common.Hash {
	return s.hashes
}

// Err implements the txtrack.Subscription interface.
func (s *subscription) Err() error {
	return s.stream.Err()
}

// Unsubscribe implements the txtrack.Subscription interface.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		s.stream.Close()
	})

	<-s.done
}

// forward decodes notifications into hashes until the stream ends or ctx is canceled.
// Notifications that are not a 32-byte hex hash are logged and skipped.
func (s *subscription) forward(ctx context.Context) {
	defer close(s.done)
	defer close(s.hashes)

	chflow.Map(ctx, s.stream.Notifications(), s.hashes, func(msg json.RawMessage) (common.Hash, bool) {
		var hash common.Hash
		if err := json.Unmarshal(msg, &hash); err != nil {
			logger.Warn(ctx, "skipping malformed pending transaction notification",
				"payload", string(msg),
				"error", err,
			)
			return common.Hash{}, false
		}

		return hash, true
	})
}

// SubscribePendingTransactions implements the txtrack.Source interface using
// eth_subscribe("newPendingTransactions").
func (c *client) SubscribePendingTransactions(ctx context.Context) (txtrack.Subscription, error) {
	stream, err := c.subscriber.Subscribe(ctx, pendingTransactionsTopic)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		stream: stream,
		hashes: make(chan common.Hash),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go sub.forward(ctx)

	return sub, nil
}
