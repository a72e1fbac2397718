package txtrack

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Subscription is a live feed of pending transaction hashes.
type Subscription interface {
	// Hashes returns the channel on which hashes are delivered, in the order the node
	// announced them. The channel is closed when the feed ends.
	Hashes() <-chan common.Hash

	// Err returns the error that ended the feed, or nil if the feed is still running or
	// was stopped through Unsubscribe or context cancellation.
	Err() error

	// Unsubscribe stops the feed and releases the underlying connection.
	// It is safe to call more than once.
	Unsubscribe()
}

// Source opens subscriptions to the node's pending transaction pool.
type Source interface {
	// SubscribePendingTransactions starts streaming hashes of transactions entering the
	// pending pool. The subscription ends when ctx is canceled or Unsubscribe is called.
	//
	// An error means the subscription could not be established at all.
	SubscribePendingTransactions(ctx context.Context) (Subscription, error)
}

// Resolver fetches full transaction data for a hash.
type Resolver interface {
	// TransactionByHash returns the transaction identified by hash.
	//
	// It returns ErrTransactionNotFound when the node does not know the hash and an error
	// wrapping ErrResolveFailed for transport or decoding failures.
	TransactionByHash(ctx context.Context, hash common.Hash) (Transaction, error)
}

// SeenGuard suppresses hashes the node announces more than once.
//
// Only resolved hashes are marked, so a hash the node did not know yet, or one whose
// resolution failed, is processed again when it is re-announced.
type SeenGuard interface {
	// Seen reports whether hash was already marked.
	Seen(ctx context.Context, hash common.Hash) (bool, error)

	// MarkSeen records hash and reports whether this is the first time it was marked.
	MarkSeen(ctx context.Context, hash common.Hash) (bool, error)
}
