// Package ethereum implements the txtrack.Source and txtrack.Resolver interfaces for
// Ethereum-compatible nodes. Pending transaction hashes arrive over a WebSocket
// subscription and full transactions are fetched over HTTP JSON-RPC.
package ethereum

import (
	"github.com/gabapcia/mempoolwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/mempoolwatch/internal/pkg/transport/websocket"
	"github.com/gabapcia/mempoolwatch/internal/txtrack"
)

// client talks to a single Ethereum node through its HTTP and WebSocket endpoints.
type client struct {
	conn       jsonrpc.Client        // Request/response calls
	subscriber websocket.Subscriber // Push subscriptions
}

// Ensure client implements the txtrack interfaces at compile time.
var (
	_ txtrack.Resolver = (*client)(nil)
	_ txtrack.Source   = (*client)(nil)
)

// NewClient creates a new Ethereum client using the provided JSON-RPC connection for
// transaction lookups and the subscriber for the pending transaction feed.
func NewClient(conn jsonrpc.Client, subscriber websocket.Subscriber) *client {
	return &client{
		conn:       conn,
		subscriber: subscriber,
	}
}
