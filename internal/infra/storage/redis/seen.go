package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/ethereum/go-ethereum/common"
)

// seenKeyPrefix is the Redis key namespace for seen pending transaction hashes.
const seenKeyPrefix = "mempoolwatch"

// Compile-time assertion that client implements the txtrack.SeenGuard interface.
var _ txtrack.SeenGuard = (*client)(nil)

// seenKey returns the Redis key marking hash as already processed.
//
// Format: "mempoolwatch:seen:{hash}"
func seenKey(hash common.Hash) string {
	return fmt.Sprintf("%s:seen:%s", seenKeyPrefix, hash.Hex())
}

// Seen implements the txtrack.SeenGuard interface with EXISTS.
func (c *client) Seen(ctx context.Context, hash common.Hash) (bool, error) {
	n, err := c.conn.Exists(ctx, seenKey(hash)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// MarkSeen implements the txtrack.SeenGuard interface with SET NX and the configured TTL.
// Only the first caller for a hash gets true until the key expires.
func (c *client) MarkSeen(ctx context.Context, hash common.Hash) (bool, error) {
	return c.conn.SetNX(ctx, seenKey(hash), 1, c.seenTTL).Result()
}
