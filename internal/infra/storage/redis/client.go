// Package redis provides Redis-backed storage for the tracker.
// It currently implements txtrack.SeenGuard with expiring keys so several short
// runs against the same node can share duplicate suppression.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// client wraps a go-redis connection.
type client struct {
	conn    *redis.Client
	seenTTL time.Duration // lifetime of a seen-hash marker
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with PING.
// seenTTL bounds how long a hash is remembered by MarkSeen.
func NewClient(ctx context.Context, addr, username, password string, db int, seenTTL time.Duration) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, err
	}

	return &client{
		conn:    conn,
		seenTTL: seenTTL,
	}, nil
}
