package txtrack

import (
	"context"
	"sync"

	"github.com/gabapcia/mempoolwatch/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
)

// nopSeenGuard treats every hash as new.
type nopSeenGuard struct{}

// Seen always reports the hash as unseen.
func (nopSeenGuard) Seen(_ context.Context, _ common.Hash) (bool, error) {
	return false, nil
}

// MarkSeen always reports the hash as unseen.
func (nopSeenGuard) MarkSeen(_ context.Context, _ common.Hash) (bool, error) {
	return true, nil
}

// memorySeenGuard remembers hashes for the lifetime of the process.
type memorySeenGuard struct {
	mu   sync.Mutex
	seen types.Set[common.Hash]
}

// Compile-time assertion that memorySeenGuard implements SeenGuard.
var _ SeenGuard = (*memorySeenGuard)(nil)

// Seen reports whether hash is in memory.
func (g *memorySeenGuard) Seen(_ context.Context, hash common.Hash) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seen.Has(hash), nil
}

// MarkSeen records hash in memory.
func (g *memorySeenGuard) MarkSeen(_ context.Context, hash common.Hash) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seen.Insert(hash), nil
}

// NewMemorySeenGuard returns a SeenGuard backed by an in-memory set.
// It is meant for single runs; use a shared store when hashes must expire.
func NewMemorySeenGuard() *memorySeenGuard {
	return &memorySeenGuard{
		seen: types.NewSet[common.Hash](),
	}
}
