package service

import (
	"context"
	"sync"
	"time"
)

// MemoryCheckoutGuard is the in-process CheckoutGuard used when Redis is
// disabled and in tests. Entries expire after the TTL so a crashed
// submission cannot wedge a device forever.
type MemoryCheckoutGuard struct {
	mu       sync.Mutex
	ttl      time.Duration
	inFlight map[string]time.Time
}

func NewMemoryCheckoutGuard(ttl time.Duration) *MemoryCheckoutGuard {
	return &MemoryCheckoutGuard{
		ttl:      ttl,
		inFlight: make(map[string]time.Time),
	}
}

func (g *MemoryCheckoutGuard) Acquire(_ context.Context, deviceID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if acquiredAt, ok := g.inFlight[deviceID]; ok && time.Since(acquiredAt) < g.ttl {
		return false, nil
	}
	g.inFlight[deviceID] = time.Now()
	return true, nil
}

func (g *MemoryCheckoutGuard) Release(_ context.Context, deviceID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, deviceID)
	return nil
}
