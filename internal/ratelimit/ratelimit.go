package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles outbound API calls per host.
type Limiter interface {
	Wait(ctx context.Context, host string) error
}

// InMemoryLimiter is an implementation of Limiter stored in memory
type InMemoryLimiter struct {
	hosts map[string]*rate.Limiter
	mu    sync.Mutex
	r     rate.Limit // Rate of adding tokens (e.g., 1 token every 2 seconds)
	b     int        // Bucket size (e.g., can perform 3 calls in a row)
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(1, 2*time.Second, 3) -> allows 1 call every 2 seconds, burst of 3 calls
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		hosts: make(map[string]*rate.Limiter),
		r:     rate.Every(per / time.Duration(requests)),
		b:     burst,
	}
}

// Wait blocks until the host's limiter allows another call or ctx is done.
func (l *InMemoryLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, exists := l.hosts[host]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.hosts[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
