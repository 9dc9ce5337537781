package http

import (
	"sync"
	"time"
)

const (
	staleClientThreshold = 1 * time.Hour
	cleanupInterval      = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

func (b *clientBucket) refill(capacity int, window time.Duration, now time.Time) {
	if now.Sub(b.lastRefill) >= window {
		b.tokens = capacity
		b.lastRefill = now
	}
}

// RateLimiter is a per-client token bucket. Buckets for clients that have not
// been seen for staleClientThreshold are dropped by a background sweep.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > staleClientThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	bucket.refill(r.capacity, r.window, now)

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
