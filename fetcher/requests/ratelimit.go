package requests

import (
	"riftstats/pkg/config"
	"sync"
	"time"
)

// RiotLimit is a single sliding window of the Riot API limit pair.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter tracks both Riot API windows for a region.
type RateLimiter struct {
	windows []*RiotLimit

	mu sync.Mutex
}

// Create a instance of the rate limiter from the configured limits.
func CreateRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: []*RiotLimit{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     time.Now(),
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     time.Now(),
			},
		},
	}
}

// Reset the count of any window that completed it's interval.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the windows are on their limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Verify if a on-demand request can go through right now.
func (r *RateLimiter) canRun() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	return true
}

// Wait blocks until the next request is allowed by every window.
func (r *RateLimiter) Wait() {
	for !r.canRun() {
		r.waitWindowsReset()
	}
}

// Wait until all the rate limit windows are met.
func (r *RateLimiter) waitWindowsReset() {
	r.mu.Lock()

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		// See how many time till the next reset.
		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	r.mu.Unlock()

	time.Sleep(waitTime)
}
