package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	// DefaultWindow is the sliding window used when Config.Window is zero.
	DefaultWindow   = 1 * time.Minute
	cleanupInterval = 1 * time.Minute
)

// Config configures a RateLimiter.
type Config struct {
	Limit          int           // Maximum requests per window and IP
	Window         time.Duration // Defaults to DefaultWindow
	ExemptPaths    []string      // Exact paths that bypass the limit
	ExemptPrefixes []string      // Path prefixes that bypass the limit
}

// RateLimiter wraps an http.Handler with rate limiting per IP address.
type RateLimiter struct {
	limit          int                    // Maximum requests per window
	window         time.Duration          // Time window for rate limiting
	requests       map[string][]time.Time // IP -> request timestamps inside the window
	mu             sync.Mutex             // Guards requests
	now            func() time.Time       // Clock, replaced in tests
	cleanupDone    chan struct{}          // Shutdown signal for cleanup goroutine
	closeOnce      sync.Once              // Ensures Close() is called only once
	exemptPaths    map[string]bool        // Exact paths that bypass rate limiting
	exemptPrefixes []string               // Path prefixes that bypass rate limiting
}

// New creates a rate limiter from cfg and starts its cleanup goroutine.
// Returns error if the limit or window is invalid.
//
// IMPORTANT: Close() must be called when shutting down to stop the background
// cleanup goroutine and prevent goroutine leaks.
func New(cfg Config) (*RateLimiter, error) {
	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.Limit)
	}
	if cfg.Window < 0 {
		return nil, fmt.Errorf("rate limit window must not be negative, got %s", cfg.Window)
	}
	window := cfg.Window
	if window == 0 {
		window = DefaultWindow
	}

	// Build exempt paths map for O(1) lookup
	rl := &RateLimiter{
		limit:          cfg.Limit,
		window:         window,
		requests:       make(map[string][]time.Time),
		now:            time.Now,
		cleanupDone:    make(chan struct{}),
		exemptPaths:    lo.SliceToMap(cfg.ExemptPaths, func(p string) (string, bool) { return p, true }),
		exemptPrefixes: cfg.ExemptPrefixes,
	}

	// Start background cleanup goroutine
	go rl.cleanupLoop()

	slog.Info("rate limiter initialized",
		"limit", rl.limit,
		"window", rl.window.String(),
		"exempt_paths", len(cfg.ExemptPaths),
		"exempt_prefixes", len(cfg.ExemptPrefixes),
	)

	return rl, nil
}

// exempt reports whether path bypasses rate limiting.
func (rl *RateLimiter) exempt(path string) bool {
	if rl.exemptPaths[path] {
		return true
	}
	return lo.SomeBy(rl.exemptPrefixes, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

// Middleware returns an http.Handler that wraps the next handler with rate limiting.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip rate limiting for exempt paths
		if rl.exempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Extract client IP
		ip := ExtractIP(r)
		if ip == "" {
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		// Check rate limit
		allowed, retryAfter := rl.allow(ip)
		if !allowed {
			slog.Debug("rate limit exceeded",
				"ip", ip,
				"path", r.URL.Path,
				"limit", rl.limit,
			)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			// API clients get the same JSON error shape as the API handlers
			if strings.HasPrefix(r.URL.Path, "/api/") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"error":"rate limit exceeded","code":%d}`+"\n", http.StatusTooManyRequests)
				return
			}
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		// Request allowed, proceed
		next.ServeHTTP(w, r)
	})
}

// allow records a request from ip if the window has room. When it does not,
// it returns the whole seconds until the oldest request leaves the window.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Filter to only keep requests within the window (sliding window)
	timestamps := filterValidTimestamps(rl.requests[ip], cutoff)

	// Check if limit exceeded; Retry-After counts down to when the oldest request expires
	if len(timestamps) >= rl.limit {
		rl.requests[ip] = timestamps
		wait := timestamps[0].Add(rl.window).Sub(now)
		return false, max(1, int(wait.Round(time.Second)/time.Second))
	}

	// Add current request timestamp
	rl.requests[ip] = append(timestamps, now)
	return true, 0
}

// cleanupLoop runs in the background and periodically removes stale entries.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.cleanupDone:
			return
		}
	}
}

// cleanup removes expired entries from the requests map.
// IPs with no request inside the window are dropped so memory stays bounded.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, timestamps := range rl.requests {
		valid := filterValidTimestamps(timestamps, cutoff)
		if len(valid) == 0 {
			delete(rl.requests, ip)
		} else {
			rl.requests[ip] = valid
		}
	}
}

// tracked returns the number of IPs currently held in memory.
func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.requests)
}

// filterValidTimestamps keeps only timestamps after the cutoff.
func filterValidTimestamps(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// Close stops the background cleanup goroutine.
// MUST be called when shutting down the server to prevent goroutine leaks.
// Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.cleanupDone)
	})
}
