package httpmiddleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimitConfig configures the sliding window rate limiter.
type RateLimitConfig struct {
	// Max requests per window. Zero disables limiting.
	Max    int
	Window time.Duration
	// KeyFunc defaults to ClientIP.
	KeyFunc func(*http.Request) string
}

// counter holds the counts of the current and the previous fixed window.
type counter struct {
	start time.Time
	curr  float64
	prev  float64
}

type limiter struct {
	cfg RateLimitConfig

	mu       sync.Mutex
	counters map[string]*counter
}

// take records a request for key at now. It returns false when the
// weighted count of the two windows has reached the limit.
func (l *limiter) take(key string, now time.Time) (remaining int, reset time.Time, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.cfg.Window
	c := l.counters[key]
	if c == nil {
		c = &counter{start: now.Truncate(window)}
		l.counters[key] = c
	}

	switch elapsed := now.Sub(c.start); {
	case elapsed >= 2*window:
		c.prev, c.curr = 0, 0
		c.start = now.Truncate(window)
	case elapsed >= window:
		c.prev, c.curr = c.curr, 0
		c.start = c.start.Add(window)
	}

	weight := 1 - float64(now.Sub(c.start))/float64(window)
	count := c.prev*math.Max(weight, 0) + c.curr
	reset = c.start.Add(window)
	if count >= float64(l.cfg.Max) {
		return 0, reset, false
	}

	c.curr++
	return max(l.cfg.Max-int(math.Ceil(count+1)), 0), reset, true
}

// evict drops keys idle for two windows.
func (l *limiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.counters {
		if now.Sub(c.start) >= 2*l.cfg.Window {
			delete(l.counters, key)
		}
	}
}

// RateLimit limits requests per key with a sliding window. Idle keys are
// evicted in the background until ctx is done. Every response carries the
// X-RateLimit-* headers; rejected requests get 429 with Retry-After.
func RateLimit(ctx context.Context, cfg RateLimitConfig) Middleware {
	if cfg.Max <= 0 || cfg.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = ClientIP
	}
	l := &limiter{cfg: cfg, counters: make(map[string]*counter)}

	go func() {
		ticker := time.NewTicker(2 * cfg.Window)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				l.evict(now)
			}
		}
	}()

	limit := strconv.Itoa(cfg.Max)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, reset, ok := l.take(cfg.KeyFunc(r), time.Now())

			h := w.Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
			if !ok {
				wait := math.Ceil(max(time.Until(reset), 0).Seconds())
				h.Set("Retry-After", strconv.Itoa(int(wait)))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the first X-Forwarded-For hop, X-Real-IP, or the remote
// host, in that order.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
