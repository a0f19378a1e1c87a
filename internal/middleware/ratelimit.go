package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/metrics"
)

// RateLimiter applies a token bucket per player, or per client IP before identity is known
type RateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
}

// NewRateLimiter allows perSecond requests with the given burst for up to size distinct
// callers; idle buckets are dropped after ttl
func NewRateLimiter(perSecond float64, burst, size int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
	}
}

// Allow reports whether key may make another request now
func (l *RateLimiter) Allow(key string) bool {
	return l.limiter(key).Allow()
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(key, lim)
	return lim
}

// Middleware answers 429 once the caller's bucket is empty
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := callerKey(r)
		if !l.Allow(key) {
			metrics.RateLimited.Inc()
			logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "caller", key, "path", r.URL.Path)
			w.Header().Set(HeaderRetryAfter, RetryAfterSeconds)
			http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func callerKey(r *http.Request) string {
	if id, ok := PlayerIDFromContext(r.Context()); ok {
		return "player:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
