package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sbilibin2017/townlink/internal/logger"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
	limiterMaxEntries    = 10000
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP.
// The client IP is taken from RemoteAddr, so forwarded headers only count when
// a trusted proxy middleware has rewritten RemoteAddr beforehand.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given burst per client.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// getLimiter returns the limiter for key. Idle clients are dropped every
// limiterSweepInterval and whenever the table reaches limiterMaxEntries.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	if now.Sub(rl.lastSweep) >= limiterSweepInterval || len(rl.limiters) >= limiterMaxEntries {
		for k, cl := range rl.limiters {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(rl.limiters, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter
}

// Handler returns the rate limiting middleware handler
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)

		if !rl.getLimiter(key).AllowN(rl.now(), 1) {
			logger.FromContext(r.Context()).Warnw("rate limit exceeded",
				"client", key,
				"path", r.URL.Path,
				"method", r.Method,
			)
			w.Header().Set("Retry-After", "1")
			writeJSONMessage(w, http.StatusTooManyRequests, "Too many requests.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
