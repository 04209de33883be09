package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client IP keeps its bucket after its last request.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than ttl are dropped on a later access, at most once per ttl.
type ipRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	r         rate.Limit // requests per second
	b         int        // burst
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPRateLimiter(r rate.Limit, b int, ttl time.Duration) *ipRateLimiter {
	return &ipRateLimiter{
		visitors:  make(map[string]*visitor),
		r:         r,
		b:         b,
		ttl:       ttl,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *ipRateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.ttl {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.ttl {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.r, l.b)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// rateLimitByIP rejects requests over perSecond (with burst) per client IP
// with 429.
func rateLimitByIP(perSecond float64, burst int) func(http.Handler) http.Handler {
	if burst < 1 {
		burst = 1
	}
	limiter := newIPRateLimiter(rate.Limit(perSecond), burst, limiterIdleTTL)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.get(clientIP(r)).Allow() {
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr (already rewritten by RealIP).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
