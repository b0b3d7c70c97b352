package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"sea-haven/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's bucket survives without requests.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64
}

type rateLimiter struct {
	limiters  sync.Map
	cfg       utils.RateLimitConfig
	idle      time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
}

func newRateLimiter(cfg utils.RateLimitConfig) *rateLimiter {
	l := &rateLimiter{cfg: cfg, idle: limiterIdleTTL, now: time.Now}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now().UnixNano()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		if e, ok := v.(*limiterEntry); ok {
			e.lastSeen.Store(now)
			return e.lim
		}
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	e := &limiterEntry{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)}
	e.lastSeen.Store(now)
	actual, loaded := l.limiters.LoadOrStore(key, e)
	if loaded {
		if actualEntry, ok := actual.(*limiterEntry); ok {
			actualEntry.lastSeen.Store(now)
			return actualEntry.lim
		}
	}
	return e.lim
}

// sweep drops buckets idle for longer than l.idle. At most one caller runs
// it per idle period.
func (l *rateLimiter) sweep(now int64) {
	last := l.lastSweep.Load()
	if now-last < int64(l.idle) || !l.lastSweep.CompareAndSwap(last, now) {
		return
	}

	cutoff := now - int64(l.idle)
	l.limiters.Range(func(key, v any) bool {
		if e, ok := v.(*limiterEntry); ok && e.lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}

// RateLimit applies a token bucket per client IP. A non-positive RPS
// disables it. The IP comes from the socket peer unless the router runs
// behind RealIP.
func RateLimit(cfg utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	if cfg.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return newRateLimiter(cfg).middleware(logger)
}

func (l *rateLimiter) middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.getLimiter(ip).Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestID(r)),
				)
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
