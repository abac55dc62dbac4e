package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotel/shared/constant"
	"hotel/transport/http/response"

	"golang.org/x/time/rate"
)

// ipLimiter keeps one token bucket per client address. Each bucket refills maxReqs tokens per window.
// A bucket left alone for a whole window is full again, so it is dropped on the next sweep and
// recreated on demand.
type ipLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	maxReqs   int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(maxReqs, windowSecs int) *ipLimiter {
	return &ipLimiter{
		buckets: map[string]*bucket{},
		maxReqs: max(maxReqs, 1),
		window:  time.Duration(max(windowSecs, 1)) * time.Second,
		now:     time.Now,
	}
}

func (l *ipLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(l.window/time.Duration(l.maxReqs)), l.maxReqs)}
		l.buckets[key] = b
	}

	b.lastSeen = now

	return b.limiter
}

// sweep runs at most once per window. Callers hold mu.
func (l *ipLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}

	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.window {
			delete(l.buckets, key)
		}
	}

	l.lastSweep = now
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			limiter := a.limiter.get(clientIP(r))

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(a.limiter.maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(int(a.limiter.window.Seconds())))

			if !limiter.Allow() {
				w.Header().Set(constant.RequestHeaderRateLimitRemaining, "0")
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, int(limiter.Tokens()))))

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}

	return r.RemoteAddr
}
