package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/lenasun/kebab-api/internal/config"
)

var rateLimitExceeded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kebab_api",
	Name:      "ratelimit_exceeded_total",
	Help:      "Total requests rejected by the per-IP rate limiter",
})

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	idle     time.Duration
	disabled bool

	mu      sync.Mutex
	clients map[string]*client

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup of idle
// clients. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	rl := &RateLimiter{
		limit:    rate.Limit(float64(cfg.PerMinute) / 60.0),
		burst:    burst,
		idle:     interval,
		disabled: cfg.PerMinute <= 0,
		clients:  make(map[string]*client),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go rl.cleanup(interval)
	return rl
}

// Stop terminates the background cleanup goroutine and waits for it to exit.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
	<-rl.done
}

// Limit returns middleware that rejects requests over the configured rate
// with 429 and a Retry-After header. A non-positive PerMinute disables it.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		if rl.disabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				rateLimitExceeded.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Clients returns the number of tracked client IPs.
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	rl.mu.Unlock()

	return c.limiter.Allow()
}

func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 60
	}
	return int(1/float64(rl.limit)) + 1
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.idle {
			delete(rl.clients, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
