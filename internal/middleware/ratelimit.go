package middleware

import (
	"net/http"
	"sync/atomic"
)

const (
	// RateLimitThreshold is the number of requests after which non-exempt
	// requests are rejected for the rest of the process lifetime.
	RateLimitThreshold = 200
	// BypassHeader exempts any request that carries it with a non-empty value.
	BypassHeader = "X-Bypass"
)

// RateLimiter counts every request it sees. The counter starts at process
// start and is never reset.
type RateLimiter struct {
	count     atomic.Int64
	threshold int64
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{threshold: RateLimitThreshold}
}

func (rl *RateLimiter) Count() int64 {
	return rl.count.Load()
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := rl.count.Add(1)
		skip := r.Header.Get(BypassHeader) != "" || r.Method == http.MethodGet
		if !skip && n > rl.threshold {
			writeHTML(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
