package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"dealer-finance/metrics"
)

func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				metrics.RateLimited.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				respondError(w, http.StatusTooManyRequests, ErrMsgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
