package http

import (
	"crypto/subtle"
	"net/http"

	"dealer-finance/logger"
)

const HeaderAPIKey = "X-API-Key"

// AdminAuthMiddleware rejects requests whose X-API-Key does not match apiKey.
func AdminAuthMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.FromContext(r.Context()).Warn("admin auth failed",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"has_key", provided != "")
				respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
