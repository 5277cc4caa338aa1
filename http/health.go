package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is implemented by dependencies that can report connectivity, such
// as the Redis quote cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz is the liveness probe.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports unavailable when any dependency fails to answer.
func HandleReadyz(deps ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				slog.Error("Readiness check failed", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: "dependency check failed",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
