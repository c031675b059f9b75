package handlers

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/townlink/internal/logger"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 503 {object} handlers.MessageResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.FromContext(r.Context()).Errorw("health check failed", "err", err)
			writeMessage(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		writeMessage(w, http.StatusOK, "ok")
	}
}
