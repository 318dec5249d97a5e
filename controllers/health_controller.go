package controllers

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether the journal store is reachable. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthController answers liveness checks
type HealthController struct {
	pinger Pinger
}

// NewHealthController creates a new health controller
func NewHealthController(pinger Pinger) *HealthController {
	return &HealthController{pinger: pinger}
}

// Check handles GET /health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	if c.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := c.pinger.PingContext(ctx); err != nil {
			renderJSONWithStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	renderJSON(w, map[string]string{"status": "ok"})
}
