package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store kvstore.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store kvstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the backing store answers. A missing key is a
// healthy answer; only transport failures count against readiness.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.store.Load(ctx, "settings"); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		writeError(w, http.StatusServiceUnavailable, "store unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"store":  "ok",
	})
}
