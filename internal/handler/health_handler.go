package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and which storage backend is serving
// requests. Degraded means the relational backend was unreachable at
// startup and the process fell back to the in-memory fixture store.
type HealthHandler struct {
	backend  string
	degraded bool
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(backend string, degraded bool) *HealthHandler {
	return &HealthHandler{backend: backend, degraded: degraded}
}

// Health godoc
// @Summary Liveness and backend status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"backend":  h.backend,
		"degraded": h.degraded,
	})
}
