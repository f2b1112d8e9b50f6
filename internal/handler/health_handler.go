package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// Pinger checks connectivity to a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and store connectivity.
type HealthHandler struct {
	db    Pinger
	cache Pinger
	log   *logrus.Logger
}

// NewHealthHandler creates a health handler. cache may be nil.
func NewHealthHandler(db, cache Pinger, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, log: log}
}

// HealthResponse describes service health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "connected"}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		h.log.WithError(err).Warn("database health check failed")
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "connected"
		if err := h.cache.Ping(ctx); err != nil {
			resp.Cache = "unavailable"
		}
	}

	return c.JSON(status, resp)
}
