package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StorePinger checks that the session store is reachable
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and session store reachability
type HealthHandler struct {
	store        StorePinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(store StorePinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:       "ok",
		SessionStore: "ok",
		Time:         h.timeProvider.Now().UTC().Format(time.RFC3339),
	}
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("Session store health check failed", map[string]any{"error": err.Error()})
		resp.Status = "degraded"
		resp.SessionStore = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
