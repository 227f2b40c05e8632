package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/client-task-api/internal/errors"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	deps map[string]Pinger
	log  *slog.Logger
}

// NewHealthHandler creates a HealthHandler checking the named dependencies
// on readiness.
func NewHealthHandler(deps map[string]Pinger, log *slog.Logger) *HealthHandler {
	return &HealthHandler{deps: deps, log: log}
}

// Health reports that the process is serving
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Client Task API is running",
	})
}

// Ready reports whether every dependency answers a ping
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			h.log.Warn("readiness check failed", slog.String("dependency", name), slog.String("error", err.Error()))
			apierrors.ServiceUnavailable(c, name+" not ready")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
