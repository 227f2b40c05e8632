package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-task-api/internal/dto"
	"github.com/yukikurage/client-task-api/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
	log          *slog.Logger
}

func NewStatsHandler(statsService *services.StatsService, log *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		log:          log,
	}
}

// GetStats returns completion progress across all clients
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.Summary(requestContext(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsDTO(*stats))
}
