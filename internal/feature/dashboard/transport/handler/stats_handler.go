// Package handler provides HTTP handlers for the dashboard feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devsnap_backend/internal/feature/dashboard/usecase"
	jwtmw "devsnap_backend/internal/platform/jwt"
)

// StatsUsecase defines the stats operations the handler needs.
type StatsUsecase interface {
	Overview(ctx context.Context, ownerID string) (*usecase.Stats, error)
}

// StatsHandler handles HTTP requests for the dashboard overview.
type StatsHandler struct {
	stats StatsUsecase
}

// NewStatsHandler creates a new instance of StatsHandler.
func NewStatsHandler(stats StatsUsecase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview handles GET /dashboard/stats.
func (h *StatsHandler) Overview(c *gin.Context) {
	callerID := jwtmw.UserID(c)
	stats, err := h.stats.Overview(c.Request.Context(), callerID)
	if err != nil {
		slog.Error("dashboard stats failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshots":  stats.Snapshots,
		"shareLinks": stats.ShareLinks,
		"totalViews": stats.TotalViews,
	})
}
