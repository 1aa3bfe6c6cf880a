package handlers

import (
	"context"
	"net/http"

	"github.com/Aditi2k5/ai-job-dashboard/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// OverviewProvider computes the dashboard overview
type OverviewProvider interface {
	Overview(ctx context.Context) (*dashboard.Overview, error)
}

// DashboardHandler serves the aggregated dashboard widgets
type DashboardHandler struct {
	overview OverviewProvider
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(overview OverviewProvider) *DashboardHandler {
	return &DashboardHandler{overview: overview}
}

// GetOverview handles GET /api/dashboard/overview
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.overview.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}
