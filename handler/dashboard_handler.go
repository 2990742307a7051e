package handler

import (
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

// DashboardStatsHandler returns the aggregated dashboard counters and the
// recent activity feed for the authenticated user.
func DashboardStatsHandler(c *gin.Context, dashboard *usecase.DashboardService) {
	userID := c.GetString("user_id")

	timer := utils.TrackDashboardStats()
	stats := dashboard.GetStats(c.Request.Context(), userID)
	timer.ObserveDuration()

	utils.Success(c, gin.H{"stats": stats})
}
