package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrendHandler handles HTTP requests for sentiment trends
type TrendHandler struct {
	trendService service.TrendServiceInterface
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(trendService service.TrendServiceInterface) *TrendHandler {
	return &TrendHandler{
		trendService: trendService,
	}
}

// GetTrends handles GET /api/v1/trends with an optional team_id filter
func (h *TrendHandler) GetTrends(c *gin.Context) {
	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
			return
		}
		teamID = &id
	}

	trends, err := h.trendService.GetTrends(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}
