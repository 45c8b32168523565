package handlers

import (
	"net/http"

	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for check-in settings
type SettingsHandler struct {
	settingsService service.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService service.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings handles GET /api/v1/settings for the authenticated user
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
		return
	}

	settings, err := h.settingsService.GetSettings(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/v1/settings for the authenticated user
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
		return
	}

	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings, err := h.settingsService.UpdateSettings(user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
