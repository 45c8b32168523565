package handlers

import (
	"net/http"
	"time"

	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// AuthServiceInterface defines the session operations the handler needs
type AuthServiceInterface interface {
	Login(email, password string) (*models.Session, *models.User, error)
	Logout(token string) error
}

// AuthHandler handles login and logout
type AuthHandler struct {
	authService AuthServiceInterface
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthServiceInterface, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/auth/login. On success the session token is
// set as an httpOnly cookie; it is never returned in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token, int(time.Until(session.ExpiresAt).Seconds()))
	c.JSON(http.StatusOK, LoginResponse{
		UserID:    user.ID.String(),
		Email:     user.Email,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout, revoking the session and
// clearing the cookie. Logging out without a session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cfg.SessionCookie)
	if err := h.authService.Logout(token); err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me handles GET /api/v1/me, returning the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, token, maxAge, "/", "", h.cfg.CookieSecure || h.cfg.IsProduction(), true)
}
