package routes

import (
	"net/http"

	"teampulse-backend/internal/api/handlers"
	"teampulse-backend/internal/api/middleware"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/repository"
	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	sentimentLogRepo := repository.NewSentimentLogRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo, sessionRepo, cfg)
	teamService := service.NewTeamService(teamRepo, memberRepo, cfg, validate)
	memberService := service.NewMemberService(memberRepo, teamRepo, validate)
	trendService := service.NewTrendService(sentimentLogRepo, teamRepo, cfg)
	settingsService := service.NewSettingsService(settingsRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewMemberHandler(memberService)
	trendHandler := handlers.NewTrendHandler(trendService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Public auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// Protected API routes
	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireAuth(authService, cfg))
	{
		v1.GET("/me", authHandler.Me)

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", memberHandler.SearchMembers)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.POST("", memberHandler.AddMember)
			members.PATCH("/:id/sentiment", memberHandler.UpdateSentiment)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Trend routes
		v1.GET("/trends", trendHandler.GetTrends)

		// Settings routes
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.PUT("/settings", settingsHandler.UpdateSettings)
	}

	// Unknown routes get a JSON 404 instead of gin's default text body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
