package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reliefmap/relief-coordination-api/internal/auth"
	"github.com/reliefmap/relief-coordination-api/internal/config"
	"github.com/reliefmap/relief-coordination-api/internal/database"
	"github.com/reliefmap/relief-coordination-api/internal/handlers"
	"github.com/reliefmap/relief-coordination-api/internal/middleware"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logrus.WithError(err).Fatal("failed to add indexes")
	}

	// Token manager
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	helpRequestRepo := repository.NewHelpRequestRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	itemRepo := repository.NewItemRepository(db)
	campRepo := repository.NewCampRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, tokens)
	helpRequestService := services.NewHelpRequestService(helpRequestRepo)
	donationService := services.NewDonationService(donationRepo, helpRequestRepo)
	itemService := services.NewItemService(itemRepo)
	campService := services.NewCampService(campRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	helpRequestHandler := handlers.NewHelpRequestHandler(helpRequestService)
	donationHandler := handlers.NewDonationHandler(donationService)
	itemHandler := handlers.NewItemHandler(itemService)
	campHandler := handlers.NewCampHandler(campService)

	// Initialize Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Relief Coordination API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Help request routes (listing and creation work anonymously)
		helpRequests := api.Group("/help-requests")
		{
			helpRequests.GET("", optionalAuth, helpRequestHandler.List)
			helpRequests.POST("", optionalAuth, helpRequestHandler.Create)
			helpRequests.GET("/summary", helpRequestHandler.Summary)
			helpRequests.GET("/:helpRequestId", helpRequestHandler.Get)

			// Donations nested under their help request
			helpRequests.GET("/:helpRequestId/donations", optionalAuth, donationHandler.List)
			helpRequests.POST("/:helpRequestId/donations", requireAuth, donationHandler.Create)
			helpRequests.PATCH("/:helpRequestId/donations/:donationId/schedule", requireAuth, donationHandler.MarkAsScheduled)
			helpRequests.PATCH("/:helpRequestId/donations/:donationId/complete-donator", requireAuth, donationHandler.MarkAsCompletedByDonator)
			helpRequests.PATCH("/:helpRequestId/donations/:donationId/complete-owner", requireAuth, donationHandler.MarkAsCompletedByOwner)
		}

		// Ration item catalog
		items := api.Group("/items")
		{
			items.GET("", itemHandler.List)
			items.GET("/:itemId", itemHandler.Get)
			items.POST("", requireAuth, itemHandler.Create)
			items.PUT("/:itemId", requireAuth, itemHandler.Update)
			items.DELETE("/:itemId", requireAuth, itemHandler.Delete)
		}

		// Relief camps
		camps := api.Group("/camps")
		{
			camps.GET("", campHandler.List)
			camps.GET("/:campId", campHandler.Get)
			camps.POST("", requireAuth, campHandler.Create)
		}
	}

	// Start server
	logrus.WithField("port", cfg.ServerPort).Info("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
