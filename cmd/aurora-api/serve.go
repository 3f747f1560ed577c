package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/aurorahealth/aurora-backend/internal/config"
	"github.com/aurorahealth/aurora-backend/internal/handlers"
	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/middleware"
	"github.com/aurorahealth/aurora-backend/internal/repository"
	"github.com/aurorahealth/aurora-backend/internal/service"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	logger.SetDefault(log)

	log.Info("starting aurora API server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Repositories
	userRepo := repository.NewUserRepository(supabaseClient)
	wellnessRepo := repository.NewWellnessLogRepository(supabaseClient)
	biometricRepo := repository.NewBiometricRepository(supabaseClient)
	episodeRepo := repository.NewEpisodeRepository(supabaseClient)
	assessmentRepo := repository.NewRiskAssessmentRepository(supabaseClient)
	analyticsRepo := repository.NewPeriodAnalyticsRepository(supabaseClient)

	// Services
	authService := service.NewAuthService(supabaseClient, userRepo)
	wellnessService := service.NewWellnessService(wellnessRepo)
	biometricService := service.NewBiometricService(biometricRepo)
	episodeService := service.NewEpisodeService(episodeRepo)
	riskService := service.NewRiskService(wellnessRepo, biometricRepo, assessmentRepo, service.DefaultRiskModel(), time.Now)
	analyticsService := service.NewAnalyticsService(episodeRepo, wellnessRepo, analyticsRepo, time.Now)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	biometricHandler := handlers.NewBiometricHandler(biometricService)
	episodeHandler := handlers.NewEpisodeHandler(episodeService)
	predictionHandler := handlers.NewPredictionHandler(riskService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit())
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Wellness log routes
			protected.GET("/wellness-logs", wellnessHandler.List)
			protected.POST("/wellness-logs", wellnessHandler.Create)
			protected.GET("/wellness-logs/:id", wellnessHandler.Get)
			protected.PUT("/wellness-logs/:id", wellnessHandler.Update)
			protected.DELETE("/wellness-logs/:id", wellnessHandler.Delete)

			// Biometric routes
			protected.GET("/biometrics", biometricHandler.List)
			protected.POST("/biometrics", biometricHandler.Create)
			protected.GET("/biometrics/:id", biometricHandler.Get)
			protected.DELETE("/biometrics/:id", biometricHandler.Delete)

			// Episode routes
			protected.GET("/episodes", episodeHandler.List)
			protected.POST("/episodes", episodeHandler.Create)
			protected.GET("/episodes/:id", episodeHandler.Get)
			protected.PATCH("/episodes/:id", episodeHandler.Update)
			protected.DELETE("/episodes/:id", episodeHandler.Delete)

			// Prediction routes
			protected.GET("/predictions/today", predictionHandler.Today)
			protected.GET("/predictions/forecast", predictionHandler.Forecast)
			protected.POST("/predictions/generate", predictionHandler.Generate)

			// Analytics routes
			protected.GET("/analytics", analyticsHandler.List)
			protected.POST("/analytics/compute", analyticsHandler.Compute)
			protected.GET("/analytics/triggers", analyticsHandler.Triggers)
			protected.GET("/analytics/patterns", analyticsHandler.Patterns)
			protected.GET("/analytics/summary", analyticsHandler.Summary)
			protected.GET("/analytics/correlations", analyticsHandler.Correlations)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
