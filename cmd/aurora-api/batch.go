package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aurorahealth/aurora-backend/internal/config"
	"github.com/aurorahealth/aurora-backend/internal/jobs"
	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/repository"
	"github.com/aurorahealth/aurora-backend/internal/service"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

var batchCmd = &cobra.Command{
	Use:   "batch [forecasts|analytics]",
	Short: "Run a batch job over all active users",
	Long: `Run one of the scheduled batch jobs:

  forecasts  compute and store today's risk assessment for every active user
  analytics  aggregate the trailing week of episodes for every active user

Intended to be invoked by cron or a scheduler.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"forecasts", "analytics"},
	RunE:      runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	logger.SetDefault(log)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	userRepo := repository.NewUserRepository(supabaseClient)
	wellnessRepo := repository.NewWellnessLogRepository(supabaseClient)
	biometricRepo := repository.NewBiometricRepository(supabaseClient)
	episodeRepo := repository.NewEpisodeRepository(supabaseClient)
	assessmentRepo := repository.NewRiskAssessmentRepository(supabaseClient)
	analyticsRepo := repository.NewPeriodAnalyticsRepository(supabaseClient)

	riskService := service.NewRiskService(wellnessRepo, biometricRepo, assessmentRepo, service.DefaultRiskModel(), time.Now)
	analyticsService := service.NewAnalyticsService(episodeRepo, wellnessRepo, analyticsRepo, time.Now)

	runner := jobs.NewRunner(userRepo, riskService, analyticsService, cfg.Jobs.Concurrency, time.Now)

	ctx := context.Background()
	start := time.Now()

	var processed int
	switch args[0] {
	case "forecasts":
		processed, err = runner.RunDailyForecasts(ctx)
	case "analytics":
		processed, err = runner.RunPeriodAnalytics(ctx)
	default:
		return fmt.Errorf("unknown batch job %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("batch %s failed: %w", args[0], err)
	}

	log.Info("batch job finished",
		logger.String("job", args[0]),
		logger.Int("processed", processed),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}
