// Package jobs runs the scheduled batch computations: daily risk forecasts
// and weekly period analytics, fanned out per active user.
package jobs

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
	"github.com/aurorahealth/aurora-backend/internal/service"
)

// analyticsWindowDays is the trailing window a scheduled analytics run
// aggregates for each user.
const analyticsWindowDays = 7

// Runner executes batch jobs over all active users with bounded concurrency.
type Runner struct {
	userRepo    repository.UserRepository
	riskSvc     service.RiskService
	analytics   service.AnalyticsService
	concurrency int
	now         func() time.Time
}

// NewRunner creates a batch runner. concurrency bounds the per-user fan-out.
func NewRunner(
	userRepo repository.UserRepository,
	riskSvc service.RiskService,
	analytics service.AnalyticsService,
	concurrency int,
	now func() time.Time,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Runner{
		userRepo:    userRepo,
		riskSvc:     riskSvc,
		analytics:   analytics,
		concurrency: concurrency,
		now:         now,
	}
}

// RunDailyForecasts computes and stores today's risk assessment for every
// active user. A single user's failure is logged and skipped, not fatal to
// the run.
func (r *Runner) RunDailyForecasts(ctx context.Context) (int, error) {
	users, err := r.userRepo.GetActive(ctx)
	if err != nil {
		return 0, err
	}

	today := models.DateOf(r.now())
	log := logger.Ctx(ctx)

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	done := make(chan struct{}, len(users))
	for _, user := range users {
		user := user
		g.Go(func() error {
			if _, err := r.riskSvc.Generate(ctx, user.ID, today); err != nil {
				log.Error("daily forecast failed",
					logger.String("user_id", user.ID),
					logger.Err(err),
				)
				return nil
			}
			done <- struct{}{}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	succeeded := len(done)
	log.Info("daily forecast run complete",
		logger.Int("users", len(users)),
		logger.Int("succeeded", succeeded),
	)
	return succeeded, nil
}

// RunPeriodAnalytics aggregates the trailing window for every active user.
// Users with no episodes in the window produce nothing and still count as
// processed.
func (r *Runner) RunPeriodAnalytics(ctx context.Context) (int, error) {
	users, err := r.userRepo.GetActive(ctx)
	if err != nil {
		return 0, err
	}

	end := models.DateOf(r.now())
	start := end.AddDays(-analyticsWindowDays)
	log := logger.Ctx(ctx)

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	created := make(chan struct{}, len(users))
	for _, user := range users {
		user := user
		g.Go(func() error {
			analytics, err := r.analytics.ComputePeriodAnalytics(ctx, user.ID, start, end)
			if err != nil {
				log.Error("period analytics failed",
					logger.String("user_id", user.ID),
					logger.Err(err),
				)
				return nil
			}
			if analytics != nil {
				created <- struct{}{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	createdCount := len(created)
	log.Info("period analytics run complete",
		logger.Int("users", len(users)),
		logger.Int("created", createdCount),
	)
	return createdCount, nil
}
