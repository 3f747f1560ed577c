package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

const periodAnalyticsTable = "period_analytics"

type periodAnalyticsRepository struct {
	client *supabase.Client
}

// NewPeriodAnalyticsRepository creates a new period analytics repository
func NewPeriodAnalyticsRepository(client *supabase.Client) PeriodAnalyticsRepository {
	return &periodAnalyticsRepository{client: client}
}

func (r *periodAnalyticsRepository) Upsert(ctx context.Context, analytics *models.PeriodAnalytics) (*models.PeriodAnalytics, error) {
	data := map[string]any{
		"user_id":           analytics.UserID,
		"period_start":      analytics.PeriodStart,
		"period_end":        analytics.PeriodEnd,
		"total_episodes":    analytics.TotalEpisodes,
		"top_triggers":      analytics.TopTriggers,
		"best_day_of_week":  analytics.BestDayOfWeek,
		"worst_day_of_week": analytics.WorstDayOfWeek,
		"best_time_of_day":  analytics.BestTimeOfDay,
		"worst_time_of_day": analytics.WorstTimeOfDay,
	}
	if analytics.AvgSeverity != nil {
		data["avg_severity"] = *analytics.AvgSeverity
	}
	if analytics.AvgDurationHours != nil {
		data["avg_duration_hours"] = *analytics.AvgDurationHours
	}
	if analytics.SleepCorrelation != nil {
		data["sleep_correlation"] = *analytics.SleepCorrelation
	}
	if analytics.StressCorrelation != nil {
		data["stress_correlation"] = *analytics.StressCorrelation
	}

	var saved []models.PeriodAnalytics
	if err := r.client.Upsert(ctx, periodAnalyticsTable, data, "user_id,period_start,period_end", &saved); err != nil {
		return nil, fmt.Errorf("failed to upsert period analytics: %w", err)
	}
	if len(saved) == 0 {
		return nil, fmt.Errorf("no period analytics returned")
	}
	return &saved[0], nil
}

func (r *periodAnalyticsRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.PeriodAnalytics, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"order":   "period_start.desc",
		"limit":   strconv.Itoa(limit),
	}

	var analytics []models.PeriodAnalytics
	if err := r.client.Select(ctx, periodAnalyticsTable, params, &analytics); err != nil {
		return nil, fmt.Errorf("failed to get period analytics: %w", err)
	}
	return analytics, nil
}
