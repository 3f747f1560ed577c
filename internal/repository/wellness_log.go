package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

const wellnessLogsTable = "wellness_logs"

type wellnessLogRepository struct {
	client *supabase.Client
}

// NewWellnessLogRepository creates a new wellness log repository
func NewWellnessLogRepository(client *supabase.Client) WellnessLogRepository {
	return &wellnessLogRepository{client: client}
}

func (r *wellnessLogRepository) Create(ctx context.Context, log *models.WellnessLog) (*models.WellnessLog, error) {
	data := map[string]any{
		"user_id":           log.UserID,
		"date":              log.Date,
		"sleep_hours":       log.SleepHours,
		"stress_level":      log.StressLevel,
		"water_intake":      log.WaterIntake,
		"exercise_duration": log.ExerciseDuration,
	}
	if log.CaffeineIntake != nil {
		data["caffeine_intake"] = *log.CaffeineIntake
	}
	if log.Mood != nil {
		data["mood"] = *log.Mood
	}
	if log.Notes != nil {
		data["notes"] = *log.Notes
	}

	var created []models.WellnessLog
	if err := r.client.Insert(ctx, wellnessLogsTable, data, &created); err != nil {
		return nil, fmt.Errorf("failed to create wellness log: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no wellness log returned")
	}
	return &created[0], nil
}

func (r *wellnessLogRepository) GetByID(ctx context.Context, id string) (*models.WellnessLog, error) {
	params := map[string]string{
		"id": "eq." + id,
	}

	var logs []models.WellnessLog
	if err := r.client.Select(ctx, wellnessLogsTable, params, &logs); err != nil {
		return nil, fmt.Errorf("failed to get wellness log: %w", err)
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

func (r *wellnessLogRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.WellnessLog, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"order":   "date.desc",
		"limit":   strconv.Itoa(limit),
		"offset":  strconv.Itoa(offset),
	}

	var logs []models.WellnessLog
	if err := r.client.Select(ctx, wellnessLogsTable, params, &logs); err != nil {
		return nil, fmt.Errorf("failed to get wellness logs: %w", err)
	}
	return logs, nil
}

func (r *wellnessLogRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"and":     fmt.Sprintf("(date.gte.%s,date.lte.%s)", from, until),
		"order":   "date.asc",
	}

	var logs []models.WellnessLog
	if err := r.client.Select(ctx, wellnessLogsTable, params, &logs); err != nil {
		return nil, fmt.Errorf("failed to get wellness logs: %w", err)
	}
	return logs, nil
}

func (r *wellnessLogRepository) GetLookbackWindow(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"and":     fmt.Sprintf("(date.gte.%s,date.lt.%s)", from, until),
		"order":   "date.asc",
	}

	var logs []models.WellnessLog
	if err := r.client.Select(ctx, wellnessLogsTable, params, &logs); err != nil {
		return nil, fmt.Errorf("failed to get wellness logs: %w", err)
	}
	return logs, nil
}

func (r *wellnessLogRepository) Update(ctx context.Context, id string, log *models.WellnessLog) (*models.WellnessLog, error) {
	data := map[string]any{
		"sleep_hours":       log.SleepHours,
		"stress_level":      log.StressLevel,
		"water_intake":      log.WaterIntake,
		"exercise_duration": log.ExerciseDuration,
	}
	if log.CaffeineIntake != nil {
		data["caffeine_intake"] = *log.CaffeineIntake
	}
	if log.Mood != nil {
		data["mood"] = *log.Mood
	}
	if log.Notes != nil {
		data["notes"] = *log.Notes
	}

	params := map[string]string{"id": "eq." + id}

	var updated []models.WellnessLog
	if err := r.client.Update(ctx, wellnessLogsTable, params, data, &updated); err != nil {
		return nil, fmt.Errorf("failed to update wellness log: %w", err)
	}
	if len(updated) == 0 {
		return nil, nil
	}
	return &updated[0], nil
}

func (r *wellnessLogRepository) Delete(ctx context.Context, id string) error {
	params := map[string]string{"id": "eq." + id}
	if err := r.client.Delete(ctx, wellnessLogsTable, params); err != nil {
		return fmt.Errorf("failed to delete wellness log: %w", err)
	}
	return nil
}
