package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

const biometricsTable = "biometric_samples"

type biometricRepository struct {
	client *supabase.Client
}

// NewBiometricRepository creates a new biometric sample repository
func NewBiometricRepository(client *supabase.Client) BiometricRepository {
	return &biometricRepository{client: client}
}

func (r *biometricRepository) Create(ctx context.Context, sample *models.BiometricSample) (*models.BiometricSample, error) {
	data := map[string]any{
		"user_id":     sample.UserID,
		"timestamp":   sample.Timestamp,
		"heart_rate":  sample.HeartRate,
		"data_source": sample.DataSource,
	}
	if sample.HRV != nil {
		data["hrv"] = *sample.HRV
	}
	if sample.RestingHeartRate != nil {
		data["resting_heart_rate"] = *sample.RestingHeartRate
	}
	if sample.SystolicBP != nil {
		data["systolic_bp"] = *sample.SystolicBP
	}
	if sample.DiastolicBP != nil {
		data["diastolic_bp"] = *sample.DiastolicBP
	}
	if sample.Steps != nil {
		data["steps"] = *sample.Steps
	}

	var created []models.BiometricSample
	if err := r.client.Insert(ctx, biometricsTable, data, &created); err != nil {
		return nil, fmt.Errorf("failed to create biometric sample: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no biometric sample returned")
	}
	return &created[0], nil
}

func (r *biometricRepository) GetByID(ctx context.Context, id string) (*models.BiometricSample, error) {
	params := map[string]string{
		"id": "eq." + id,
	}

	var samples []models.BiometricSample
	if err := r.client.Select(ctx, biometricsTable, params, &samples); err != nil {
		return nil, fmt.Errorf("failed to get biometric sample: %w", err)
	}
	if len(samples) == 0 {
		return nil, nil
	}
	return &samples[0], nil
}

func (r *biometricRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.BiometricSample, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"order":   "timestamp.desc",
		"limit":   strconv.Itoa(limit),
		"offset":  strconv.Itoa(offset),
	}

	var samples []models.BiometricSample
	if err := r.client.Select(ctx, biometricsTable, params, &samples); err != nil {
		return nil, fmt.Errorf("failed to get biometric samples: %w", err)
	}
	return samples, nil
}

func (r *biometricRepository) GetLookbackWindow(ctx context.Context, userID string, from, until time.Time) ([]models.BiometricSample, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"and": fmt.Sprintf("(timestamp.gte.%s,timestamp.lt.%s)",
			from.Format(time.RFC3339), until.Format(time.RFC3339)),
		"order": "timestamp.asc",
	}

	var samples []models.BiometricSample
	if err := r.client.Select(ctx, biometricsTable, params, &samples); err != nil {
		return nil, fmt.Errorf("failed to get biometric samples: %w", err)
	}
	return samples, nil
}

func (r *biometricRepository) Delete(ctx context.Context, id string) error {
	params := map[string]string{"id": "eq." + id}
	if err := r.client.Delete(ctx, biometricsTable, params); err != nil {
		return fmt.Errorf("failed to delete biometric sample: %w", err)
	}
	return nil
}
