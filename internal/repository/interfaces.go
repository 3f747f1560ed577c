// Package repository provides data access over Supabase PostgREST.
package repository

import (
	"context"
	"time"

	"github.com/aurorahealth/aurora-backend/internal/models"
)

// UserRepository handles user data access.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetActive returns all users eligible for batch processing.
	GetActive(ctx context.Context) ([]models.User, error)
}

// WellnessLogRepository handles daily wellness check-in data access.
type WellnessLogRepository interface {
	Create(ctx context.Context, log *models.WellnessLog) (*models.WellnessLog, error)
	GetByID(ctx context.Context, id string) (*models.WellnessLog, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.WellnessLog, error)
	// GetByUserIDAndDateRange returns logs with from <= date <= until.
	GetByUserIDAndDateRange(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error)
	// GetLookbackWindow returns logs with from <= date < until, the half-open
	// window risk scoring reads.
	GetLookbackWindow(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error)
	Update(ctx context.Context, id string, log *models.WellnessLog) (*models.WellnessLog, error)
	Delete(ctx context.Context, id string) error
}

// BiometricRepository handles biometric sample data access.
type BiometricRepository interface {
	Create(ctx context.Context, sample *models.BiometricSample) (*models.BiometricSample, error)
	GetByID(ctx context.Context, id string) (*models.BiometricSample, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.BiometricSample, error)
	// GetLookbackWindow returns samples with from <= timestamp < until.
	GetLookbackWindow(ctx context.Context, userID string, from, until time.Time) ([]models.BiometricSample, error)
	Delete(ctx context.Context, id string) error
}

// EpisodeRepository handles episode event data access.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.EpisodeEvent) (*models.EpisodeEvent, error)
	GetByID(ctx context.Context, id string) (*models.EpisodeEvent, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error)
	// GetByUserIDAndDateRange returns episodes starting within [from, until],
	// inclusive of both endpoints.
	GetByUserIDAndDateRange(ctx context.Context, userID string, from, until time.Time) ([]models.EpisodeEvent, error)
	Update(ctx context.Context, id string, update *models.UpdateEpisodeRequest) (*models.EpisodeEvent, error)
	Delete(ctx context.Context, id string) error
}

// RiskAssessmentRepository persists daily risk predictions.
type RiskAssessmentRepository interface {
	// Upsert writes an assessment keyed by (user_id, date); recomputing a
	// date replaces the stored row.
	Upsert(ctx context.Context, assessment *models.RiskAssessment) (*models.RiskAssessment, error)
	GetByUserIDAndDate(ctx context.Context, userID string, date models.Date) (*models.RiskAssessment, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.RiskAssessment, error)
}

// PeriodAnalyticsRepository persists aggregated period analytics.
type PeriodAnalyticsRepository interface {
	// Upsert writes analytics keyed by (user_id, period_start, period_end).
	Upsert(ctx context.Context, analytics *models.PeriodAnalytics) (*models.PeriodAnalytics, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.PeriodAnalytics, error)
}
