// Package service contains the business logic: risk scoring, analytics
// aggregation, and CRUD orchestration over the repositories.
package service

import (
	"context"
	"errors"

	"github.com/aurorahealth/aurora-backend/internal/models"
)

// ErrInvalidWindow reports a date window whose end precedes its start.
// Window validation happens before any data is read.
var ErrInvalidWindow = errors.New("window end precedes start")

// ErrNotFound reports a missing resource at the service layer.
var ErrNotFound = errors.New("not found")

// AuthService handles user authentication against Supabase GoTrue.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// WellnessService handles daily wellness log operations.
type WellnessService interface {
	Create(ctx context.Context, userID string, req *models.CreateWellnessLogRequest) (*models.WellnessLog, error)
	Get(ctx context.Context, userID, id string) (*models.WellnessLog, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.WellnessLog, error)
	ListRange(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error)
	Update(ctx context.Context, userID, id string, req *models.CreateWellnessLogRequest) (*models.WellnessLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// BiometricService handles biometric sample operations.
type BiometricService interface {
	Create(ctx context.Context, userID string, req *models.CreateBiometricSampleRequest) (*models.BiometricSample, error)
	Get(ctx context.Context, userID, id string) (*models.BiometricSample, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.BiometricSample, error)
	Delete(ctx context.Context, userID, id string) error
}

// EpisodeService handles episode event operations.
type EpisodeService interface {
	Create(ctx context.Context, userID string, req *models.CreateEpisodeRequest) (*models.EpisodeEvent, error)
	Get(ctx context.Context, userID, id string) (*models.EpisodeEvent, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateEpisodeRequest) (*models.EpisodeEvent, error)
	Delete(ctx context.Context, userID, id string) error
}

// RiskService computes and persists daily risk assessments.
type RiskService interface {
	// PredictRisk computes an assessment for the target date without
	// persisting it.
	PredictRisk(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error)
	// PredictNext7Days computes independent assessments for today and the
	// following six days.
	PredictNext7Days(ctx context.Context, userID string) (*models.Forecast, error)
	// GetOrGenerateToday returns the stored assessment for today, computing
	// and storing one if absent.
	GetOrGenerateToday(ctx context.Context, userID string) (*models.RiskAssessment, error)
	// Generate computes an assessment for the target date and upserts it.
	Generate(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error)
}

// AnalyticsService computes aggregated views over episodes and wellness logs.
type AnalyticsService interface {
	// ComputePeriodAnalytics aggregates one explicit window and persists the
	// result. Returns (nil, nil) when the window holds no episodes.
	ComputePeriodAnalytics(ctx context.Context, userID string, start, end models.Date) (*models.PeriodAnalytics, error)
	// ListStored returns previously persisted period analytics.
	ListStored(ctx context.Context, userID string, limit int) ([]models.PeriodAnalytics, error)
	// GetTopTriggers ranks triggers across all of a user's episodes.
	GetTopTriggers(ctx context.Context, userID string) ([]models.TriggerCount, error)
	// GetPatterns returns day-of-week and time-of-day breakdowns over the
	// trailing 30 days.
	GetPatterns(ctx context.Context, userID string) (*models.PatternBreakdown, error)
	// GetSummary returns the overall health summary over the trailing 30 days.
	GetSummary(ctx context.Context, userID string) (*models.HealthSummary, error)
	// GetCorrelationComparison contrasts wellness group means on episode days
	// against non-episode days over the trailing 60 days.
	GetCorrelationComparison(ctx context.Context, userID string) (*models.CorrelationComparison, error)
}
