package service

import (
	"context"
	"time"

	"github.com/aurorahealth/aurora-backend/internal/models"
)

// Hand-written repository mocks with overridable function fields. Methods a
// test does not stub return empty results.

type mockWellnessRepo struct {
	getLookbackWindowFn       func(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error)
	getByUserIDAndDateRangeFn func(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error)
}

func (m *mockWellnessRepo) Create(ctx context.Context, log *models.WellnessLog) (*models.WellnessLog, error) {
	return log, nil
}

func (m *mockWellnessRepo) GetByID(ctx context.Context, id string) (*models.WellnessLog, error) {
	return nil, nil
}

func (m *mockWellnessRepo) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.WellnessLog, error) {
	return nil, nil
}

func (m *mockWellnessRepo) GetByUserIDAndDateRange(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error) {
	if m.getByUserIDAndDateRangeFn != nil {
		return m.getByUserIDAndDateRangeFn(ctx, userID, from, until)
	}
	return nil, nil
}

func (m *mockWellnessRepo) GetLookbackWindow(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error) {
	if m.getLookbackWindowFn != nil {
		return m.getLookbackWindowFn(ctx, userID, from, until)
	}
	return nil, nil
}

func (m *mockWellnessRepo) Update(ctx context.Context, id string, log *models.WellnessLog) (*models.WellnessLog, error) {
	return log, nil
}

func (m *mockWellnessRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type mockBiometricRepo struct {
	getLookbackWindowFn func(ctx context.Context, userID string, from, until time.Time) ([]models.BiometricSample, error)
}

func (m *mockBiometricRepo) Create(ctx context.Context, sample *models.BiometricSample) (*models.BiometricSample, error) {
	return sample, nil
}

func (m *mockBiometricRepo) GetByID(ctx context.Context, id string) (*models.BiometricSample, error) {
	return nil, nil
}

func (m *mockBiometricRepo) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.BiometricSample, error) {
	return nil, nil
}

func (m *mockBiometricRepo) GetLookbackWindow(ctx context.Context, userID string, from, until time.Time) ([]models.BiometricSample, error) {
	if m.getLookbackWindowFn != nil {
		return m.getLookbackWindowFn(ctx, userID, from, until)
	}
	return nil, nil
}

func (m *mockBiometricRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type mockEpisodeRepo struct {
	getByUserIDFn             func(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error)
	getByUserIDAndDateRangeFn func(ctx context.Context, userID string, from, until time.Time) ([]models.EpisodeEvent, error)
}

func (m *mockEpisodeRepo) Create(ctx context.Context, episode *models.EpisodeEvent) (*models.EpisodeEvent, error) {
	return episode, nil
}

func (m *mockEpisodeRepo) GetByID(ctx context.Context, id string) (*models.EpisodeEvent, error) {
	return nil, nil
}

func (m *mockEpisodeRepo) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockEpisodeRepo) GetByUserIDAndDateRange(ctx context.Context, userID string, from, until time.Time) ([]models.EpisodeEvent, error) {
	if m.getByUserIDAndDateRangeFn != nil {
		return m.getByUserIDAndDateRangeFn(ctx, userID, from, until)
	}
	return nil, nil
}

func (m *mockEpisodeRepo) Update(ctx context.Context, id string, update *models.UpdateEpisodeRequest) (*models.EpisodeEvent, error) {
	return nil, nil
}

func (m *mockEpisodeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type mockAssessmentRepo struct {
	upserted []models.RiskAssessment

	getByUserIDAndDateFn func(ctx context.Context, userID string, date models.Date) (*models.RiskAssessment, error)
}

func (m *mockAssessmentRepo) Upsert(ctx context.Context, assessment *models.RiskAssessment) (*models.RiskAssessment, error) {
	m.upserted = append(m.upserted, *assessment)
	return assessment, nil
}

func (m *mockAssessmentRepo) GetByUserIDAndDate(ctx context.Context, userID string, date models.Date) (*models.RiskAssessment, error) {
	if m.getByUserIDAndDateFn != nil {
		return m.getByUserIDAndDateFn(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockAssessmentRepo) GetByUserID(ctx context.Context, userID string, limit int) ([]models.RiskAssessment, error) {
	return nil, nil
}

type mockPeriodAnalyticsRepo struct {
	upserted []models.PeriodAnalytics
}

func (m *mockPeriodAnalyticsRepo) Upsert(ctx context.Context, analytics *models.PeriodAnalytics) (*models.PeriodAnalytics, error) {
	m.upserted = append(m.upserted, *analytics)
	return analytics, nil
}

func (m *mockPeriodAnalyticsRepo) GetByUserID(ctx context.Context, userID string, limit int) ([]models.PeriodAnalytics, error) {
	return nil, nil
}
