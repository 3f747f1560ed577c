package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurorahealth/aurora-backend/internal/models"
)

type stubUserRepo struct {
	users []models.User
	err   error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

func (s *stubUserRepo) GetActive(ctx context.Context) ([]models.User, error) {
	return s.users, s.err
}

type stubRiskService struct {
	mu      sync.Mutex
	calls   []string
	dates   []models.Date
	failFor map[string]bool
}

func (s *stubRiskService) PredictRisk(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error) {
	return &models.RiskAssessment{UserID: userID, Date: target}, nil
}

func (s *stubRiskService) PredictNext7Days(ctx context.Context, userID string) (*models.Forecast, error) {
	return &models.Forecast{}, nil
}

func (s *stubRiskService) GetOrGenerateToday(ctx context.Context, userID string) (*models.RiskAssessment, error) {
	return nil, nil
}

func (s *stubRiskService) Generate(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, userID)
	s.dates = append(s.dates, target)
	if s.failFor[userID] {
		return nil, errors.New("boom")
	}
	return &models.RiskAssessment{UserID: userID, Date: target}, nil
}

type stubAnalyticsService struct {
	mu      sync.Mutex
	calls   []string
	starts  []models.Date
	ends    []models.Date
	noData  map[string]bool
	failFor map[string]bool
}

func (s *stubAnalyticsService) ComputePeriodAnalytics(ctx context.Context, userID string, start, end models.Date) (*models.PeriodAnalytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, userID)
	s.starts = append(s.starts, start)
	s.ends = append(s.ends, end)
	if s.failFor[userID] {
		return nil, errors.New("boom")
	}
	if s.noData[userID] {
		return nil, nil
	}
	return &models.PeriodAnalytics{UserID: userID}, nil
}

func (s *stubAnalyticsService) ListStored(ctx context.Context, userID string, limit int) ([]models.PeriodAnalytics, error) {
	return nil, nil
}

func (s *stubAnalyticsService) GetTopTriggers(ctx context.Context, userID string) ([]models.TriggerCount, error) {
	return nil, nil
}

func (s *stubAnalyticsService) GetPatterns(ctx context.Context, userID string) (*models.PatternBreakdown, error) {
	return nil, nil
}

func (s *stubAnalyticsService) GetSummary(ctx context.Context, userID string) (*models.HealthSummary, error) {
	return nil, nil
}

func (s *stubAnalyticsService) GetCorrelationComparison(ctx context.Context, userID string) (*models.CorrelationComparison, error) {
	return nil, nil
}

func activeUsers(ids ...string) []models.User {
	users := make([]models.User, len(ids))
	for i, id := range ids {
		users[i] = models.User{ID: id, IsActive: true}
	}
	return users
}

func fixedNow(s string) func() time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return func() time.Time { return t }
}

func TestRunDailyForecasts(t *testing.T) {
	riskSvc := &stubRiskService{}
	runner := NewRunner(
		&stubUserRepo{users: activeUsers("u1", "u2", "u3")},
		riskSvc,
		&stubAnalyticsService{},
		2,
		fixedNow("2025-06-15T03:00:00Z"),
	)

	processed, err := runner.RunDailyForecasts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, processed)
	assert.ElementsMatch(t, []string{"u1", "u2", "u3"}, riskSvc.calls)

	for _, d := range riskSvc.dates {
		assert.Equal(t, "2025-06-15", d.String())
	}
}

func TestRunDailyForecastsSkipsFailedUsers(t *testing.T) {
	riskSvc := &stubRiskService{failFor: map[string]bool{"u2": true}}
	runner := NewRunner(
		&stubUserRepo{users: activeUsers("u1", "u2", "u3")},
		riskSvc,
		&stubAnalyticsService{},
		1,
		fixedNow("2025-06-15T03:00:00Z"),
	)

	processed, err := runner.RunDailyForecasts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Len(t, riskSvc.calls, 3)
}

func TestRunDailyForecastsUserListError(t *testing.T) {
	runner := NewRunner(
		&stubUserRepo{err: errors.New("db down")},
		&stubRiskService{},
		&stubAnalyticsService{},
		4,
		nil,
	)

	_, err := runner.RunDailyForecasts(context.Background())
	assert.Error(t, err)
}

func TestRunPeriodAnalytics(t *testing.T) {
	analyticsSvc := &stubAnalyticsService{noData: map[string]bool{"u2": true}}
	runner := NewRunner(
		&stubUserRepo{users: activeUsers("u1", "u2")},
		&stubRiskService{},
		analyticsSvc,
		2,
		fixedNow("2025-06-15T03:00:00Z"),
	)

	created, err := runner.RunPeriodAnalytics(context.Background())
	require.NoError(t, err)

	// u2 had no episodes; the run still visits both users but only one
	// analytics row is created
	assert.Equal(t, 1, created)
	assert.ElementsMatch(t, []string{"u1", "u2"}, analyticsSvc.calls)

	for i := range analyticsSvc.starts {
		assert.Equal(t, "2025-06-08", analyticsSvc.starts[i].String())
		assert.Equal(t, "2025-06-15", analyticsSvc.ends[i].String())
	}
}

func TestRunPeriodAnalyticsSkipsFailedUsers(t *testing.T) {
	analyticsSvc := &stubAnalyticsService{failFor: map[string]bool{"u1": true}}
	runner := NewRunner(
		&stubUserRepo{users: activeUsers("u1", "u2")},
		&stubRiskService{},
		analyticsSvc,
		2,
		fixedNow("2025-06-15T03:00:00Z"),
	)

	created, err := runner.RunPeriodAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}
