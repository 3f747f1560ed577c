package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurorahealth/aurora-backend/internal/models"
)

func episodeAt(ts string, severity int, triggers ...string) models.EpisodeEvent {
	t, _ := time.Parse(time.RFC3339, ts)
	return models.EpisodeEvent{
		StartTime: t,
		Severity:  severity,
		Triggers:  triggers,
	}
}

func closedEpisodeAt(ts string, hours float64, severity int) models.EpisodeEvent {
	e := episodeAt(ts, severity)
	end := e.StartTime.Add(time.Duration(hours * float64(time.Hour)))
	e.EndTime = &end
	return e
}

func logOn(t *testing.T, date string, sleep float64, stress int, water float64) models.WellnessLog {
	t.Helper()
	return models.WellnessLog{
		Date:        mustDate(t, date),
		SleepHours:  sleep,
		StressLevel: stress,
		WaterIntake: water,
	}
}

func newTestAnalyticsService(episodes []models.EpisodeEvent, logs []models.WellnessLog) (AnalyticsService, *mockPeriodAnalyticsRepo) {
	analyticsRepo := &mockPeriodAnalyticsRepo{}
	svc := NewAnalyticsService(
		&mockEpisodeRepo{
			getByUserIDFn: func(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error) {
				return episodes, nil
			},
			getByUserIDAndDateRangeFn: func(ctx context.Context, userID string, from, until time.Time) ([]models.EpisodeEvent, error) {
				return episodes, nil
			},
		},
		&mockWellnessRepo{
			getByUserIDAndDateRangeFn: func(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error) {
				return logs, nil
			},
		},
		analyticsRepo,
		fixedNow("2025-06-15T10:00:00Z"),
	)
	return svc, analyticsRepo
}

func TestComputePeriodAnalyticsRejectsInvertedWindow(t *testing.T) {
	svc, repo := newTestAnalyticsService(nil, nil)

	_, err := svc.ComputePeriodAnalytics(context.Background(), "user-1",
		mustDate(t, "2025-06-15"), mustDate(t, "2025-06-08"))
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.Empty(t, repo.upserted)
}

func TestComputePeriodAnalyticsEmptyWindowProducesNothing(t *testing.T) {
	svc, repo := newTestAnalyticsService(nil, nil)

	got, err := svc.ComputePeriodAnalytics(context.Background(), "user-1",
		mustDate(t, "2025-06-08"), mustDate(t, "2025-06-15"))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, repo.upserted)
}

func TestComputePeriodAnalytics(t *testing.T) {
	episodes := []models.EpisodeEvent{
		closedEpisodeAt("2025-06-09T08:00:00Z", 2, 6),             // Monday
		episodeAt("2025-06-11T19:00:00Z", 4, "stress", "weather"), // Wednesday, open
		closedEpisodeAt("2025-06-11T22:30:00Z", 3, 8),             // Wednesday
	}
	episodes[0].Triggers = []string{"stress"}
	logs := []models.WellnessLog{
		logOn(t, "2025-06-09", 5, 8, 3),
		logOn(t, "2025-06-10", 8, 2, 8),
		logOn(t, "2025-06-11", 6, 6, 4),
	}

	svc, repo := newTestAnalyticsService(episodes, logs)

	got, err := svc.ComputePeriodAnalytics(context.Background(), "user-1",
		mustDate(t, "2025-06-08"), mustDate(t, "2025-06-15"))
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 3, got.TotalEpisodes)
	require.NotNil(t, got.AvgSeverity)
	assert.InDelta(t, (6.0+4+8)/3, *got.AvgSeverity, 0.001)

	// Only the two closed episodes contribute to duration
	require.NotNil(t, got.AvgDurationHours)
	assert.InDelta(t, 2.5, *got.AvgDurationHours, 0.001)

	// stress seen twice, weather once
	require.Len(t, got.TopTriggers, 2)
	assert.Equal(t, models.TriggerCount{Trigger: "stress", Count: 2}, got.TopTriggers[0])
	assert.Equal(t, models.TriggerCount{Trigger: "weather", Count: 1}, got.TopTriggers[1])

	// Wednesday has two episodes, Monday one
	assert.Equal(t, "Wednesday", got.WorstDayOfWeek)

	// Episode days are the 9th and 11th; their logs average below
	require.NotNil(t, got.SleepCorrelation)
	assert.InDelta(t, 5.5, *got.SleepCorrelation, 0.001)
	require.NotNil(t, got.StressCorrelation)
	assert.InDelta(t, 7, *got.StressCorrelation, 0.001)

	// Placeholders stay empty until those aggregations exist
	assert.Empty(t, got.BestDayOfWeek)
	assert.Empty(t, got.BestTimeOfDay)
	assert.Empty(t, got.WorstTimeOfDay)

	require.Len(t, repo.upserted, 1)
}

func TestComputePeriodAnalyticsWithoutEpisodeDayLogs(t *testing.T) {
	episodes := []models.EpisodeEvent{episodeAt("2025-06-09T08:00:00Z", 5)}
	logs := []models.WellnessLog{logOn(t, "2025-06-10", 8, 2, 8)}

	svc, _ := newTestAnalyticsService(episodes, logs)

	got, err := svc.ComputePeriodAnalytics(context.Background(), "user-1",
		mustDate(t, "2025-06-08"), mustDate(t, "2025-06-15"))
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Nil(t, got.SleepCorrelation)
	assert.Nil(t, got.StressCorrelation)
	assert.Nil(t, got.AvgDurationHours)
}

func TestCountTriggersTiesKeepFirstSeenOrder(t *testing.T) {
	episodes := []models.EpisodeEvent{
		episodeAt("2025-06-09T08:00:00Z", 5, "stress", "weather"),
		episodeAt("2025-06-10T08:00:00Z", 5, "stress", "noise"),
	}

	got := countTriggers(episodes)
	require.Len(t, got, 3)
	assert.Equal(t, "stress", got[0].Trigger)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "weather", got[1].Trigger)
	assert.Equal(t, "noise", got[2].Trigger)
}

func TestGetTopTriggersLimitsToTen(t *testing.T) {
	var episodes []models.EpisodeEvent
	triggers := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, trig := range triggers {
		episodes = append(episodes, episodeAt("2025-06-09T08:00:00Z", 5, trig))
	}

	svc, _ := newTestAnalyticsService(episodes, nil)

	got, err := svc.GetTopTriggers(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestWorstDayOfWeek(t *testing.T) {
	t.Run("highest count wins", func(t *testing.T) {
		episodes := []models.EpisodeEvent{
			episodeAt("2025-06-09T08:00:00Z", 5), // Monday
			episodeAt("2025-06-11T08:00:00Z", 5), // Wednesday
			episodeAt("2025-06-18T08:00:00Z", 5), // Wednesday
		}
		assert.Equal(t, "Wednesday", worstDayOfWeek(episodes))
	})

	t.Run("ties break toward the earlier weekday", func(t *testing.T) {
		episodes := []models.EpisodeEvent{
			episodeAt("2025-06-09T08:00:00Z", 5), // Monday
			episodeAt("2025-06-08T08:00:00Z", 5), // Sunday
		}
		assert.Equal(t, "Sunday", worstDayOfWeek(episodes))
	})

	t.Run("empty input yields empty string", func(t *testing.T) {
		assert.Equal(t, "", worstDayOfWeek(nil))
	})
}

func TestTimeOfDayBuckets(t *testing.T) {
	episodes := []models.EpisodeEvent{
		episodeAt("2025-06-09T06:00:00Z", 5), // morning lower bound
		episodeAt("2025-06-09T11:59:00Z", 5), // still morning
		episodeAt("2025-06-09T12:00:00Z", 5), // afternoon lower bound
		episodeAt("2025-06-09T16:59:00Z", 5), // still afternoon
		episodeAt("2025-06-09T17:00:00Z", 5), // evening lower bound
		episodeAt("2025-06-09T21:59:00Z", 5), // still evening
		episodeAt("2025-06-09T22:00:00Z", 5), // night
		episodeAt("2025-06-09T05:59:00Z", 5), // night
	}

	got := timeOfDayBuckets(episodes)
	assert.Equal(t, map[string]int{
		"morning":   2,
		"afternoon": 2,
		"evening":   2,
		"night":     2,
	}, got)
}

func TestTimeOfDayBucketsAlwaysPresent(t *testing.T) {
	got := timeOfDayBuckets(nil)
	assert.Equal(t, map[string]int{"morning": 0, "afternoon": 0, "evening": 0, "night": 0}, got)
}

func TestGetPatterns(t *testing.T) {
	episodes := []models.EpisodeEvent{
		episodeAt("2025-06-09T08:00:00Z", 5),
		episodeAt("2025-06-11T19:00:00Z", 5),
	}
	svc, _ := newTestAnalyticsService(episodes, nil)

	got, err := svc.GetPatterns(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalEpisodes)
	assert.Equal(t, map[string]int{"Monday": 1, "Wednesday": 1}, got.DayOfWeek)
	assert.Equal(t, 1, got.TimeOfDay["morning"])
	assert.Equal(t, 1, got.TimeOfDay["evening"])
}

func TestGetSummary(t *testing.T) {
	episodes := []models.EpisodeEvent{
		episodeAt("2025-06-09T08:00:00Z", 4),
		episodeAt("2025-06-11T19:00:00Z", 8),
	}
	logs := []models.WellnessLog{
		logOn(t, "2025-06-09", 6, 7, 4),
		logOn(t, "2025-06-10", 8, 3, 6),
	}
	svc, _ := newTestAnalyticsService(episodes, logs)

	got, err := svc.GetSummary(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-05-16", got.Period.Start.String())
	assert.Equal(t, "2025-06-15", got.Period.End.String())
	assert.Equal(t, 2, got.Episodes.Total)
	assert.InDelta(t, 6, got.Episodes.AvgSeverity, 0.001)
	assert.Equal(t, 2, got.WellnessLog.LogCount)
	assert.InDelta(t, 7, got.WellnessLog.AvgSleep, 0.001)
	assert.InDelta(t, 5, got.WellnessLog.AvgStress, 0.001)
	assert.InDelta(t, 5, got.WellnessLog.AvgWater, 0.001)
}

func TestGetSummaryEmptyReportsZeros(t *testing.T) {
	svc, _ := newTestAnalyticsService(nil, nil)

	got, err := svc.GetSummary(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 0, got.Episodes.Total)
	assert.Zero(t, got.Episodes.AvgSeverity)
	assert.Zero(t, got.WellnessLog.AvgSleep)
	assert.Equal(t, 0, got.WellnessLog.LogCount)
}

func TestGetCorrelationComparison(t *testing.T) {
	episodes := []models.EpisodeEvent{
		episodeAt("2025-06-09T08:00:00Z", 5),
	}
	logs := []models.WellnessLog{
		logOn(t, "2025-06-09", 5, 8, 3), // episode day
		logOn(t, "2025-06-10", 8, 2, 8),
		logOn(t, "2025-06-11", 7, 4, 6),
	}
	svc, _ := newTestAnalyticsService(episodes, logs)

	got, err := svc.GetCorrelationComparison(context.Background(), "user-1")
	require.NoError(t, err)

	assert.InDelta(t, 5, got.EpisodeDays.AvgSleep, 0.001)
	assert.InDelta(t, 8, got.EpisodeDays.AvgStress, 0.001)
	assert.InDelta(t, 3, got.EpisodeDays.AvgWater, 0.001)

	assert.InDelta(t, 7.5, got.NonEpisodeDays.AvgSleep, 0.001)
	assert.InDelta(t, 3, got.NonEpisodeDays.AvgStress, 0.001)
	assert.InDelta(t, 7, got.NonEpisodeDays.AvgWater, 0.001)
}

func TestGetCorrelationComparisonEmptyGroupsReportZeros(t *testing.T) {
	svc, _ := newTestAnalyticsService(nil, nil)

	got, err := svc.GetCorrelationComparison(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, models.GroupMeans{}, got.EpisodeDays)
	assert.Equal(t, models.GroupMeans{}, got.NonEpisodeDays)
}
