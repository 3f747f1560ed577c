package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
)

const (
	patternsWindowDays     = 30
	summaryWindowDays      = 30
	correlationsWindowDays = 60
	topTriggersLimit       = 10
	periodTriggersLimit    = 5

	// PostgREST needs an explicit limit; this caps the all-time trigger scan.
	allEpisodesLimit = 10000
)

type analyticsService struct {
	episodeRepo   repository.EpisodeRepository
	logRepo       repository.WellnessLogRepository
	analyticsRepo repository.PeriodAnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsService creates the analytics aggregation service. now is
// injectable for tests; pass time.Now in production wiring.
func NewAnalyticsService(
	episodeRepo repository.EpisodeRepository,
	logRepo repository.WellnessLogRepository,
	analyticsRepo repository.PeriodAnalyticsRepository,
	now func() time.Time,
) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{
		episodeRepo:   episodeRepo,
		logRepo:       logRepo,
		analyticsRepo: analyticsRepo,
		now:           now,
	}
}

func (s *analyticsService) ComputePeriodAnalytics(ctx context.Context, userID string, start, end models.Date) (*models.PeriodAnalytics, error) {
	if end.Before(start) {
		return nil, ErrInvalidWindow
	}

	episodes, err := s.episodesInDateWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	// A window without episodes yields no analytics row at all.
	if len(episodes) == 0 {
		logger.Ctx(ctx).Debug("no episodes in window, skipping analytics",
			logger.String("period_start", start.String()),
			logger.String("period_end", end.String()),
		)
		return nil, nil
	}

	analytics := &models.PeriodAnalytics{
		UserID:        userID,
		PeriodStart:   start,
		PeriodEnd:     end,
		TotalEpisodes: len(episodes),
		TopTriggers:   topN(countTriggers(episodes), periodTriggersLimit),
	}

	var severitySum float64
	for _, e := range episodes {
		severitySum += float64(e.Severity)
	}
	avgSeverity := severitySum / float64(len(episodes))
	analytics.AvgSeverity = &avgSeverity

	// Open episodes have no duration and are excluded from the mean.
	var durationSum float64
	var durationCount int
	for i := range episodes {
		if d := episodes[i].DurationHours(); d != nil {
			durationSum += *d
			durationCount++
		}
	}
	if durationCount > 0 {
		avgDuration := durationSum / float64(durationCount)
		analytics.AvgDurationHours = &avgDuration
	}

	analytics.WorstDayOfWeek = worstDayOfWeek(episodes)

	logs, err := s.logRepo.GetByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load wellness logs: %w", err)
	}
	if sleep, stress, ok := episodeDayMeans(episodes, logs); ok {
		analytics.SleepCorrelation = &sleep
		analytics.StressCorrelation = &stress
	}

	saved, err := s.analyticsRepo.Upsert(ctx, analytics)
	if err != nil {
		return nil, fmt.Errorf("failed to store period analytics: %w", err)
	}
	return saved, nil
}

func (s *analyticsService) ListStored(ctx context.Context, userID string, limit int) ([]models.PeriodAnalytics, error) {
	return s.analyticsRepo.GetByUserID(ctx, userID, limit)
}

func (s *analyticsService) GetTopTriggers(ctx context.Context, userID string) ([]models.TriggerCount, error) {
	episodes, err := s.episodeRepo.GetByUserID(ctx, userID, allEpisodesLimit, 0)
	if err != nil {
		return nil, err
	}
	return topN(countTriggers(episodes), topTriggersLimit), nil
}

func (s *analyticsService) GetPatterns(ctx context.Context, userID string) (*models.PatternBreakdown, error) {
	end := models.DateOf(s.now())
	start := end.AddDays(-patternsWindowDays)

	episodes, err := s.episodesInDateWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	dayCounts := make(map[string]int)
	for _, e := range episodes {
		dayCounts[e.StartTime.Weekday().String()]++
	}

	return &models.PatternBreakdown{
		DayOfWeek:     dayCounts,
		TimeOfDay:     timeOfDayBuckets(episodes),
		TotalEpisodes: len(episodes),
	}, nil
}

func (s *analyticsService) GetSummary(ctx context.Context, userID string) (*models.HealthSummary, error) {
	end := models.DateOf(s.now())
	start := end.AddDays(-summaryWindowDays)

	episodes, err := s.episodesInDateWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.GetByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load wellness logs: %w", err)
	}

	summary := &models.HealthSummary{
		Period: models.SummaryPeriod{Start: start, End: end},
		Episodes: models.EpisodeStats{
			Total: len(episodes),
		},
		WellnessLog: models.WellnessStats{
			LogCount: len(logs),
		},
	}

	if len(episodes) > 0 {
		var severitySum float64
		for _, e := range episodes {
			severitySum += float64(e.Severity)
		}
		summary.Episodes.AvgSeverity = severitySum / float64(len(episodes))
	}

	if len(logs) > 0 {
		var sleepSum, stressSum, waterSum float64
		for _, l := range logs {
			sleepSum += l.SleepHours
			stressSum += float64(l.StressLevel)
			waterSum += l.WaterIntake
		}
		n := float64(len(logs))
		summary.WellnessLog.AvgSleep = sleepSum / n
		summary.WellnessLog.AvgStress = stressSum / n
		summary.WellnessLog.AvgWater = waterSum / n
	}

	return summary, nil
}

func (s *analyticsService) GetCorrelationComparison(ctx context.Context, userID string) (*models.CorrelationComparison, error) {
	end := models.DateOf(s.now())
	start := end.AddDays(-correlationsWindowDays)

	episodes, err := s.episodesInDateWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.GetByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load wellness logs: %w", err)
	}

	episodeDates := make(map[string]bool, len(episodes))
	for _, e := range episodes {
		episodeDates[models.DateOf(e.StartTime).String()] = true
	}

	var onDays, offDays []models.WellnessLog
	for _, l := range logs {
		if episodeDates[l.Date.String()] {
			onDays = append(onDays, l)
		} else {
			offDays = append(offDays, l)
		}
	}

	return &models.CorrelationComparison{
		EpisodeDays:    groupMeans(onDays),
		NonEpisodeDays: groupMeans(offDays),
	}, nil
}

// episodesInDateWindow returns episodes whose start date falls within
// [start, end], both endpoints inclusive.
func (s *analyticsService) episodesInDateWindow(ctx context.Context, userID string, start, end models.Date) ([]models.EpisodeEvent, error) {
	from := start.Time
	until := end.AddDays(1).Time.Add(-time.Second)

	episodes, err := s.episodeRepo.GetByUserIDAndDateRange(ctx, userID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to load episodes: %w", err)
	}
	return episodes, nil
}

// countTriggers tallies trigger occurrences across episodes, remembering the
// order each trigger was first seen so ranking ties stay deterministic.
func countTriggers(episodes []models.EpisodeEvent) []models.TriggerCount {
	counts := make(map[string]int)
	var order []string

	for _, e := range episodes {
		for _, trigger := range e.Triggers {
			if counts[trigger] == 0 {
				order = append(order, trigger)
			}
			counts[trigger]++
		}
	}

	ranked := make([]models.TriggerCount, 0, len(order))
	for _, trigger := range order {
		ranked = append(ranked, models.TriggerCount{Trigger: trigger, Count: counts[trigger]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func topN(ranked []models.TriggerCount, n int) []models.TriggerCount {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	// Keep the JSON shape as [] rather than null when empty.
	if ranked == nil {
		ranked = []models.TriggerCount{}
	}
	return ranked
}

// worstDayOfWeek returns the weekday name with the most episodes, breaking
// count ties toward the earlier weekday (Sunday first). Empty input yields "".
func worstDayOfWeek(episodes []models.EpisodeEvent) string {
	if len(episodes) == 0 {
		return ""
	}

	var counts [7]int
	for _, e := range episodes {
		counts[e.StartTime.Weekday()]++
	}

	worst := time.Sunday
	for day := time.Monday; day <= time.Saturday; day++ {
		if counts[day] > counts[worst] {
			worst = day
		}
	}
	return worst.String()
}

// timeOfDayBuckets histograms episode start hours into the four fixed
// periods. All buckets are present in the result, zero or not.
func timeOfDayBuckets(episodes []models.EpisodeEvent) map[string]int {
	buckets := map[string]int{
		"morning":   0,
		"afternoon": 0,
		"evening":   0,
		"night":     0,
	}

	for _, e := range episodes {
		switch hour := e.StartTime.Hour(); {
		case hour >= 6 && hour < 12:
			buckets["morning"]++
		case hour >= 12 && hour < 17:
			buckets["afternoon"]++
		case hour >= 17 && hour < 22:
			buckets["evening"]++
		default:
			buckets["night"]++
		}
	}
	return buckets
}

// episodeDayMeans computes mean sleep and stress over the logs whose date
// had at least one episode. ok is false when no log falls on an episode day.
func episodeDayMeans(episodes []models.EpisodeEvent, logs []models.WellnessLog) (sleep, stress float64, ok bool) {
	episodeDates := make(map[string]bool, len(episodes))
	for _, e := range episodes {
		episodeDates[models.DateOf(e.StartTime).String()] = true
	}

	var sleepSum, stressSum float64
	var n int
	for _, l := range logs {
		if episodeDates[l.Date.String()] {
			sleepSum += l.SleepHours
			stressSum += float64(l.StressLevel)
			n++
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	return sleepSum / float64(n), stressSum / float64(n), true
}

// groupMeans averages wellness metrics over one group of logs. An empty
// group reports zeros.
func groupMeans(logs []models.WellnessLog) models.GroupMeans {
	if len(logs) == 0 {
		return models.GroupMeans{}
	}

	var sleepSum, stressSum, waterSum float64
	for _, l := range logs {
		sleepSum += l.SleepHours
		stressSum += float64(l.StressLevel)
		waterSum += l.WaterIntake
	}
	n := float64(len(logs))
	return models.GroupMeans{
		AvgSleep:  sleepSum / n,
		AvgStress: stressSum / n,
		AvgWater:  waterSum / n,
	}
}
