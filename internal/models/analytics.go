package models

import "time"

// TriggerCount is one entry of a trigger frequency ranking.
type TriggerCount struct {
	Trigger string `json:"trigger"`
	Count   int    `json:"count"`
}

// PeriodAnalytics is the aggregated episode/wellness summary for one user and
// one explicit date window. Persistence is keyed by (user, period_start,
// period_end) with upsert semantics. A window with no episodes produces no
// PeriodAnalytics at all, not a zero-filled one.
//
// SleepCorrelation and StressCorrelation are group means over episode days,
// not correlation coefficients; the field names are kept for wire
// compatibility with existing clients.
type PeriodAnalytics struct {
	ID                string         `json:"id,omitempty"`
	UserID            string         `json:"user_id"`
	PeriodStart       Date           `json:"period_start"`
	PeriodEnd         Date           `json:"period_end"`
	TotalEpisodes     int            `json:"total_episodes"`
	AvgSeverity       *float64       `json:"avg_severity,omitempty"`
	AvgDurationHours  *float64       `json:"avg_duration_hours,omitempty"`
	TopTriggers       []TriggerCount `json:"top_triggers"`
	BestDayOfWeek     string         `json:"best_day_of_week"`
	WorstDayOfWeek    string         `json:"worst_day_of_week"`
	BestTimeOfDay     string         `json:"best_time_of_day"`
	WorstTimeOfDay    string         `json:"worst_time_of_day"`
	SleepCorrelation  *float64       `json:"sleep_correlation,omitempty"`
	StressCorrelation *float64       `json:"stress_correlation,omitempty"`
	CreatedAt         time.Time      `json:"created_at,omitempty"`
	UpdatedAt         time.Time      `json:"updated_at,omitempty"`
}

// PatternBreakdown is the day-of-week / time-of-day episode histogram view.
type PatternBreakdown struct {
	DayOfWeek     map[string]int `json:"day_of_week"`
	TimeOfDay     map[string]int `json:"time_of_day"`
	TotalEpisodes int            `json:"total_episodes"`
}

// GroupMeans holds mean wellness metrics over one group of calendar days.
type GroupMeans struct {
	AvgSleep  float64 `json:"avg_sleep"`
	AvgStress float64 `json:"avg_stress"`
	AvgWater  float64 `json:"avg_water"`
}

// CorrelationComparison contrasts wellness metrics on episode days against
// non-episode days. These are group-mean comparisons, not statistical
// correlations.
type CorrelationComparison struct {
	EpisodeDays    GroupMeans `json:"migraine_days"`
	NonEpisodeDays GroupMeans `json:"non_migraine_days"`
}

// EpisodeStats summarizes episodes over a summary period.
type EpisodeStats struct {
	Total       int     `json:"total"`
	AvgSeverity float64 `json:"avg_severity"`
}

// WellnessStats summarizes wellness logs over a summary period.
type WellnessStats struct {
	AvgSleep  float64 `json:"avg_sleep"`
	AvgStress float64 `json:"avg_stress"`
	AvgWater  float64 `json:"avg_water"`
	LogCount  int     `json:"log_count"`
}

// SummaryPeriod names the date range a summary covers.
type SummaryPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// HealthSummary is the overall health summary view.
type HealthSummary struct {
	Period      SummaryPeriod `json:"period"`
	Episodes    EpisodeStats  `json:"migraines"`
	WellnessLog WellnessStats `json:"daily_logs"`
}
