package models

import "time"

// RiskLevel is the categorical bucket for a risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

// RiskFactor is a named, independently scored contributor to overall risk.
type RiskFactor string

const (
	FactorPoorSleep          RiskFactor = "poor_sleep"
	FactorHighStress         RiskFactor = "high_stress"
	FactorLowHydration       RiskFactor = "low_hydration"
	FactorHighHRVVariation   RiskFactor = "high_hrv_variation"
	FactorWeatherSensitivity RiskFactor = "weather_sensitivity"
	FactorLowActivity        RiskFactor = "low_activity"
	FactorIrregularPatterns  RiskFactor = "irregular_patterns"
)

// RiskFactorOrder is the fixed declaration order of factors. It decides ties
// when factors are ranked by score, so it must not be reordered.
var RiskFactorOrder = []RiskFactor{
	FactorPoorSleep,
	FactorHighStress,
	FactorLowHydration,
	FactorHighHRVVariation,
	FactorWeatherSensitivity,
	FactorLowActivity,
	FactorIrregularPatterns,
}

// FactorScores maps each risk factor to its raw (pre-weight) severity score.
type FactorScores map[RiskFactor]int

// FactorImpact is one entry of a risk assessment's top contributing factors.
type FactorImpact struct {
	Factor string `json:"factor"`
	Impact int    `json:"impact"`
}

// RiskAssessment is the daily risk prediction for a user. Persistence is
// keyed by (user, date) with upsert semantics.
type RiskAssessment struct {
	ID              string         `json:"id,omitempty"`
	UserID          string         `json:"user_id"`
	Date            Date           `json:"date"`
	RiskScore       int            `json:"risk_score"`
	RiskLevel       RiskLevel      `json:"risk_level"`
	TopFactors      []FactorImpact `json:"top_factors"`
	Confidence      float64        `json:"confidence"`
	Recommendations []string       `json:"recommendations"`
	ModelVersion    string         `json:"model_version"`
	CreatedAt       time.Time      `json:"created_at,omitempty"`
}

// Forecast is a sequence of independently computed daily assessments.
type Forecast struct {
	Days []RiskAssessment `json:"forecast"`
}
