package service

import "github.com/aurorahealth/aurora-backend/internal/models"

// RiskModelConfig holds every constant of the rule-based risk model in one
// place. The values are part of the model's contract: the same inputs must
// always produce the same assessment, so changing any of them is a model
// version bump.
type RiskModelConfig struct {
	ModelVersion string

	// LookbackDays is the size of the half-open data window read per
	// prediction: [target-LookbackDays, target).
	LookbackDays int

	// Factor trigger thresholds and the scores they assign.
	SleepSevereBelow   float64 // mean sleep below this scores SleepSevereScore
	SleepMildBelow     float64
	SleepSevereScore   int
	SleepMildScore     int
	StressSevereAbove  float64
	StressMildAbove    float64
	StressSevereScore  int
	StressMildScore    int
	WaterSevereBelow   float64
	WaterMildBelow     float64
	WaterSevereScore   int
	WaterMildScore     int
	ExerciseBelow      float64
	LowActivityScore   int
	HRVBelow           float64
	HRVScore           int
	MinLogsForPattern  int // fewer logs than this flags irregular_patterns
	IrregularScore     int

	// Weights applied to raw factor scores when computing the overall score.
	Weights map[models.RiskFactor]float64

	// Labels are the client-facing names used in top_factors.
	Labels map[models.RiskFactor]string

	// Risk level boundaries: score < LowBelow is low, < ModerateBelow is
	// moderate, anything else high.
	LowBelow      int
	ModerateBelow int

	// Top factor selection: at most TopFactorLimit factors, each with a raw
	// score above TopFactorMinScore.
	TopFactorLimit    int
	TopFactorMinScore int

	// Recommendation thresholds on raw factor scores.
	RecommendSleepAbove    int
	RecommendStressAbove   int
	RecommendWaterAbove    int
	RecommendActivityAbove int
	MaxRecommendations     int

	// Confidence weighting: logs contribute LogConfidenceMax points at
	// LookbackDays samples, biometrics BioConfidenceMax. See
	// estimateConfidence for the exact saturation behavior.
	LogConfidenceMax float64
	BioConfidenceMax float64
}

// DefaultRiskModel returns the 1.0-simple model configuration.
func DefaultRiskModel() RiskModelConfig {
	return RiskModelConfig{
		ModelVersion: "1.0-simple",
		LookbackDays: 7,

		SleepSevereBelow:  6,
		SleepMildBelow:    7,
		SleepSevereScore:  40,
		SleepMildScore:    25,
		StressSevereAbove: 7,
		StressMildAbove:   5,
		StressSevereScore: 45,
		StressMildScore:   25,
		WaterSevereBelow:  4,
		WaterMildBelow:    6,
		WaterSevereScore:  30,
		WaterMildScore:    15,
		ExerciseBelow:     15,
		LowActivityScore:  20,
		HRVBelow:          30,
		HRVScore:          35,
		MinLogsForPattern: 5,
		IrregularScore:    20,

		Weights: map[models.RiskFactor]float64{
			models.FactorPoorSleep:          0.25,
			models.FactorHighStress:         0.25,
			models.FactorLowHydration:       0.15,
			models.FactorHighHRVVariation:   0.15,
			models.FactorWeatherSensitivity: 0.05,
			models.FactorLowActivity:        0.10,
			models.FactorIrregularPatterns:  0.05,
		},

		Labels: map[models.RiskFactor]string{
			models.FactorPoorSleep:          "Insufficient Sleep",
			models.FactorHighStress:         "High Stress Level",
			models.FactorLowHydration:       "Low Water Intake",
			models.FactorHighHRVVariation:   "Irregular Heart Rate",
			models.FactorWeatherSensitivity: "Weather Changes",
			models.FactorLowActivity:        "Low Physical Activity",
			models.FactorIrregularPatterns:  "Irregular Sleep/Wake Pattern",
		},

		LowBelow:      30,
		ModerateBelow: 70,

		TopFactorLimit:    3,
		TopFactorMinScore: 5,

		RecommendSleepAbove:    20,
		RecommendStressAbove:   20,
		RecommendWaterAbove:    15,
		RecommendActivityAbove: 15,
		MaxRecommendations:     5,

		LogConfidenceMax: 70,
		BioConfidenceMax: 30,
	}
}
