package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
)

type riskService struct {
	logRepo        repository.WellnessLogRepository
	bioRepo        repository.BiometricRepository
	assessmentRepo repository.RiskAssessmentRepository
	model          RiskModelConfig
	now            func() time.Time
}

// NewRiskService creates the risk prediction service. now is injectable so
// "today" is controllable in tests; pass time.Now in production wiring.
func NewRiskService(
	logRepo repository.WellnessLogRepository,
	bioRepo repository.BiometricRepository,
	assessmentRepo repository.RiskAssessmentRepository,
	model RiskModelConfig,
	now func() time.Time,
) RiskService {
	if now == nil {
		now = time.Now
	}
	return &riskService{
		logRepo:        logRepo,
		bioRepo:        bioRepo,
		assessmentRepo: assessmentRepo,
		model:          model,
		now:            now,
	}
}

func (s *riskService) PredictRisk(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error) {
	from := target.AddDays(-s.model.LookbackDays)

	logs, err := s.logRepo.GetLookbackWindow(ctx, userID, from, target)
	if err != nil {
		return nil, fmt.Errorf("failed to load wellness logs: %w", err)
	}

	samples, err := s.bioRepo.GetLookbackWindow(ctx, userID, from.Time, target.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to load biometric samples: %w", err)
	}

	factors := calculateRiskFactors(s.model, logs, samples)
	score := scoreRisk(s.model, factors)
	level := riskLevelFor(s.model, score)

	assessment := &models.RiskAssessment{
		UserID:          userID,
		Date:            target,
		RiskScore:       score,
		RiskLevel:       level,
		TopFactors:      topFactors(s.model, factors),
		Confidence:      estimateConfidence(s.model, len(logs), len(samples)),
		Recommendations: buildRecommendations(s.model, factors, level),
		ModelVersion:    s.model.ModelVersion,
	}

	logger.Ctx(ctx).Debug("computed risk assessment",
		logger.String("date", target.String()),
		logger.Int("risk_score", score),
		logger.String("risk_level", string(level)),
		logger.Int("log_count", len(logs)),
		logger.Int("sample_count", len(samples)),
	)

	return assessment, nil
}

func (s *riskService) PredictNext7Days(ctx context.Context, userID string) (*models.Forecast, error) {
	today := models.DateOf(s.now())

	days := make([]models.RiskAssessment, 0, 7)
	for i := 0; i < 7; i++ {
		assessment, err := s.PredictRisk(ctx, userID, today.AddDays(i))
		if err != nil {
			return nil, err
		}
		days = append(days, *assessment)
	}

	return &models.Forecast{Days: days}, nil
}

func (s *riskService) GetOrGenerateToday(ctx context.Context, userID string) (*models.RiskAssessment, error) {
	today := models.DateOf(s.now())

	stored, err := s.assessmentRepo.GetByUserIDAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}

	return s.Generate(ctx, userID, today)
}

func (s *riskService) Generate(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error) {
	assessment, err := s.PredictRisk(ctx, userID, target)
	if err != nil {
		return nil, err
	}

	saved, err := s.assessmentRepo.Upsert(ctx, assessment)
	if err != nil {
		return nil, fmt.Errorf("failed to store risk assessment: %w", err)
	}
	return saved, nil
}

// calculateRiskFactors assigns each factor its raw severity score from the
// lookback window. An empty log window scores every factor zero regardless of
// biometrics: without check-ins there is nothing to ground a prediction on.
func calculateRiskFactors(m RiskModelConfig, logs []models.WellnessLog, samples []models.BiometricSample) models.FactorScores {
	factors := models.FactorScores{}
	for _, f := range models.RiskFactorOrder {
		factors[f] = 0
	}

	if len(logs) == 0 {
		return factors
	}

	var sleepSum, stressSum, waterSum, exerciseSum float64
	for _, l := range logs {
		sleepSum += l.SleepHours
		stressSum += float64(l.StressLevel)
		waterSum += l.WaterIntake
		exerciseSum += l.ExerciseDuration
	}
	n := float64(len(logs))

	switch avgSleep := sleepSum / n; {
	case avgSleep < m.SleepSevereBelow:
		factors[models.FactorPoorSleep] = m.SleepSevereScore
	case avgSleep < m.SleepMildBelow:
		factors[models.FactorPoorSleep] = m.SleepMildScore
	}

	switch avgStress := stressSum / n; {
	case avgStress > m.StressSevereAbove:
		factors[models.FactorHighStress] = m.StressSevereScore
	case avgStress > m.StressMildAbove:
		factors[models.FactorHighStress] = m.StressMildScore
	}

	switch avgWater := waterSum / n; {
	case avgWater < m.WaterSevereBelow:
		factors[models.FactorLowHydration] = m.WaterSevereScore
	case avgWater < m.WaterMildBelow:
		factors[models.FactorLowHydration] = m.WaterMildScore
	}

	if exerciseSum/n < m.ExerciseBelow {
		factors[models.FactorLowActivity] = m.LowActivityScore
	}

	// HRV contributes only when samples carry readings.
	var hrvSum float64
	var hrvCount int
	for _, sample := range samples {
		if sample.HRV != nil {
			hrvSum += *sample.HRV
			hrvCount++
		}
	}
	if hrvCount > 0 && hrvSum/float64(hrvCount) < m.HRVBelow {
		factors[models.FactorHighHRVVariation] = m.HRVScore
	}

	// Weather sensitivity is declared but not yet scored; it stays zero
	// until a weather data source lands.

	if len(logs) < m.MinLogsForPattern {
		factors[models.FactorIrregularPatterns] = m.IrregularScore
	}

	return factors
}

// scoreRisk collapses raw factor scores into the overall 0-100 score: a
// weighted sum, clamped, then truncated toward zero.
func scoreRisk(m RiskModelConfig, factors models.FactorScores) int {
	var weighted float64
	for factor, score := range factors {
		weighted += float64(score) * m.Weights[factor]
	}

	clamped := math.Min(100, math.Max(0, weighted))
	return int(clamped)
}

func riskLevelFor(m RiskModelConfig, score int) models.RiskLevel {
	switch {
	case score < m.LowBelow:
		return models.RiskLevelLow
	case score < m.ModerateBelow:
		return models.RiskLevelModerate
	default:
		return models.RiskLevelHigh
	}
}

// topFactors ranks factors by raw score, descending, with ties broken by
// declaration order, and keeps at most TopFactorLimit entries scoring above
// TopFactorMinScore. Entries carry the client-facing label, not the key.
func topFactors(m RiskModelConfig, factors models.FactorScores) []models.FactorImpact {
	ordered := make([]models.RiskFactor, len(models.RiskFactorOrder))
	copy(ordered, models.RiskFactorOrder)

	sort.SliceStable(ordered, func(i, j int) bool {
		return factors[ordered[i]] > factors[ordered[j]]
	})

	top := make([]models.FactorImpact, 0, m.TopFactorLimit)
	for _, factor := range ordered {
		if len(top) == m.TopFactorLimit {
			break
		}
		if factors[factor] <= m.TopFactorMinScore {
			continue
		}
		label := m.Labels[factor]
		if label == "" {
			label = string(factor)
		}
		top = append(top, models.FactorImpact{Factor: label, Impact: factors[factor]})
	}
	return top
}

// estimateConfidence scores prediction confidence from data availability.
// Logs contribute up to LogConfidenceMax at a full lookback window of
// samples, biometrics up to BioConfidenceMax; the bio term saturates at its
// max while the log term is only capped at 100, so heavy duplicate logging
// can push the sum past 100. The result is clamped there and rounded to two
// decimals.
func estimateConfidence(m RiskModelConfig, logCount, bioCount int) float64 {
	days := float64(m.LookbackDays)

	logConfidence := math.Min(100, float64(logCount)/days*m.LogConfidenceMax)
	bioConfidence := math.Min(m.BioConfidenceMax, float64(bioCount)/days*m.BioConfidenceMax)

	total := math.Min(100, logConfidence+bioConfidence)
	return math.Round(total*100) / 100
}

// buildRecommendations emits advice in a fixed rule order so output is
// deterministic: sleep, stress, hydration, activity, then two extra entries
// for high risk, then the fallback when nothing else fired. Capped at
// MaxRecommendations.
func buildRecommendations(m RiskModelConfig, factors models.FactorScores, level models.RiskLevel) []string {
	var recs []string

	if factors[models.FactorPoorSleep] > m.RecommendSleepAbove {
		recs = append(recs, "Try to get 7-8 hours of quality sleep tonight")
	}
	if factors[models.FactorHighStress] > m.RecommendStressAbove {
		recs = append(recs, "Practice stress-reduction techniques (meditation, deep breathing)")
	}
	if factors[models.FactorLowHydration] > m.RecommendWaterAbove {
		recs = append(recs, "Drink at least 8 glasses of water today")
	}
	if factors[models.FactorLowActivity] > m.RecommendActivityAbove {
		recs = append(recs, "Aim for 30 minutes of light exercise")
	}

	if level == models.RiskLevelHigh {
		recs = append(recs, "Keep your rescue medication handy")
		recs = append(recs, "Avoid known triggers today")
	}

	if len(recs) == 0 {
		recs = append(recs, "Continue your healthy habits!")
	}

	if len(recs) > m.MaxRecommendations {
		recs = recs[:m.MaxRecommendations]
	}
	return recs
}
