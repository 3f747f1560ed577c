package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

const riskAssessmentsTable = "risk_assessments"

type riskAssessmentRepository struct {
	client *supabase.Client
}

// NewRiskAssessmentRepository creates a new risk assessment repository
func NewRiskAssessmentRepository(client *supabase.Client) RiskAssessmentRepository {
	return &riskAssessmentRepository{client: client}
}

func (r *riskAssessmentRepository) Upsert(ctx context.Context, assessment *models.RiskAssessment) (*models.RiskAssessment, error) {
	data := map[string]any{
		"user_id":         assessment.UserID,
		"date":            assessment.Date,
		"risk_score":      assessment.RiskScore,
		"risk_level":      assessment.RiskLevel,
		"top_factors":     assessment.TopFactors,
		"confidence":      assessment.Confidence,
		"recommendations": assessment.Recommendations,
		"model_version":   assessment.ModelVersion,
	}

	var saved []models.RiskAssessment
	if err := r.client.Upsert(ctx, riskAssessmentsTable, data, "user_id,date", &saved); err != nil {
		return nil, fmt.Errorf("failed to upsert risk assessment: %w", err)
	}
	if len(saved) == 0 {
		return nil, fmt.Errorf("no risk assessment returned")
	}
	return &saved[0], nil
}

func (r *riskAssessmentRepository) GetByUserIDAndDate(ctx context.Context, userID string, date models.Date) (*models.RiskAssessment, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"date":    "eq." + date.String(),
	}

	var assessments []models.RiskAssessment
	if err := r.client.Select(ctx, riskAssessmentsTable, params, &assessments); err != nil {
		return nil, fmt.Errorf("failed to get risk assessment: %w", err)
	}
	if len(assessments) == 0 {
		return nil, nil
	}
	return &assessments[0], nil
}

func (r *riskAssessmentRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.RiskAssessment, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"order":   "date.desc",
		"limit":   strconv.Itoa(limit),
	}

	var assessments []models.RiskAssessment
	if err := r.client.Select(ctx, riskAssessmentsTable, params, &assessments); err != nil {
		return nil, fmt.Errorf("failed to get risk assessments: %w", err)
	}
	return assessments, nil
}
