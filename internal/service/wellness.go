package service

import (
	"context"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
)

type wellnessService struct {
	repo repository.WellnessLogRepository
}

// NewWellnessService creates the wellness log service
func NewWellnessService(repo repository.WellnessLogRepository) WellnessService {
	return &wellnessService{repo: repo}
}

func (s *wellnessService) Create(ctx context.Context, userID string, req *models.CreateWellnessLogRequest) (*models.WellnessLog, error) {
	log := &models.WellnessLog{
		UserID:           userID,
		Date:             req.Date,
		SleepHours:       req.SleepHours,
		StressLevel:      req.StressLevel,
		WaterIntake:      req.WaterIntake,
		ExerciseDuration: req.ExerciseDuration,
		CaffeineIntake:   req.CaffeineIntake,
		Mood:             req.Mood,
		Notes:            req.Notes,
	}
	return s.repo.Create(ctx, log)
}

func (s *wellnessService) Get(ctx context.Context, userID, id string) (*models.WellnessLog, error) {
	log, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if log == nil || log.UserID != userID {
		return nil, ErrNotFound
	}
	return log, nil
}

func (s *wellnessService) List(ctx context.Context, userID string, limit, offset int) ([]models.WellnessLog, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *wellnessService) ListRange(ctx context.Context, userID string, from, until models.Date) ([]models.WellnessLog, error) {
	if until.Before(from) {
		return nil, ErrInvalidWindow
	}
	return s.repo.GetByUserIDAndDateRange(ctx, userID, from, until)
}

func (s *wellnessService) Update(ctx context.Context, userID, id string, req *models.CreateWellnessLogRequest) (*models.WellnessLog, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	log := &models.WellnessLog{
		SleepHours:       req.SleepHours,
		StressLevel:      req.StressLevel,
		WaterIntake:      req.WaterIntake,
		ExerciseDuration: req.ExerciseDuration,
		CaffeineIntake:   req.CaffeineIntake,
		Mood:             req.Mood,
		Notes:            req.Notes,
	}
	updated, err := s.repo.Update(ctx, id, log)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *wellnessService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
