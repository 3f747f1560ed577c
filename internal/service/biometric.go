package service

import (
	"context"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
)

const defaultDataSource = "manual"

type biometricService struct {
	repo repository.BiometricRepository
}

// NewBiometricService creates the biometric sample service
func NewBiometricService(repo repository.BiometricRepository) BiometricService {
	return &biometricService{repo: repo}
}

func (s *biometricService) Create(ctx context.Context, userID string, req *models.CreateBiometricSampleRequest) (*models.BiometricSample, error) {
	source := req.DataSource
	if source == "" {
		source = defaultDataSource
	}

	sample := &models.BiometricSample{
		UserID:           userID,
		Timestamp:        req.Timestamp,
		HeartRate:        req.HeartRate,
		HRV:              req.HRV,
		RestingHeartRate: req.RestingHeartRate,
		SystolicBP:       req.SystolicBP,
		DiastolicBP:      req.DiastolicBP,
		Steps:            req.Steps,
		DataSource:       source,
	}
	return s.repo.Create(ctx, sample)
}

func (s *biometricService) Get(ctx context.Context, userID, id string) (*models.BiometricSample, error) {
	sample, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sample == nil || sample.UserID != userID {
		return nil, ErrNotFound
	}
	return sample, nil
}

func (s *biometricService) List(ctx context.Context, userID string, limit, offset int) ([]models.BiometricSample, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *biometricService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
