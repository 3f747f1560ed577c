package service

import (
	"context"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
)

type episodeService struct {
	repo repository.EpisodeRepository
}

// NewEpisodeService creates the episode service
func NewEpisodeService(repo repository.EpisodeRepository) EpisodeService {
	return &episodeService{repo: repo}
}

func (s *episodeService) Create(ctx context.Context, userID string, req *models.CreateEpisodeRequest) (*models.EpisodeEvent, error) {
	episode := &models.EpisodeEvent{
		UserID:              userID,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Severity:            req.Severity,
		PainLocation:        req.PainLocation,
		Symptoms:            req.Symptoms,
		Triggers:            req.Triggers,
		MedicationsTaken:    req.MedicationsTaken,
		ReliefMethods:       req.ReliefMethods,
		EffectivenessRating: req.EffectivenessRating,
		Notes:               req.Notes,
	}
	return s.repo.Create(ctx, episode)
}

func (s *episodeService) Get(ctx context.Context, userID, id string) (*models.EpisodeEvent, error) {
	episode, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if episode == nil || episode.UserID != userID {
		return nil, ErrNotFound
	}
	return episode, nil
}

func (s *episodeService) List(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *episodeService) Update(ctx context.Context, userID, id string, req *models.UpdateEpisodeRequest) (*models.EpisodeEvent, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *episodeService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
