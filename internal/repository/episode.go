package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

const episodesTable = "episode_events"

type episodeRepository struct {
	client *supabase.Client
}

// NewEpisodeRepository creates a new episode repository
func NewEpisodeRepository(client *supabase.Client) EpisodeRepository {
	return &episodeRepository{client: client}
}

func (r *episodeRepository) Create(ctx context.Context, episode *models.EpisodeEvent) (*models.EpisodeEvent, error) {
	data := map[string]any{
		"user_id":       episode.UserID,
		"start_time":    episode.StartTime,
		"severity":      episode.Severity,
		"pain_location": episode.PainLocation,
		"symptoms":      emptyIfNil(episode.Symptoms),
		"triggers":      emptyIfNil(episode.Triggers),
	}
	if episode.EndTime != nil {
		data["end_time"] = *episode.EndTime
	}
	if episode.MedicationsTaken != nil {
		data["medications_taken"] = episode.MedicationsTaken
	}
	if episode.ReliefMethods != nil {
		data["relief_methods"] = episode.ReliefMethods
	}
	if episode.EffectivenessRating != nil {
		data["effectiveness_rating"] = *episode.EffectivenessRating
	}
	if episode.Notes != nil {
		data["notes"] = *episode.Notes
	}

	var created []models.EpisodeEvent
	if err := r.client.Insert(ctx, episodesTable, data, &created); err != nil {
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no episode returned")
	}
	return &created[0], nil
}

func (r *episodeRepository) GetByID(ctx context.Context, id string) (*models.EpisodeEvent, error) {
	params := map[string]string{
		"id": "eq." + id,
	}

	var episodes []models.EpisodeEvent
	if err := r.client.Select(ctx, episodesTable, params, &episodes); err != nil {
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}
	if len(episodes) == 0 {
		return nil, nil
	}
	return &episodes[0], nil
}

func (r *episodeRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.EpisodeEvent, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"order":   "start_time.desc",
		"limit":   strconv.Itoa(limit),
		"offset":  strconv.Itoa(offset),
	}

	var episodes []models.EpisodeEvent
	if err := r.client.Select(ctx, episodesTable, params, &episodes); err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}
	return episodes, nil
}

func (r *episodeRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, from, until time.Time) ([]models.EpisodeEvent, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"and": fmt.Sprintf("(start_time.gte.%s,start_time.lte.%s)",
			from.Format(time.RFC3339), until.Format(time.RFC3339)),
		"order": "start_time.asc",
	}

	var episodes []models.EpisodeEvent
	if err := r.client.Select(ctx, episodesTable, params, &episodes); err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}
	return episodes, nil
}

func (r *episodeRepository) Update(ctx context.Context, id string, update *models.UpdateEpisodeRequest) (*models.EpisodeEvent, error) {
	data := make(map[string]any)

	// end_time supports explicit null to reopen an episode
	if update.EndTime.Set {
		if update.EndTime.Valid {
			data["end_time"] = update.EndTime.Value
		} else {
			data["end_time"] = nil
		}
	}
	if update.Severity != nil {
		data["severity"] = *update.Severity
	}
	if update.PainLocation != nil {
		data["pain_location"] = *update.PainLocation
	}
	if update.Symptoms != nil {
		data["symptoms"] = update.Symptoms
	}
	if update.Triggers != nil {
		data["triggers"] = update.Triggers
	}
	if update.MedicationsTaken != nil {
		data["medications_taken"] = update.MedicationsTaken
	}
	if update.ReliefMethods != nil {
		data["relief_methods"] = update.ReliefMethods
	}
	if update.EffectivenessRating != nil {
		data["effectiveness_rating"] = *update.EffectivenessRating
	}
	if update.Notes.Set {
		if update.Notes.Valid {
			data["notes"] = update.Notes.Value
		} else {
			data["notes"] = nil
		}
	}

	if len(data) == 0 {
		return r.GetByID(ctx, id)
	}

	params := map[string]string{"id": "eq." + id}

	var updated []models.EpisodeEvent
	if err := r.client.Update(ctx, episodesTable, params, data, &updated); err != nil {
		return nil, fmt.Errorf("failed to update episode: %w", err)
	}
	if len(updated) == 0 {
		return nil, nil
	}
	return &updated[0], nil
}

func (r *episodeRepository) Delete(ctx context.Context, id string) error {
	params := map[string]string{"id": "eq." + id}
	if err := r.client.Delete(ctx, episodesTable, params); err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}
	return nil
}

// emptyIfNil keeps NOT NULL array columns satisfied on insert.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
