package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurorahealth/aurora-backend/internal/apierror"
	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/service"
)

type EpisodeHandler struct {
	episodeService service.EpisodeService
}

// NewEpisodeHandler creates a new episode handler
func NewEpisodeHandler(episodeService service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{episodeService: episodeService}
}

// Create handles POST /api/v1/episodes
func (h *EpisodeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, apierror.FieldErrorsFromBinding(err)))
		return
	}

	// An end before the start would produce a negative duration.
	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "end_time", Message: "must not precede start_time", Code: "invalid_range"},
		}))
		return
	}

	episode, err := h.episodeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create episode", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, episode)
}

// Get handles GET /api/v1/episodes/:id
func (h *EpisodeHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	episode, err := h.episodeService.Get(c.Request.Context(), userID, id)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "episode", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get episode", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, episode)
}

// List handles GET /api/v1/episodes
func (h *EpisodeHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	episodes, err := h.episodeService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list episodes", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"episodes": episodes})
}

// Update handles PATCH /api/v1/episodes/:id
func (h *EpisodeHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req models.UpdateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, apierror.FieldErrorsFromBinding(err)))
		return
	}

	episode, err := h.episodeService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "episode", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to update episode", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, episode)
}

// Delete handles DELETE /api/v1/episodes/:id
func (h *EpisodeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.episodeService.Delete(c.Request.Context(), userID, id); err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "episode", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to delete episode", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
