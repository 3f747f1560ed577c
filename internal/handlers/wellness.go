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

type WellnessHandler struct {
	wellnessService service.WellnessService
}

// NewWellnessHandler creates a new wellness log handler
func NewWellnessHandler(wellnessService service.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellnessService: wellnessService}
}

// Create handles POST /api/v1/wellness-logs
func (h *WellnessHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateWellnessLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, apierror.FieldErrorsFromBinding(err)))
		return
	}

	log, err := h.wellnessService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create wellness log", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, log)
}

// Get handles GET /api/v1/wellness-logs/:id
func (h *WellnessHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	log, err := h.wellnessService.Get(c.Request.Context(), userID, id)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "wellness log", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get wellness log", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, log)
}

// List handles GET /api/v1/wellness-logs. With from/until query params it
// returns the logs of that inclusive date range instead of paging.
func (h *WellnessHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fromStr, untilStr := c.Query("from"), c.Query("until")
	if fromStr != "" || untilStr != "" {
		h.listRange(c, userID, fromStr, untilStr)
		return
	}

	limit, offset := pagination(c)
	logs, err := h.wellnessService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list wellness logs", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"wellness_logs": logs})
}

func (h *WellnessHandler) listRange(c *gin.Context, userID, fromStr, untilStr string) {
	requestID := apierror.GetRequestID(c)

	from, err := models.ParseDate(fromStr)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidWindowError(requestID, "from must be a YYYY-MM-DD date"))
		return
	}
	until, err := models.ParseDate(untilStr)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidWindowError(requestID, "until must be a YYYY-MM-DD date"))
		return
	}

	logs, err := h.wellnessService.ListRange(c.Request.Context(), userID, from, until)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWindow) {
			apierror.WriteProblem(c, apierror.NewInvalidWindowError(requestID, "until precedes from"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to list wellness logs", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"wellness_logs": logs})
}

// Update handles PUT /api/v1/wellness-logs/:id
func (h *WellnessHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req models.CreateWellnessLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, apierror.FieldErrorsFromBinding(err)))
		return
	}

	log, err := h.wellnessService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "wellness log", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to update wellness log", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, log)
}

// Delete handles DELETE /api/v1/wellness-logs/:id
func (h *WellnessHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.wellnessService.Delete(c.Request.Context(), userID, id); err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "wellness log", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to delete wellness log", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
