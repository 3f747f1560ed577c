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

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// List handles GET /api/v1/analytics — previously persisted period analytics.
func (h *AnalyticsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := pagination(c)
	analytics, err := h.analyticsService.ListStored(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list analytics", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}

type computeAnalyticsRequest struct {
	PeriodStart models.Date `json:"period_start" binding:"required"`
	PeriodEnd   models.Date `json:"period_end" binding:"required"`
}

// Compute handles POST /api/v1/analytics/compute — aggregate an explicit
// window on demand. Responds 204 when the window holds no episodes.
func (h *AnalyticsHandler) Compute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req computeAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, apierror.FieldErrorsFromBinding(err)))
		return
	}

	analytics, err := h.analyticsService.ComputePeriodAnalytics(c.Request.Context(), userID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrInvalidWindow) {
			apierror.WriteProblem(c, apierror.NewInvalidWindowError(requestID, "period_end precedes period_start"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to compute analytics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	if analytics == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// Triggers handles GET /api/v1/analytics/triggers — all-time top triggers.
func (h *AnalyticsHandler) Triggers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	triggers, err := h.analyticsService.GetTopTriggers(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get triggers", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"top_triggers": triggers})
}

// Patterns handles GET /api/v1/analytics/patterns — 30-day weekday and
// time-of-day breakdowns.
func (h *AnalyticsHandler) Patterns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	patterns, err := h.analyticsService.GetPatterns(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get patterns", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// Summary handles GET /api/v1/analytics/summary — 30-day health summary.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get summary", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Correlations handles GET /api/v1/analytics/correlations — 60-day episode
// day vs non-episode day comparison.
func (h *AnalyticsHandler) Correlations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	comparison, err := h.analyticsService.GetCorrelationComparison(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get correlations", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, comparison)
}
