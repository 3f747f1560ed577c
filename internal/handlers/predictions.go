package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurorahealth/aurora-backend/internal/apierror"
	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/service"
)

type PredictionHandler struct {
	riskService service.RiskService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(riskService service.RiskService) *PredictionHandler {
	return &PredictionHandler{riskService: riskService}
}

// Today handles GET /api/v1/predictions/today.
// Returns the stored assessment for today, generating one if none exists.
func (h *PredictionHandler) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	assessment, err := h.riskService.GetOrGenerateToday(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get today's prediction", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// Forecast handles GET /api/v1/predictions/forecast.
// Computes seven independent daily assessments starting today; nothing is
// persisted.
func (h *PredictionHandler) Forecast(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	forecast, err := h.riskService.PredictNext7Days(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute forecast", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, forecast)
}

type generateRequest struct {
	Date *models.Date `json:"date"`
}

// Generate handles POST /api/v1/predictions/generate.
// Recomputes and upserts the assessment for the requested date (default
// today).
func (h *PredictionHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	target := models.DateOf(timeNow())
	if req.Date != nil && !req.Date.IsZero() {
		target = *req.Date
	}

	assessment, err := h.riskService.Generate(c.Request.Context(), userID, target)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to generate prediction", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, assessment)
}
