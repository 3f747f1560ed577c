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

type BiometricHandler struct {
	biometricService service.BiometricService
}

// NewBiometricHandler creates a new biometric sample handler
func NewBiometricHandler(biometricService service.BiometricService) *BiometricHandler {
	return &BiometricHandler{biometricService: biometricService}
}

// Create handles POST /api/v1/biometrics
func (h *BiometricHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateBiometricSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, apierror.FieldErrorsFromBinding(err)))
		return
	}

	sample, err := h.biometricService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create biometric sample", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, sample)
}

// Get handles GET /api/v1/biometrics/:id
func (h *BiometricHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	sample, err := h.biometricService.Get(c.Request.Context(), userID, id)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "biometric sample", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get biometric sample", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, sample)
}

// List handles GET /api/v1/biometrics
func (h *BiometricHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	samples, err := h.biometricService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list biometric samples", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"biometrics": samples})
}

// Delete handles DELETE /api/v1/biometrics/:id
func (h *BiometricHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.biometricService.Delete(c.Request.Context(), userID, id); err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "biometric sample", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to delete biometric sample", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
