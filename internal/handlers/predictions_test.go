package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurorahealth/aurora-backend/internal/models"
)

type stubRiskService struct {
	generatedDates []models.Date
}

func (s *stubRiskService) PredictRisk(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error) {
	return &models.RiskAssessment{UserID: userID, Date: target, RiskLevel: models.RiskLevelLow}, nil
}

func (s *stubRiskService) PredictNext7Days(ctx context.Context, userID string) (*models.Forecast, error) {
	days := make([]models.RiskAssessment, 7)
	for i := range days {
		days[i] = models.RiskAssessment{UserID: userID}
	}
	return &models.Forecast{Days: days}, nil
}

func (s *stubRiskService) GetOrGenerateToday(ctx context.Context, userID string) (*models.RiskAssessment, error) {
	return &models.RiskAssessment{UserID: userID, RiskScore: 27, RiskLevel: models.RiskLevelLow}, nil
}

func (s *stubRiskService) Generate(ctx context.Context, userID string, target models.Date) (*models.RiskAssessment, error) {
	s.generatedDates = append(s.generatedDates, target)
	return &models.RiskAssessment{UserID: userID, Date: target}, nil
}

func setupPredictionRouter(svc *stubRiskService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewPredictionHandler(svc)
	group := router.Group("/api/v1")
	if authed {
		group.Use(func(c *gin.Context) {
			c.Set("user_id", "user-1")
			c.Next()
		})
	}
	group.GET("/predictions/today", h.Today)
	group.GET("/predictions/forecast", h.Forecast)
	group.POST("/predictions/generate", h.Generate)
	return router
}

func TestPredictionTodayRequiresAuth(t *testing.T) {
	router := setupPredictionRouter(&stubRiskService{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/today", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
}

func TestPredictionToday(t *testing.T) {
	router := setupPredictionRouter(&stubRiskService{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/today", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.RiskAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 27, got.RiskScore)
}

func TestPredictionForecast(t *testing.T) {
	router := setupPredictionRouter(&stubRiskService{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/forecast", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Forecast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Days, 7)
}

func TestPredictionGenerate(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		svc := &stubRiskService{}
		router := setupPredictionRouter(svc, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/generate",
			strings.NewReader(`{"date":"2025-06-10"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, svc.generatedDates, 1)
		assert.Equal(t, "2025-06-10", svc.generatedDates[0].String())
	})

	t.Run("empty body defaults to today", func(t *testing.T) {
		svc := &stubRiskService{}
		router := setupPredictionRouter(svc, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/generate", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, svc.generatedDates, 1)
		assert.False(t, svc.generatedDates[0].IsZero())
	})
}
