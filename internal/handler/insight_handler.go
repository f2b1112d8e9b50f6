package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// InsightHandler serves the derived health views.
type InsightHandler struct {
	insightService service.InsightService
	log            *logrus.Logger
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(insightService service.InsightService, log *logrus.Logger) *InsightHandler {
	return &InsightHandler{insightService: insightService, log: log}
}

// DiagnosisRequest lists the symptoms to assess.
type DiagnosisRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1"`
}

// RecommendationsResponse lists recommendation lines.
type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

// AppointmentsResponse lists upcoming diagnostic tests.
type AppointmentsResponse struct {
	Appointments []model.DiagnosticTest `json:"appointments"`
}

// Metrics godoc
// @Summary Aggregated health metrics
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.HealthMetrics
// @Router /health/metrics [get]
func (h *InsightHandler) Metrics(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	metrics, err := h.insightService.Metrics(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, metrics)
}

// Score godoc
// @Summary Health score for the last 30 days
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.HealthScore
// @Router /health/score [get]
func (h *InsightHandler) Score(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	score, err := h.insightService.Score(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, score)
}

// Recommendations godoc
// @Summary General health recommendations
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RecommendationsResponse
// @Router /health/ai-recommendations [get]
func (h *InsightHandler) Recommendations(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, RecommendationsResponse{
		Recommendations: h.insightService.Recommendations(c.Request().Context(), userID),
	})
}

// Diagnose godoc
// @Summary Canned diagnosis advisory
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DiagnosisRequest true "Symptoms"
// @Success 200 {object} service.Diagnosis
// @Failure 400 {object} errors.ErrorResponse
// @Router /health/ai-diagnosis [post]
func (h *InsightHandler) Diagnose(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return respondError(c, h.log, err)
	}

	var req DiagnosisRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	diagnosis, err := h.insightService.Diagnose(c.Request().Context(), req.Symptoms)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, diagnosis)
}

// Appointments godoc
// @Summary Upcoming diagnostic tests
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AppointmentsResponse
// @Router /health/appointments [get]
func (h *InsightHandler) Appointments(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	appointments, err := h.insightService.Appointments(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, AppointmentsResponse{Appointments: appointments})
}
