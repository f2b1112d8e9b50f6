package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// SymptomHandler handles symptom endpoints.
type SymptomHandler struct {
	symptomService service.SymptomService
	log            *logrus.Logger
}

// NewSymptomHandler creates a new symptom handler.
func NewSymptomHandler(symptomService service.SymptomService, log *logrus.Logger) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService, log: log}
}

// CreateSymptomRequest records one symptom. Severity defaults to mild and date to today.
type CreateSymptomRequest struct {
	Description string `json:"description" validate:"required"`
	Severity    string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
}

// SymptomListResponse lists symptoms newest first.
type SymptomListResponse struct {
	Symptoms []model.Symptom `json:"symptoms"`
}

// SymptomResponse wraps a single symptom.
type SymptomResponse struct {
	Message string         `json:"message"`
	Symptom *model.Symptom `json:"symptom"`
}

// ListSymptoms godoc
// @Summary List the caller's symptoms
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SymptomListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /health/symptoms [get]
func (h *SymptomHandler) ListSymptoms(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	symptoms, err := h.symptomService.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, SymptomListResponse{Symptoms: symptoms})
}

// CreateSymptom godoc
// @Summary Record a symptom
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSymptomRequest true "Symptom"
// @Success 201 {object} SymptomResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /health/symptoms [post]
func (h *SymptomHandler) CreateSymptom(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req CreateSymptomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return respondError(c, h.log, err)
	}

	symptom, err := h.symptomService.Record(c.Request().Context(), userID, service.SymptomInput{
		Description: req.Description,
		Severity:    model.Severity(req.Severity),
		Duration:    req.Duration,
		Date:        date,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, SymptomResponse{Message: "symptom recorded successfully", Symptom: symptom})
}
