package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// AlertHandler handles alert endpoints.
type AlertHandler struct {
	alertService service.AlertService
	log          *logrus.Logger
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(alertService service.AlertService, log *logrus.Logger) *AlertHandler {
	return &AlertHandler{alertService: alertService, log: log}
}

// CreateAlertRequest creates an alert. Status defaults to "new".
type CreateAlertRequest struct {
	Title  string `json:"title" validate:"required"`
	Status string `json:"status"`
}

// UpdateAlertStatusRequest sets an alert's status.
type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AlertListResponse lists alerts newest first.
type AlertListResponse struct {
	Alerts []model.Alert `json:"alerts"`
}

// AlertResponse wraps a single alert.
type AlertResponse struct {
	Message string       `json:"message"`
	Alert   *model.Alert `json:"alert"`
}

// ListAlerts godoc
// @Summary List the caller's alerts
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AlertListResponse
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	alerts, err := h.alertService.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, AlertListResponse{Alerts: alerts})
}

// CreateAlert godoc
// @Summary Create an alert
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAlertRequest true "Alert"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /alerts [post]
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req CreateAlertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	alert, err := h.alertService.Create(c.Request().Context(), userID, req.Title, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, AlertResponse{Message: "alert created successfully", Alert: alert})
}

// UpdateAlertStatus godoc
// @Summary Change an alert's status
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Param request body UpdateAlertStatusRequest true "Status"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /alerts/{id}/status [put]
func (h *AlertHandler) UpdateAlertStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req UpdateAlertStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	alert, err := h.alertService.UpdateStatus(c.Request().Context(), id, userID, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, AlertResponse{Message: "alert status updated successfully", Alert: alert})
}
