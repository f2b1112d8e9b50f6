package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// DiagnosticTestHandler handles diagnostic test endpoints.
type DiagnosticTestHandler struct {
	testService service.DiagnosticTestService
	log         *logrus.Logger
}

// NewDiagnosticTestHandler creates a new diagnostic test handler.
func NewDiagnosticTestHandler(testService service.DiagnosticTestService, log *logrus.Logger) *DiagnosticTestHandler {
	return &DiagnosticTestHandler{testService: testService, log: log}
}

// CreateDiagnosticTestRequest creates a test. test_date defaults to now.
type CreateDiagnosticTestRequest struct {
	Name     string  `json:"name" validate:"required"`
	Result   *string `json:"result"`
	TestDate string  `json:"test_date"`
}

// UpdateDiagnosticTestRequest is a partial update; omitted fields are unchanged.
type UpdateDiagnosticTestRequest struct {
	Name     *string `json:"name"`
	Result   *string `json:"result"`
	TestDate *string `json:"test_date"`
}

// DiagnosticTestListResponse lists tests newest first.
type DiagnosticTestListResponse struct {
	Tests []model.DiagnosticTest `json:"tests"`
}

// DiagnosticTestResponse wraps a single test.
type DiagnosticTestResponse struct {
	Message string                `json:"message,omitempty"`
	Test    *model.DiagnosticTest `json:"test"`
}

// DeleteResponse acknowledges a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// ListTests godoc
// @Summary List the caller's diagnostic tests
// @Tags diagnostic-tests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DiagnosticTestListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /diagnostic-tests [get]
func (h *DiagnosticTestHandler) ListTests(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	tests, err := h.testService.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, DiagnosticTestListResponse{Tests: tests})
}

// CreateTest godoc
// @Summary Create a diagnostic test
// @Tags diagnostic-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDiagnosticTestRequest true "Test"
// @Success 201 {object} DiagnosticTestResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /diagnostic-tests [post]
func (h *DiagnosticTestHandler) CreateTest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req CreateDiagnosticTestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	testDate, err := parseDate("test_date", req.TestDate)
	if err != nil {
		return respondError(c, h.log, err)
	}

	test, err := h.testService.Create(c.Request().Context(), userID, service.DiagnosticTestInput{
		Name:     req.Name,
		Result:   req.Result,
		TestDate: testDate,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, DiagnosticTestResponse{Message: "diagnostic test created successfully", Test: test})
}

// GetTest godoc
// @Summary Get one of the caller's diagnostic tests
// @Tags diagnostic-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} DiagnosticTestResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /diagnostic-tests/{id} [get]
func (h *DiagnosticTestHandler) GetTest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	test, err := h.testService.Get(c.Request().Context(), id, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, DiagnosticTestResponse{Test: test})
}

// UpdateTest godoc
// @Summary Update one of the caller's diagnostic tests
// @Tags diagnostic-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param request body UpdateDiagnosticTestRequest true "Fields to change"
// @Success 200 {object} DiagnosticTestResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /diagnostic-tests/{id} [put]
func (h *DiagnosticTestHandler) UpdateTest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req UpdateDiagnosticTestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	patch := model.DiagnosticTestPatch{Name: req.Name, Result: req.Result}
	if req.TestDate != nil {
		testDate, err := parseDate("test_date", *req.TestDate)
		if err != nil {
			return respondError(c, h.log, err)
		}
		patch.TestDate = testDate
	}

	test, err := h.testService.Update(c.Request().Context(), id, userID, patch)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, DiagnosticTestResponse{Message: "diagnostic test updated successfully", Test: test})
}

// DeleteTest godoc
// @Summary Delete one of the caller's diagnostic tests
// @Tags diagnostic-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /diagnostic-tests/{id} [delete]
func (h *DiagnosticTestHandler) DeleteTest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.testService.Delete(c.Request().Context(), id, userID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{Message: "diagnostic test deleted successfully", ID: id})
}
