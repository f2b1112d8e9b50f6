package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileService service.ProfileService
	log            *logrus.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, log: log}
}

// UpdateProfileRequest is a partial profile update; omitted fields are unchanged.
type UpdateProfileRequest struct {
	Email                    *string `json:"email" validate:"omitempty,email"`
	FirstName                *string `json:"first_name"`
	LastName                 *string `json:"last_name"`
	NotificationEmailEnabled *bool   `json:"notification_email_enabled"`
	ThemePreference          *string `json:"theme_preference" validate:"omitempty,oneof=light dark system"`
	CurrentPassword          *string `json:"current_password"`
	NewPassword              *string `json:"new_password" validate:"omitempty,max=72"`
}

// ProfileResponse wraps the user record.
type ProfileResponse struct {
	Message string      `json:"message,omitempty"`
	User    *model.User `json:"user"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.profileService.Get(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, ProfileResponse{User: user})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Partial update. Changing the password requires current_password.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.profileService.Update(c.Request().Context(), userID, service.ProfileUpdate{
		Email:                    req.Email,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		NotificationEmailEnabled: req.NotificationEmailEnabled,
		ThemePreference:          req.ThemePreference,
		CurrentPassword:          req.CurrentPassword,
		NewPassword:              req.NewPassword,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{Message: "profile updated successfully", User: user})
}
