package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

// AlertService manages the caller's alerts.
type AlertService interface {
	List(ctx context.Context, userID uint) ([]model.Alert, error)
	Create(ctx context.Context, userID uint, title, status string) (*model.Alert, error)
	UpdateStatus(ctx context.Context, id, userID uint, status string) (*model.Alert, error)
}

type alertService struct {
	repo repository.AlertRepository
}

// NewAlertService creates a new alert service.
func NewAlertService(repo repository.AlertRepository) AlertService {
	return &alertService{repo: repo}
}

func (s *alertService) List(ctx context.Context, userID uint) ([]model.Alert, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *alertService) Create(ctx context.Context, userID uint, title, status string) (*model.Alert, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.Validation("alert title is required")
	}
	status = strings.TrimSpace(status)
	if status == "" {
		status = model.AlertStatusNew
	}

	alert := &model.Alert{UserID: userID, Title: title, Status: status}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	return alert, nil
}

func (s *alertService) UpdateStatus(ctx context.Context, id, userID uint, status string) (*model.Alert, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperrors.Validation("status is required")
	}
	return s.repo.Update(ctx, id, userID, model.AlertPatch{Status: &status})
}
