package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

// SymptomInput carries a new symptom entry. Empty severity means mild and a
// nil date means today.
type SymptomInput struct {
	Description string
	Severity    model.Severity
	Duration    string
	Date        *time.Time
}

// SymptomService records and lists symptoms.
type SymptomService interface {
	Record(ctx context.Context, userID uint, in SymptomInput) (*model.Symptom, error)
	List(ctx context.Context, userID uint) ([]model.Symptom, error)
}

type symptomService struct {
	repo repository.SymptomRepository
	now  func() time.Time
}

// NewSymptomService creates a new symptom service.
func NewSymptomService(repo repository.SymptomRepository) SymptomService {
	return &symptomService{repo: repo, now: time.Now}
}

func (s *symptomService) Record(ctx context.Context, userID uint, in SymptomInput) (*model.Symptom, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, apperrors.Validation("symptom description is required")
	}

	severity := in.Severity
	if severity == "" {
		severity = model.SeverityMild
	}
	if !severity.Valid() {
		return nil, apperrors.Validation("severity must be one of mild, moderate, severe")
	}

	date := truncateDay(s.now())
	if in.Date != nil {
		date = truncateDay(*in.Date)
	}

	symptom := &model.Symptom{
		UserID:      userID,
		Description: description,
		Severity:    severity,
		Duration:    strings.TrimSpace(in.Duration),
		Date:        date,
	}
	if err := s.repo.Create(ctx, symptom); err != nil {
		return nil, fmt.Errorf("create symptom: %w", err)
	}
	return symptom, nil
}

func (s *symptomService) List(ctx context.Context, userID uint) ([]model.Symptom, error) {
	return s.repo.ListByUser(ctx, userID)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
