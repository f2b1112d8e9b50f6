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

var errTestNameRequired = apperrors.Validation("test name is required")

// DiagnosticTestInput carries a new diagnostic test. A nil test date means now.
type DiagnosticTestInput struct {
	Name     string
	Result   *string
	TestDate *time.Time
}

// DiagnosticTestService manages the caller's diagnostic tests.
type DiagnosticTestService interface {
	Create(ctx context.Context, userID uint, in DiagnosticTestInput) (*model.DiagnosticTest, error)
	List(ctx context.Context, userID uint) ([]model.DiagnosticTest, error)
	Get(ctx context.Context, id, userID uint) (*model.DiagnosticTest, error)
	Update(ctx context.Context, id, userID uint, patch model.DiagnosticTestPatch) (*model.DiagnosticTest, error)
	Delete(ctx context.Context, id, userID uint) error
}

type diagnosticTestService struct {
	repo repository.DiagnosticTestRepository
	now  func() time.Time
}

// NewDiagnosticTestService creates a new diagnostic test service.
func NewDiagnosticTestService(repo repository.DiagnosticTestRepository) DiagnosticTestService {
	return &diagnosticTestService{repo: repo, now: time.Now}
}

func (s *diagnosticTestService) Create(ctx context.Context, userID uint, in DiagnosticTestInput) (*model.DiagnosticTest, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errTestNameRequired
	}

	testDate := s.now().UTC()
	if in.TestDate != nil {
		testDate = in.TestDate.UTC()
	}

	test := &model.DiagnosticTest{
		UserID:   userID,
		Name:     name,
		Result:   in.Result,
		TestDate: testDate,
	}
	if err := s.repo.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("create diagnostic test: %w", err)
	}
	return test, nil
}

func (s *diagnosticTestService) List(ctx context.Context, userID uint) ([]model.DiagnosticTest, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *diagnosticTestService) Get(ctx context.Context, id, userID uint) (*model.DiagnosticTest, error) {
	return s.repo.FindByIDAndOwner(ctx, id, userID)
}

func (s *diagnosticTestService) Update(ctx context.Context, id, userID uint, patch model.DiagnosticTestPatch) (*model.DiagnosticTest, error) {
	if patch.IsEmpty() {
		return nil, apperrors.ErrNoFieldsProvided
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, errTestNameRequired
		}
		patch.Name = &name
	}
	if patch.TestDate != nil {
		d := patch.TestDate.UTC()
		patch.TestDate = &d
	}
	return s.repo.Update(ctx, id, userID, patch)
}

func (s *diagnosticTestService) Delete(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}
