package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) EmailTakenByOther(ctx context.Context, email string, userID uint) (bool, error) {
	args := m.Called(ctx, email, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, patch model.ProfilePatch) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSymptomRepository is a mock implementation of SymptomRepository.
type MockSymptomRepository struct {
	mock.Mock
}

func (m *MockSymptomRepository) Create(ctx context.Context, symptom *model.Symptom) error {
	args := m.Called(ctx, symptom)
	return args.Error(0)
}

func (m *MockSymptomRepository) ListByUser(ctx context.Context, userID uint) ([]model.Symptom, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Symptom), args.Error(1)
}

func (m *MockSymptomRepository) ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.Symptom, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Symptom), args.Error(1)
}

// MockDiagnosticTestRepository is a mock implementation of DiagnosticTestRepository.
type MockDiagnosticTestRepository struct {
	mock.Mock
}

func (m *MockDiagnosticTestRepository) Create(ctx context.Context, test *model.DiagnosticTest) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockDiagnosticTestRepository) ListByUser(ctx context.Context, userID uint) ([]model.DiagnosticTest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiagnosticTest), args.Error(1)
}

func (m *MockDiagnosticTestRepository) ListUpcoming(ctx context.Context, userID uint, from time.Time) ([]model.DiagnosticTest, error) {
	args := m.Called(ctx, userID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiagnosticTest), args.Error(1)
}

func (m *MockDiagnosticTestRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiagnosticTestRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.DiagnosticTest, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiagnosticTest), args.Error(1)
}

func (m *MockDiagnosticTestRepository) Update(ctx context.Context, id, userID uint, patch model.DiagnosticTestPatch) (*model.DiagnosticTest, error) {
	args := m.Called(ctx, id, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiagnosticTest), args.Error(1)
}

func (m *MockDiagnosticTestRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAlertRepository is a mock implementation of AlertRepository.
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *model.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) CreateBatch(ctx context.Context, alerts []model.Alert) error {
	args := m.Called(ctx, alerts)
	return args.Error(0)
}

func (m *MockAlertRepository) ListByUser(ctx context.Context, userID uint) ([]model.Alert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertRepository) CountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlertRepository) Update(ctx context.Context, id, userID uint, patch model.AlertPatch) (*model.Alert, error) {
	args := m.Called(ctx, id, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID uint, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
