package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
)

// DiagnosticTestRepository defines diagnostic test persistence operations.
// Every lookup is scoped by owner: a row owned by another user is not found.
type DiagnosticTestRepository interface {
	Create(ctx context.Context, test *model.DiagnosticTest) error
	ListByUser(ctx context.Context, userID uint) ([]model.DiagnosticTest, error)
	ListUpcoming(ctx context.Context, userID uint, from time.Time) ([]model.DiagnosticTest, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.DiagnosticTest, error)
	Update(ctx context.Context, id, userID uint, patch model.DiagnosticTestPatch) (*model.DiagnosticTest, error)
	Delete(ctx context.Context, id, userID uint) error
}

type diagnosticTestRepository struct {
	db *gorm.DB
}

// NewDiagnosticTestRepository creates a new diagnostic test repository.
func NewDiagnosticTestRepository(db *gorm.DB) DiagnosticTestRepository {
	return &diagnosticTestRepository{db: db}
}

func (r *diagnosticTestRepository) Create(ctx context.Context, test *model.DiagnosticTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *diagnosticTestRepository) ListByUser(ctx context.Context, userID uint) ([]model.DiagnosticTest, error) {
	tests := make([]model.DiagnosticTest, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("test_date DESC").Order("id DESC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

// ListUpcoming lists tests scheduled at or after from, soonest first.
func (r *diagnosticTestRepository) ListUpcoming(ctx context.Context, userID uint, from time.Time) ([]model.DiagnosticTest, error) {
	tests := make([]model.DiagnosticTest, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND test_date >= ?", userID, from).
		Order("test_date ASC").Order("id ASC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *diagnosticTestRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DiagnosticTest{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *diagnosticTestRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.DiagnosticTest, error) {
	var test model.DiagnosticTest
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&test).Error; err != nil {
		return nil, notFound(err)
	}
	return &test, nil
}

// Update applies patch to the owned row; zero affected rows means not found.
func (r *diagnosticTestRepository) Update(ctx context.Context, id, userID uint, patch model.DiagnosticTestPatch) (*model.DiagnosticTest, error) {
	res := r.db.WithContext(ctx).Model(&model.DiagnosticTest{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch.Columns())
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindByIDAndOwner(ctx, id, userID)
}

func (r *diagnosticTestRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.DiagnosticTest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
