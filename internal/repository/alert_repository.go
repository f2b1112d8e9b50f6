package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
)

// AlertRepository defines alert persistence operations.
type AlertRepository interface {
	Create(ctx context.Context, alert *model.Alert) error
	CreateBatch(ctx context.Context, alerts []model.Alert) error
	ListByUser(ctx context.Context, userID uint) ([]model.Alert, error)
	CountByStatus(ctx context.Context, userID uint, status string) (int64, error)
	Update(ctx context.Context, id, userID uint, patch model.AlertPatch) (*model.Alert, error)
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository.
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *model.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// CreateBatch inserts several alerts at once, used by seeding.
func (r *alertRepository) CreateBatch(ctx context.Context, alerts []model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(alerts, 100).Error
}

// ListByUser lists the user's alerts, newest first.
func (r *alertRepository) ListByUser(ctx context.Context, userID uint) ([]model.Alert, error) {
	alerts := make([]model.Alert, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").Order("id DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) CountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Alert{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *alertRepository) Update(ctx context.Context, id, userID uint, patch model.AlertPatch) (*model.Alert, error) {
	res := r.db.WithContext(ctx).Model(&model.Alert{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch.Columns())
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var alert model.Alert
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&alert).Error; err != nil {
		return nil, notFound(err)
	}
	return &alert, nil
}
