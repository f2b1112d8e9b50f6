package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"healthtrack/internal/model"
)

// SymptomRepository defines symptom persistence operations.
type SymptomRepository interface {
	Create(ctx context.Context, symptom *model.Symptom) error
	ListByUser(ctx context.Context, userID uint) ([]model.Symptom, error)
	ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.Symptom, error)
}

type symptomRepository struct {
	db *gorm.DB
}

// NewSymptomRepository creates a new symptom repository.
func NewSymptomRepository(db *gorm.DB) SymptomRepository {
	return &symptomRepository{db: db}
}

// Create creates a new symptom record.
func (r *symptomRepository) Create(ctx context.Context, symptom *model.Symptom) error {
	return r.db.WithContext(ctx).Create(symptom).Error
}

// ListByUser lists every symptom of the user, newest first.
func (r *symptomRepository) ListByUser(ctx context.Context, userID uint) ([]model.Symptom, error) {
	symptoms := make([]model.Symptom, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

// ListByUserSince lists the user's symptoms dated on or after since, newest first.
func (r *symptomRepository) ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.Symptom, error) {
	symptoms := make([]model.Symptom, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").Order("id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}
