package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "healthtrack/internal/errors"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
